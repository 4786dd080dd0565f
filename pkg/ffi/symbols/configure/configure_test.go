// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The FFIKit Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package configure

import (
	"testing"

	zl "github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ffikit/ffi-sdk-go/pkg/cgo"
	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

func TestConfigure(t *testing.T) {
	defer zl.SetGlobalLevel(zl.GlobalLevel())
	defer ffi.SetMaxIntSets(cgo.MaxHandle)

	var doc ptr.StringBuffer
	defer doc.Free()

	doc.Write(`{"logLevel":"error","maxIntSets":5}`)
	if !ffi_configure((*_Ctype_char)(doc.CharPtr())) {
		t.Fatalf("expected success, got %v", ffi.LastError())
	}
	assert.Nil(t, ffi.LastError())
	assert.Equal(t, zl.ErrorLevel, zl.GlobalLevel())
	assert.Equal(t, 5, ffi.MaxIntSets())

	// invalid documents leave the configuration untouched
	doc.Write(`{"logLevel":"debug","maxIntSets":0}`)
	assert.False(t, bool(ffi_configure((*_Ctype_char)(doc.CharPtr()))))
	assert.NotNil(t, ffi.LastError())
	assert.Equal(t, zl.ErrorLevel, zl.GlobalLevel())
	assert.Equal(t, 5, ffi.MaxIntSets())

	doc.Write(`{"maxIntSets":3,"logFormat":"xml"}`)
	assert.False(t, bool(ffi_configure((*_Ctype_char)(doc.CharPtr()))))
	assert.Equal(t, 5, ffi.MaxIntSets())

	doc.Write(`{broken`)
	assert.False(t, bool(ffi_configure((*_Ctype_char)(doc.CharPtr()))))

	// NULL restores the defaults
	assert.True(t, bool(ffi_configure(nil)))
	assert.Equal(t, zl.InfoLevel, zl.GlobalLevel())
	assert.Equal(t, cgo.MaxHandle, ffi.MaxIntSets())
}
