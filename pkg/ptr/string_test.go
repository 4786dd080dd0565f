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

package ptr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

const (
	testString = "hello world"
)

func TestGoStringPointer(t *testing.T) {
	// Allocate a buffer and encode a C-like string into it
	bytes := []byte(testString + " ")
	bytes[len(bytes)-1] = cStringNullTerminator

	// Use GoString to create a Go-friendly string view of the buffer above
	str := GoString(unsafe.Pointer(&bytes[0]))
	if len(str) != len(testString) || str != testString {
		t.Errorf("str=%s, len=%d", str, len(str))
	}

	// Editing buffer should make the string change too,
	// because they point to the same memory location
	editPos := 0
	editByte := byte('X')
	bytes[editPos] = editByte
	if len(str) != len(testString) || str == testString || str[editPos] != editByte {
		t.Errorf("str=%s, len=%d", str, len(str))
	}
}

func TestGoStringNull(t *testing.T) {
	str := GoString(nil)
	if len(str) > 0 {
		t.Errorf("expected empty string")
	}
}

func TestGoStringEmpty(t *testing.T) {
	bytes := []byte{cStringNullTerminator}
	assert.Equal(t, "", GoString(unsafe.Pointer(&bytes[0])))
}

func TestStringBuffer(t *testing.T) {
	str := "hello"
	buf := &StringBuffer{}

	if buf.CharPtr() != nil {
		t.Errorf("expected nil char pointer")
	}
	if len(buf.String()) > 0 {
		t.Errorf("expected empty string")
	}

	buf.Write(str)
	if buf.CharPtr() == nil {
		t.Errorf("expected non-nil char pointer")
	}
	if buf.String() != str {
		t.Errorf("string does not match: %s expected, but %s found", str, buf.String())
	}

	// shorter writes reuse the same memory
	ptr := buf.CharPtr()
	buf.Write("hi")
	assert.Equal(t, ptr, buf.CharPtr())
	assert.Equal(t, "hi", buf.String())

	// test reallocation
	str = str + " world"
	buf.Write(str)
	if buf.String() != str {
		t.Errorf("string does not match: %s expected, but %s found", str, buf.String())
	}

	buf.Free()
	assert.Nil(t, buf.CharPtr())
	assert.Equal(t, "", buf.String())

	buf.Write("")
	assert.NotNil(t, buf.CharPtr())
	assert.Equal(t, "", buf.String())
	buf.Free()
}

func TestCString(t *testing.T) {
	p := CString(testString)
	assert.NotNil(t, p)
	assert.Equal(t, testString, GoString(p))
	Free(p)
	Free(nil)
}
