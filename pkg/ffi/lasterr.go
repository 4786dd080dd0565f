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

package ffi

import (
	"sync"
	"unsafe"

	"github.com/ffikit/ffi-sdk-go/pkg/log"
	"github.com/ffikit/ffi-sdk-go/pkg/ptr"
)

// The last error is process-wide: it is overwritten by any failing call
// regardless of the calling thread.
var (
	lastErrMu  sync.Mutex
	lastErr    error
	lastErrBuf ptr.StringBuffer
)

// SetLastError records err as the last error. A nil err clears it.
func SetLastError(err error) {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	lastErr = err
}

// LastError returns the last recorded error, or nil.
func LastError() error {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	return lastErr
}

// LastErrorCharPtr writes the message of the last error, or an empty
// string, into a reusable C buffer and returns it. The pointer is
// borrowed: it stays valid until the next call of LastErrorCharPtr.
func LastErrorCharPtr() unsafe.Pointer {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	msg := ""
	if lastErr != nil {
		msg = lastErr.Error()
	}
	lastErrBuf.Write(msg)
	return lastErrBuf.CharPtr()
}

// Fail records err as the last error and logs it on behalf of the
// exported symbol that failed.
func Fail(symbol string, err error) {
	SetLastError(err)
	l := log.Default()
	l.Debug().Str("symbol", symbol).Err(err).Msg("call failed")
}
