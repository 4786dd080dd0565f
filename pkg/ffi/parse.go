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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseUint32 parses a decimal text into an uint32. An optional leading
// "+" is accepted. Whitespace, digit separators and other bases are not.
//
// The returned error wraps either ErrInvalidNumber or ErrOutOfRange.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, numError(s, "uint32", err)
	}
	return uint32(v), nil
}

// ParseInt32 parses a decimal text into an int32. An optional leading
// sign is accepted. Whitespace, digit separators and other bases are not.
//
// The returned error wraps either ErrInvalidNumber or ErrOutOfRange.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, numError(s, "int32", err)
	}
	return int32(v), nil
}

// Add returns a + b, wrapping around on overflow.
func Add(a, b int32) int32 {
	return a + b
}

func numError(s, typ string, err error) error {
	if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		return errors.Wrapf(ErrOutOfRange, "parsing %q as %s", s, typ)
	}
	return errors.Wrapf(ErrInvalidNumber, "parsing %q as %s", s, typ)
}
