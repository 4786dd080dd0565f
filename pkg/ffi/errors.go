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
	"github.com/pkg/errors"
)

var (
	// ErrNullArgument is returned when a required pointer argument is NULL.
	ErrNullArgument = errors.New("null argument")

	// ErrInvalidNumber is returned when a text is not a decimal integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrOutOfRange is returned when a decimal integer does not fit the
	// requested type.
	ErrOutOfRange = errors.New("number out of range")

	// ErrNullName is returned when a person is created without a name.
	ErrNullName = errors.New("name must not be null")

	// ErrInvalidName is returned when a person name is not valid UTF-8
	// or contains a NUL byte.
	ErrInvalidName = errors.New("name must be NUL-free UTF-8 text")

	// ErrInvalidPerson is returned when a serialized person does not
	// match the expected schema.
	ErrInvalidPerson = errors.New("invalid serialized person")

	// ErrTooManySets is returned when no more integer set handles
	// can be issued.
	ErrTooManySets = errors.New("too many live integer sets")
)
