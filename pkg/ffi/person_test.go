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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	p, err := NewPerson(1, "Daniel")
	require.NoError(t, err)
	assert.Equal(t, Person{ID: 1, Name: "Daniel"}, p)

	_, err = NewPerson(2, "bad\xff")
	assert.True(t, errors.Is(err, ErrInvalidName))

	_, err = NewPerson(3, "nul\x00inside")
	assert.True(t, errors.Is(err, ErrInvalidName))

	p, err = NewPerson(4, "")
	require.NoError(t, err)
	assert.Equal(t, "", p.Name)
}

func TestSerializePerson(t *testing.T) {
	text, err := Person{ID: 1, Name: "Daniel"}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"name":"Daniel"}`, text)

	again, err := Person{ID: 1, Name: "Daniel"}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, text, again)

	text, err = Person{ID: -7, Name: "a \"quoted\" name"}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, `{"id":-7,"name":"a \"quoted\" name"}`, text)
}

func TestParsePerson(t *testing.T) {
	for _, p := range []Person{
		{ID: 1, Name: "Daniel"},
		{ID: -2147483648, Name: ""},
		{ID: 2147483647, Name: "Zoë"},
	} {
		text, err := p.Serialize()
		require.NoError(t, err)
		res, err := ParsePerson(text)
		require.NoError(t, err, text)
		assert.Equal(t, p, res)
	}

	res, err := ParsePerson(" { \"name\" : \"Daniel\", \"id\" : 1 } ")
	require.NoError(t, err)
	assert.Equal(t, Person{ID: 1, Name: "Daniel"}, res)

	invalid := []string{
		``,
		`not json`,
		`[]`,
		`{}`,
		`{"id":1}`,
		`{"name":"Daniel"}`,
		`{"id":"1","name":"Daniel"}`,
		`{"id":1.5,"name":"Daniel"}`,
		`{"id":2147483648,"name":"Daniel"}`,
		`{"id":1,"name":"Daniel","age":3}`,
	}
	for _, text := range invalid {
		_, err := ParsePerson(text)
		assert.True(t, errors.Is(err, ErrInvalidPerson), "%q: %v", text, err)
	}

	_, err = ParsePerson(`{"id":1,"name":"nul\u0000inside"}`)
	assert.True(t, errors.Is(err, ErrInvalidName))
}

func TestCPerson(t *testing.T) {
	daniel, err := NewCPerson(Person{ID: 1, Name: "Daniel"})
	require.NoError(t, err)
	require.NotNil(t, daniel)

	other, err := NewCPerson(Person{ID: 2, Name: "Other"})
	require.NoError(t, err)

	assert.Equal(t, Person{ID: 1, Name: "Daniel"}, CPersonValue(daniel))
	FreeCPerson(daniel)

	// freeing a record leaves the others intact
	assert.Equal(t, Person{ID: 2, Name: "Other"}, CPersonValue(other))
	FreeCPerson(other)

	FreeCPerson(nil)

	ptr, err := NewCPerson(Person{ID: 3, Name: "bad\xff"})
	assert.Nil(t, ptr)
	assert.True(t, errors.Is(err, ErrInvalidName))
}
