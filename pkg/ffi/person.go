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
	"strings"
	"sync"
	"unicode/utf8"

	cjson "github.com/gibson042/canonicaljson-go"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// PersonSchema is the JSON schema every serialized person complies with.
const PersonSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "id": {
      "type": "integer",
      "minimum": -2147483648,
      "maximum": 2147483647
    },
    "name": {
      "type": "string"
    }
  },
  "required": ["id", "name"],
  "additionalProperties": false
}`

var (
	personSchemaOnce sync.Once
	personSchema     *gojsonschema.Schema
	personSchemaErr  error
)

// Person is the Go value of a person record.
type Person struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// NewPerson returns a validated Person.
func NewPerson(id int32, name string) (Person, error) {
	p := Person{ID: id, Name: name}
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Validate returns an error wrapping ErrInvalidName if the name cannot
// be represented as a C string.
func (p Person) Validate() error {
	if !utf8.ValidString(p.Name) || strings.IndexByte(p.Name, 0) >= 0 {
		return errors.Wrapf(ErrInvalidName, "person %d", p.ID)
	}
	return nil
}

// Serialize encodes the person as canonical JSON: keys sorted, no
// insignificant whitespace. The same person always yields the same text,
// e.g. {"id":1,"name":"Daniel"}.
func (p Person) Serialize() (string, error) {
	b, err := cjson.Marshal(p)
	if err != nil {
		return "", errors.Wrapf(err, "serializing person %d", p.ID)
	}
	return string(b), nil
}

// ParsePerson decodes a text produced by Serialize. Any JSON document
// matching PersonSchema is accepted, canonical or not. Validation
// failures wrap ErrInvalidPerson.
func ParsePerson(text string) (Person, error) {
	schema, err := loadPersonSchema()
	if err != nil {
		return Person{}, err
	}
	if len(text) == 0 {
		return Person{}, errors.Wrap(ErrInvalidPerson, "empty text")
	}
	res, err := schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return Person{}, errors.Wrapf(ErrInvalidPerson, "%s", err.Error())
	}
	if !res.Valid() {
		// report the first error
		return Person{}, errors.Wrapf(ErrInvalidPerson, "%s", res.Errors()[0].String())
	}

	var p Person
	if err := cjson.Unmarshal([]byte(text), &p); err != nil {
		return Person{}, errors.Wrapf(ErrInvalidPerson, "%s", err.Error())
	}
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

func loadPersonSchema() (*gojsonschema.Schema, error) {
	personSchemaOnce.Do(func() {
		personSchema, personSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(PersonSchema))
		personSchemaErr = errors.Wrap(personSchemaErr, "loading person schema")
	})
	return personSchema, personSchemaErr
}
