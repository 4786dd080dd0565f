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

// Package config defines the library configuration accepted by
// ffi_configure and by the command line tools.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/ffikit/ffi-sdk-go/pkg/cgo"
	"github.com/ffikit/ffi-sdk-go/pkg/log"
)

// Schema is the JSON schema of the configuration document.
var Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "logLevel": {
      "type": "string",
      "enum": ["debug", "info", "warn", "error", "disabled"]
    },
    "logFormat": {
      "type": "string",
      "enum": ["` + log.FormatJSON + `", "` + log.FormatConsole + `"]
    },
    "maxIntSets": {
      "type": "integer",
      "minimum": 1,
      "maximum": ` + strconv.Itoa(cgo.MaxHandle) + `
    }
  },
  "additionalProperties": false
}`

// Config is the library configuration. Unset fields take the values of
// Default.
type Config struct {
	LogLevel   string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	LogFormat  string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
	MaxIntSets int    `json:"maxIntSets,omitempty" yaml:"maxIntSets,omitempty"`
}

// Default returns the configuration in effect when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  log.FormatJSON,
		MaxIntSets: cgo.MaxHandle,
	}
}

// Parse validates a JSON configuration document against Schema and
// returns it merged over Default. An empty document is equivalent to "{}".
func Parse(doc string) (Config, error) {
	if len(strings.TrimSpace(doc)) == 0 {
		doc = "{}"
	}
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(Schema),
		gojsonschema.NewStringLoader(doc))
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	if !res.Valid() {
		// report the first error
		return Config{}, errors.Errorf("invalid config: %s", res.Errors()[0].String())
	}

	cfg := Default()
	if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Load reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON. Both are validated with Parse.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Config{}, errors.Wrapf(err, "decoding config %s", path)
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}
		data, err = json.Marshal(doc)
		if err != nil {
			return Config{}, errors.Wrapf(err, "decoding config %s", path)
		}
	}

	cfg, err := Parse(string(data))
	return cfg, errors.Wrap(err, path)
}

// JSON returns the configuration as a document accepted by Parse.
func (c Config) JSON() string {
	b, _ := json.Marshal(c)
	return string(b)
}

// Validate returns an error if some field of c cannot be applied.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if err := log.CheckFormat(c.LogFormat); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.MaxIntSets < 1 || c.MaxIntSets > cgo.MaxHandle {
		return errors.Errorf("invalid config: maxIntSets must be in [1, %d], got %d", cgo.MaxHandle, c.MaxIntSets)
	}
	return nil
}

// Apply installs the logging part of the configuration. Nothing is
// changed if c does not validate.
func (c Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := log.SetGlobalLevelFromString(c.LogLevel); err != nil {
		return errors.Wrap(err, "applying config")
	}
	return errors.Wrap(log.SetFormat(c.LogFormat), "applying config")
}

