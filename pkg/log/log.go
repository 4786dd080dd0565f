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

// Package log holds the structured logger shared by the exported symbols,
// the loader and the command line tools.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	zl "github.com/rs/zerolog"
)

// EnvLevel is the environment variable overriding the default log level
// when the library is loaded.
const EnvLevel = "FFIKIT_LOG_LEVEL"

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var (
	m      sync.RWMutex
	out    io.Writer = os.Stderr
	format           = FormatJSON
	logger           = newLogger(os.Stderr, FormatJSON)
)

func init() {
	zl.SetGlobalLevel(zl.InfoLevel)
	if lvl, ok := os.LookupEnv(EnvLevel); ok {
		if err := SetGlobalLevelFromString(lvl); err != nil {
			logger.Warn().Err(err).Str("env", EnvLevel).Msg("ignoring log level")
		}
	}
}

func newLogger(w io.Writer, format string) zl.Logger {
	if format == FormatConsole {
		w = zl.ConsoleWriter{Out: w, NoColor: true}
	}
	return zl.New(w).With().Timestamp().Str("lib", "ffikit").Logger()
}

// Default returns the current library logger.
func Default() zl.Logger {
	m.RLock()
	defer m.RUnlock()
	return logger
}

// CheckFormat returns an error if f is not a known output format.
func CheckFormat(f string) error {
	switch f {
	case FormatJSON, FormatConsole:
		return nil
	}
	return fmt.Errorf("Unknown log format: %s", f)
}

// SetFormat switches the output format of the library logger.
func SetFormat(f string) error {
	if err := CheckFormat(f); err != nil {
		return err
	}
	m.Lock()
	defer m.Unlock()
	format = f
	logger = newLogger(out, f)
	return nil
}

// SetOutput redirects the library logger, keeping its format.
func SetOutput(w io.Writer) {
	m.Lock()
	defer m.Unlock()
	out = w
	logger = newLogger(w, format)
}

// ParseLevel maps a level name to its zerolog level.
func ParseLevel(s string) (zl.Level, error) {
	switch s {
	case "debug":
		return zl.DebugLevel, nil
	case "info":
		return zl.InfoLevel, nil
	case "warn":
		return zl.WarnLevel, nil
	case "error":
		return zl.ErrorLevel, nil
	case "disabled":
		return zl.Disabled, nil
	}
	return zl.NoLevel, fmt.Errorf("Unknown log level: %s", s)
}

func SetGlobalLevelFromString(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	zl.SetGlobalLevel(lvl)
	return nil
}
