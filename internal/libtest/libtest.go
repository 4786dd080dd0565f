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

// Package libtest builds the ffikit shared library for tests that drive it
// through its C ABI.
package libtest

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// EnvLib names a prebuilt library. When it is unset, Path builds one from
// examples/clib.
const EnvLib = "FFIKIT_LIB"

// ErrNoToolchain is returned when the go command or the C compiler it
// uses cannot be found.
var ErrNoToolchain = errors.New("no cgo toolchain available")

var (
	once    sync.Once
	tempDir string
	libPath string
	libErr  error
)

// Root returns the module root directory.
func Root() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// Path returns the library named by EnvLib or, if unset, builds it once
// per test binary. Call Cleanup from TestMain to remove the build.
func Path() (string, error) {
	once.Do(func() {
		if p := os.Getenv(EnvLib); p != "" {
			libPath = p
			return
		}
		tempDir, libErr = os.MkdirTemp("", "ffikit")
		if libErr != nil {
			return
		}
		libPath, libErr = Build(tempDir)
	})
	return libPath, libErr
}

// Cleanup removes the library built by Path, if any.
func Cleanup() {
	if tempDir != "" {
		os.RemoveAll(tempDir)
	}
}

// Build compiles examples/clib with -buildmode=c-shared into dir and
// returns the path of the library. The returned error wraps
// ErrNoToolchain when nothing can compile it.
func Build(dir string) (string, error) {
	goBin, err := exec.LookPath("go")
	if err != nil {
		return "", errors.Wrap(ErrNoToolchain, err.Error())
	}
	if _, err := CC(goBin); err != nil {
		return "", err
	}

	out := filepath.Join(dir, "libffikit.so")
	cmd := exec.Command(goBin, "build", "-buildmode=c-shared", "-o", out, "./examples/clib")
	cmd.Dir = Root()
	cmd.Env = append(os.Environ(), "CGO_ENABLED=1")
	if b, err := cmd.CombinedOutput(); err != nil {
		return "", errors.Wrapf(err, "building shared library: %s", b)
	}
	return out, nil
}

// CC returns the path of the C compiler used by the go command at goBin.
func CC(goBin string) (string, error) {
	b, err := exec.Command(goBin, "env", "CC").Output()
	if err != nil {
		return "", errors.Wrap(ErrNoToolchain, err.Error())
	}
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return "", errors.Wrap(ErrNoToolchain, "go env CC is empty")
	}
	cc, err := exec.LookPath(fields[0])
	if err != nil {
		return "", errors.Wrap(ErrNoToolchain, err.Error())
	}
	return cc, nil
}
