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

// Package loader opens an ffikit shared library at runtime and drives it
// through its C ABI, the same way a C consumer would.
package loader

// note: cgo does not support macros and function pointers, so we have to
// create wrappers around those to access them from Go code

/*
#cgo linux LDFLAGS: -ldl
#cgo CFLAGS: -I${SRCDIR}/../ffi
#include <dlfcn.h>
#include <stdlib.h>
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
#include "ffikit.h"

typedef struct ffi_api
{
	bool (*string_to_uint32)(const char *, uint32_t *);
	bool (*string_to_int32)(const char *, int32_t *);
	int32_t (*add)(int32_t, int32_t);
	const char *(*get_helloWorld)(void);
	const char *(*ffi_get_name)(void);
	const char *(*ffi_get_version)(void);
	const char *(*ffi_get_last_error)(void);
	bool (*ffi_configure)(const char *);
	Person *(*create_person)(int, const char *);
	void (*free_person)(Person *);
	char *(*serialize_person)(const Person *);
	Person *(*deserialize_person)(const char *);
	void (*free_string)(char *);
	uintptr_t (*int_set_new)(void);
	void (*int_set_insert)(uintptr_t, size_t);
	void (*int_set_remove)(uintptr_t, size_t);
	bool (*int_set_contain)(uintptr_t, size_t);
	size_t (*int_set_len)(uintptr_t);
	void (*int_set_free)(uintptr_t);
} ffi_api;

// returns the name of the first missing symbol, or NULL
static const char *__load_api(void *h, ffi_api *a)
{
#define __LOAD_SYM(n) do { *(void **)(&a->n) = dlsym(h, #n); if (!a->n) return #n; } while (0)
	__LOAD_SYM(string_to_uint32);
	__LOAD_SYM(string_to_int32);
	__LOAD_SYM(add);
	__LOAD_SYM(get_helloWorld);
	__LOAD_SYM(ffi_get_name);
	__LOAD_SYM(ffi_get_version);
	__LOAD_SYM(ffi_get_last_error);
	__LOAD_SYM(ffi_configure);
	__LOAD_SYM(create_person);
	__LOAD_SYM(free_person);
	__LOAD_SYM(serialize_person);
	__LOAD_SYM(deserialize_person);
	__LOAD_SYM(free_string);
	__LOAD_SYM(int_set_new);
	__LOAD_SYM(int_set_insert);
	__LOAD_SYM(int_set_remove);
	__LOAD_SYM(int_set_contain);
	__LOAD_SYM(int_set_len);
	__LOAD_SYM(int_set_free);
#undef __LOAD_SYM
	return NULL;
}

static void *__open(const char *path)
{
	return dlopen(path, RTLD_NOW | RTLD_LOCAL);
}

static const char *__dlerror()
{
	const char *err = dlerror();
	return err ? err : "unknown dlopen error";
}

static bool __string_to_uint32(ffi_api *a, const char *s, uint32_t *n) { return a->string_to_uint32(s, n); }
static bool __string_to_int32(ffi_api *a, const char *s, int32_t *n) { return a->string_to_int32(s, n); }
static int32_t __add(ffi_api *a, int32_t x, int32_t y) { return a->add(x, y); }
static const char *__get_hello_world(ffi_api *a) { return a->get_helloWorld(); }
static const char *__get_name(ffi_api *a) { return a->ffi_get_name(); }
static const char *__get_version(ffi_api *a) { return a->ffi_get_version(); }
static const char *__get_last_error(ffi_api *a) { return a->ffi_get_last_error(); }
static bool __configure(ffi_api *a, const char *c) { return a->ffi_configure(c); }
static Person *__create_person(ffi_api *a, int id, const char *name) { return a->create_person(id, name); }
static void __free_person(ffi_api *a, Person *p) { a->free_person(p); }
static char *__serialize_person(ffi_api *a, const Person *p) { return a->serialize_person(p); }
static Person *__deserialize_person(ffi_api *a, const char *t) { return a->deserialize_person(t); }
static void __free_string(ffi_api *a, char *s) { a->free_string(s); }
static uintptr_t __int_set_new(ffi_api *a) { return a->int_set_new(); }
static void __int_set_insert(ffi_api *a, uintptr_t s, size_t v) { a->int_set_insert(s, v); }
static void __int_set_remove(ffi_api *a, uintptr_t s, size_t v) { a->int_set_remove(s, v); }
static bool __int_set_contain(ffi_api *a, uintptr_t s, size_t v) { return a->int_set_contain(s, v); }
static size_t __int_set_len(ffi_api *a, uintptr_t s) { return a->int_set_len(s); }
static void __int_set_free(ffi_api *a, uintptr_t s) { a->int_set_free(s); }
*/
import "C"
import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/ffikit/ffi-sdk-go/pkg/ffi"
	"github.com/ffikit/ffi-sdk-go/pkg/log"
)

var (
	// ErrClosed is returned when using a Library after Close.
	ErrClosed = errors.New("library is closed")

	// ErrMissingSymbol is returned by Open when the library does not
	// export the whole ffikit ABI.
	ErrMissingSymbol = errors.New("missing symbol")

	// ErrCallFailed is wrapped by the errors of calls reporting failure.
	ErrCallFailed = errors.New("call failed")
)

// Library represents an ffikit shared library loaded from the local
// filesystem. All its methods are serialized, so a Library can be shared
// between goroutines.
type Library struct {
	m      sync.Mutex
	path   string
	handle unsafe.Pointer
	api    *C.ffi_api
}

// Open loads the shared library at path and resolves every symbol of the
// ffikit ABI. It returns an error wrapping ErrMissingSymbol if the
// library does not export one of them.
func Open(path string) (*Library, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	handle := C.__open(cPath)
	if handle == nil {
		return nil, errors.Errorf("loading %s: %s", path, C.GoString(C.__dlerror()))
	}

	api := (*C.ffi_api)(C.malloc(C.sizeof_ffi_api))
	if missing := C.__load_api(handle, api); missing != nil {
		C.free(unsafe.Pointer(api))
		C.dlclose(handle)
		return nil, errors.Wrapf(ErrMissingSymbol, "loading %s: %s", path, C.GoString(missing))
	}

	l := &Library{path: path, handle: handle, api: api}
	logger := log.Default()
	logger.Debug().Str("path", path).Str("name", l.Name()).Str("version", l.Version()).Msg("library loaded")
	return l, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Close releases the library. Handles obtained from it must not be used
// afterwards. Closing an already closed Library is a no-op.
func (l *Library) Close() error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return nil
	}
	C.free(unsafe.Pointer(l.api))
	l.api = nil
	if C.dlclose(l.handle) != 0 {
		return errors.Errorf("closing %s: %s", l.path, C.GoString(C.__dlerror()))
	}
	return nil
}

func (l *Library) lastError() error {
	msg := C.GoString(C.__get_last_error(l.api))
	if len(msg) == 0 {
		return nil
	}
	return errors.New(msg)
}

func (l *Library) callError(symbol string) error {
	if err := l.lastError(); err != nil {
		return errors.Wrapf(ErrCallFailed, "%s: %s", symbol, err.Error())
	}
	return errors.Wrap(ErrCallFailed, symbol)
}

// ParseUint32 calls string_to_uint32.
func (l *Library) ParseUint32(s string) (uint32, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return 0, ErrClosed
	}
	cStr := C.CString(s)
	defer C.free(unsafe.Pointer(cStr))
	var res C.uint32_t
	if !C.__string_to_uint32(l.api, cStr, &res) {
		return 0, l.callError("string_to_uint32")
	}
	return uint32(res), nil
}

// ParseInt32 calls string_to_int32.
func (l *Library) ParseInt32(s string) (int32, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return 0, ErrClosed
	}
	cStr := C.CString(s)
	defer C.free(unsafe.Pointer(cStr))
	var res C.int32_t
	if !C.__string_to_int32(l.api, cStr, &res) {
		return 0, l.callError("string_to_int32")
	}
	return int32(res), nil
}

// Add calls add.
func (l *Library) Add(a, b int32) (int32, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return 0, ErrClosed
	}
	return int32(C.__add(l.api, C.int32_t(a), C.int32_t(b))), nil
}

// HelloWorld returns a copy of the text borrowed from get_helloWorld.
func (l *Library) HelloWorld() string {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return ""
	}
	return C.GoString(C.__get_hello_world(l.api))
}

// Name returns a copy of the text borrowed from ffi_get_name.
func (l *Library) Name() string {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return ""
	}
	return C.GoString(C.__get_name(l.api))
}

// Version returns a copy of the text borrowed from ffi_get_version.
func (l *Library) Version() string {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return ""
	}
	return C.GoString(C.__get_version(l.api))
}

// LastError returns the error reported by ffi_get_last_error, or nil if
// the last call succeeded.
func (l *Library) LastError() error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return ErrClosed
	}
	return l.lastError()
}

// Configure calls ffi_configure with a JSON configuration document.
func (l *Library) Configure(doc string) error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return ErrClosed
	}
	cDoc := C.CString(doc)
	defer C.free(unsafe.Pointer(cDoc))
	if !C.__configure(l.api, cDoc) {
		return l.callError("ffi_configure")
	}
	return nil
}

// PersonRef is a Person record owned by the library.
type PersonRef struct {
	lib *Library
	rec *C.Person
}

// CreatePerson calls create_person. The returned record must be released
// with Free.
func (l *Library) CreatePerson(id int32, name string) (*PersonRef, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return nil, ErrClosed
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	rec := C.__create_person(l.api, C.int(id), cName)
	if rec == nil {
		return nil, l.callError("create_person")
	}
	return &PersonRef{lib: l, rec: rec}, nil
}

// DeserializePerson calls deserialize_person. The returned record must
// be released with Free.
func (l *Library) DeserializePerson(text string) (*PersonRef, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return nil, ErrClosed
	}
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	rec := C.__deserialize_person(l.api, cText)
	if rec == nil {
		return nil, l.callError("deserialize_person")
	}
	return &PersonRef{lib: l, rec: rec}, nil
}

// Value reads the fields of the record. It returns the zero Person once
// the record has been freed.
func (p *PersonRef) Value() ffi.Person {
	p.lib.m.Lock()
	defer p.lib.m.Unlock()
	if p.rec == nil {
		return ffi.Person{}
	}
	return ffi.CPersonValue(unsafe.Pointer(p.rec))
}

// Serialize calls serialize_person and releases the returned text with
// free_string.
func (p *PersonRef) Serialize() (string, error) {
	l := p.lib
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return "", ErrClosed
	}
	text := C.__serialize_person(l.api, p.rec)
	if text == nil {
		return "", l.callError("serialize_person")
	}
	defer C.__free_string(l.api, text)
	return C.GoString(text), nil
}

// Free calls free_person. The record must not be used afterwards.
func (p *PersonRef) Free() {
	l := p.lib
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil || p.rec == nil {
		return
	}
	C.__free_person(l.api, p.rec)
	p.rec = nil
}

// IntSetRef is an integer set handle owned by the library.
type IntSetRef struct {
	lib    *Library
	handle C.uintptr_t
}

// NewIntSet calls int_set_new. The returned set must be released with
// Free.
func (l *Library) NewIntSet() (*IntSetRef, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.api == nil {
		return nil, ErrClosed
	}
	h := C.__int_set_new(l.api)
	if h == 0 {
		return nil, l.callError("int_set_new")
	}
	return &IntSetRef{lib: l, handle: h}, nil
}

// Insert calls int_set_insert.
func (s *IntSetRef) Insert(v uint64) {
	s.lib.m.Lock()
	defer s.lib.m.Unlock()
	if s.lib.api != nil {
		C.__int_set_insert(s.lib.api, s.handle, C.size_t(v))
	}
}

// Remove calls int_set_remove.
func (s *IntSetRef) Remove(v uint64) {
	s.lib.m.Lock()
	defer s.lib.m.Unlock()
	if s.lib.api != nil {
		C.__int_set_remove(s.lib.api, s.handle, C.size_t(v))
	}
}

// Contains calls int_set_contain.
func (s *IntSetRef) Contains(v uint64) bool {
	s.lib.m.Lock()
	defer s.lib.m.Unlock()
	if s.lib.api == nil {
		return false
	}
	return bool(C.__int_set_contain(s.lib.api, s.handle, C.size_t(v)))
}

// Len calls int_set_len.
func (s *IntSetRef) Len() uint64 {
	s.lib.m.Lock()
	defer s.lib.m.Unlock()
	if s.lib.api == nil {
		return 0
	}
	return uint64(C.__int_set_len(s.lib.api, s.handle))
}

// Free calls int_set_free. The set must not be used afterwards.
func (s *IntSetRef) Free() {
	s.lib.m.Lock()
	defer s.lib.m.Unlock()
	if s.lib.api == nil || s.handle == 0 {
		return
	}
	C.__int_set_free(s.lib.api, s.handle)
	s.handle = 0
}
