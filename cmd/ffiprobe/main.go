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

// Command ffiprobe loads an ffikit shared library and calls into it from the
// command line.
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ffikit/ffi-sdk-go/pkg/config"
	"github.com/ffikit/ffi-sdk-go/pkg/loader"
	"github.com/ffikit/ffi-sdk-go/pkg/log"
)

func main() {
	impl(os.Args[1:], os.Stdout, os.Stderr, os.Exit)
}

func impl(args []string, out, errs io.Writer, exit func(int)) {
	app := kingpin.New("ffiprobe", "Calls into an ffikit shared library.")
	app.ErrorWriter(errs)
	app.UsageWriter(errs)
	app.Terminate(exit)

	libPath := app.Flag("lib", "Path to the shared library to load.").Envar("FFIKIT_LIB").Required().String()
	cfgPath := app.Flag("config", "JSON or YAML configuration file passed to the library.").PlaceHolder("FILE").String()
	logLevel := app.Flag("log-level", "Log level of the probe itself.").Default("info").Enum("debug", "info", "warn", "error", "disabled")

	var lib *loader.Library
	app.Action(func(_ *kingpin.ParseContext) error {
		return log.SetGlobalLevelFromString(*logLevel)
	})

	getLib := func() (*loader.Library, error) {
		if lib != nil {
			return lib, nil
		}
		l, err := loader.Open(*libPath)
		if err != nil {
			return nil, err
		}
		if *cfgPath != "" {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				l.Close()
				return nil, err
			}
			if err := l.Configure(cfg.JSON()); err != nil {
				l.Close()
				return nil, err
			}
		}
		lg := log.Default()
		lg.Debug().Str("path", l.Path()).Msg("library loaded")
		lib = l
		return lib, nil
	}

	hello(app, getLib, out)
	version(app, getLib, out)
	parseU32(app, getLib, out)
	parseI32(app, getLib, out)
	add(app, getLib, out)
	person(app, getLib, out)
	intset(app, getLib, out)

	if len(args) == 0 {
		app.Usage(args)
		return
	}

	_, err := app.Parse(signedOperands(args))
	if lib != nil {
		lib.Close()
	}
	if err != nil {
		fmt.Fprintln(errs, err.Error())
		exit(1)
	}
}

// commands whose operands may be negative numbers
var signedCommands = map[string]bool{
	"parse-u32": true,
	"parse-i32": true,
	"add":       true,
}

// signedOperands ends flag parsing before the first negative number
// following a command of signedCommands, so that "add -1 2" is not read
// as a short flag.
func signedOperands(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !signedCommands[arg] {
			continue
		}
		for j := i + 1; j < len(args); j++ {
			switch {
			case args[j] == "--":
				return args
			case negativeNumber.MatchString(args[j]):
				fixed := make([]string, 0, len(args)+1)
				fixed = append(fixed, args[:j]...)
				fixed = append(fixed, "--")
				return append(fixed, args[j:]...)
			}
		}
		return args
	}
	return args
}

var negativeNumber = regexp.MustCompile(`^-[0-9]`)

type glib func() (*loader.Library, error)

func hello(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("hello", "Print the library's greeting.")
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, l.HelloWorld())
		return nil
	})
}

func version(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("version", "Print the library's name and version.")
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", l.Name(), l.Version())
		return nil
	})
}

func parseU32(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("parse-u32", "Parse decimal text as an unsigned 32-bit integer.")
	text := kc.Arg("text", "Text to parse.").Required().String()
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		v, err := l.ParseUint32(*text)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	})
}

func parseI32(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("parse-i32", "Parse decimal text as a signed 32-bit integer.")
	text := kc.Arg("text", "Text to parse, may be negative.").Required().String()
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		v, err := l.ParseInt32(*text)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	})
}

func add(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("add", "Add two signed 32-bit integers. Negative operands are accepted as is.")
	a := kc.Arg("a", "First operand.").Required().Int32()
	b := kc.Arg("b", "Second operand.").Required().Int32()
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		v, err := l.Add(*a, *b)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	})
}

func person(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("person", "Create a person record and print its serialized form.")
	id := kc.Flag("id", "Numeric id.").Required().Int32()
	name := kc.Flag("name", "Display name.").Required().String()
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		p, err := l.CreatePerson(*id, *name)
		if err != nil {
			return err
		}
		defer p.Free()
		s, err := p.Serialize()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
		return nil
	})
}

func intset(parent *kingpin.Application, gl glib, out io.Writer) {
	kc := parent.Command("intset", "Build an integer set and query membership.")
	ins := kc.Flag("insert", "Value to insert. Repeatable.").Uint64List()
	rem := kc.Flag("remove", "Value to remove after all inserts. Repeatable.").Uint64List()
	query := kc.Arg("query", "Values to look up.").Required().Uint64List()
	kc.Action(func(_ *kingpin.ParseContext) error {
		l, err := gl()
		if err != nil {
			return err
		}
		s, err := l.NewIntSet()
		if err != nil {
			return err
		}
		defer s.Free()
		for _, v := range *ins {
			s.Insert(v)
		}
		for _, v := range *rem {
			s.Remove(v)
		}
		for _, v := range *query {
			fmt.Fprintf(out, "%d %t\n", v, s.Contains(v))
		}
		fmt.Fprintf(out, "len %d\n", s.Len())
		return nil
	})
}
