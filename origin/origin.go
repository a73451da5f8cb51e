/*
   Copyright 2025 The DIRPX Authors.

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

// Package origin derives the lexical identity of a variant: its kind,
// simple name, qualified path, enclosing module and source file.
//
// Describe tries a fixed chain of strategies in priority order:
//
//  1. apis.Originator — the value supplies its complete Origin.
//  2. apis.Named — the value supplies its simple name; the rest is
//     derived by reflection.
//  3. Callables — runtime symbol information (qualified name and source
//     file of the function definition).
//  4. Types — reflection over the nearest named type after pointer
//     unwrapping.
//
// Source files are only resolvable for callables; type origins carry an
// empty File unless supplied explicitly, which fails safe in the reimport
// heuristic.
package origin

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/arx/apis"
)

// maxUnwrap bounds pointer unwrapping when searching for the nearest named
// type, guarding against pathological nesting.
const maxUnwrap = 8

// Describe resolves the identity of v. The returned Origin always carries
// the best-effort Kind; the error (wrapping apis.ErrCannotDeriveName) is
// set when no simple name could be derived. Callers that received an
// explicit name may ignore the error and keep the partial Origin.
func Describe(v any) (apis.Origin, error) {
	if v == nil {
		return apis.Origin{}, fmt.Errorf("arx(origin): nil value: %w", apis.ErrCannotDeriveName)
	}

	if o, ok := v.(apis.Originator); ok {
		if org := o.VariantOrigin(); !org.Zero() {
			return org, nil
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return describeFunc(v, rv)
	}
	return describeType(v, rv.Type())
}

// describeFunc resolves identity from runtime symbol information.
func describeFunc(v any, rv reflect.Value) (apis.Origin, error) {
	org := apis.Origin{Kind: apis.KindCallable}

	fn := runtime.FuncForPC(rv.Pointer())
	if fn != nil {
		qual := fn.Name()
		org.QualPath = qual
		org.Name = simpleFuncName(qual)
		org.Module = funcModule(qual)
		if file, _ := fn.FileLine(fn.Entry()); file != "" {
			org.File = filepath.Clean(file)
		}
	}
	if n, ok := v.(apis.Named); ok {
		org.Name = n.VariantName()
	}
	if org.Name == "" {
		return org, fmt.Errorf("arx(origin): no symbol for callable: %w", apis.ErrCannotDeriveName)
	}
	return org, nil
}

// describeType resolves identity from the nearest named type.
func describeType(v any, t reflect.Type) (apis.Origin, error) {
	org := apis.Origin{Kind: apis.KindType}

	// Unwrap pointers to the nearest named type.
	for i := 0; t != nil && t.Kind() == reflect.Ptr && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	if t != nil && t.Name() != "" {
		name := stripTypeParams(t.Name())
		org.Name = name
		org.Module = t.PkgPath()
		if org.Module != "" {
			org.QualPath = org.Module + "." + name
		} else {
			org.QualPath = name
		}
	}
	if n, ok := v.(apis.Named); ok {
		org.Name = n.VariantName()
	}
	if org.Name == "" {
		return org, fmt.Errorf("arx(origin): cannot derive name from a bare %T: %w",
			v, apis.ErrCannotDeriveName)
	}
	return org, nil
}

// simpleFuncName extracts the trailing identifier from a runtime symbol
// name: "example.org/pkg.Handler" -> "Handler", "pkg.(*T).M-fm" -> "M".
func simpleFuncName(qual string) string {
	name := qual
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	return name
}

// funcModule extracts the package import path from a runtime symbol name:
// "example.org/pkg.Handler" -> "example.org/pkg".
func funcModule(qual string) string {
	slash := strings.LastIndexByte(qual, '/')
	dot := strings.IndexByte(qual[slash+1:], '.')
	if dot < 0 {
		return ""
	}
	return qual[:slash+1+dot]
}

// stripTypeParams removes generic type instantiation suffix: "T[int]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
