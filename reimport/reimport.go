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

// Package reimport decides whether two same-named registration candidates
// are one logical definition executed twice (a hot-reload style reimport)
// rather than a genuine naming collision.
package reimport

import "dirpx.dev/arx/apis"

// Equivalent reports whether the candidate described by next is a reimport
// of the definition described by prev. All conditions must hold, evaluated
// in order with short-circuit to false:
//
//	a. same broad kind (never cross-kind),
//	b. identical simple identifier,
//	c. identical fully-qualified lexical path,
//	d. different enclosing-module identity (the same module means two
//	   distinct definitions in one execution pass, a genuine collision),
//	e. both sides have a resolvable source-file origin and the
//	   canonicalized origins are identical.
//
// Definition line numbers are deliberately not part of the comparison so
// that source edits shifting positions across reloads stay equivalent.
// An unresolvable File on either side fails safe to "not a reimport".
func Equivalent(prev, next apis.Origin) bool {
	if prev.Kind == apis.KindUnknown || prev.Kind != next.Kind {
		return false
	}
	if prev.Name == "" || prev.Name != next.Name {
		return false
	}
	if prev.QualPath != next.QualPath {
		return false
	}
	if prev.Module == next.Module {
		return false
	}
	if prev.File == "" || next.File == "" {
		return false
	}
	return prev.File == next.File
}
