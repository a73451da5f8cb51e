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

package apis

// Kind is the broad classification of a registered variant.
type Kind int

const (
	// KindUnknown marks an origin whose classification failed.
	KindUnknown Kind = iota
	// KindType is a type-definition variant (struct, named type).
	KindType
	// KindCallable is a function or method variant.
	KindCallable
)

// String returns the lower-case kind label.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

// Origin describes the lexical identity of a variant definition. It is the
// input to the reimport heuristic: two origins that agree on kind, simple
// name, qualified path and source file, but disagree on module identity,
// denote one logical definition executed twice (a reimport) rather than a
// genuine naming collision.
type Origin struct {
	// Kind is the broad classification (type vs callable).
	Kind Kind

	// Name is the simple identifier, e.g. "SurfingPikachu".
	Name string

	// QualPath is the fully-qualified lexical path of the definition,
	// e.g. "example.org/pokedex.SurfingPikachu". It disambiguates
	// same-named siblings declared in different enclosing scopes.
	QualPath string

	// Module identifies the enclosing compilation/load unit the definition
	// was produced by. Two definitions from the same Module are always
	// distinct definitions, never a reimport.
	Module string

	// File is the canonicalized source-file path of the definition, or ""
	// when no source origin is resolvable. An unresolvable File on either
	// side fails safe to "not a reimport".
	File string
}

// Zero reports whether o carries no identity at all.
func (o Origin) Zero() bool {
	return o.Kind == KindUnknown && o.Name == "" && o.QualPath == "" &&
		o.Module == "" && o.File == ""
}

// Named identifies a variant by a stable simple name. When a value
// implements Named, identity derivation prefers it over reflection.
// The returned name must be non-empty, deterministic for the concrete
// type, and independent of mutable instance state.
type Named interface {
	// VariantName returns the simple identifier for this variant.
	VariantName() string
}

// Originator supplies a complete, caller-defined Origin for a variant.
// It takes precedence over every derivation strategy, including Named.
// Typical producers are build-time scanners that know the true source
// location of a definition.
type Originator interface {
	// VariantOrigin returns the full lexical identity of this variant.
	VariantOrigin() Origin
}
