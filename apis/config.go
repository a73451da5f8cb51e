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

import "regexp"

// Config carries the per-scope naming and collision knobs.
//
// A Config is owned by exactly one scope. Scopes created under an existing
// scope receive a copy of the nearest ancestor's Config (never a shared
// reference) and then apply their own overrides. Config is passed by value
// and must be treated as immutable by implementations; the Pattern and
// Transform fields are references, but both are immutable once set.
type Config struct {
	// CaseSensitive disables the final lower-case fold in key formatting
	// and the per-segment fold during lookup.
	CaseSensitive bool

	// Prefix, when non-empty, requires every derived name to start with it.
	// StripPrefix removes the prefix from the resulting key.
	Prefix      string
	StripPrefix bool

	// Suffix, when non-empty, requires every derived name to end with it.
	// StripSuffix removes the suffix from the resulting key.
	Suffix      string
	StripSuffix bool

	// Pattern, when non-nil, must match the raw identifier before any other
	// formatting step runs.
	Pattern *regexp.Regexp

	// SnakeCase converts PascalCase/camelCase identifiers to snake_case.
	SnakeCase bool

	// Hyphen converts underscores to hyphens (applied after SnakeCase).
	Hyphen bool

	// Transform is an arbitrary user hook applied after all built-in
	// formatting steps and before the case fold. Nil means no-op.
	Transform func(string) string

	// RegisterSelf writes a scope's own variant into its own mapping.
	// Without it the variant is still propagated to ancestors, but the
	// scope does not list itself.
	RegisterSelf bool

	// Recursive forwards registrations beyond the immediate ancestor hop.
	// Forwarding from a scope to its ancestor requires Recursive on both.
	Recursive bool

	// Overwrite permits re-registration of an existing key with a new value.
	Overwrite bool

	// Redirect controls how a variant that defines its own container-style
	// methods is resolved: when set, scope-level access dispatches to the
	// scope's implementation while instance-level access keeps the variant's
	// own. See hierarchy.Handle.
	Redirect bool
}
