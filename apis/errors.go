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

import "errors"

// The arx error taxonomy. Every failure surfaced by the engine wraps one of
// these sentinels, so callers classify with errors.Is regardless of which
// package produced the error. All failures are immediate and synchronous at
// the violating call site; nothing is retried internally.
var (
	// ErrInvalidName is returned when a raw identifier, explicit name or
	// alias fails a formatting rule (pattern, prefix, suffix, or the
	// reserved "." and "/" path separators).
	ErrInvalidName = errors.New("arx: invalid name")

	// ErrCannotDeriveName is returned when no explicit name is supplied and
	// the value exposes no identifier to derive one from.
	ErrCannotDeriveName = errors.New("arx: cannot derive name")

	// ErrKeyCollision is returned when a key is already registered, the
	// scope does not permit overwriting, and the candidates are not
	// reimport-equivalent.
	ErrKeyCollision = errors.New("arx: key collision")

	// ErrKeyNotFound is the lookup miss signal. It is not part of the
	// registration failure taxonomy and supports default-value fallback.
	ErrKeyNotFound = errors.New("arx: key not found")

	// ErrCannotRegisterBuiltin is returned when a namespace traversal
	// target has no resolvable origin path.
	ErrCannotRegisterBuiltin = errors.New("arx: cannot register namespace without origin")

	// ErrModuleAlias is returned when aliases accompany a namespace target.
	ErrModuleAlias = errors.New("arx: aliases not allowed for namespace targets")

	// ErrInternal indicates an engine invariant violation (for example, a
	// non-root variant without any ancestor configuration). It is a bug in
	// the engine or its wiring, never an expected outcome.
	ErrInternal = errors.New("arx: internal error")
)
