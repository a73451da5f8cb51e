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

package arx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/arx/config"
	"dirpx.dev/arx/decorator"
)

// init publishes the initial default scope.
func init() {
	def.Store(decorator.New())
}

// swapMu serializes writers (SetDefault/Reset) so a replacement never
// interleaves with another. Readers load the pointer atomically and never
// take the lock.
var swapMu sync.Mutex

// def is the process-global default scope.
var def atomic.Pointer[decorator.Registry]

// New constructs a fresh standalone scope from the given options. It is
// the package-level spelling of decorator.New.
func New(opts ...config.Option) *decorator.Registry {
	return decorator.New(opts...)
}

// Default returns the process-global default scope. The returned scope is
// the live instance: registrations through it are visible to every caller
// of Default until the scope is replaced.
func Default() *decorator.Registry {
	return def.Load()
}

// SetDefault replaces the process-global default scope. A nil scope is
// ignored.
func SetDefault(d *decorator.Registry) {
	if d == nil {
		return
	}
	swapMu.Lock()
	defer swapMu.Unlock()
	def.Store(d)
}

// Reset discards the default scope and publishes a fresh one built from
// the given options. Mainly used by tests to get deterministic state.
func Reset(opts ...config.Option) *decorator.Registry {
	swapMu.Lock()
	defer swapMu.Unlock()
	d := decorator.New(opts...)
	def.Store(d)
	return d
}

// Register stores v in the default scope under its derived name.
// This is a convenience wrapper around Default().
func Register(v any) error {
	return Default().Register(v)
}

// RegisterNamed stores v in the default scope under an explicit name plus
// aliases. This is a convenience wrapper around Default().
func RegisterNamed(v any, name string, aliases ...string) error {
	return Default().RegisterNamed(v, name, aliases...)
}

// Get resolves key in the default scope, with path addressing.
// This is a convenience wrapper around Default().
func Get(key string) (any, error) {
	return Default().Get(key)
}

// Has reports whether key resolves in the default scope.
// This is a convenience wrapper around Default().
func Has(key string) bool {
	return Default().Has(key)
}
