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

// Getter is the minimal lookup contract. Path-addressed lookup ("a.b" or
// "a/b") resolves one segment per level and requires every intermediate
// value to implement Getter itself.
type Getter interface {
	// Get resolves key (possibly a "."/"/"-separated path) to a value.
	// A miss is reported by wrapping ErrKeyNotFound.
	Get(key string) (any, error)
}

// Container is the full mapping contract every scope exposes: ordered,
// string-keyed access to registered variants. Iteration order is insertion
// order. Implementations are not safe for concurrent mutation; callers
// serialize writes.
type Container interface {
	Getter

	// Len returns the number of keys in this scope.
	Len() int
	// Has reports whether key resolves in this scope (path rules apply).
	Has(key string) bool
	// Keys returns the keys in insertion order.
	Keys() []string
	// Values returns the values in insertion order.
	Values() []any
	// Items returns key/value pairs in insertion order.
	Items() []Item
	// GetDefault resolves key, falling back to def on a miss. A string
	// default is itself resolved as a key; any other default is returned
	// as-is.
	GetDefault(key string, def any) (any, error)
	// Clear empties the mapping while preserving the scope's identity,
	// configuration and ancestry.
	Clear()
}

// Item is a single key/value pair in a scope snapshot.
type Item struct {
	// Key is the registered key (canonical or alias).
	Key string
	// Value is the registered variant.
	Value any
}
