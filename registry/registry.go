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

// Package registry implements the scope: an insertion-ordered key→variant
// mapping plus the registration, propagation and path-addressed lookup
// algorithm.
//
// A scope is created once, at variant-declaration time, and mutated
// incrementally as descendants declare themselves. Scopes are not safe for
// concurrent mutation; all registration happens during initialization or
// under caller-side serialization.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/keyfmt"
)

// entry is one key binding: the registered variant and its lexical origin,
// kept for the reimport heuristic on later re-registrations.
type entry struct {
	value  any
	origin apis.Origin
}

// Registry is a single scope: an ordered mapping of keys to variants,
// owned configuration, an optional canonical name in its parent, and the
// structural ancestor links registrations propagate through.
type Registry struct {
	// cfg is this scope's own configuration (copied at creation).
	cfg apis.Config
	// name is this scope's canonical key in its parent, if any.
	name string
	// base marks a root scope that never receives propagated registrations.
	// The flag is set at creation and permanent.
	base bool
	// owner is the variant this scope belongs to. Relation only, not
	// ownership; rebound exactly once per legitimate reimport event.
	owner any
	// parents are the immediate structural ancestor scopes.
	parents []*Registry

	order   []string
	entries map[string]entry
}

// Ensure Registry implements the full mapping contract.
var _ apis.Container = (*Registry)(nil)

// ScopeOption configures a scope at creation time.
type ScopeOption func(*Registry)

// WithScopeName sets the scope's own canonical key in its parent.
func WithScopeName(name string) ScopeOption {
	return func(r *Registry) {
		r.name = name
	}
}

// WithParents attaches the immediate structural ancestor scopes.
// Nil entries are dropped.
func WithParents(parents ...*Registry) ScopeOption {
	return func(r *Registry) {
		for _, p := range parents {
			if p != nil {
				r.parents = append(r.parents, p)
			}
		}
	}
}

// AsBase marks the scope as a hierarchy root that must never receive
// registrations propagated from descendants. The flag is permanent.
func AsBase() ScopeOption {
	return func(r *Registry) {
		r.base = true
	}
}

// New constructs an empty scope owning cfg.
func New(cfg apis.Config, opts ...ScopeOption) *Registry {
	r := &Registry{
		cfg:     cfg,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the scope's configuration.
func (r *Registry) Config() apis.Config {
	return r.cfg
}

// Name returns the scope's canonical key in its parent ("" for roots).
func (r *Registry) Name() string {
	return r.name
}

// IsBase reports whether the scope is a propagation-terminal root.
func (r *Registry) IsBase() bool {
	return r.base
}

// Owner returns the variant this scope belongs to, or nil.
func (r *Registry) Owner() any {
	return r.owner
}

// BindOwner attaches (or, on a legitimate reimport, re-attaches) the
// owning variant. Rebinding to a different value rewrites every key that
// still points at the previous owner, transitively through the ancestor
// chain.
func (r *Registry) BindOwner(owner any, org apis.Origin) {
	if r.owner != nil && !same(r.owner, owner) {
		r.rereference(r.owner, owner, org, make(map[*Registry]bool))
	}
	r.owner = owner
}

// Get resolves key to a registered value. The key may address descendant
// scopes as a path: "." and "/" are interchangeable separators, each
// segment resolves one level deeper, and every intermediate value must
// itself expose the lookup contract. Each segment is folded to lower case
// unless the scope at that level is case-sensitive. The first unresolved
// segment fails with apis.ErrKeyNotFound.
func (r *Registry) Get(key string) (any, error) {
	head, rest := keyfmt.CutKey(key)
	k := head
	if !r.cfg.CaseSensitive {
		k = strings.ToLower(k)
	}
	e, ok := r.entries[k]
	if !ok {
		return nil, fmt.Errorf("arx(registry): key %q in scope %q: %w",
			head, r.name, apis.ErrKeyNotFound)
	}
	if rest == "" {
		return e.value, nil
	}
	g, ok := e.value.(apis.Getter)
	if !ok {
		return nil, fmt.Errorf("arx(registry): %q does not address a scope, cannot resolve %q: %w",
			head, rest, apis.ErrKeyNotFound)
	}
	return g.Get(rest)
}

// GetDefault resolves key, falling back to def on a miss. A string default
// is itself resolved as a key (recursively, path rules included); any other
// default is returned as-is.
func (r *Registry) GetDefault(key string, def any) (any, error) {
	v, err := r.Get(key)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, apis.ErrKeyNotFound) {
		return nil, err
	}
	if s, ok := def.(string); ok {
		return r.Get(s)
	}
	return def, nil
}

// Has reports whether key resolves in this scope (path rules apply).
func (r *Registry) Has(key string) bool {
	_, err := r.Get(key)
	return err == nil
}

// Len returns the number of keys registered in this scope.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keys returns the scope's keys in insertion order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Values returns the scope's values in insertion order.
func (r *Registry) Values() []any {
	values := make([]any, 0, len(r.order))
	for _, k := range r.order {
		values = append(values, r.entries[k].value)
	}
	return values
}

// Items returns the scope's key/value pairs in insertion order.
func (r *Registry) Items() []apis.Item {
	items := make([]apis.Item, 0, len(r.order))
	for _, k := range r.order {
		items = append(items, apis.Item{Key: k, Value: r.entries[k].value})
	}
	return items
}

// Clear empties the mapping. The scope keeps its identity: name,
// configuration, base flag, owner and ancestry are preserved.
func (r *Registry) Clear() {
	r.order = nil
	r.entries = make(map[string]entry)
}

// set writes one key binding, maintaining insertion order.
func (r *Registry) set(key string, e entry) {
	if _, ok := r.entries[key]; !ok {
		r.order = append(r.order, key)
	}
	r.entries[key] = e
}

// rereference rewrites every key currently bound to old so it binds to
// repl, here and transitively in every non-base ancestor scope. A scope
// whose owner is old is rebound as well. The seen set guards against
// revisiting a scope through converging ancestor chains.
func (r *Registry) rereference(old, repl any, org apis.Origin, seen map[*Registry]bool) {
	if r == nil || seen[r] {
		return
	}
	seen[r] = true

	for k, e := range r.entries {
		if same(e.value, old) {
			r.entries[k] = entry{value: repl, origin: org}
		}
	}
	if r.owner != nil && same(r.owner, old) {
		r.owner = repl
	}
	for _, p := range r.parents {
		if p == nil || p.base {
			continue
		}
		p.rereference(old, repl, org, seen)
	}
}
