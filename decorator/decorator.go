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

// Package decorator provides the standalone scope: a registry usable
// without any variant hierarchy, driven directly from call sites.
//
// It supports direct registration, parametrized (pending-value)
// registration, bulk construction from an initial collection, and
// traversal of explicit namespace manifests.
package decorator

import (
	"fmt"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/config"
	"dirpx.dev/arx/registry"
)

// Registry is a standalone scope with its own configuration and no
// structural ancestors.
type Registry struct {
	scope *registry.Registry
}

// Ensure the standalone scope exposes the full mapping contract.
var _ apis.Container = (*Registry)(nil)

// New constructs an empty standalone scope from the given options.
func New(opts ...config.Option) *Registry {
	return &Registry{scope: registry.New(config.NewConfig(opts...))}
}

// NewFrom constructs a scope pre-populated from an initial collection.
// Values register in order under their derived names; namespace values
// traverse per RegisterNamespace.
func NewFrom(values []any, opts ...config.Option) (*Registry, error) {
	d := New(opts...)
	for _, v := range values {
		if err := d.Register(v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Register stores v under its derived name. A *Namespace value is
// traversed instead: every non-private entry registers individually.
func (d *Registry) Register(v any) error {
	if ns, ok := v.(*Namespace); ok {
		return d.RegisterNamespace(ns)
	}
	return d.scope.Register(v)
}

// RegisterNamed stores v under the given explicit name plus aliases.
// Namespace targets reject aliases with apis.ErrModuleAlias; the name is
// ignored for them, since traversal registers the namespace's entries, not
// the namespace itself.
func (d *Registry) RegisterNamed(v any, name string, aliases ...string) error {
	if ns, ok := v.(*Namespace); ok {
		if len(aliases) > 0 {
			return fmt.Errorf("arx(decorator): namespace %q: %w", ns.Name, apis.ErrModuleAlias)
		}
		return d.RegisterNamespace(ns)
	}
	return d.scope.Register(v,
		registry.WithName(name),
		registry.WithAliases(aliases...),
	)
}

// Registrar returns a pending-value registration: the name and aliases are
// fixed now, the value is supplied later. The parametrized counterpart of
// RegisterNamed.
func (d *Registry) Registrar(name string, aliases ...string) func(any) error {
	return func(v any) error {
		return d.RegisterNamed(v, name, aliases...)
	}
}

// Scope exposes the underlying scope, mainly so a standalone registry can
// serve as a structural ancestor for hierarchy declarations.
func (d *Registry) Scope() *registry.Registry {
	return d.scope
}

// Config returns the scope's configuration.
func (d *Registry) Config() apis.Config {
	return d.scope.Config()
}

// Get resolves key, with path addressing into nested scopes.
func (d *Registry) Get(key string) (any, error) {
	return d.scope.Get(key)
}

// GetDefault resolves key, falling back to def on a miss. A string default
// is itself resolved as a key.
func (d *Registry) GetDefault(key string, def any) (any, error) {
	return d.scope.GetDefault(key, def)
}

// Has reports whether key resolves.
func (d *Registry) Has(key string) bool {
	return d.scope.Has(key)
}

// Len returns the number of registered keys.
func (d *Registry) Len() int {
	return d.scope.Len()
}

// Keys returns the keys in insertion order.
func (d *Registry) Keys() []string {
	return d.scope.Keys()
}

// Values returns the values in insertion order.
func (d *Registry) Values() []any {
	return d.scope.Values()
}

// Items returns key/value pairs in insertion order.
func (d *Registry) Items() []apis.Item {
	return d.scope.Items()
}

// Clear empties the scope while preserving its configuration.
func (d *Registry) Clear() {
	d.scope.Clear()
}
