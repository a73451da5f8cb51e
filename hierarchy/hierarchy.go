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

// Package hierarchy wires a scope into a variant's structural ancestor
// chain at declaration time.
//
// Bind is the explicit Go rendition of an implicit "new subclass declared"
// hook: each variant declaration calls Bind once, passing the scopes of its
// immediate structural ancestors. Bind inherits configuration by copy from
// the nearest ancestor, derives the variant's canonical name under that
// inherited (pre-override) configuration, builds the variant's own scope,
// and performs the initial root registration hop.
package hierarchy

import (
	"fmt"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/config"
	"dirpx.dev/arx/keyfmt"
	"dirpx.dev/arx/origin"
	"dirpx.dev/arx/registry"
)

// options collects per-declaration parameters.
type options struct {
	name      string
	aliases   []string
	skip      bool
	base      bool
	scope     *registry.Registry
	overrides []config.Option
	origin    apis.Origin
	hasOrigin bool
}

// Option configures a single Bind call.
type Option func(*options)

// WithName registers the variant under the given explicit name, skipping
// derivation and formatting.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithAliases additionally registers the variant under these keys.
func WithAliases(aliases ...string) Option {
	return func(o *options) {
		o.aliases = append(o.aliases, aliases...)
	}
}

// Skip builds the scope without registering the variant anywhere.
func Skip() Option {
	return func(o *options) {
		o.skip = true
	}
}

// Base marks the new scope as a hierarchy root that never receives
// registrations propagated from descendants. The flag is permanent.
func Base() Option {
	return func(o *options) {
		o.base = true
	}
}

// WithScope reuses a pre-built scope instead of creating one. This is the
// reconstruction path: when an external framework rebuilds a variant that
// already carries its scope, the scope is kept, its owner is rebound, and
// no re-registration happens.
func WithScope(scope *registry.Registry) Option {
	return func(o *options) {
		o.scope = scope
	}
}

// WithConfig applies configuration overrides to the inherited copy. The
// variant's own name is derived before overrides apply: a variant's name is
// governed by its parent's rules, not its own.
func WithConfig(opts ...config.Option) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, opts...)
	}
}

// WithOrigin overrides the derived lexical identity of the variant.
func WithOrigin(org apis.Origin) Option {
	return func(o *options) {
		o.origin = org
		o.hasOrigin = true
	}
}

// Bind declares a variant: it creates (or reuses) the variant's scope,
// wires it under the scopes of the variant's immediate structural
// ancestors, and registers the variant with a root propagation hop.
//
// parents lists the ancestor scopes in declaration order; the first non-nil
// entry is the nearest ancestor whose configuration is inherited by copy.
// A variant with no parents at all starts a fresh default configuration
// (the first variant of a hierarchy). A variant whose parents are all nil
// is an engine wiring bug and fails with apis.ErrInternal.
func Bind(owner any, parents []*registry.Registry, opts ...Option) (*Handle, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	org := o.origin
	var derr error
	if !o.hasOrigin {
		org, derr = origin.Describe(owner)
	}

	// Reconstruction: keep the scope, rebind the owner, do not re-register.
	if o.scope != nil {
		o.scope.BindOwner(owner, org)
		return &Handle{owner: owner, scope: o.scope}, nil
	}

	inherited, err := inheritConfig(parents)
	if err != nil {
		return nil, err
	}

	// The variant's own name is subject to the parent's configuration.
	name := o.name
	if name == "" {
		if derr != nil {
			return nil, derr
		}
		name, err = keyfmt.Format(org.Name, inherited)
		if err != nil {
			return nil, err
		}
	} else if err := keyfmt.ValidateKey(name); err != nil {
		return nil, err
	}

	// Only now does the declaration's own configuration take effect.
	cfg := inherited
	for _, opt := range o.overrides {
		opt(&cfg)
	}

	sopts := []registry.ScopeOption{
		registry.WithScopeName(name),
		registry.WithParents(parents...),
	}
	if o.base {
		sopts = append(sopts, registry.AsBase())
	}
	scope := registry.New(cfg, sopts...)
	scope.BindOwner(owner, org)

	if !o.skip {
		err := scope.Register(owner,
			registry.WithName(name),
			registry.WithAliases(o.aliases...),
			registry.WithOrigin(org),
			registry.AsRoot(),
		)
		if err != nil {
			return nil, err
		}
	}
	return &Handle{owner: owner, scope: scope}, nil
}

// inheritConfig copies the nearest ancestor configuration.
func inheritConfig(parents []*registry.Registry) (apis.Config, error) {
	if len(parents) == 0 {
		return config.DefaultConfig(), nil
	}
	for _, p := range parents {
		if p != nil {
			return config.Copy(p.Config()), nil
		}
	}
	return apis.Config{}, fmt.Errorf(
		"arx(hierarchy): no ancestor configuration found for a non-root variant: %w",
		apis.ErrInternal)
}
