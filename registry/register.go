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

package registry

import (
	"fmt"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/keyfmt"
	"dirpx.dev/arx/origin"
	"dirpx.dev/arx/reimport"
)

// regOpts collects per-registration parameters.
type regOpts struct {
	name      string
	aliases   []string
	origin    apis.Origin
	hasOrigin bool
	root      bool
}

// Option configures a single Register call.
type Option func(*regOpts)

// WithName registers under the given explicit key, skipping name
// derivation and formatting. Explicit names must not contain the reserved
// path separators. An empty name means "derive".
func WithName(name string) Option {
	return func(o *regOpts) {
		o.name = name
	}
}

// WithAliases additionally registers the value under these keys. Aliases
// are not subject to the formatting rules, only to the path-separator
// restriction.
func WithAliases(aliases ...string) Option {
	return func(o *regOpts) {
		o.aliases = append(o.aliases, aliases...)
	}
}

// WithOrigin overrides the derived lexical identity of the value. This is
// how callers without runtime-resolvable source information (notably type
// definitions loaded more than once) make the reimport heuristic work.
func WithOrigin(org apis.Origin) Option {
	return func(o *regOpts) {
		o.origin = org
		o.hasOrigin = true
	}
}

// AsRoot marks the initial declaration hop: propagation to the immediate
// ancestors happens unconditionally, regardless of the recursive setting
// on either side. Used by the hierarchy binder.
func AsRoot() Option {
	return func(o *regOpts) {
		o.root = true
	}
}

// Register stores v in the scope, subject to configuration.
//
// The canonical key is the explicit name when given, otherwise it is
// derived from the value's own identifier and formatted under this scope's
// configuration. Aliases are added verbatim; the canonical key joins the
// alias set so canonical and alias registration share one write path.
//
// Collision policy, per key: an existing binding to the identical value is
// idempotent; Overwrite permits any rebinding; a reimport-equivalent
// candidate (same logical definition re-executed under a different module
// identity) rewrites every key bound to the superseded value, transitively
// through the ancestor chain; anything else fails with apis.ErrKeyCollision
// before any write happens.
//
// The scope's own variant is written only when RegisterSelf is set, but it
// propagates to ancestors either way. Propagation visits each non-base
// immediate ancestor when this is the root declaration hop, or when both
// this scope and that ancestor are recursive; each ancestor re-applies its
// own policy independently.
func (r *Registry) Register(v any, opts ...Option) error {
	var o regOpts
	for _, opt := range opts {
		opt(&o)
	}

	// Identity first: even explicitly named registrations keep their
	// origin for future reimport checks.
	org := o.origin
	var derr error
	if !o.hasOrigin {
		org, derr = origin.Describe(v)
	}

	// Resolve the canonical key.
	name := o.name
	if name == "" {
		if derr != nil {
			return derr
		}
		var err error
		name, err = keyfmt.Format(org.Name, r.cfg)
		if err != nil {
			return err
		}
	} else if err := keyfmt.ValidateKey(name); err != nil {
		return err
	}

	// Normalize aliases and fold the canonical key into the write set.
	seen := make(map[string]struct{}, len(o.aliases)+1)
	for _, a := range o.aliases {
		if err := keyfmt.ValidateKey(a); err != nil {
			return err
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("arx(registry): duplicate alias %q: %w", a, apis.ErrKeyCollision)
		}
		seen[a] = struct{}{}
	}
	keys := o.aliases
	if _, ok := seen[name]; !ok {
		keys = append([]string{name}, o.aliases...)
	}

	// Validate every key before writing any.
	var superseded []any
	for _, k := range keys {
		ex, ok := r.entries[k]
		if !ok {
			continue
		}
		switch {
		case same(ex.value, v):
			// Idempotent re-registration of the identical value.
		case r.cfg.Overwrite:
		case reimport.Equivalent(ex.origin, org):
			superseded = appendDistinct(superseded, ex.value)
		default:
			return fmt.Errorf("arx(registry): key %q already registered in scope %q: %w",
				k, r.name, apis.ErrKeyCollision)
		}
	}

	// Reimport update: rewrite every key bound to a superseded value, here
	// and transitively in the ancestor chain, before the regular writes.
	for _, old := range superseded {
		r.rereference(old, v, org, make(map[*Registry]bool))
	}

	// Self-registration is conditional; propagation below is not.
	if !same(v, r.owner) || r.cfg.RegisterSelf {
		for _, k := range keys {
			r.set(k, entry{value: v, origin: org})
		}
	}

	if o.root || r.cfg.Recursive {
		for _, p := range r.parents {
			if p == nil || p.base {
				continue
			}
			if !o.root && !p.cfg.Recursive {
				continue
			}
			err := p.Register(v,
				WithName(name),
				WithAliases(o.aliases...),
				WithOrigin(org),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// appendDistinct adds v to vals unless an identical value is present.
func appendDistinct(vals []any, v any) []any {
	for _, x := range vals {
		if same(x, v) {
			return vals
		}
	}
	return append(vals, v)
}
