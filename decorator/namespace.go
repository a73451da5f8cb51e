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

package decorator

import (
	"fmt"
	"path/filepath"
	"strings"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/config"
	"dirpx.dev/arx/registry"
)

// Namespace is an explicit manifest of registrable members: the Go
// rendition of walking a loaded module. There is no runtime reflection
// over arbitrary namespaces here; candidates are enumerated explicitly,
// each namespace with an explicit origin path, typically emitted by a
// build-time scan (see LoadManifest).
type Namespace struct {
	// Name is the namespace's own identifier.
	Name string
	// Origin is the namespace's source path. Empty means unresolvable
	// (a builtin-like namespace), which cannot be registered at the top
	// level and is silently skipped when nested.
	Origin string
	// Entries lists the namespace members in declaration order.
	Entries []Entry
}

// Entry is one namespace member. A Value of type *Namespace denotes a
// nested namespace.
type Entry struct {
	// Name is the member's identifier. Names with a "_" prefix are
	// private and skipped by traversal.
	Name string
	// Value is the member itself.
	Value any
}

// RegisterNamespace registers every non-private entry of ns under its
// entry name.
//
// A nested namespace is traversed only when this scope is recursive and
// the nested origin is a sub-path of ns's origin — traversal never escapes
// into unrelated external namespaces. A qualifying nested namespace gets
// its own child scope inheriting this scope's configuration, registered
// under the entry name, which makes its members reachable through path
// addressing ("parent.child.member").
func (d *Registry) RegisterNamespace(ns *Namespace) error {
	if ns == nil || ns.Origin == "" {
		return fmt.Errorf("arx(decorator): namespace has no resolvable origin: %w",
			apis.ErrCannotRegisterBuiltin)
	}
	base := filepath.Clean(ns.Origin)

	for _, e := range ns.Entries {
		if strings.HasPrefix(e.Name, "_") {
			continue
		}

		child, nested := e.Value.(*Namespace)
		if !nested {
			if err := d.scope.Register(e.Value, registry.WithName(e.Name)); err != nil {
				return err
			}
			continue
		}

		if !d.scope.Config().Recursive {
			continue
		}
		if child.Origin == "" {
			// Builtin-like nested namespace.
			continue
		}
		if !isSubPath(base, filepath.Clean(child.Origin)) {
			// Only traverse direct sub-namespaces.
			continue
		}

		sub := &Registry{scope: registry.New(config.Copy(d.scope.Config()))}
		if err := sub.RegisterNamespace(child); err != nil {
			return err
		}
		if err := d.scope.Register(sub, registry.WithName(e.Name)); err != nil {
			return err
		}
	}
	return nil
}

// isSubPath reports whether child equals parent or lives below it.
func isSubPath(parent, child string) bool {
	if child == parent {
		return true
	}
	return strings.HasPrefix(child, parent+string(filepath.Separator))
}
