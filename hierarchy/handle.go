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

package hierarchy

import (
	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/registry"
)

// Handle pairs a declared variant with its scope.
//
// A single overloaded method name cannot express "scope operation when
// addressed as a type, variant operation when addressed as an instance",
// so the two dispatch targets get explicitly named operations instead:
// Scope is always the scope's container, Owner is always the variant, and
// Container is the resolved view a generic caller should use.
type Handle struct {
	owner any
	scope *registry.Registry
}

// Scope returns the variant's scope: the type-level container operations
// plus registration for descendants declaring under this variant.
func (h *Handle) Scope() *registry.Registry {
	return h.scope
}

// Owner returns the declared variant.
func (h *Handle) Owner() any {
	return h.owner
}

// Container resolves which container implementation a generic caller gets.
// With the redirect option enabled (the default) the scope's implementation
// wins, and a variant that defines its own container-style methods keeps
// them for direct instance use. With redirect disabled, a variant that
// implements the contract shadows the scope entirely.
func (h *Handle) Container() apis.Container {
	if !h.scope.Config().Redirect {
		if c, ok := h.owner.(apis.Container); ok {
			return c
		}
	}
	return h.scope
}
