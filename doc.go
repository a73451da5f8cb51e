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

// Package arx is an automatic object-registration engine.
//
// arx associates callables and type values ("variants") with derived or
// explicit string keys inside hierarchical, dict-like containers
// ("scopes"). Declaring a new variant makes it discoverable by name, which
// is the backbone of plugin-style factories: the code that *defines* a
// handler, strategy or device driver is the only code that has to know it
// exists.
//
// # Design
//
// The engine is built from small, separately usable layers:
//
//   - apis: the shared contracts. apis.Config carries the per-scope naming
//     and collision knobs; apis.Origin is the lexical identity of a
//     definition; apis.Container is the mapping contract every scope
//     exposes; apis/errors.go is the error taxonomy.
//
//   - keyfmt: the name formatter. A raw identifier passes a fixed pipeline
//     (pattern check, prefix and suffix check+strip, snake_case,
//     hyphenation, user transform, case fold) to become a canonical key.
//     The result is deterministic for a given (identifier, Config) pair.
//
//   - origin: identity derivation. Callables resolve through runtime
//     symbol information (qualified name and defining source file); types
//     resolve through reflection over the nearest named type. Values can
//     override both via the apis.Named and apis.Originator interfaces.
//
//   - reimport: the heuristic that tells a genuine naming collision apart
//     from re-execution of the same logical definition (the hot-reload
//     case). Same kind, same simple name, same qualified path, same
//     canonicalized source file, but a *different* enclosing module
//     identity means "one definition seen twice": the registry silently
//     rewrites to the newest value instead of failing.
//
//   - registry: the scope itself. An insertion-ordered key→variant
//     mapping plus the registration algorithm: alias handling,
//     validate-before-write collision policy, conditional
//     self-registration, and propagation up the structural ancestor
//     chain. Lookup is path-addressed: "a.b" and "a/b" both resolve one
//     level per segment through nested scopes.
//
//   - hierarchy: the declaration-time binder. hierarchy.Bind(owner,
//     parents, ...) is the explicit Go stand-in for an implicit "new
//     subclass declared" hook: it copies the nearest ancestor's
//     configuration, derives the variant's name under the inherited
//     (pre-override) rules, builds the variant's scope and performs the
//     initial root registration hop.
//
//   - decorator: the standalone scope for non-hierarchical use, including
//     parametrized (pending-value) registration and traversal of explicit
//     namespace manifests (optionally loaded from YAML produced by a
//     build-time scan).
//
// # Propagation
//
// Registrations travel upward: a variant declared under ancestors A ← B
// lands in its own scope, then in B (unconditionally, as the initial root
// hop), and then in A only if both B and A are configured recursive.
// Scopes marked base terminate propagation and never receive entries from
// descendants. Every ancestor applies its own collision policy
// independently.
//
// # Collision policy
//
// A key can be re-registered only when the scope allows overwriting, when
// the value is identical (idempotent re-registration), or when the
// reimport heuristic recognizes the candidate as the same logical
// definition re-executed — in which case every key bound to the superseded
// value is rewritten, transitively through the ancestor chain, and the
// affected scope's owner reference is rebound exactly once.
//
// # Concurrency model
//
// The engine is single-threaded and fully synchronous. Scope mappings are
// mutated in place with no internal locking; registration is expected to
// happen during program initialization or under caller-side
// serialization. Only the process-global default scope pointer in this
// package is swapped atomically, so readers of Default never observe a
// torn replacement.
//
// # Integrating with validation frameworks
//
// Binding a scope onto an external structured-data/validation framework is
// out of scope for the engine; an adapter doing so must (1) strip the
// mapping-contract method names from the framework's field introspection
// unless the user explicitly declared same-named fields, (2) suppress only
// the field-shadowing warnings those names cause, (3) guarantee instances
// never carry mapping-contract methods as field values, and (4) leave the
// framework's own default/validation/serialization behavior untouched.
//
// # Usage
//
//	pokedex := arx.New(config.WithSnakeCase(true))
//
//	type SurfingPikachu struct{}
//
//	if err := pokedex.Register(SurfingPikachu{}); err != nil { ... }
//	v, err := pokedex.Get("surfing_pikachu")
//
// or hierarchically:
//
//	pokemon, _ := hierarchy.Bind(Pokemon{}, nil)
//	_, _ = hierarchy.Bind(Charmander{}, []*registry.Registry{pokemon.Scope()})
//	v, _ := pokemon.Scope().Get("charmander")
package arx
