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

package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/config"
	"dirpx.dev/arx/registry"
)

type Charmander struct{}

type device struct{ id int }

func TestRegister_DerivedNameLookup(t *testing.T) {
	reg := registry.New(config.NewConfig())

	if err := reg.Register(Charmander{}); err != nil {
		t.Fatalf("Register(Charmander{}): unexpected error: %v", err)
	}

	v, err := reg.Get("charmander")
	if err != nil {
		t.Fatalf("Get(charmander): unexpected error: %v", err)
	}
	if _, ok := v.(Charmander); !ok {
		t.Fatalf("Get(charmander) = %T, want Charmander", v)
	}

	// Lookup folds per segment in a case-insensitive scope.
	if _, err := reg.Get("cHaRmAnDer"); err != nil {
		t.Fatalf("Get(cHaRmAnDer): unexpected error: %v", err)
	}
	if !reg.Has("CHARMANDER") {
		t.Fatal("Has(CHARMANDER) = false, want true")
	}

	if _, err := reg.Get("missing"); !errors.Is(err, apis.ErrKeyNotFound) {
		t.Fatalf("Get(missing): want ErrKeyNotFound, got %v", err)
	}
}

func TestRegister_CaseSensitiveScope(t *testing.T) {
	reg := registry.New(config.NewConfig(config.WithCaseSensitive(true)))

	if err := reg.Register(Charmander{}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if _, err := reg.Get("Charmander"); err != nil {
		t.Fatalf("Get(Charmander): unexpected error: %v", err)
	}
	if _, err := reg.Get("charmander"); !errors.Is(err, apis.ErrKeyNotFound) {
		t.Fatalf("Get(charmander): want ErrKeyNotFound, got %v", err)
	}
}

func TestRegister_AliasSymmetry(t *testing.T) {
	reg := registry.New(config.NewConfig())
	v := &device{id: 1}

	err := reg.Register(v, registry.WithName("canonical"), registry.WithAliases("alt", "other"))
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	for _, key := range []string{"canonical", "alt", "other"} {
		got, err := reg.Get(key)
		if err != nil {
			t.Fatalf("Get(%s): unexpected error: %v", key, err)
		}
		if got != any(v) {
			t.Fatalf("Get(%s) = %v, want %v", key, got, v)
		}
	}

	// Aliases are fully enumerable, indistinguishable from the canonical key.
	wantKeys := []string{"canonical", "alt", "other"}
	if got := reg.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}
	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}
	for i, item := range reg.Items() {
		if item.Key != wantKeys[i] || item.Value != any(v) {
			t.Fatalf("Items()[%d] = %+v, want {%s %v}", i, item, wantKeys[i], v)
		}
	}
}

func TestRegister_CanonicalKeyJoinsAliasSet(t *testing.T) {
	reg := registry.New(config.NewConfig())

	err := reg.Register(&device{id: 1},
		registry.WithName("dev"), registry.WithAliases("dev", "d"))
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (canonical key already in alias set)", reg.Len())
	}
}

func TestRegister_InvalidKeys(t *testing.T) {
	reg := registry.New(config.NewConfig())

	err := reg.Register(&device{}, registry.WithName("a.b"))
	if !errors.Is(err, apis.ErrInvalidName) {
		t.Fatalf("separator in name: want ErrInvalidName, got %v", err)
	}
	err = reg.Register(&device{}, registry.WithName("ok"), registry.WithAliases("a/b"))
	if !errors.Is(err, apis.ErrInvalidName) {
		t.Fatalf("separator in alias: want ErrInvalidName, got %v", err)
	}
	err = reg.Register(&device{}, registry.WithName("ok"), registry.WithAliases("x", "x"))
	if !errors.Is(err, apis.ErrKeyCollision) {
		t.Fatalf("duplicate alias: want ErrKeyCollision, got %v", err)
	}
}

func TestRegister_CollisionPolicy(t *testing.T) {
	reg := registry.New(config.NewConfig())
	v1 := &device{id: 1}
	v2 := &device{id: 2}

	if err := reg.Register(v1, registry.WithName("dev")); err != nil {
		t.Fatalf("Register(v1): unexpected error: %v", err)
	}
	// Re-registering the identical value is idempotent.
	if err := reg.Register(v1, registry.WithName("dev")); err != nil {
		t.Fatalf("Register(v1) again: unexpected error: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}

	err := reg.Register(v2, registry.WithName("dev"))
	if !errors.Is(err, apis.ErrKeyCollision) {
		t.Fatalf("Register(v2): want ErrKeyCollision, got %v", err)
	}
	if got, _ := reg.Get("dev"); got != any(v1) {
		t.Fatalf("Get(dev) = %v, want the original %v", got, v1)
	}
}

func TestRegister_Overwrite(t *testing.T) {
	reg := registry.New(config.NewConfig(config.WithOverwrite(true)))
	v1 := &device{id: 1}
	v2 := &device{id: 2}

	if err := reg.Register(v1, registry.WithName("dev")); err != nil {
		t.Fatalf("Register(v1): unexpected error: %v", err)
	}
	if err := reg.Register(v2, registry.WithName("dev")); err != nil {
		t.Fatalf("Register(v2): unexpected error: %v", err)
	}
	if got, _ := reg.Get("dev"); got != any(v2) {
		t.Fatalf("Get(dev) = %v, want %v", got, v2)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegister_NoPartialWriteOnCollision(t *testing.T) {
	reg := registry.New(config.NewConfig())

	if err := reg.Register(&device{id: 1}, registry.WithName("taken")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	err := reg.Register(&device{id: 2},
		registry.WithName("fresh"), registry.WithAliases("taken"))
	if !errors.Is(err, apis.ErrKeyCollision) {
		t.Fatalf("want ErrKeyCollision, got %v", err)
	}
	// Validation precedes every write: the non-colliding key must not land.
	if reg.Has("fresh") {
		t.Fatal("Has(fresh) = true after failed registration, want false")
	}
}

func TestRegister_SameFuncIdempotent(t *testing.T) {
	reg := registry.New(config.NewConfig())
	handler := func() {}

	if err := reg.Register(handler, registry.WithName("handler")); err != nil {
		t.Fatalf("Register(handler): unexpected error: %v", err)
	}
	if err := reg.Register(handler, registry.WithName("handler")); err != nil {
		t.Fatalf("Register(handler) again: unexpected error: %v", err)
	}
}

func TestGet_PathAddressing(t *testing.T) {
	inner := registry.New(config.NewConfig())
	leaf := &device{id: 7}
	if err := inner.Register(leaf, registry.WithName("beta")); err != nil {
		t.Fatalf("Register(beta): unexpected error: %v", err)
	}

	outer := registry.New(config.NewConfig())
	if err := outer.Register(inner, registry.WithName("alpha")); err != nil {
		t.Fatalf("Register(alpha): unexpected error: %v", err)
	}

	for _, key := range []string{"alpha.beta", "alpha/beta", "Alpha.BETA"} {
		got, err := outer.Get(key)
		if err != nil {
			t.Fatalf("Get(%s): unexpected error: %v", key, err)
		}
		if got != any(leaf) {
			t.Fatalf("Get(%s) = %v, want %v", key, got, leaf)
		}
	}

	// Path addressing is sugar for chained single-segment lookups.
	mid, err := outer.Get("alpha")
	if err != nil {
		t.Fatalf("Get(alpha): unexpected error: %v", err)
	}
	chained, err := mid.(apis.Getter).Get("beta")
	if err != nil {
		t.Fatalf("chained Get(beta): unexpected error: %v", err)
	}
	if chained != any(leaf) {
		t.Fatalf("chained lookup = %v, want %v", chained, leaf)
	}

	if _, err := outer.Get("alpha.missing"); !errors.Is(err, apis.ErrKeyNotFound) {
		t.Fatalf("Get(alpha.missing): want ErrKeyNotFound, got %v", err)
	}
	// A leaf value cannot be addressed deeper.
	if err := outer.Register(&device{id: 8}, registry.WithName("plain")); err != nil {
		t.Fatalf("Register(plain): unexpected error: %v", err)
	}
	if _, err := outer.Get("plain.deeper"); !errors.Is(err, apis.ErrKeyNotFound) {
		t.Fatalf("Get(plain.deeper): want ErrKeyNotFound, got %v", err)
	}
}

func TestGetDefault(t *testing.T) {
	reg := registry.New(config.NewConfig())
	v := &device{id: 1}
	if err := reg.Register(v, registry.WithName("present")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	got, err := reg.GetDefault("present", 42)
	if err != nil || got != any(v) {
		t.Fatalf("GetDefault(present) = (%v, %v), want (%v, nil)", got, err, v)
	}
	got, err = reg.GetDefault("missing", 42)
	if err != nil || got != any(42) {
		t.Fatalf("GetDefault(missing, 42) = (%v, %v), want (42, nil)", got, err)
	}
	// A string default is itself a key.
	got, err = reg.GetDefault("missing", "present")
	if err != nil || got != any(v) {
		t.Fatalf("GetDefault(missing, present) = (%v, %v), want (%v, nil)", got, err, v)
	}
	if _, err := reg.GetDefault("missing", "also_missing"); !errors.Is(err, apis.ErrKeyNotFound) {
		t.Fatalf("GetDefault(missing, also_missing): want ErrKeyNotFound, got %v", err)
	}
}

func TestValuesAndOrder(t *testing.T) {
	reg := registry.New(config.NewConfig())
	v1, v2 := &device{id: 1}, &device{id: 2}

	if err := reg.Register(v1, registry.WithName("one")); err != nil {
		t.Fatalf("Register(one): unexpected error: %v", err)
	}
	if err := reg.Register(v2, registry.WithName("two")); err != nil {
		t.Fatalf("Register(two): unexpected error: %v", err)
	}

	want := []any{any(v1), any(v2)}
	if got := reg.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestClear_PreservesIdentity(t *testing.T) {
	cfg := config.NewConfig(config.WithSuffix("Sensor"))
	reg := registry.New(cfg, registry.WithScopeName("sensors"))

	if err := reg.Register(&device{id: 1}, registry.WithName("oxygen")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	reg.Clear()

	if reg.Len() != 0 || reg.Has("oxygen") {
		t.Fatalf("Clear left entries behind: len=%d", reg.Len())
	}
	if reg.Name() != "sensors" {
		t.Fatalf("Name() = %q after Clear, want %q", reg.Name(), "sensors")
	}
	if reg.Config().Suffix != "Sensor" {
		t.Fatalf("Config().Suffix = %q after Clear, want %q", reg.Config().Suffix, "Sensor")
	}
}
