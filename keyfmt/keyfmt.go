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

// Package keyfmt turns raw variant identifiers into canonical scope keys.
//
// Format applies a fixed pipeline driven by the scope configuration:
// pattern check, prefix check+strip, suffix check+strip, snake_case,
// hyphenation, user transform, case fold. The pipeline is deterministic:
// the same (raw, Config) pair always yields the same key.
package keyfmt

import (
	"fmt"
	"regexp"
	"strings"

	"dirpx.dev/arx/apis"
)

// snakePat1..3 insert word boundaries for PascalCase/camelCase conversion.
// Three passes: acronym-to-word boundaries ("FOOBar" -> "FOO_Bar"), repair
// of doubled underscores introduced by the first pass ("Foo__Bar" ->
// "Foo_Bar"), and plain lower-to-upper boundaries ("fooBAR" -> "foo_BAR").
var (
	snakePat1 = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	snakePat2 = regexp.MustCompile(`__([A-Z])`)
	snakePat3 = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnakeCase converts a PascalCase or camelCase identifier to snake_case.
// Already-snaked input passes through unchanged.
func ToSnakeCase(name string) string {
	name = snakePat1.ReplaceAllString(name, "${1}_${2}")
	name = snakePat2.ReplaceAllString(name, "_${1}")
	name = snakePat3.ReplaceAllString(name, "${1}_${2}")
	return strings.ToLower(name)
}

// Format derives the canonical key for raw under cfg.
//
// Pipeline order is fixed: pattern, prefix, suffix, snake_case, hyphen,
// transform, case fold. An empty prefix or suffix is an always-satisfied
// no-op. Validation failures wrap apis.ErrInvalidName.
func Format(raw string, cfg apis.Config) (string, error) {
	if cfg.Pattern != nil && !cfg.Pattern.MatchString(raw) {
		return "", fmt.Errorf("arx(keyfmt): name %q does not match pattern %q: %w",
			raw, cfg.Pattern.String(), apis.ErrInvalidName)
	}

	name := raw
	if cfg.Prefix != "" {
		if !strings.HasPrefix(name, cfg.Prefix) {
			return "", fmt.Errorf("arx(keyfmt): name %q must start with %q: %w",
				raw, cfg.Prefix, apis.ErrInvalidName)
		}
		if cfg.StripPrefix {
			name = name[len(cfg.Prefix):]
		}
	}
	if cfg.Suffix != "" {
		if !strings.HasSuffix(name, cfg.Suffix) {
			return "", fmt.Errorf("arx(keyfmt): name %q must end with %q: %w",
				raw, cfg.Suffix, apis.ErrInvalidName)
		}
		if cfg.StripSuffix {
			name = name[:len(name)-len(cfg.Suffix)]
		}
	}

	if cfg.SnakeCase {
		name = ToSnakeCase(name)
	}
	if cfg.Hyphen {
		name = strings.ReplaceAll(name, "_", "-")
	}
	if cfg.Transform != nil {
		name = cfg.Transform(name)
	}
	if !cfg.CaseSensitive {
		name = strings.ToLower(name)
	}
	return name, nil
}

// ValidateKey rejects explicit names and aliases that contain the reserved
// path separators "." and "/".
func ValidateKey(key string) error {
	if strings.ContainsAny(key, "./") {
		return fmt.Errorf("arx(keyfmt): key %q cannot contain %q or %q: %w",
			key, ".", "/", apis.ErrInvalidName)
	}
	return nil
}

// CutKey splits off the first path segment, returning it and the remainder
// of the path ("" when key was a single segment).
func CutKey(key string) (head, rest string) {
	if i := strings.IndexAny(key, "./"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}
