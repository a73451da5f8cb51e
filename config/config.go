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

package config

import (
	"regexp"

	"dirpx.dev/arx/apis"
)

const (
	// DefaultStripPrefix represents the default for StripPrefix.
	// When a prefix is configured, it is removed from derived keys.
	DefaultStripPrefix = true
	// DefaultStripSuffix represents the default for StripSuffix.
	// When a suffix is configured, it is removed from derived keys.
	DefaultStripSuffix = true
	// DefaultRecursive represents the default for Recursive.
	// Registrations propagate through the ancestor chain.
	DefaultRecursive = true
	// DefaultRedirect represents the default for Redirect.
	// Scope-level container access wins over variant-defined methods.
	DefaultRedirect = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
// Keys are case-insensitive, nothing is required of raw identifiers, and
// registrations propagate recursively.
func DefaultConfig() apis.Config {
	return apis.Config{
		StripPrefix: DefaultStripPrefix,
		StripSuffix: DefaultStripSuffix,
		Recursive:   DefaultRecursive,
		Redirect:    DefaultRedirect,
	}
}

// Copy returns an independent copy of cfg for a newly created scope.
// Config has value semantics; the copy is explicit so scope creation reads
// as inheritance-by-copy at call sites.
func Copy(cfg apis.Config) apis.Config {
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithCaseSensitive sets the CaseSensitive option.
func WithCaseSensitive(sensitive bool) Option {
	return func(c *apis.Config) {
		c.CaseSensitive = sensitive
	}
}

// WithPrefix requires derived names to start with prefix.
func WithPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.Prefix = prefix
	}
}

// WithStripPrefix sets the StripPrefix option.
func WithStripPrefix(strip bool) Option {
	return func(c *apis.Config) {
		c.StripPrefix = strip
	}
}

// WithSuffix requires derived names to end with suffix.
func WithSuffix(suffix string) Option {
	return func(c *apis.Config) {
		c.Suffix = suffix
	}
}

// WithStripSuffix sets the StripSuffix option.
func WithStripSuffix(strip bool) Option {
	return func(c *apis.Config) {
		c.StripSuffix = strip
	}
}

// WithPattern requires raw identifiers to match the compiled pattern.
// A nil pattern clears the requirement.
func WithPattern(pattern *regexp.Regexp) Option {
	return func(c *apis.Config) {
		c.Pattern = pattern
	}
}

// WithSnakeCase sets the SnakeCase option.
func WithSnakeCase(snake bool) Option {
	return func(c *apis.Config) {
		c.SnakeCase = snake
	}
}

// WithHyphen sets the Hyphen option.
func WithHyphen(hyphen bool) Option {
	return func(c *apis.Config) {
		c.Hyphen = hyphen
	}
}

// WithTransform installs a user transform applied after the built-in
// formatting steps and before the case fold. Nil clears it.
func WithTransform(transform func(string) string) Option {
	return func(c *apis.Config) {
		c.Transform = transform
	}
}

// WithRegisterSelf sets the RegisterSelf option.
func WithRegisterSelf(self bool) Option {
	return func(c *apis.Config) {
		c.RegisterSelf = self
	}
}

// WithRecursive sets the Recursive option.
func WithRecursive(recursive bool) Option {
	return func(c *apis.Config) {
		c.Recursive = recursive
	}
}

// WithOverwrite sets the Overwrite option.
func WithOverwrite(overwrite bool) Option {
	return func(c *apis.Config) {
		c.Overwrite = overwrite
	}
}

// WithRedirect sets the Redirect option.
func WithRedirect(redirect bool) Option {
	return func(c *apis.Config) {
		c.Redirect = redirect
	}
}
