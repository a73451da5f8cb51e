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
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors apis.Config with pointer fields so absent keys keep
// their defaults. Transform is a code hook and has no YAML representation.
type yamlConfig struct {
	CaseSensitive *bool   `yaml:"case_sensitive"`
	Prefix        *string `yaml:"prefix"`
	StripPrefix   *bool   `yaml:"strip_prefix"`
	Suffix        *string `yaml:"suffix"`
	StripSuffix   *bool   `yaml:"strip_suffix"`
	Pattern       *string `yaml:"pattern"`
	SnakeCase     *bool   `yaml:"snake_case"`
	Hyphen        *bool   `yaml:"hyphen"`
	RegisterSelf  *bool   `yaml:"register_self"`
	Recursive     *bool   `yaml:"recursive"`
	Overwrite     *bool   `yaml:"overwrite"`
	Redirect      *bool   `yaml:"redirect"`
}

// FromYAML decodes a configuration option set from YAML. Keys use the
// snake_case option names (case_sensitive, prefix, strip_prefix, suffix,
// strip_suffix, pattern, snake_case, hyphen, register_self, recursive,
// overwrite, redirect). The pattern value is compiled; a malformed pattern
// is an error. Absent keys keep their defaults, so the result composes with
// further options:
//
//	cfg := config.NewConfig(append(yamlOpts, config.WithOverwrite(true))...)
func FromYAML(data []byte) ([]Option, error) {
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("arx(config): decode yaml: %w", err)
	}

	var opts []Option
	if yc.CaseSensitive != nil {
		opts = append(opts, WithCaseSensitive(*yc.CaseSensitive))
	}
	if yc.Prefix != nil {
		opts = append(opts, WithPrefix(*yc.Prefix))
	}
	if yc.StripPrefix != nil {
		opts = append(opts, WithStripPrefix(*yc.StripPrefix))
	}
	if yc.Suffix != nil {
		opts = append(opts, WithSuffix(*yc.Suffix))
	}
	if yc.StripSuffix != nil {
		opts = append(opts, WithStripSuffix(*yc.StripSuffix))
	}
	if yc.Pattern != nil {
		pat, err := regexp.Compile(*yc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("arx(config): compile pattern %q: %w", *yc.Pattern, err)
		}
		opts = append(opts, WithPattern(pat))
	}
	if yc.SnakeCase != nil {
		opts = append(opts, WithSnakeCase(*yc.SnakeCase))
	}
	if yc.Hyphen != nil {
		opts = append(opts, WithHyphen(*yc.Hyphen))
	}
	if yc.RegisterSelf != nil {
		opts = append(opts, WithRegisterSelf(*yc.RegisterSelf))
	}
	if yc.Recursive != nil {
		opts = append(opts, WithRecursive(*yc.Recursive))
	}
	if yc.Overwrite != nil {
		opts = append(opts, WithOverwrite(*yc.Overwrite))
	}
	if yc.Redirect != nil {
		opts = append(opts, WithRedirect(*yc.Redirect))
	}
	return opts, nil
}

// Load reads and decodes a YAML configuration file. See FromYAML.
func Load(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arx(config): read %s: %w", path, err)
	}
	return FromYAML(data)
}
