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
	"os"

	"gopkg.in/yaml.v3"
)

// SymbolResolver maps a manifest symbol reference to the value it denotes.
// Implementations are typically generated alongside the manifest by a
// build-time scan.
type SymbolResolver func(symbol string) (any, error)

// manifestNode is the YAML shape of a namespace.
type manifestNode struct {
	Name    string          `yaml:"name"`
	Origin  string          `yaml:"origin"`
	Entries []manifestEntry `yaml:"entries"`
}

// manifestEntry is the YAML shape of one member: either a symbol reference
// or a nested namespace, never both.
type manifestEntry struct {
	Name      string        `yaml:"name"`
	Symbol    string        `yaml:"symbol,omitempty"`
	Namespace *manifestNode `yaml:"namespace,omitempty"`
}

// LoadManifest decodes a YAML namespace manifest, resolving each symbol
// reference through resolve:
//
//	name: sensors
//	origin: ./internal/sensors
//	entries:
//	  - name: oxygen
//	    symbol: sensors.NewOxygen
//	  - name: chemistry
//	    namespace:
//	      name: chemistry
//	      origin: ./internal/sensors/chemistry
//	      entries: [...]
//
// The result feeds RegisterNamespace.
func LoadManifest(data []byte, resolve SymbolResolver) (*Namespace, error) {
	var root manifestNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("arx(decorator): decode manifest: %w", err)
	}
	return buildNamespace(&root, resolve)
}

// LoadManifestFile reads and decodes a YAML namespace manifest file.
func LoadManifestFile(path string, resolve SymbolResolver) (*Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arx(decorator): read manifest %s: %w", path, err)
	}
	return LoadManifest(data, resolve)
}

// buildNamespace converts a decoded node tree into a Namespace.
func buildNamespace(node *manifestNode, resolve SymbolResolver) (*Namespace, error) {
	ns := &Namespace{
		Name:   node.Name,
		Origin: node.Origin,
	}
	for _, e := range node.Entries {
		switch {
		case e.Symbol != "" && e.Namespace != nil:
			return nil, fmt.Errorf("arx(decorator): manifest entry %q has both symbol and namespace", e.Name)
		case e.Namespace != nil:
			child, err := buildNamespace(e.Namespace, resolve)
			if err != nil {
				return nil, err
			}
			ns.Entries = append(ns.Entries, Entry{Name: e.Name, Value: child})
		case e.Symbol != "":
			if resolve == nil {
				return nil, fmt.Errorf("arx(decorator): manifest entry %q needs a symbol resolver", e.Name)
			}
			v, err := resolve(e.Symbol)
			if err != nil {
				return nil, fmt.Errorf("arx(decorator): resolve symbol %q: %w", e.Symbol, err)
			}
			ns.Entries = append(ns.Entries, Entry{Name: e.Name, Value: v})
		default:
			return nil, fmt.Errorf("arx(decorator): manifest entry %q has neither symbol nor namespace", e.Name)
		}
	}
	return ns, nil
}
