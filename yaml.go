/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

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

package ipfix

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zoomoid/go-ipfix-templates/iana/units"
)

// yamlElement is the on-disk shape of one Information Element entry in a
// YAML IE registry export.
type yamlElement struct {
	ID        uint16 `yaml:"id"`
	PEN       uint32 `yaml:"pen,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Semantics string `yaml:"semantics,omitempty"`
	Status    string `yaml:"status,omitempty"`
	Units     string `yaml:"units,omitempty"`
	Reverse   bool   `yaml:"reverse,omitempty"`
}

type yamlRegistry struct {
	Name     string        `yaml:"name,omitempty"`
	Elements []yamlElement `yaml:"elements,omitempty"`
}

// MustLoadDictionaryYAML is like LoadDictionaryYAML but panics on error; it
// is meant for tests and program initialization where a malformed registry
// is a fatal misconfiguration, not a runtime condition to recover from.
func MustLoadDictionaryYAML(r io.Reader) *MemoryDictionary {
	d, err := LoadDictionaryYAML(r)
	if err != nil {
		panic(err)
	}
	return d
}

// LoadDictionaryYAML reads a YAML-encoded IE registry (informationElementId,
// name, data type, PEN, reverse marker) and returns a populated
// MemoryDictionary. The registry format is deliberately small: it is meant
// for collectors that maintain their own enterprise-specific IE registry
// alongside the IANA one, not for the full IANA CSV (see LoadDictionaryCSV
// for that).
func LoadDictionaryYAML(r io.Reader) (*MemoryDictionary, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	reg := yamlRegistry{}
	if err := dec.Decode(&reg); err != nil {
		return nil, err
	}

	dict := NewMemoryDictionary()
	for _, el := range reg.Elements {
		def := &IEDefinition{
			PEN:       el.PEN,
			ID:        el.ID,
			Name:      el.Name,
			DataType:  dataTypeFromName(el.Type),
			Units:     unitFromName(el.Units),
			IsReverse: el.Reverse,
		}
		def.Semantics.UnmarshalText([]byte(el.Semantics))
		def.Status.UnmarshalText([]byte(el.Status))
		dict.Add(def)
	}
	return dict, nil
}

func dataTypeFromName(name string) DataType {
	switch name {
	case "basicList":
		return BasicList
	case "subTemplateList":
		return SubTemplateList
	case "subTemplateMultiList":
		return SubTemplateMultiList
	default:
		return Unclassified
	}
}

// unitFromName accepts either a unit's canonical name (as exported by
// units.FromNumber) or its IANA registry number. A number is resolved via
// units.FromNumber (units.Unassigned if it is not in the registry), an empty
// string yields units.Unassigned, and any other string is returned
// unchanged without being checked against the known unit names.
func unitFromName(s string) string {
	if s == "" {
		return units.Unassigned
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return units.FromNumber(uint16(n))
	}
	return s
}
