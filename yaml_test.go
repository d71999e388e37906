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
	"strings"
	"testing"
)

const testRegistryYAML = `
name: example enterprise registry
elements:
  - id: 1
    pen: 29305
    name: exampleField
    type: unsigned64
    semantics: quantity
    status: current
    units: octets
  - id: 2
    pen: 29305
    name: exampleListField
    type: basicList
  - id: 1
    pen: 29306
    name: reverseExampleField
    reverse: true
`

func TestLoadDictionaryYAML(t *testing.T) {
	dict, err := LoadDictionaryYAML(strings.NewReader(testRegistryYAML))
	if err != nil {
		t.Fatal(err)
	}

	if dict.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", dict.Len())
	}

	def, ok := dict.Lookup(29305, 1)
	if !ok {
		t.Fatal("expected to find exampleField")
	}
	if def.Name != "exampleField" || def.Units != "octets" {
		t.Fatalf("unexpected definition %+v", def)
	}

	list, ok := dict.Lookup(29305, 2)
	if !ok || !list.DataType.structured() {
		t.Fatalf("expected exampleListField to be structured, got %+v", list)
	}

	rev, ok := dict.Lookup(29306, 1)
	if !ok || !rev.IsReverse {
		t.Fatalf("expected reverseExampleField to be marked reverse, got %+v", rev)
	}
}

func TestLoadDictionaryYAMLMalformed(t *testing.T) {
	if _, err := LoadDictionaryYAML(strings.NewReader("not: [valid")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestMustLoadDictionaryYAMLPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustLoadDictionaryYAML to panic on malformed input")
		}
	}()
	MustLoadDictionaryYAML(strings.NewReader("not: [valid"))
}

func TestUnitFromName(t *testing.T) {
	if got := unitFromName("2"); got != "octets" {
		t.Fatalf("expected numeric unit code 2 to resolve to octets, got %q", got)
	}
	if got := unitFromName("packets"); got != "packets" {
		t.Fatalf("expected a literal unit name to pass through, got %q", got)
	}
	if got := unitFromName(""); got != "unassigned" {
		t.Fatalf("expected an empty unit to resolve to unassigned, got %q", got)
	}
}
