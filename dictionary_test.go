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

import "testing"

func TestMemoryDictionaryAddAndLookup(t *testing.T) {
	dict := NewMemoryDictionary()
	dict.Add(&IEDefinition{ID: 8, Name: "sourceIPv4Address"})

	def, ok := dict.Lookup(0, 8)
	if !ok || def.Name != "sourceIPv4Address" {
		t.Fatalf("expected to find sourceIPv4Address, got %+v ok=%v", def, ok)
	}

	if _, ok := dict.Lookup(0, 9); ok {
		t.Fatal("expected no entry for an unregistered ID")
	}

	if dict.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", dict.Len())
	}
}

func TestMemoryDictionaryEnterpriseScoping(t *testing.T) {
	dict := NewMemoryDictionary()
	dict.Add(&IEDefinition{ID: 1, Name: "iana"})
	dict.Add(&IEDefinition{ID: 1, PEN: 8057, Name: "enterprise"})

	iana, _ := dict.Lookup(0, 1)
	enterprise, _ := dict.Lookup(8057, 1)

	if iana.Name != "iana" || enterprise.Name != "enterprise" {
		t.Fatalf("expected distinct entries per enterprise scope, got %q and %q", iana.Name, enterprise.Name)
	}
}

func TestMemoryDictionaryLinkReverse(t *testing.T) {
	dict := NewMemoryDictionary()
	fwd := &IEDefinition{ID: 1, Name: "octetDeltaCount"}
	rev := &IEDefinition{ID: 1, PEN: 29305, Name: "reverseOctetDeltaCount", IsReverse: true}
	dict.Add(fwd)
	dict.Add(rev)

	dict.LinkReverse(fwd, rev)

	if fwd.ReverseElem != rev {
		t.Fatal("expected LinkReverse to set forward's ReverseElem")
	}
}

func TestDataTypeStructured(t *testing.T) {
	structured := []DataType{BasicList, SubTemplateList, SubTemplateMultiList}
	for _, dt := range structured {
		if !dt.structured() {
			t.Errorf("expected %s to be structured", dt)
		}
	}
	if Unclassified.structured() {
		t.Fatal("expected Unclassified to not be structured")
	}
}
