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
	"errors"
	"testing"
)

func TestParseFieldSpecifierIANA(t *testing.T) {
	raw := encodeFields([]fieldSpec{{id: 8, length: 4}})

	f, err := parseFieldSpecifier(newWireCursor(raw))
	if err != nil {
		t.Fatal(err)
	}
	if f.ID != 8 || f.EnterpriseNumber != 0 || f.Length != 4 {
		t.Fatalf("unexpected field %+v", f)
	}
}

func TestParseFieldSpecifierEnterprise(t *testing.T) {
	raw := encodeFields([]fieldSpec{{id: 100, en: 8057, length: 8}})

	f, err := parseFieldSpecifier(newWireCursor(raw))
	if err != nil {
		t.Fatal(err)
	}
	if f.ID != 100 || f.EnterpriseNumber != 8057 || f.Length != 8 {
		t.Fatalf("unexpected field %+v", f)
	}
}

func TestParseFieldSpecifierVariableLength(t *testing.T) {
	raw := encodeFields([]fieldSpec{{id: 341, length: VariableLength}})

	f, err := parseFieldSpecifier(newWireCursor(raw))
	if err != nil {
		t.Fatal(err)
	}
	if !f.Variable() {
		t.Fatalf("expected variable-length field, got length %d", f.Length)
	}
}

func TestParseFieldSpecifierTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00, 0x08},
		{0x80, 0x08, 0x00, 0x04, 0x00, 0x00, 0x1f},
	}

	for _, raw := range cases {
		if _, err := parseFieldSpecifier(newWireCursor(raw)); !errors.Is(err, ErrFormat) {
			t.Fatalf("expected ErrFormat for %v, got %v", raw, err)
		}
	}
}

func TestParseFieldSpecifiers(t *testing.T) {
	specs := []fieldSpec{{id: 1, length: 4}, {id: 100, en: 8057, length: 8}, {id: 2, length: 4}}
	raw := encodeFields(specs)

	fields, err := parseFieldSpecifiers(newWireCursor(raw), uint16(len(specs)))
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[1].EnterpriseNumber != 8057 {
		t.Fatalf("expected enterprise field to retain its PEN, got %+v", fields[1])
	}
}
