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

func TestParseHeaderNormal(t *testing.T) {
	rec := buildTemplate(300, []fieldSpec{{id: 1, length: 4}, {id: 2, length: 4}})

	h, withdrawn, err := parseHeader(newWireCursor(rec), Normal)
	if err != nil {
		t.Fatal(err)
	}
	if withdrawn {
		t.Fatal("expected non-withdrawal record")
	}
	if h.id != 300 || h.fieldsTotal != 2 {
		t.Fatalf("unexpected header %+v", h)
	}
}

func TestParseHeaderOptions(t *testing.T) {
	rec := buildOptionsTemplate(400, 1, []fieldSpec{{id: 1, length: 4}, {id: 2, length: 4}})

	h, withdrawn, err := parseHeader(newWireCursor(rec), Options)
	if err != nil {
		t.Fatal(err)
	}
	if withdrawn {
		t.Fatal("expected non-withdrawal record")
	}
	if h.id != 400 || h.fieldsTotal != 2 || h.fieldsScope != 1 {
		t.Fatalf("unexpected header %+v", h)
	}
}

func TestParseHeaderWithdrawal(t *testing.T) {
	rec := buildWithdrawal(300)

	h, withdrawn, err := parseHeader(newWireCursor(rec), Normal)
	if err != nil {
		t.Fatal(err)
	}
	if !withdrawn {
		t.Fatal("expected withdrawal record")
	}
	if h.id != 300 {
		t.Fatalf("unexpected template ID %d", h.id)
	}
}

func TestParseHeaderReservedID(t *testing.T) {
	rec := buildTemplate(255, []fieldSpec{{id: 1, length: 4}})

	if _, _, err := parseHeader(newWireCursor(rec), Normal); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for reserved template ID, got %v", err)
	}
}

func TestParseHeaderWithdrawalReservedID(t *testing.T) {
	rec := buildWithdrawal(255)

	if _, _, err := parseHeader(newWireCursor(rec), Normal); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for withdrawal with reserved template ID, got %v", err)
	}
}

func TestParseHeaderZeroScopeCount(t *testing.T) {
	rec := buildOptionsTemplate(400, 0, []fieldSpec{{id: 1, length: 4}})

	if _, _, err := parseHeader(newWireCursor(rec), Options); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for zero scope count, got %v", err)
	}
}

func TestParseHeaderScopeCountExceedsTotal(t *testing.T) {
	rec := buildOptionsTemplate(400, 5, []fieldSpec{{id: 1, length: 4}})

	if _, _, err := parseHeader(newWireCursor(rec), Options); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for scope count exceeding total, got %v", err)
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	cases := map[string][]byte{
		"no bytes":               {},
		"only template ID":       {0x01, 0x2c},
		"options missing scope":  {0x01, 0x2c, 0x00, 0x01},
	}

	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			typ := Normal
			if name == "options missing scope" {
				typ = Options
			}
			if _, _, err := parseHeader(newWireCursor(rec), typ); !errors.Is(err, ErrFormat) {
				t.Fatalf("expected ErrFormat, got %v", err)
			}
		})
	}
}
