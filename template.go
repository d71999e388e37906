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
	"bytes"
	"math/bits"
)

// Template is a parsed and flag-annotated Template or Options Template
// record. It carries no reference to the Transport Session or Observation
// Domain it was received on, and nothing about data record decoding; it
// describes the shape of records of this template's ID, full stop.
//
// A Template is not safe for concurrent mutation: callers that call
// BindInformationElements, FlowKeyDefine or otherwise mutate a Template
// concurrently with reads must provide their own synchronization, the same
// as the template manager this engine's template API is modeled on.
type Template struct {
	Type Type
	ID   uint16

	FieldsTotal uint16
	FieldsScope uint16

	// DataLength is the minimum length, in octets, of a Data Record
	// conforming to this template: the sum of every field's length, with
	// each variable-length field counted as its smallest possible encoding
	// (1 byte).
	DataLength int

	Flags       TemplateFlag
	OptionsType OptionsType

	Fields []Field

	// Raw is the exact wire bytes this template was parsed from (header
	// plus every Field Specifier), used only by Compare.
	Raw []byte
}

// Withdrawal reports whether rec is a Template Withdrawal record: a field
// count of zero. Withdrawal bookkeeping (which template ID is withdrawn,
// propagating the withdrawal to an Observation Domain's template set) is
// the caller's concern; Parse only reports that this particular record
// carries no field definitions.
func Withdrawal(rec []byte, typ Type) (id uint16, ok bool, err error) {
	c := newWireCursor(rec)
	h, withdrawn, err := parseHeader(c, typ)
	if err != nil {
		return 0, false, err
	}
	return h.id, withdrawn, nil
}

// Parse decodes a single Template or Options Template record from rec,
// validating its header and Field Specifiers and deriving every structural
// flag that does not require an IE dictionary (FieldScope, FieldMultiIE,
// FieldLastIE, offsets, DataLength, TemplateHasMultiIE, TemplateHasDynamic,
// and, for Options records, OptionsType). It returns the number of bytes
// of rec consumed.
//
// Parse never looks at an IE dictionary: call BindInformationElements
// afterwards to populate Field.Def and the dictionary-dependent flags
// (FieldReverse, FieldStructured, TemplateHasReverse, TemplateHasStruct,
// and the biflow key flags).
//
// rec may be reused or mutated by the caller afterwards: Template retains
// its own copy of the consumed bytes in Raw, and Fields reference no memory
// from rec itself.
func Parse(rec []byte, typ Type) (*Template, int, error) {
	c := newWireCursor(rec)
	h, withdrawn, err := parseHeader(c, typ)
	if err != nil {
		ParseErrorsTotal.WithLabelValues("format").Inc()
		return nil, 0, err
	}

	if withdrawn {
		raw := make([]byte, c.consumed())
		copy(raw, rec[:c.consumed()])
		return &Template{Type: typ, ID: h.id, Raw: raw}, c.consumed(), nil
	}

	fields, err := parseFieldSpecifiers(c, h.fieldsTotal)
	if err != nil {
		ParseErrorsTotal.WithLabelValues("format").Inc()
		return nil, 0, err
	}

	deriveFieldFlags(fields, h.fieldsScope)
	dataLength, hasDynamic := deriveLayout(fields)

	if dataLength > maxDataRecordLength {
		ParseErrorsTotal.WithLabelValues("format").Inc()
		return nil, 0, formatErrorf("template %d data record length %d exceeds maximum %d", h.id, dataLength, maxDataRecordLength)
	}

	var flags TemplateFlag
	if hasDynamic {
		flags |= TemplateHasDynamic
	}
	if hasMultiIE(fields) {
		flags |= TemplateHasMultiIE
	}

	t := &Template{
		Type:        typ,
		ID:          h.id,
		FieldsTotal: h.fieldsTotal,
		FieldsScope: h.fieldsScope,
		DataLength:  dataLength,
		Flags:       flags,
		Fields:      fields,
	}

	if typ == Options {
		t.OptionsType = classifyOptions(fields, h.fieldsScope)
		if t.OptionsType != 0 {
			for _, nf := range optionsTypeNames {
				if t.OptionsType.Has(nf.flag) {
					OptionsClassifiedTotal.WithLabelValues(nf.name).Inc()
				}
			}
		}
	}

	raw := make([]byte, c.consumed())
	copy(raw, rec[:c.consumed()])
	t.Raw = raw

	TemplatesParsedTotal.WithLabelValues(typ.String()).Inc()
	return t, c.consumed(), nil
}

// Copy returns an independent deep copy of t: mutating the copy's Fields,
// Flags or OptionsType never affects t, and vice versa. Def pointers are
// shared (they are weak references into an IEMgr, not owned state).
func (t *Template) Copy() *Template {
	cp := *t
	cp.Fields = make([]Field, len(t.Fields))
	copy(cp.Fields, t.Fields)
	cp.Raw = make([]byte, len(t.Raw))
	copy(cp.Raw, t.Raw)
	return &cp
}

// Find returns the first field matching (en, id), scanning scope and
// non-scope fields alike, or nil if there is none.
func (t *Template) Find(en uint32, id uint16) *Field {
	return find(t.Fields, en, id)
}

// Compare orders two templates first by raw length, then lexicographically
// by raw bytes, mirroring a length-prefixed comparison rather than a pure
// byte comparison: two templates of different lengths never compare equal
// regardless of a shared prefix.
func (t *Template) Compare(other *Template) int {
	if len(t.Raw) != len(other.Raw) {
		if len(t.Raw) > len(other.Raw) {
			return 1
		}
		return -1
	}
	return bytes.Compare(t.Raw, other.Raw)
}

// Equal reports whether t and other are wire-identical.
func (t *Template) Equal(other *Template) bool {
	return t.Compare(other) == 0
}

// flowKeyHighestBit returns the 1-based position of the highest set bit of
// key, or 0 if key is zero. A flowKey of 0b101 reports 3, not 2: bit
// position, not a zero-based index, since it is compared directly against
// a 1-based field count.
func flowKeyHighestBit(key uint64) int {
	if key == 0 {
		return 0
	}
	return bits.Len64(key)
}

// FlowKeyApplicable reports whether flowKey could validly be applied to t:
// every bit it sets must address one of t's fields.
func (t *Template) FlowKeyApplicable(flowKey uint64) error {
	if flowKeyHighestBit(flowKey) > int(t.FieldsTotal) {
		return formatErrorf("flow key 0x%x addresses a field beyond template %d's %d fields", flowKey, t.ID, t.FieldsTotal)
	}
	return nil
}

// FlowKeyDefine applies flowKey as the flow-key mask for t, setting
// FieldFlowKey on exactly the fields flowKey selects (bit i selects
// Fields[i]) and TemplateHasFlowKey iff flowKey is non-zero. A zero
// flowKey clears every flow-key flag.
func (t *Template) FlowKeyDefine(flowKey uint64) error {
	if err := t.FlowKeyApplicable(flowKey); err != nil {
		return err
	}

	if flowKey != 0 {
		t.Flags |= TemplateHasFlowKey
	} else {
		t.Flags &^= TemplateHasFlowKey
	}

	key := flowKey
	for i := range t.Fields {
		if key&0x1 != 0 {
			t.Fields[i].Flags |= FieldFlowKey
		} else {
			t.Fields[i].Flags &^= FieldFlowKey
		}
		key >>= 1
	}
	return nil
}

// FlowKeyCmp reports whether t's currently applied flow-key mask (if any)
// matches flowKey: 0 if they match, non-zero otherwise. It never mutates t.
func (t *Template) FlowKeyCmp(flowKey uint64) int {
	wantApplied := flowKey != 0
	isApplied := t.Flags.Has(TemplateHasFlowKey)

	if !wantApplied && !isApplied {
		return 0
	}
	if wantApplied != isApplied {
		return 1
	}

	if flowKeyHighestBit(flowKey) > int(t.FieldsTotal) {
		return 1
	}

	key := flowKey
	for i := range t.Fields {
		want := key&0x1 != 0
		got := t.Fields[i].Flags.Has(FieldFlowKey)
		if want != got {
			return 1
		}
		key >>= 1
	}
	return 0
}
