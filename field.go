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

import "fmt"

// Field is one parsed and annotated Field Specifier of a Template: an IE
// reference plus the flags and layout information derived for it. Fields
// never outlive their owning Template; Def is a weak (borrowed) reference
// into whatever IEMgr was last passed to BindInformationElements, not an
// owned copy.
type Field struct {
	// ID is the 15-bit Information Element id, with the enterprise bit
	// already stripped.
	ID uint16
	// EnterpriseNumber is the Private Enterprise Number the field's IE is
	// scoped to, or 0 for the IANA (no-enterprise) namespace.
	EnterpriseNumber uint32
	// Length is the field's wire length in bytes, or VariableLength if the
	// field's actual per-record length is only known at Data Record decode
	// time.
	Length uint16
	// Offset is this field's byte offset within a conforming Data Record,
	// or VariableLength if any preceding field in the template is itself
	// variable-length (making every subsequent offset undefined until the
	// record is actually decoded).
	Offset uint16

	Flags FieldFlag

	// Def is the IE definition IEBinder bound this field to, or nil if the
	// field has never been bound, or was bound against a dictionary with no
	// matching entry.
	Def *IEDefinition
}

// Variable reports whether this field is variable-length.
func (f *Field) Variable() bool {
	return f.Length == VariableLength
}

// Name returns the bound IE's name, or "" if unbound.
func (f *Field) Name() string {
	if f.Def == nil {
		return ""
	}
	return f.Def.Name
}

func (f Field) String() string {
	return fmt.Sprintf("{en=%d,id=%d,length=%d,offset=%d,flags=%s}",
		f.EnterpriseNumber, f.ID, f.Length, f.Offset, f.Flags)
}
