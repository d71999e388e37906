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

// deriveFieldFlags sets FieldScope, FieldMultiIE and FieldLastIE on fields,
// the three per-field flags derivable purely from a template's structure
// (everything else needs the IE dictionary; see BindInformationElements).
//
// Scope labeling is a simple prefix: the first fieldsScope entries are
// scope fields, full stop.
//
// Multi/last labeling scans right to left so that the first (id, en) pair
// encountered is the rightmost one in the template, i.e. FieldLastIE. A
// 64-bit occurrence bitmap keyed on id%64 lets most fields skip the linear
// scan entirely; only when the bitmap reports a (possibly spurious, since
// the key is reduced mod 64) collision do we fall back to an exact
// comparison against every field seen so far.
func deriveFieldFlags(fields []Field, fieldsScope uint16) {
	for i := uint16(0); i < fieldsScope && int(i) < len(fields); i++ {
		fields[i].Flags |= FieldScope
	}

	var seen uint64
	for i := len(fields) - 1; i >= 0; i-- {
		f := &fields[i]
		bit := uint64(1) << (uint(f.ID) % 64)

		if seen&bit != 0 {
			duplicate := false
			for j := i + 1; j < len(fields); j++ {
				if fields[j].ID == f.ID && fields[j].EnterpriseNumber == f.EnterpriseNumber {
					f.Flags |= FieldMultiIE
					fields[j].Flags |= FieldMultiIE
					duplicate = true
					break
				}
			}
			if duplicate {
				seen |= bit
				continue
			}
		}

		f.Flags |= FieldLastIE
		seen |= bit
	}
}

// deriveLayout assigns each field's Offset and reports the template's
// minimum Data Record length plus whether any field is variable-length.
// Once a variable-length field is seen, every later field's offset is
// undefined (VariableLength) since its real position depends on the actual
// per-record length of everything before it; a variable-length field
// itself still contributes exactly 1 byte to the minimum length (the
// smallest a variable-length encoding can be).
func deriveLayout(fields []Field) (dataLength int, hasDynamic bool) {
	var total uint32
	offset := uint16(0)

	for i := range fields {
		f := &fields[i]
		f.Offset = offset

		if f.Length == VariableLength {
			hasDynamic = true
			total++
			offset = VariableLength
			continue
		}

		total += uint32(f.Length)
		if offset != VariableLength {
			offset += f.Length
		}
	}

	return int(total), hasDynamic
}

// hasMultiIE reports whether any field carries FieldMultiIE.
func hasMultiIE(fields []Field) bool {
	for i := range fields {
		if fields[i].Flags.Has(FieldMultiIE) {
			return true
		}
	}
	return false
}
