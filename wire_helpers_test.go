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

import "encoding/binary"

// fieldSpec is a compact description of one Field Specifier, used to build
// raw wire bytes for tests without hand-counting octets.
type fieldSpec struct {
	id     uint16
	en     uint32
	length uint16
}

func putUint16(buf []byte, v uint16) []byte {
	tmp := make([]byte, 2)
	binary.BigEndian.PutUint16(tmp, v)
	return append(buf, tmp...)
}

func putUint32(buf []byte, v uint32) []byte {
	tmp := make([]byte, 4)
	binary.BigEndian.PutUint32(tmp, v)
	return append(buf, tmp...)
}

func encodeFields(specs []fieldSpec) []byte {
	var buf []byte
	for _, s := range specs {
		id := s.id
		if s.en != 0 {
			id |= enterpriseBit
		}
		buf = putUint16(buf, id)
		buf = putUint16(buf, s.length)
		if s.en != 0 {
			buf = putUint32(buf, s.en)
		}
	}
	return buf
}

// buildTemplate encodes a Normal Template record.
func buildTemplate(id uint16, specs []fieldSpec) []byte {
	var buf []byte
	buf = putUint16(buf, id)
	buf = putUint16(buf, uint16(len(specs)))
	buf = append(buf, encodeFields(specs)...)
	return buf
}

// buildOptionsTemplate encodes an Options Template record.
func buildOptionsTemplate(id uint16, scopeCount uint16, specs []fieldSpec) []byte {
	var buf []byte
	buf = putUint16(buf, id)
	buf = putUint16(buf, uint16(len(specs)))
	buf = putUint16(buf, scopeCount)
	buf = append(buf, encodeFields(specs)...)
	return buf
}

// buildWithdrawal encodes a Template Withdrawal record (field count 0).
func buildWithdrawal(id uint16) []byte {
	var buf []byte
	buf = putUint16(buf, id)
	buf = putUint16(buf, 0)
	return buf
}
