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
	"encoding/csv"
	"io"
	"strconv"
)

// MustLoadDictionaryCSV is like LoadDictionaryCSV but panics on error.
func MustLoadDictionaryCSV(r io.Reader) *MemoryDictionary {
	d, err := LoadDictionaryCSV(r)
	if err != nil {
		panic(err)
	}
	return d
}

// LoadDictionaryCSV reads a CSV IE registry in the column order IANA
// publishes its "IPFIX Information Elements" registry in:
//
//	elementId,name,dataType,dataTypeSemantics,status,units
//
// and returns a populated MemoryDictionary. Rows with an empty or
// unparseable elementId are skipped; this mirrors the IANA export, which
// includes header and reserved-range rows that carry no usable id. PEN
// and reverse-element wiring are not part of the IANA export; use Add or
// LinkReverse on the returned dictionary afterwards for enterprise-specific
// or biflow-aware entries.
func LoadDictionaryCSV(r io.Reader) (*MemoryDictionary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// header row
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return NewMemoryDictionary(), nil
		}
		return nil, err
	}

	dict := NewMemoryDictionary()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			continue
		}

		id, err := strconv.ParseUint(record[0], 10, 16)
		if err != nil {
			continue
		}

		def := &IEDefinition{ID: uint16(id)}
		def.Name = record[1]
		if len(record) > 2 {
			def.DataType = dataTypeFromName(record[2])
		}
		if len(record) > 3 && record[3] != "" {
			def.Semantics.UnmarshalText([]byte(record[3]))
		}
		if len(record) > 4 && record[4] != "" {
			def.Status.UnmarshalText([]byte(record[4]))
		}
		if len(record) > 5 {
			def.Units = unitFromName(record[5])
		}

		dict.Add(def)
	}

	return dict, nil
}
