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

// Well-known IANA Information Element IDs used by the four Options
// Template detectors below. All are IANA (enterprise number 0) elements.
const (
	ieObservationDomainID = 149 // observationDomainId
	ieMeteringProcessID    = 143 // meteringProcessId

	ieExporterIPv4Address = 130 // exporterIPv4Address
	ieExporterIPv6Address = 131 // exporterIPv6Address
	ieExportingProcessID  = 144 // exportingProcessId

	ieTemplateID = 145 // templateId

	ieExportedOctetTotalCount      = 40  // exportedOctetTotalCount
	ieExportedMessageTotalCount    = 41  // exportedMessageTotalCount
	ieExportedFlowRecordTotalCount = 42  // exportedFlowRecordTotalCount
	ieIgnoredPacketTotalCount      = 164 // ignoredPacketTotalCount
	ieIgnoredOctetTotalCount       = 165 // ignoredOctetTotalCount
	ieNotSentFlowTotalCount        = 166 // notSentFlowTotalCount
	ieNotSentPacketTotalCount      = 167 // notSentPacketTotalCount
	ieNotSentOctetTotalCount       = 168 // notSentOctetTotalCount
	ieFlowKeyIndicator             = 173 // flowKeyIndicator

	ieInformationElementID       = 303 // informationElementId
	ieInformationElementDataType = 339 // informationElementDataType
	ieInformationElementName     = 341 // informationElementName
	ieInformationElementSemantics = 344 // informationElementSemantics
	iePrivateEnterpriseNumber    = 346 // privateEnterpriseNumber

	// observationTimeSeconds (322) .. observationTimeNanoseconds (325): the
	// four precisions of the same logical quantity, one octet ID apart.
	ieObservationTimeSecondsMin = 322
	ieObservationTimeSecondsMax = 325
)

// find returns the first field in fields whose (en, id) pair matches,
// scanning scope and non-scope fields alike, or nil if none matches.
func find(fields []Field, en uint32, id uint16) *Field {
	for i := range fields {
		if fields[i].ID == id && fields[i].EnterpriseNumber == en {
			return &fields[i]
		}
	}
	return nil
}

// hasRequired reports whether every (en, id) pair in want appears among the
// non-scope fields of the template (indices [fieldsScope:]). Scope fields
// are deliberately excluded: a required field present only in scope is not
// a match.
func hasRequired(fields []Field, fieldsScope uint16, want [][2]uint32) bool {
	nonScope := fields[fieldsScope:]
	for _, w := range want {
		en, id := w[0], uint16(w[1])
		found := false
		for i := range nonScope {
			if nonScope[i].EnterpriseNumber == en && nonScope[i].ID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// hasObservationTimeInterval reports whether exactly two of the four
// observationTimeXXX precisions appear among the non-scope IANA fields.
// More than two is treated the same as fewer than two: not a match.
func hasObservationTimeInterval(fields []Field, fieldsScope uint16) bool {
	matches := 0
	for _, f := range fields[fieldsScope:] {
		if f.EnterpriseNumber != 0 {
			continue
		}
		if f.ID < ieObservationTimeSecondsMin || f.ID > ieObservationTimeSecondsMax {
			continue
		}
		matches++
		if matches > 2 {
			return false
		}
	}
	return matches == 2
}

// classifyMeteringProcess detects the Metering Process Statistics and
// Metering Process Reliability Statistics Options Templates (RFC 7011
// §4.1-4.2). Both require observationDomainId and/or meteringProcessId to
// appear, as scope fields, exactly once.
func classifyMeteringProcess(fields []Field, fieldsScope uint16) OptionsType {
	odid := find(fields, 0, ieObservationDomainID)
	mpid := find(fields, 0, ieMeteringProcessID)
	if odid == nil && mpid == nil {
		return 0
	}

	for _, f := range []*Field{odid, mpid} {
		if f == nil {
			continue
		}
		if !f.Flags.Has(FieldScope) {
			return 0
		}
		if f.Flags.Has(FieldMultiIE) {
			return 0
		}
	}

	var result OptionsType

	if hasRequired(fields, fieldsScope, [][2]uint32{
		{0, ieExportedOctetTotalCount},
		{0, ieExportedMessageTotalCount},
		{0, ieExportedFlowRecordTotalCount},
	}) {
		result |= OptsMeteringProcessStat
	}

	if !hasRequired(fields, fieldsScope, [][2]uint32{
		{0, ieIgnoredPacketTotalCount},
		{0, ieIgnoredOctetTotalCount},
	}) {
		return result
	}

	if hasObservationTimeInterval(fields, fieldsScope) {
		result |= OptsMeteringProcessReliabilityStat
	}

	return result
}

// classifyExportingProcess detects the Exporting Process Reliability
// Statistics Options Template (RFC 7011 §4.3). Unlike the Metering Process
// detector, only one of the three candidate identifier fields needs to be
// present as a (non-duplicated) scope field, checked in declared order.
func classifyExportingProcess(fields []Field, fieldsScope uint16) OptionsType {
	candidates := []uint16{ieExporterIPv4Address, ieExporterIPv6Address, ieExportingProcessID}

	found := false
	for _, id := range candidates {
		f := find(fields, 0, id)
		if f == nil {
			continue
		}
		if f.Flags.Has(FieldScope) && f.Flags.Has(FieldLastIE) {
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	if !hasRequired(fields, fieldsScope, [][2]uint32{
		{0, ieNotSentFlowTotalCount},
		{0, ieNotSentPacketTotalCount},
		{0, ieNotSentOctetTotalCount},
	}) {
		return 0
	}

	if hasObservationTimeInterval(fields, fieldsScope) {
		return OptsExportingProcessReliabilityStat
	}
	return 0
}

// classifyFlowKeys detects the Flow Keys Options Template (RFC 7011 §4.4):
// a templateId scope field (present exactly once) plus a flowKeyIndicator
// non-scope field.
func classifyFlowKeys(fields []Field, fieldsScope uint16) OptionsType {
	f := find(fields, 0, ieTemplateID)
	if f == nil {
		return 0
	}
	if !f.Flags.Has(FieldScope) || f.Flags.Has(FieldMultiIE) {
		return 0
	}

	if hasRequired(fields, fieldsScope, [][2]uint32{{0, ieFlowKeyIndicator}}) {
		return OptsFlowKeys
	}
	return 0
}

// classifyIEType detects the Information Element Type Options Template
// (RFC 5610 §3.9): informationElementId and privateEnterpriseNumber as
// (non-duplicated) scope fields, plus the three descriptive non-scope
// fields.
func classifyIEType(fields []Field, fieldsScope uint16) OptionsType {
	ieID := find(fields, 0, ieInformationElementID)
	pen := find(fields, 0, iePrivateEnterpriseNumber)

	for _, f := range []*Field{ieID, pen} {
		if f == nil {
			return 0
		}
		if !f.Flags.Has(FieldScope) {
			return 0
		}
		if f.Flags.Has(FieldMultiIE) {
			return 0
		}
	}

	if hasRequired(fields, fieldsScope, [][2]uint32{
		{0, ieInformationElementDataType},
		{0, ieInformationElementSemantics},
		{0, ieInformationElementName},
	}) {
		return OptsIEType
	}
	return 0
}

// classifyOptions runs all four independent Options Template subtype
// detectors and returns the union of whatever matched. fields must already
// have their FieldScope, FieldMultiIE and FieldLastIE flags set (see
// deriveFieldFlags); the detectors do not themselves look past the fields
// slice they are given.
func classifyOptions(fields []Field, fieldsScope uint16) OptionsType {
	return classifyMeteringProcess(fields, fieldsScope) |
		classifyExportingProcess(fields, fieldsScope) |
		classifyFlowKeys(fields, fieldsScope) |
		classifyIEType(fields, fieldsScope)
}
