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

import "strings"

// FieldFlag is a bitset over per-field properties derived while parsing
// and binding a single Field Specifier.
type FieldFlag uint16

const (
	// FieldScope marks a field as one of the leading scope fields of an
	// Options Template. Never set for Normal templates.
	FieldScope FieldFlag = 1 << iota
	// FieldMultiIE marks a field whose (enterprise, id) pair occurs more
	// than once in the template.
	FieldMultiIE
	// FieldLastIE marks the single, rightmost occurrence of a given
	// (enterprise, id) pair in the template.
	FieldLastIE
	// FieldReverse marks a field whose bound IE definition is itself a
	// reverse-direction element (RFC 5103).
	FieldReverse
	// FieldStructured marks a field whose bound IE definition has a
	// structured data type (basicList, subTemplateList,
	// subTemplateMultiList; RFC 6313).
	FieldStructured
	// FieldFlowKey marks a field selected by the current flow-key mask.
	FieldFlowKey
	// FieldBiflowCommon marks a field that carries a value shared by both
	// directions of a biflow record rather than a direction-specific value.
	FieldBiflowCommon
	// FieldBiflowSource marks a FieldBiflowCommon field whose IE name
	// begins with "source".
	FieldBiflowSource
	// FieldBiflowDest marks a FieldBiflowCommon field whose IE name begins
	// with "destination".
	FieldBiflowDest
)

var fieldFlagNames = []struct {
	flag FieldFlag
	name string
}{
	{FieldScope, "SCOPE"},
	{FieldMultiIE, "MULTI_IE"},
	{FieldLastIE, "LAST_IE"},
	{FieldReverse, "REVERSE"},
	{FieldStructured, "STRUCTURED"},
	{FieldFlowKey, "FLOW_KEY"},
	{FieldBiflowCommon, "BKEY_COM"},
	{FieldBiflowSource, "BKEY_SRC"},
	{FieldBiflowDest, "BKEY_DST"},
}

// Has reports whether all bits in mask are set in f.
func (f FieldFlag) Has(mask FieldFlag) bool {
	return f&mask == mask
}

func (f FieldFlag) String() string {
	var names []string
	for _, nf := range fieldFlagNames {
		if f.Has(nf.flag) {
			names = append(names, nf.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// TemplateFlag is a bitset over per-template properties derived by
// summarizing the template's fields.
type TemplateFlag uint16

const (
	// TemplateHasMultiIE is set iff some field has FieldMultiIE set.
	TemplateHasMultiIE TemplateFlag = 1 << iota
	// TemplateHasDynamic is set iff some field has a variable length.
	TemplateHasDynamic
	// TemplateHasReverse is set iff some field is bound to a reverse IE.
	TemplateHasReverse
	// TemplateHasStruct is set iff some field is bound to a structured IE.
	TemplateHasStruct
	// TemplateHasFlowKey is set iff a non-zero flow-key mask is currently
	// applied to the template.
	TemplateHasFlowKey
)

var templateFlagNames = []struct {
	flag TemplateFlag
	name string
}{
	{TemplateHasMultiIE, "HAS_MULTI_IE"},
	{TemplateHasDynamic, "HAS_DYNAMIC"},
	{TemplateHasReverse, "HAS_REVERSE"},
	{TemplateHasStruct, "HAS_STRUCT"},
	{TemplateHasFlowKey, "HAS_FKEY"},
}

// Has reports whether all bits in mask are set in f.
func (f TemplateFlag) Has(mask TemplateFlag) bool {
	return f&mask == mask
}

func (f TemplateFlag) String() string {
	var names []string
	for _, nf := range templateFlagNames {
		if f.Has(nf.flag) {
			names = append(names, nf.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// OptionsType is a bitset identifying which well-known Options Template
// subtypes (RFC 7011 §4, RFC 5610 §3.9) a template matches. More than one
// bit may be set; the four detectors in options_classifier.go are
// independent of one another.
type OptionsType uint16

const (
	// OptsMeteringProcessStat identifies "The Metering Process Statistics
	// Options Template" (RFC 7011 §4.1).
	OptsMeteringProcessStat OptionsType = 1 << iota
	// OptsMeteringProcessReliabilityStat identifies "The Metering Process
	// Reliability Statistics Options Template" (RFC 7011 §4.2).
	OptsMeteringProcessReliabilityStat
	// OptsExportingProcessReliabilityStat identifies "The Exporting Process
	// Reliability Statistics Options Template" (RFC 7011 §4.3).
	OptsExportingProcessReliabilityStat
	// OptsFlowKeys identifies "The Flow Keys Options Template" (RFC 7011 §4.4).
	OptsFlowKeys
	// OptsIEType identifies "The Information Element Type Options Template"
	// (RFC 5610 §3.9).
	OptsIEType
)

var optionsTypeNames = []struct {
	flag OptionsType
	name string
}{
	{OptsMeteringProcessStat, "MPROC_STAT"},
	{OptsMeteringProcessReliabilityStat, "MPROC_RELIABILITY_STAT"},
	{OptsExportingProcessReliabilityStat, "EPROC_RELIABILITY_STAT"},
	{OptsFlowKeys, "FKEYS"},
	{OptsIEType, "IE_TYPE"},
}

// Has reports whether all bits in mask are set in f.
func (f OptionsType) Has(mask OptionsType) bool {
	return f&mask == mask
}

func (f OptionsType) String() string {
	var names []string
	for _, nf := range optionsTypeNames {
		if f.Has(nf.flag) {
			names = append(names, nf.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}
