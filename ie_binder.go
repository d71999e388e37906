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

// BindInformationElements looks up every field of t against mgr and updates
// Field.Def, FieldReverse, FieldStructured, TemplateHasReverse and
// TemplateHasStruct to match. It also recomputes the biflow key flags
// (FieldBiflowCommon, FieldBiflowSource, FieldBiflowDest), clearing them
// first regardless of preserve.
//
// If preserve is true, a field that already has a non-nil Def keeps it
// untouched (no re-lookup); this lets a caller rebind only newly-added
// definitions after extending an IEMgr, without forcing every previously
// bound field through dictionary lookup again. If mgr is nil and preserve
// is true, BindInformationElements returns immediately and changes nothing,
// the biflow key flags included.
//
// Def is a weak reference: mgr must outlive t, and a later call against a
// different (or mutated) mgr is the only way to change what a field is
// bound to.
func BindInformationElements(t *Template, mgr IEMgr, preserve bool) {
	if mgr == nil && preserve {
		return
	}

	var hasReverse, hasStruct bool

	for i := range t.Fields {
		f := &t.Fields[i]
		f.Flags &^= FieldBiflowCommon | FieldBiflowSource | FieldBiflowDest

		if preserve && f.Def != nil {
			if f.Flags.Has(FieldReverse) {
				hasReverse = true
			}
			if f.Flags.Has(FieldStructured) {
				hasStruct = true
			}
			continue
		}

		f.Flags &^= FieldReverse | FieldStructured

		var def *IEDefinition
		if mgr != nil {
			if d, ok := mgr.Lookup(f.EnterpriseNumber, f.ID); ok {
				def = d
			}
		}
		f.Def = def
		if def == nil {
			continue
		}

		if def.IsReverse {
			f.Flags |= FieldReverse
			hasReverse = true
		}
		if def.DataType.structured() {
			f.Flags |= FieldStructured
			hasStruct = true
		}
	}

	if hasReverse {
		t.Flags |= TemplateHasReverse
	} else {
		t.Flags &^= TemplateHasReverse
	}
	if hasStruct {
		t.Flags |= TemplateHasStruct
	} else {
		t.Flags &^= TemplateHasStruct
	}

	IEBindingsTotal.Inc()

	if hasReverse {
		classifyBiflow(t)
	}
}

// classifyBiflow assigns the biflow key flags to every field of t once at
// least one field is known to be reverse-direction. A field is a common
// (shared-value) biflow key unless it is itself the reverse half of a pair,
// or its forward definition's known reverse counterpart is also present in
// this same template (in which case that other field carries the reverse
// value, and this one is the forward value — neither is "common"). Common
// fields are further classified as source- or destination-side by the
// RFC 5103 name convention when the bound definition has a name to check.
func classifyBiflow(t *Template) {
	for i := range t.Fields {
		f := &t.Fields[i]
		def := f.Def

		if def != nil {
			if def.IsReverse {
				continue
			}
			if def.ReverseElem != nil {
				if find(t.Fields, def.ReverseElem.PEN, def.ReverseElem.ID) != nil {
					continue
				}
			}
		}

		f.Flags |= FieldBiflowCommon
		if def == nil || def.Name == "" {
			continue
		}

		name := def.Name
		if hasASCIIPrefixFold(name, biflowSourcePrefix) {
			f.Flags |= FieldBiflowSource
		} else if hasASCIIPrefixFold(name, biflowDestPrefix) {
			f.Flags |= FieldBiflowDest
		}
	}
}
