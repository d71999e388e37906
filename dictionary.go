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
	"fmt"
	"sync"

	"github.com/zoomoid/go-ipfix-templates/iana/semantics"
	"github.com/zoomoid/go-ipfix-templates/iana/status"
)

// DataType identifies the wire data type of an Information Element, as far
// as the template engine cares: only the three structured (RFC 6313) kinds
// are distinguished from "everything else", since structuredness is the
// only data-type fact IEBinder needs.
type DataType int

const (
	// Unclassified covers every IPFIX abstract data type that is not one of
	// the three structured list types below.
	Unclassified DataType = iota
	// BasicList is the basicList abstract data type (RFC 6313 §4.5.1).
	BasicList
	// SubTemplateList is the subTemplateList abstract data type (RFC 6313 §4.5.2).
	SubTemplateList
	// SubTemplateMultiList is the subTemplateMultiList abstract data type (RFC 6313 §4.5.3).
	SubTemplateMultiList
)

func (d DataType) structured() bool {
	switch d {
	case BasicList, SubTemplateList, SubTemplateMultiList:
		return true
	default:
		return false
	}
}

func (d DataType) String() string {
	switch d {
	case BasicList:
		return "basicList"
	case SubTemplateList:
		return "subTemplateList"
	case SubTemplateMultiList:
		return "subTemplateMultiList"
	default:
		return "unclassified"
	}
}

// IEKey identifies an Information Element by its (enterprise number, id)
// pair, the same key a Field Specifier carries on the wire.
type IEKey struct {
	EnterpriseID uint32
	ID           uint16
}

func (k IEKey) String() string {
	return fmt.Sprintf("%d:%d", k.EnterpriseID, k.ID)
}

// IEDefinition is the semantic information a dictionary binds to an
// (enterprise, id) pair: a PEN/ID identifying the element, a DataType used
// to decide structuredness, an IsReverse flag and, for forward elements, a
// ReverseElem back-reference used by biflow classification, and a Name
// used for the "source"/"destination" prefix convention of RFC 5103.
type IEDefinition struct {
	PEN  uint32
	ID   uint16
	Name string

	DataType  DataType
	Semantics semantics.Semantic
	Status    status.Status
	// Units is the element's measurement unit (RFC 5610 §3.4), e.g.
	// units.Octets or units.Seconds. Purely descriptive metadata: nothing in
	// the template engine itself branches on it, but it travels with the
	// rest of an IE Type Options Template record's payload, so a dictionary
	// populated from one (see the Information Element Type Options Template
	// classified by OptsIEType) has somewhere to put it.
	Units string

	// IsReverse is true if this element itself carries the reverse-direction
	// value of a biflow pair (RFC 5103), as opposed to being the common key
	// or the forward-direction value.
	IsReverse bool
	// ReverseElem is the counterpart forward/reverse element of this one, if
	// the dictionary models the pair explicitly. Nil if this element has no
	// known reverse counterpart (including when IsReverse is itself true and
	// the dictionary does not also store the back-reference).
	ReverseElem *IEDefinition
}

func (d *IEDefinition) key() IEKey {
	return IEKey{EnterpriseID: d.PEN, ID: d.ID}
}

// IEMgr is the external Information Element dictionary collaborator
// described in spec §6: a lookup from (enterprise, id) to an IEDefinition,
// supplied by whatever owns the collector's IE registry. The template
// engine only ever reads from it; it never mutates or owns entries
// returned by Lookup, matching the "weak reference" contract in §5 and
// §9 — definitions borrowed from an IEMgr must outlive any Template bound
// against it, and a later definition replacement requires a fresh call to
// BindInformationElements.
type IEMgr interface {
	// Lookup returns the definition for (en, id), and whether it was found.
	Lookup(en uint32, id uint16) (*IEDefinition, bool)
}

// MemoryDictionary is a simple concurrency-safe, in-memory IEMgr, suitable
// for tests and for collectors that load their IE registry once at
// startup: a RWMutex-guarded map keyed by (enterprise, id).
type MemoryDictionary struct {
	mu   sync.RWMutex
	defs map[IEKey]*IEDefinition
}

var _ IEMgr = (*MemoryDictionary)(nil)

// NewMemoryDictionary creates an empty dictionary. Use Add or one of the
// Load* functions to populate it before binding templates against it.
func NewMemoryDictionary() *MemoryDictionary {
	return &MemoryDictionary{defs: make(map[IEKey]*IEDefinition)}
}

// Add inserts or replaces a definition. Add does not automatically wire up
// ReverseElem for either direction of a biflow pair; callers that want
// biflow classification to see the forward element's reverse counterpart
// must set IEDefinition.ReverseElem themselves (see LinkReverse).
func (d *MemoryDictionary) Add(def *IEDefinition) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.defs[def.key()] = def
}

// LinkReverse records that forward and reverse are a biflow pair: forward
// gets reverse as its ReverseElem. It does not mark reverse.IsReverse;
// callers are expected to have set that when constructing/loading reverse.
func (d *MemoryDictionary) LinkReverse(forward, reverse *IEDefinition) {
	d.mu.Lock()
	defer d.mu.Unlock()
	forward.ReverseElem = reverse
}

// Lookup implements IEMgr.
func (d *MemoryDictionary) Lookup(en uint32, id uint16) (*IEDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	def, ok := d.defs[IEKey{EnterpriseID: en, ID: id}]
	return def, ok
}

// Len returns the number of definitions currently held.
func (d *MemoryDictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.defs)
}
