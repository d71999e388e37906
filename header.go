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

// templateHeader is the decoded, structurally validated leading portion of
// a raw Template or Options Template record: the Template ID, total field
// count, and (Options only) scope field count. It says nothing yet about
// the fields themselves.
type templateHeader struct {
	id          uint16
	fieldsTotal uint16
	fieldsScope uint16
}

// parseHeader reads a template record header from c. withdrawn reports a
// Template Withdrawal (RFC 7011 §8.1): a field count of zero, after which
// no Field Specifiers follow and fieldsScope carries no meaning. The
// reserved-ID check applies unconditionally, including to withdrawals;
// only the scope-count checks are skipped for them, since a withdrawal
// carries no scope fields to validate.
func parseHeader(c *wireCursor, typ Type) (h templateHeader, withdrawn bool, err error) {
	id, ok := c.uint16()
	if !ok {
		return templateHeader{}, false, formatErrorf("truncated template header: missing template ID")
	}
	count, ok := c.uint16()
	if !ok {
		return templateHeader{}, false, formatErrorf("truncated template header: missing field count")
	}

	if id < MinTemplateID {
		return templateHeader{}, false, formatErrorf("template ID %d is reserved", id)
	}

	h.id = id
	h.fieldsTotal = count

	if typ == Options && count != 0 {
		// An Options Template header is a superset of a Normal Template
		// header; the scope field count only appears, and only needs to be
		// read, when this isn't a withdrawal.
		scope, ok := c.uint16()
		if !ok {
			return templateHeader{}, false, formatErrorf("truncated options template header: missing scope field count")
		}
		h.fieldsScope = scope
	}

	if count == 0 {
		return h, true, nil
	}

	if typ == Options {
		if h.fieldsScope == 0 {
			return templateHeader{}, false, formatErrorf("options template %d declares zero scope fields", id)
		}
		if h.fieldsScope > h.fieldsTotal {
			return templateHeader{}, false,
				formatErrorf("options template %d scope field count %d exceeds total field count %d", id, h.fieldsScope, h.fieldsTotal)
		}
	}

	return h, false, nil
}
