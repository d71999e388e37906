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

// parseFieldSpecifier reads one Field Specifier (RFC 7011 §3.2) off c: a
// 15-bit IE id plus its enterprise bit, a 16-bit length, and (only if the
// enterprise bit was set) a 32-bit Enterprise Number.
func parseFieldSpecifier(c *wireCursor) (Field, error) {
	raw, ok := c.uint16()
	if !ok {
		return Field{}, formatErrorf("truncated field specifier: missing IE id")
	}
	length, ok := c.uint16()
	if !ok {
		return Field{}, formatErrorf("truncated field specifier: missing field length")
	}

	var f Field
	f.Length = length

	if raw&enterpriseBit == 0 {
		f.ID = raw
		return f, nil
	}

	en, ok := c.uint32()
	if !ok {
		return Field{}, formatErrorf("truncated field specifier: missing enterprise number")
	}
	f.ID = raw & fieldIDMask
	f.EnterpriseNumber = en
	return f, nil
}

// parseFieldSpecifiers reads count consecutive Field Specifiers off c.
func parseFieldSpecifiers(c *wireCursor, count uint16) ([]Field, error) {
	fields := make([]Field, count)
	for i := range fields {
		f, err := parseFieldSpecifier(c)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}
