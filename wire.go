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

// wireCursor reads big-endian integers off a bounded byte slice, tracking
// how many bytes have been consumed and reporting truncation instead of
// panicking on a short read. This is the WireReader of the template
// engine: every other parsing component reads through one of these rather
// than indexing the input slice directly.
type wireCursor struct {
	data []byte
	pos  int
}

func newWireCursor(data []byte) *wireCursor {
	return &wireCursor{data: data}
}

// remaining returns the number of unread bytes.
func (c *wireCursor) remaining() int {
	return len(c.data) - c.pos
}

// consumed returns the number of bytes read so far.
func (c *wireCursor) consumed() int {
	return c.pos
}

// uint16 reads a big-endian uint16, or reports truncation.
func (c *wireCursor) uint16() (uint16, bool) {
	if c.remaining() < 2 {
		return 0, false
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, true
}

// uint32 reads a big-endian uint32, or reports truncation.
func (c *wireCursor) uint32() (uint32, bool) {
	if c.remaining() < 4 {
		return 0, false
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, true
}
