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
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates malformed wire input: a truncated header or field
	// list, a reserved template ID, a zero or out-of-range scope count, a
	// data record whose minimum length exceeds what fits in an IPFIX
	// message, or a flow key wider than the template's field count. It is
	// not recoverable for the record in question; the caller must skip or
	// drop it.
	ErrFormat error = errors.New("malformed template")

	// ErrMemory indicates an allocation failure while constructing or
	// copying a template. The Go runtime does not expose allocation failure
	// as a recoverable error, so this is effectively unreachable in
	// practice; it is retained for API parity with the two-error-kind
	// contract this package's callers are written against, and so a future
	// arena/pool-backed allocator has somewhere to report to.
	ErrMemory error = errors.New("template allocation failed")
)

// formatErrorf wraps ErrFormat with additional context, so callers can
// still use errors.Is(err, ErrFormat) after formatting.
func formatErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrFormat}, args...)...)
}
