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

/*
Package ipfix implements the IPFIX (RFC 7011) template engine: parsing raw
Template and Options Template records off the wire, deriving per-field and
per-template flags, classifying well-known Options Template subtypes, and
binding fields against an externally supplied Information Element
dictionary.

It does not decode IPFIX messages, Sets, or Data Records, and it does not
manage template lifetime across an observation domain (withdrawal,
replacement, session bookkeeping). Those are the responsibility of a
transport/session layer and a template manager built on top of this
package. What this package gives that layer is a single entry point,
Parse, that turns a declared template type plus raw bytes into a fully
analyzed *Template, ready to be stored, looked up, and eventually used to
decode Data Records that conform to it.

Related RFCs covered here:

- RFC 7011: Specification of the IP Flow Information Export (IPFIX) Protocol

- RFC 5103: Bidirectional Flow Export Using IP Flow Information Export (IPFIX)

- RFC 5610: Exporting Type Information for IP Flow Information Export (IPFIX) Information Elements

# Historical background

This package started life as the template decoding half of a larger IPFIX
library; that library's data-record and transport layers moved elsewhere,
leaving the template engine as a standalone, dependency-light module
usable by any IPFIX collector regardless of how it decodes Data Records.
*/
package ipfix
