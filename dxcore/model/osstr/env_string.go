/*
   Copyright 2025 The DIRPX Authors

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

package osstr

import (
	"fmt"
	"unicode/utf8"

	"dirpx.dev/dxstr/dxcore/model"
	"gopkg.in/yaml.v3"
)

// EnvString is an owned buffer in the operating system's native string
// representation, as found in environment variable values and command-line
// arguments.
//
// An EnvString MAY hold byte sequences that are not valid UTF-8. It has no
// content invariant: Validate accepts every value, and nothing in this
// package inspects or rewrites the bytes except the lossy conversion to
// Text.
//
// The zero value is the empty buffer.
type EnvString string

// Compile-time verification that EnvString implements model.Model interface.
var _ model.Model = (*EnvString)(nil)

// EnvStringFromBytes returns an EnvString holding a copy of b.
func EnvStringFromBytes(b []byte) EnvString {
	return EnvString(b)
}

// Push appends s to the buffer unchanged.
//
// Push is the only EnvString method that mutates its receiver. It is not
// safe for concurrent use with any other access to the same variable.
func (e *EnvString) Push(s string) {
	*e += EnvString(s)
}

// Bytes returns a copy of the raw content.
func (e EnvString) Bytes() []byte {
	return []byte(e)
}

// Len returns the length of the buffer in bytes.
func (e EnvString) Len() int {
	return len(e)
}

// IsText reports whether the buffer holds valid UTF-8, in which case
// EnvStringToText is lossless.
func (e EnvString) IsText() bool {
	return utf8.ValidString(string(e))
}

// String returns the lossy text form of the buffer. It MAY expose secrets
// held in environment values; use Redacted for logs.
func (e EnvString) String() string {
	return string(EnvStringToText(e))
}

// Redacted returns "EnvString{len:N}". The content is never shown.
func (e EnvString) Redacted() string {
	return fmt.Sprintf("EnvString{len:%d}", len(e))
}

// TypeName returns "EnvString".
func (e EnvString) TypeName() string {
	return "EnvString"
}

// IsZero reports whether the buffer is empty.
func (e EnvString) IsZero() bool {
	return e == ""
}

// Equal reports whether both buffers hold the same bytes.
func (e EnvString) Equal(other EnvString) bool {
	return e == other
}

// Clone returns e. The bytes of a Go string are immutable, so the copy
// shares nothing that could be modified.
func (e EnvString) Clone() EnvString {
	return e
}

// Validate always returns nil: any byte sequence is a valid EnvString.
func (e EnvString) Validate() error {
	return nil
}

// MarshalJSON encodes the buffer as a JSON string when it is valid UTF-8
// and as {"base64": "..."} otherwise, so no byte is lost.
func (e EnvString) MarshalJSON() ([]byte, error) {
	return marshalRawJSON(string(e))
}

// UnmarshalJSON accepts both forms written by MarshalJSON. JSON null is
// rejected.
func (e *EnvString) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalRawJSON(e.TypeName(), data)
	if err != nil {
		return err
	}
	*e = EnvString(raw)
	return nil
}

// MarshalYAML encodes the buffer as a YAML string, double-quoted when it holds
// a line break or a tab. yaml.v3 writes content that is not valid UTF-8 as a
// base64 !!binary scalar.
func (e EnvString) MarshalYAML() (interface{}, error) {
	return yamlScalar(string(e)), nil
}

// UnmarshalYAML decodes a plain or !!binary scalar into the buffer.
func (e *EnvString) UnmarshalYAML(node *yaml.Node) error {
	raw, err := unmarshalRawYAML(e.TypeName(), node)
	if err != nil {
		return err
	}
	*e = EnvString(raw)
	return nil
}
