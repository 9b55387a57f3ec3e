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
	"os"
	"path/filepath"
	"unicode/utf8"

	"dirpx.dev/dxstr/dxcore/model"
	"gopkg.in/yaml.v3"
)

// NativePath is an owned buffer holding a filesystem path in the operating
// system's native representation.
//
// Structurally a NativePath is the same opaque buffer as EnvString: it MAY
// hold bytes that are not valid UTF-8, and Validate accepts every value.
// The separate type keeps an environment value from being passed where a
// path is expected without an explicit conversion.
//
// Paths are never validated, cleaned or canonicalized. Equality is
// byte-for-byte, so "a/b" and "a//b" are different values.
//
// The zero value is the empty path.
//
// Example:
//
//	var p osstr.NativePath
//	p.Push("srv")
//	p.Push("data")
//	fmt.Println(osstr.PathToText(p)) // "srv/data" on Unix
type NativePath string

// Compile-time verification that NativePath implements model.Model interface.
var _ model.Model = (*NativePath)(nil)

// NativePathFromBytes returns a NativePath holding a copy of b.
func NativePathFromBytes(b []byte) NativePath {
	return NativePath(b)
}

// Push extends the path with elem.
//
//   - If elem is absolute, or starts with a path separator, it replaces the
//     whole path.
//   - Otherwise, if the path is non-empty and does not already end in a
//     separator, os.PathSeparator is appended before elem.
//   - Pushing onto an empty path yields exactly elem.
//
// Push does not clean the result: "." and ".." elements and repeated
// separators inside elem are kept as given. Pushing "" onto a non-empty path
// that lacks a trailing separator appends one.
//
// Push is the only NativePath method that mutates its receiver. It is not
// safe for concurrent use with any other access to the same variable.
func (p *NativePath) Push(elem string) {
	switch {
	case isRooted(elem) || *p == "":
		*p = NativePath(elem)
	case os.IsPathSeparator((*p)[len(*p)-1]):
		*p += NativePath(elem)
	default:
		*p += NativePath(string(os.PathSeparator) + elem)
	}
}

func isRooted(elem string) bool {
	return filepath.IsAbs(elem) || (elem != "" && os.IsPathSeparator(elem[0]))
}

// Bytes returns a copy of the raw content.
func (p NativePath) Bytes() []byte {
	return []byte(p)
}

// Len returns the length of the path in bytes.
func (p NativePath) Len() int {
	return len(p)
}

// IsText reports whether the path holds valid UTF-8, in which case
// PathToText is lossless.
func (p NativePath) IsText() bool {
	return utf8.ValidString(string(p))
}

// String returns the lossy text form of the whole path.
func (p NativePath) String() string {
	return string(PathToText(p))
}

// Redacted returns only the final element of the path, prefixed with
// ".../" when the path has a parent. Leading directories frequently carry
// user names (for example /home/alice), so they are never shown.
//
//	NativePath("/home/alice/project").Redacted() // ".../project"
//	NativePath("project").Redacted()             // "project"
func (p NativePath) Redacted() string {
	if p == "" {
		return ""
	}

	text := string(PathToText(p))
	base := filepath.Base(text)
	if base == text {
		return base
	}
	return ".../" + base
}

// TypeName returns "NativePath".
func (p NativePath) TypeName() string {
	return "NativePath"
}

// IsZero reports whether the path is empty.
func (p NativePath) IsZero() bool {
	return p == ""
}

// Equal reports whether both paths hold the same bytes.
func (p NativePath) Equal(other NativePath) bool {
	return p == other
}

// Clone returns p. The bytes of a Go string are immutable, so the copy
// shares nothing that could be modified.
func (p NativePath) Clone() NativePath {
	return p
}

// Validate always returns nil: any byte sequence is a valid NativePath.
func (p NativePath) Validate() error {
	return nil
}

// MarshalJSON encodes the path as a JSON string when it is valid UTF-8 and
// as {"base64": "..."} otherwise, so no byte is lost.
func (p NativePath) MarshalJSON() ([]byte, error) {
	return marshalRawJSON(string(p))
}

// UnmarshalJSON accepts both forms written by MarshalJSON. JSON null is
// rejected.
func (p *NativePath) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalRawJSON(p.TypeName(), data)
	if err != nil {
		return err
	}
	*p = NativePath(raw)
	return nil
}

// MarshalYAML encodes the path as a YAML string, double-quoted when it holds
// a line break or a tab. yaml.v3 writes content that is not valid UTF-8 as a
// base64 !!binary scalar.
func (p NativePath) MarshalYAML() (interface{}, error) {
	return yamlScalar(string(p)), nil
}

// UnmarshalYAML decodes a plain or !!binary scalar into the path.
func (p *NativePath) UnmarshalYAML(node *yaml.Node) error {
	raw, err := unmarshalRawYAML(p.TypeName(), node)
	if err != nil {
		return err
	}
	*p = NativePath(raw)
	return nil
}
