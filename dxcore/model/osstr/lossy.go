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
	"encoding/json"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxstr/dxcore/errors"
	"dirpx.dev/dxstr/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Replacement is the sentinel written in place of content that is not
// valid UTF-8: U+FFFD REPLACEMENT CHARACTER, encoded as three bytes.
//
// The sentinel is fixed. It does not depend on the platform.
const Replacement = "\uFFFD"

// Lossy selects how a lossy-safe conversion turns bytes that are not valid
// UTF-8 into Replacement sentinels.
//
// Every policy leaves valid UTF-8 untouched, including a literal U+FFFD
// already present in the input, and every policy produces valid Text for
// any input. They differ only in how many sentinels an invalid sequence
// becomes:
//
//	input             ReplaceRuns   ReplaceBytes   ReplaceSubparts
//	"a\xffb"          "a�b"         "a�b"          "a�b"
//	"\xff\xfe"        "�"           "��"           "��"
//	"\xed\xa0\x80"    "�"           "���"          "���"
//	"\xf0\x90\x80"    "�"           "���"          "�"
//
// The third row is a UTF-8 encoded surrogate, the fourth a four-byte
// sequence cut short.
//
// ReplaceRuns differs from ReplaceSubparts for adjacent invalid bytes:
// "\xff\xfe" yields one sentinel under ReplaceRuns and two under
// ReplaceSubparts. ReplaceSubparts follows the Unicode "maximal subpart"
// practice shared by most lossy UTF-8 decoders outside Go.
//
// The zero value, ReplaceRuns, is the policy used by PathToText and
// EnvStringToText.
type Lossy int

const (
	// ReplaceRuns replaces every maximal run of consecutive invalid bytes
	// with a single sentinel, as strings.ToValidUTF8 does.
	ReplaceRuns Lossy = iota

	// ReplaceBytes replaces every invalid byte with its own sentinel, as
	// ranging over a Go string does.
	ReplaceBytes

	// ReplaceSubparts replaces every maximal subpart of an ill-formed
	// sequence with one sentinel. A subpart is the longest prefix of a
	// well-formed UTF-8 encoding, or a single byte when no such prefix
	// exists.
	ReplaceSubparts
)

// Compile-time check that Lossy implements model.Model interface.
var _ model.Model = (*Lossy)(nil)

// String constants for Lossy values used in serialization, parsing and
// human-facing output. Changing them is a breaking change for
// configuration files that name a policy.
const (
	ReplaceRunsStr     = "replace-runs"
	ReplaceBytesStr    = "replace-bytes"
	ReplaceSubpartsStr = "replace-subparts"
)

// String returns the canonical kebab-case name of the policy, or "unknown"
// for a value outside the defined constants.
func (l Lossy) String() string {
	switch l {
	case ReplaceRuns:
		return ReplaceRunsStr
	case ReplaceBytes:
		return ReplaceBytesStr
	case ReplaceSubparts:
		return ReplaceSubpartsStr
	default:
		return "unknown"
	}
}

// ParseLossy converts a textual policy name into a Lossy value.
//
// Accepted inputs:
//
//	"replace-runs", "ReplaceRuns", "replace_runs", "REPLACE_RUNS"                 -> ReplaceRuns
//	"replace-bytes", "ReplaceBytes", "replace_bytes", "REPLACE_BYTES"             -> ReplaceBytes
//	"replace-subparts", "ReplaceSubparts", "replace_subparts", "REPLACE_SUBPARTS" -> ReplaceSubparts
//
// Any other input yields a *errors.ParseError. In that case the returned
// Lossy MUST NOT be used.
func ParseLossy(str string) (Lossy, error) {
	switch str {
	case ReplaceRunsStr, "ReplaceRuns", "replace_runs", "REPLACE_RUNS":
		return ReplaceRuns, nil
	case ReplaceBytesStr, "ReplaceBytes", "replace_bytes", "REPLACE_BYTES":
		return ReplaceBytes, nil
	case ReplaceSubpartsStr, "ReplaceSubparts", "replace_subparts", "REPLACE_SUBPARTS":
		return ReplaceSubparts, nil
	default:
		return ReplaceRuns, &errors.ParseError{Type: "Lossy", Value: str}
	}
}

// Valid reports whether the policy is one of the defined constants.
func (l Lossy) Valid() bool {
	return l >= ReplaceRuns && l <= ReplaceSubparts
}

// Text converts raw into valid Text according to the policy.
//
// Text never fails and never panics. Input that is already valid UTF-8 is
// returned as is, without copying. A Lossy value outside the defined
// constants behaves like ReplaceRuns.
func (l Lossy) Text(raw string) Text {
	if utf8.ValidString(raw) {
		return Text(raw)
	}

	switch l {
	case ReplaceBytes:
		return Text(replaceInvalid(raw, func(string) int { return 1 }))
	case ReplaceSubparts:
		return Text(replaceInvalid(raw, maximalSubpart))
	default:
		return Text(strings.ToValidUTF8(raw, Replacement))
	}
}

// PathToText is PathToText with this policy.
func (l Lossy) PathToText(p NativePath) Text {
	return l.Text(string(p))
}

// EnvStringToText is EnvStringToText with this policy.
func (l Lossy) EnvStringToText(e EnvString) Text {
	return l.Text(string(e))
}

// replaceInvalid copies raw, writing one sentinel for each invalid
// sequence. skip reports how many bytes, at least one, an invalid sequence
// at the start of its argument spans.
func replaceInvalid(raw string, skip func(string) int) string {
	var b strings.Builder
	b.Grow(len(raw) + 2*len(Replacement))

	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(Replacement)
			i += skip(raw[i:])
			continue
		}
		b.WriteString(raw[i : i+size])
		i += size
	}

	return b.String()
}

// maximalSubpart returns the length of the longest prefix of s that starts
// a well-formed UTF-8 encoding, or 1 if s[0] cannot start one. s must not
// begin with a complete valid encoding.
func maximalSubpart(s string) int {
	var n int
	lo, hi := byte(0x80), byte(0xBF)

	switch b := s[0]; {
	case b >= 0xC2 && b <= 0xDF:
		n = 2
	case b == 0xE0:
		n, lo = 3, 0xA0
	case b == 0xED:
		n, hi = 3, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		n = 3
	case b == 0xF0:
		n, lo = 4, 0x90
	case b >= 0xF1 && b <= 0xF3:
		n = 4
	case b == 0xF4:
		n, hi = 4, 0x8F
	default:
		return 1
	}

	i := 1
	for ; i < n && i < len(s); i++ {
		if s[i] < lo || s[i] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return i
}

// MarshalJSON encodes a valid policy as its canonical name. An invalid
// policy yields a *errors.MarshalError.
func (l Lossy) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Lossy", Value: int(l)}
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON accepts a policy name (see ParseLossy) or its numeric
// value (0 for ReplaceRuns, 1 for ReplaceBytes, 2 for ReplaceSubparts).
func (l *Lossy) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Lossy", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Lossy", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseLossy(str)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Lossy", Data: data, Reason: err.Error()}
	}
	if !Lossy(i).Valid() {
		return &errors.UnmarshalError{Type: "Lossy", Data: data, Reason: "invalid numeric value"}
	}
	*l = Lossy(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler, so a Lossy can be used as
// a map key or a flag value.
func (l Lossy) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Lossy", Value: int(l)}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLossy.
func (l *Lossy) UnmarshalText(text []byte) error {
	parsed, err := ParseLossy(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// TypeName returns "Lossy".
func (l Lossy) TypeName() string {
	return "Lossy"
}

// Redacted returns the same value as String; a policy is not sensitive.
func (l Lossy) Redacted() string {
	return l.String()
}

// IsZero reports whether the policy is ReplaceRuns. The zero value is a
// valid policy, so IsZero returning true is not an error condition.
func (l Lossy) IsZero() bool {
	return l == ReplaceRuns
}

// Equal reports whether both values name the same policy.
func (l Lossy) Equal(other Lossy) bool {
	return l == other
}

// Validate returns a *errors.MarshalError for a value outside the defined
// constants.
func (l Lossy) Validate() error {
	if !l.Valid() {
		return &errors.MarshalError{
			Type:  "Lossy",
			Value: int(l),
		}
	}
	return nil
}

// MarshalYAML encodes a valid policy as its canonical name.
func (l Lossy) MarshalYAML() (any, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Lossy", Value: int(l)}
	}
	return l.String(), nil
}

// UnmarshalYAML decodes a policy name via ParseLossy.
func (l *Lossy) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Lossy", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseLossy(str)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
