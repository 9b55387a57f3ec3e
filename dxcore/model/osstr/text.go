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

// Package osstr models three text-like representations and the conversions
// between them:
//
//   - Text, a value guaranteed to hold valid UTF-8;
//   - EnvString, an OS-native buffer such as an environment variable value
//     or a command-line argument, which MAY hold bytes that are not valid
//     UTF-8;
//   - NativePath, an OS-native filesystem path. Structurally it is the same
//     opaque buffer as EnvString, used in a path role.
//
// Six functions form the conversion graph. Conversions towards the weaker
// invariant (TextToPath, TextToEnvString, PathToEnvString, EnvStringToPath)
// are lossless re-wraps that never inspect the content. Conversions towards
// Text (PathToText, EnvStringToText) are lossy-safe: they never fail and
// never panic, and they replace every byte sequence that is not valid UTF-8
// with the Unicode replacement character U+FFFD (see Replacement and Lossy).
// Input that is already valid UTF-8 passes through unchanged, so
// Text -> NativePath -> Text is an exact round trip.
//
// EnvString and NativePath are distinct named types. Passing one where the
// other is expected requires an explicit conversion, ideally through
// PathToEnvString or EnvStringToPath.
//
// Every type implements model.Model. The JSON and YAML encodings of the
// native buffers are lossless even for non-UTF-8 content.
//
// All functions are pure. All types are immutable values, except for the
// Push methods, which are documented as mutating their receiver.
package osstr

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"dirpx.dev/dxstr/dxcore/errors"
	"dirpx.dev/dxstr/dxcore/model"
	"gopkg.in/yaml.v3"
)

// TextRedactedRunes is the number of runes Text.Redacted keeps before
// truncating.
const TextRedactedRunes = 32

// Text is an owned sequence of Unicode scalar values stored as valid UTF-8.
//
// The invariant is enforced at every checked boundary: ParseText rejects
// non-UTF-8 input, Validate reports it, and the JSON and YAML codecs refuse
// to encode or decode it. The lossy conversions (PathToText,
// EnvStringToText and the Lossy methods) always produce valid Text.
//
// A plain Go conversion such as Text(s) bypasses the check. Callers that
// build Text this way from untrusted input SHOULD call Validate, or use
// ParseText instead.
//
// The zero value (empty string) is valid Text.
type Text string

// Compile-time verification that Text implements model.Model interface.
var _ model.Model = (*Text)(nil)

// ParseText returns s as Text if s is valid UTF-8.
//
// Unlike the lossy conversions, ParseText does not substitute anything: it
// returns a *errors.ParseError when s holds bytes that are not valid UTF-8.
// Use it when silently replacing content would be wrong, for example when a
// path must be stored exactly.
//
//	t, err := osstr.ParseText(string(path)) // strict
//	t := osstr.PathToText(path)              // lossy-safe
func ParseText(s string) (Text, error) {
	if !utf8.ValidString(s) {
		return "", &errors.ParseError{Type: "Text", Value: s}
	}
	return Text(s), nil
}

// ParseTexts converts every element of ss to Text.
//
// All elements are checked, and the returned error names each invalid one
// by index, for example "model[2] (Text): dxstr: invalid Text: must be
// valid UTF-8". On error the returned slice is nil.
func ParseTexts(ss []string) ([]Text, error) {
	texts := make([]Text, len(ss))
	refs := make([]*Text, len(ss))
	for i, s := range ss {
		texts[i] = Text(s)
		refs[i] = &texts[i]
	}

	if err := model.ValidateAll(refs); err != nil {
		return nil, err
	}
	return texts, nil
}

// String returns the text itself.
func (t Text) String() string {
	return string(t)
}

// Redacted returns at most TextRedactedRunes runes of the text followed by
// "..." when it was truncated. Invalid content (only possible after an
// unchecked conversion) is replaced before truncation, so the result is
// always valid UTF-8.
func (t Text) Redacted() string {
	s := string(ReplaceRuns.Text(string(t)))

	n := 0
	for i := range s {
		if n == TextRedactedRunes {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

// TypeName returns "Text".
func (t Text) TypeName() string {
	return "Text"
}

// IsZero reports whether the text is empty.
func (t Text) IsZero() bool {
	return t == ""
}

// Equal reports whether both texts hold the same bytes.
func (t Text) Equal(other Text) bool {
	return t == other
}

// Len returns the length of the text in bytes.
func (t Text) Len() int {
	return len(t)
}

// Validate returns a *errors.ValidationError if the text is not valid UTF-8.
func (t Text) Validate() error {
	if !utf8.ValidString(string(t)) {
		return &errors.ValidationError{
			Type:   t.TypeName(),
			Reason: "must be valid UTF-8",
			Value:  string(t),
		}
	}
	return nil
}

// MarshalJSON encodes the text as a JSON string after validating it.
func (t Text) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON decodes a JSON string into the text.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Text", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseText(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*t = parsed
	return nil
}

// MarshalYAML encodes the text as a YAML scalar after validating it. Text
// holding a line break or a tab is double-quoted.
func (t Text) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return yamlScalar(string(t)), nil
}

// UnmarshalYAML decodes a YAML scalar into the text. A !!binary scalar
// whose payload is not valid UTF-8 is rejected.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Text", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseText(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*t = parsed
	return nil
}
