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
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxstr/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// rawJSON is the JSON object form of a native buffer whose content is not
// valid UTF-8. encoding/json would replace such bytes if they were written
// as a JSON string.
type rawJSON struct {
	Base64 *string `json:"base64"`
}

// marshalRawJSON encodes raw as a JSON string when it is valid UTF-8 and as
// {"base64": "..."} otherwise.
func marshalRawJSON(raw string) ([]byte, error) {
	if utf8.ValidString(raw) {
		return json.Marshal(raw)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))
	return json.Marshal(rawJSON{Base64: &encoded})
}

// unmarshalRawJSON is the inverse of marshalRawJSON.
func unmarshalRawJSON(typeName string, data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", &errors.UnmarshalError{Type: typeName, Data: data, Reason: "empty data"}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", &errors.UnmarshalError{Type: typeName, Data: data, Reason: err.Error()}
		}
		return s, nil

	case '{':
		var obj rawJSON
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&obj); err != nil {
			return "", &errors.UnmarshalError{Type: typeName, Data: data, Reason: err.Error()}
		}
		if obj.Base64 == nil {
			return "", &errors.UnmarshalError{Type: typeName, Data: data, Reason: `missing "base64" field`}
		}
		b, err := base64.StdEncoding.DecodeString(*obj.Base64)
		if err != nil {
			return "", &errors.UnmarshalError{Type: typeName, Data: data, Reason: err.Error()}
		}
		return string(b), nil

	case 'n':
		return "", &errors.UnmarshalError{Type: typeName, Data: data, Reason: "null is not a valid " + typeName}

	default:
		return "", &errors.UnmarshalError{
			Type:   typeName,
			Data:   data,
			Reason: `expected a JSON string or a {"base64": ...} object`,
		}
	}
}

// yamlScalar returns the value a MarshalYAML method hands to yaml.v3 for s.
//
// Valid UTF-8 holding a line break or a tab is written as a double-quoted
// scalar: yaml.v3 would otherwise pick a literal block scalar, which its own
// decoder does not read back byte for byte. Any other content is returned
// as a plain string, and yaml.v3 encodes non-UTF-8 content as !!binary.
func yamlScalar(s string) interface{} {
	if utf8.ValidString(s) && strings.ContainsAny(s, "\n\r\t") {
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.DoubleQuotedStyle,
			Value: s,
		}
	}
	return s
}

// unmarshalRawYAML decodes a scalar node into raw bytes. yaml.v3 emits
// content that is not valid UTF-8 as a !!binary scalar, and decoding such
// a scalar into a string restores the original bytes.
func unmarshalRawYAML(typeName string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", &errors.UnmarshalError{
			Type:   typeName,
			Data:   []byte(node.Value),
			Reason: "expected a scalar node",
		}
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return "", &errors.UnmarshalError{Type: typeName, Data: []byte(node.Value), Reason: err.Error()}
	}
	return s, nil
}
