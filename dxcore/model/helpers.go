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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates every model in the slice and returns a single error
// aggregating all failures, or nil if every model is valid.
//
// Each failure is wrapped with the model's index and type name, for example
// "model[2] (Text): dxstr: invalid Text: must be valid UTF-8". The whole
// slice is always processed, so one bad element never hides another.
// Failures are combined with rxmerr.Collector. Empty slices are valid.
//
// Example:
//
//	texts := []osstr.Text{osstr.Text("ok"), osstr.Text("bad\xff")}
//	if err := model.ValidateAll(texts); err != nil {
//	    // err reports model[1]
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero reports false. The result never shares its backing array with the
// input and is non-nil even when every element is zero.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m if it is valid and panics otherwise.
//
// Use it only where an invalid value is a programming error, such as test
// fixtures or package-level values built from literals. Never call it on
// data that came from outside the program; the lossy conversions exist
// precisely so that such data never has to panic.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.Redacted() by default, or m.String() when unsafe is
// true. Keeping the choice at one call site makes it easy to audit which
// log lines may carry full paths or environment values.
//
//	log.Printf("cwd=%s", model.SafeString(cwd, false))  // ".../project"
//	log.Printf("cwd=%s", model.SafeString(cwd, true))   // full path (UNSAFE)
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and then encodes it with json.Marshal.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and then encodes it with yaml.Marshal.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result. If FromJSON
// returns an error, the state of *m is undefined and MUST NOT be used.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes data into m and validates the result. If FromYAML
// returns an error, the state of *m is undefined and MUST NOT be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates an independent copy of m through a JSON round trip.
//
// This works for any Model whose JSON encoding is lossless, which holds for
// all dxstr types including native buffers with non-UTF-8 content. Types
// that care about the encoding overhead SHOULD implement Cloneable instead.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal reports whether a and b have identical JSON encodings. If either
// side fails to marshal, Equal returns false.
//
// Prefer the type's own Equal method (see Comparable) when one exists.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
