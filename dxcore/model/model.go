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

// Package model defines the contracts that every dxstr value type MUST
// implement, and a set of generic helpers built on top of them.
//
// The value types live in sub-packages (see package osstr for Text,
// EnvString and NativePath). Each of them implements the Model interface or
// its constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable), which gives every type the same story for validation,
// JSON and YAML encoding, safe logging and zero-value detection.
//
// Model types are immutable value types unless a method is explicitly
// documented as mutating its receiver. Concurrent reads are safe; callers
// MUST synchronize concurrent writes.
//
// Types implementing Model can be used with the generic helpers in this
// package, such as ValidateAll, FilterZero, ToJSON, ToYAML, Clone and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for dxstr
// value types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable checks
// the type's invariant (for example, Text MUST hold valid UTF-8);
// Serializable provides lossless JSON and YAML round trips; Loggable offers a
// full and a redacted string form; Identifiable supplies a canonical type
// name; ZeroCheckable detects the empty value.
//
// Example implementation:
//
//	type Label string
//
//	func (l Label) Validate() error {
//	    if !utf8.ValidString(string(l)) {
//	        return errors.New("label must be UTF-8")
//	    }
//	    return nil
//	}
//
//	func (l Label) TypeName() string { return "Label" }
//	func (l Label) IsZero() bool     { return l == "" }
//	func (l Label) Redacted() string { return "Label{...}" }
//	func (l Label) String() string   { return string(l) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Label)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST return nil if and only if the value satisfies every
// invariant of its type, and a descriptive error otherwise. It MUST be fast,
// deterministic and free of side effects: no I/O, no logging, no mutation of
// the receiver.
//
// Types whose invariant is "any content" (such as the OS-native buffers,
// which may legitimately hold non-UTF-8 bytes) return nil for every value,
// including the zero value.
//
// Callers SHOULD invoke Validate on values that were built by a plain type
// conversion instead of a checked constructor, and after decoding external
// input. The Unmarshal methods of dxstr types already do so.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants. It
	// returns nil if the instance is valid, or a descriptive error.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Implementations MUST call Validate before marshaling and after
// unmarshaling, so that invalid values never cross a serialization
// boundary. Round trips MUST be lossless: a value marshaled and then
// unmarshaled MUST be byte-for-byte equal to the original. For types that
// may hold non-UTF-8 content this rules out encoding the raw content as a
// JSON string, because encoding/json would replace the invalid bytes.
//
// Implementations SHOULD use the local alias pattern (or decode into an
// intermediate string) to avoid re-entering their own codec methods.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging.
//
// Redacted returns a representation suitable for production logs. It MUST
// hide content that may be sensitive. Filesystem paths expose home
// directories and user names, and environment strings routinely carry
// tokens and passwords, so their redacted forms show only a path's final
// element or a buffer's length.
//
// String returns a full human-readable representation that MAY include
// sensitive data. For native buffers it is the lossy text form of the
// content. String MUST NOT be used for production logging.
//
// Both methods MUST be fast, side-effect free and safe to call concurrently.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production.
	Redacted() string

	// String returns a human-readable representation of the instance. It
	// MAY include sensitive data.
	String() string
}

// Identifiable defines the contract for types that identify themselves by a
// canonical type name.
//
// TypeName MUST return a constant CamelCase name without a package prefix
// (for example, "Text" or "NativePath"). Error messages and logs use it to
// say which kind of value failed.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// For the dxstr buffer types the zero value is the empty buffer, which is a
// valid value: every conversion maps an empty input to the empty value of
// its target type.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality.
//
// Equal MUST be reflexive, symmetric, transitive and consistent. The dxstr
// buffer types compare their raw content byte-for-byte; no path
// normalization takes place, so "a/b" and "a//b" are different paths.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves.
//
// For immutable value types backed by Go strings, Clone MAY simply return
// the receiver, since the underlying bytes can never be modified.
type Cloneable[T any] interface {
	// Clone creates a copy of this instance that shares no mutable state
	// with the original.
	Clone() T
}
