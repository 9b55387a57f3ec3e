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

// Package errors provides the error value types shared by the dxstr model
// packages.
//
// The conversions between Text, EnvString and NativePath never fail. Errors
// only appear at the checked boundaries around them: parsing untrusted input
// into a validated Text, decoding JSON or YAML payloads, validating values
// that were built by a plain type conversion, and parsing enum-like
// configuration values such as the substitution policy.
//
// The errors in this package are simple value carriers with stable message
// formats. Every message starts with "dxstr: " so that it is easy to spot in
// logs, and callers are expected to recognize the types via errors.As.
//
// # Error Types
//
//   - ParseError
//     Returned when a textual input cannot be turned into a typed value
//     (for example, a non-UTF-8 string passed to ParseText, or an unknown
//     policy name passed to ParseLossy).
//
//   - MarshalError
//     Returned when an enum-like value outside its set of constants is
//     serialized.
//
//   - UnmarshalError
//     Returned when a JSON or YAML payload cannot be decoded into a typed
//     value.
//
//   - ValidationError
//     Returned by Validate methods when an invariant does not hold.
package errors

import "strconv"

// ParseError is returned when parsing a string into a typed value fails.
//
// Type identifies the logical type being parsed (for example, "Text" or
// "Lossy"), and Value contains the input that could not be interpreted.
// Value is rendered with strconv.Quote so that non-printable and non-UTF-8
// bytes stay visible in the message instead of corrupting the log line.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Text").
	Type string

	// Value is the invalid input that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxstr: invalid {Type} value: {quoted Value}"
//
// For example:
//
//	"dxstr: invalid Text value: \"a\\xffb\""
func (e *ParseError) Error() string {
	return "dxstr: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// MarshalError is returned when marshaling an enum-like value fails because
// it is outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// numeric cast that produced an unknown constant.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Lossy").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxstr: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxstr: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason provides a short description of what went
// wrong (for example, "null is not a valid EnvString" or a base64 decoding
// failure).
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field. Native buffers may
	// carry environment values, which frequently hold credentials.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxstr: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message.
func (e *UnmarshalError) Error() string {
	return "dxstr: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated, Field
// optionally identifies the failing field, Reason explains the failure and
// Value optionally contains the offending value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxstr: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxstr: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxstr: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxstr: invalid " + e.Type + ": " + e.Reason
}
