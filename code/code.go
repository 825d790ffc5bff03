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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Code is the closed classification of an operation outcome.
//
// It is a small numeric enum rather than a free-form string: the set of
// outcomes is fixed, and the numeric values are a wire contract. Any protocol
// that transmits these codes as integers relies on this exact numbering, so
// values MUST NOT be reordered or reused. New codes may only be appended.
//
// The zero value is OK, which means "no error". Every other value describes
// a failure category.
type Code uint8

// The canonical code set, in wire order.
//
// IMPORTANT: the numeric values below are transmitted by wire protocols and
// persisted in logs. Appending is allowed; renumbering is not.
const (
	// OK indicates success. It is the zero value and carries no payload
	// anywhere in the system.
	OK Code = 0

	// NotFound indicates that a referenced entity does not exist.
	NotFound Code = 1

	// Corruption indicates that stored or received data failed an integrity
	// check and cannot be trusted.
	Corruption Code = 2

	// NotSupported indicates that the requested operation is recognized but
	// not implemented or not enabled in this build/configuration.
	NotSupported Code = 3

	// InvalidArgument indicates that a caller-supplied value violates the
	// operation's contract.
	InvalidArgument Code = 4

	// IOError indicates a failure in the underlying storage or I/O layer.
	// The POSIX code, when present, usually refines this category.
	IOError Code = 5

	// AlreadyPresent indicates that an entity being created already exists.
	AlreadyPresent Code = 6

	// RuntimeError indicates an unexpected internal failure that fits no
	// more specific category.
	RuntimeError Code = 7

	// NetworkError indicates a transport-level communication failure.
	NetworkError Code = 8

	// IllegalState indicates that the operation is not valid in the
	// component's current state.
	IllegalState Code = 9

	// NotAuthorized indicates that the caller lacks permission for the
	// requested operation.
	NotAuthorized Code = 10

	// Aborted indicates that the operation was stopped before completion,
	// typically because of a conflict or an explicit cancellation upstream.
	Aborted Code = 11

	// RemoteError indicates that a remote peer reported a failure that could
	// not be classified more precisely on this side.
	RemoteError Code = 12

	// ServiceUnavailable indicates that a required service is temporarily
	// unable to handle the request.
	ServiceUnavailable Code = 13

	// TimedOut indicates that the operation exceeded its time budget.
	TimedOut Code = 14

	// Uninitialized indicates that a component was used before it was
	// initialized.
	Uninitialized Code = 15

	// ConfigurationError indicates that the supplied configuration is
	// invalid or inconsistent.
	ConfigurationError Code = 16
)

// maxCode is the highest assigned code. Update when appending new codes.
const maxCode = ConfigurationError

// displayNames holds the human-facing rendering of each code, as used in
// diagnostic strings ("Not found: no such row").
var displayNames = [maxCode + 1]string{
	OK:                 "OK",
	NotFound:           "Not found",
	Corruption:         "Corruption",
	NotSupported:       "Not implemented",
	InvalidArgument:    "Invalid argument",
	IOError:            "IO error",
	AlreadyPresent:     "Already present",
	RuntimeError:       "Runtime error",
	NetworkError:       "Network error",
	IllegalState:       "Illegal state",
	NotAuthorized:      "Not authorized",
	Aborted:            "Aborted",
	RemoteError:        "Remote error",
	ServiceUnavailable: "Service unavailable",
	TimedOut:           "Timed out",
	Uninitialized:      "Uninitialized",
	ConfigurationError: "Configuration error",
}

// idents holds the machine-friendly identifier of each code: lowercase,
// underscore-separated, suitable for JSON payloads, log fields and lookup
// in registries.
var idents = [maxCode + 1]string{
	OK:                 "ok",
	NotFound:           "not_found",
	Corruption:         "corruption",
	NotSupported:       "not_supported",
	InvalidArgument:    "invalid_argument",
	IOError:            "io_error",
	AlreadyPresent:     "already_present",
	RuntimeError:       "runtime_error",
	NetworkError:       "network_error",
	IllegalState:       "illegal_state",
	NotAuthorized:      "not_authorized",
	Aborted:            "aborted",
	RemoteError:        "remote_error",
	ServiceUnavailable: "service_unavailable",
	TimedOut:           "timed_out",
	Uninitialized:      "uninitialized",
	ConfigurationError: "configuration_error",
}

// byIdent is the reverse index used by Parse.
var byIdent = func() map[string]Code {
	m := make(map[string]Code, len(idents))
	for c, id := range idents {
		m[id] = Code(c)
	}
	return m
}()

var (
	// ErrCodeUnknown is returned when a value cannot be parsed or validated
	// as a code.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests
	// to detect "this is about the code set" vs some other failure.
	ErrCodeUnknown = errors.New("status: unknown code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Valid reports whether c is one of the assigned codes (OK included).
func Valid(c Code) bool {
	return c <= maxCode
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical identifier form.
//
// It only performs obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result names a known code — callers should
// still call Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and resolves it against
// the canonical code set. On failure it returns OK and ErrCodeUnknown.
func Parse(s string) (Code, error) {
	c, ok := byIdent[Normalize(s)]
	if !ok {
		return OK, ErrCodeUnknown
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the human-facing display name of the code, e.g. "Not found"
// or "IO error". Unassigned values render as "Code(n)".
func (c Code) String() string {
	if !Valid(c) {
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
	return displayNames[c]
}

// Ident returns the machine-friendly identifier of the code, e.g.
// "not_found" or "io_error". Unassigned values render as "code_n".
func (c Code) Ident() string {
	if !Valid(c) {
		return fmt.Sprintf("code_%d", uint8(c))
	}
	return idents[c]
}

// MarshalText implements encoding.TextMarshaler.
//
// It emits the machine-friendly identifier, never the display name.
func (c Code) MarshalText() ([]byte, error) {
	if !Valid(c) {
		return nil, ErrCodeUnknown
	}
	return []byte(idents[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and resolves the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Codes returns the failure codes in wire order. OK is excluded: it marks the
// absence of a failure and never appears in mapping tables or wire payloads
// that enumerate error categories.
func Codes() []Code {
	out := make([]Code, 0, maxCode)
	for c := NotFound; c <= maxCode; c++ {
		out = append(out, c)
	}
	return out
}
