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

// Package status provides the canonical operation-result value for dirpx.
//
// A Status represents either unconditional success or a categorized failure
// carrying a human-readable message and an optional POSIX error number. It is
// the uniform return value of fallible operations across the system: cheap to
// construct, copy and check, and safe to read concurrently.
//
// Success is the zero value. OK() and plain `var st status.Status` allocate
// nothing; a failure allocates exactly one payload, shared structurally by
// all copies of the value. The payload is immutable after construction, so
// any number of goroutines may call read-only methods on the same Status
// without synchronization. Replacing a Status *variable* that other
// goroutines are reading still requires external coordination, as with any
// Go value.
package status

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/status/code"
)

// NoPosixCode is the sentinel reported by PosixCode when no POSIX error
// number was attached at construction.
const NoPosixCode int16 = -1

// messageSeparator joins a primary message with its secondary fragment, and
// a prepended context with the original message in CloneAndPrepend.
const messageSeparator = ": "

// Status is the result of an operation: success, or a categorized failure
// with a message.
//
// The zero value is success. Status is a small value type and is passed by
// value everywhere; copying shares the immutable failure payload, so copies
// are fully independent under reassignment and free of ownership concerns.
type Status struct {
	// state is nil for success. For a failure it points to the single
	// immutable payload; nothing ever mutates it after construction.
	state *state
}

// state is the payload allocated once per non-OK Status.
type state struct {
	code  code.Code
	posix int16
	msg   string
}

// OK returns a success status. It performs no allocation; the result is
// identical to the zero value.
func OK() Status { return Status{} }

// New constructs a failure status with the given code. The per-category
// factories below are the conventional construction surface; New exists for
// generic callers such as wire adapters that recover a Status from a
// transmitted code.
//
// c must be a valid failure code: passing code.OK or an unassigned value is
// a programming error and panics. Success is expressed with OK(), never with
// a "success-colored" failure payload.
func New(c code.Code, msg string, opts ...Option) Status {
	if c == code.OK || !code.Valid(c) {
		panic(fmt.Sprintf("status: New called with non-failure code %d", uint8(c)))
	}
	s := settings{posix: NoPosixCode}
	for _, opt := range opts {
		opt(&s)
	}
	if s.context != "" {
		if msg == "" {
			msg = s.context
		} else {
			msg = msg + messageSeparator + s.context
		}
	}
	return Status{state: &state{code: c, posix: s.posix, msg: msg}}
}

// NotFound returns a status indicating that a referenced entity does not exist.
func NotFound(msg string, opts ...Option) Status { return New(code.NotFound, msg, opts...) }

// Corruption returns a status indicating that data failed an integrity check.
func Corruption(msg string, opts ...Option) Status { return New(code.Corruption, msg, opts...) }

// NotSupported returns a status indicating that the operation is not
// implemented or not enabled.
func NotSupported(msg string, opts ...Option) Status { return New(code.NotSupported, msg, opts...) }

// InvalidArgument returns a status indicating that a caller-supplied value
// violates the operation's contract.
func InvalidArgument(msg string, opts ...Option) Status {
	return New(code.InvalidArgument, msg, opts...)
}

// IOError returns a status indicating a storage or I/O layer failure.
func IOError(msg string, opts ...Option) Status { return New(code.IOError, msg, opts...) }

// AlreadyPresent returns a status indicating that an entity being created
// already exists.
func AlreadyPresent(msg string, opts ...Option) Status {
	return New(code.AlreadyPresent, msg, opts...)
}

// RuntimeError returns a status indicating an unexpected internal failure.
func RuntimeError(msg string, opts ...Option) Status { return New(code.RuntimeError, msg, opts...) }

// NetworkError returns a status indicating a transport-level communication
// failure.
func NetworkError(msg string, opts ...Option) Status { return New(code.NetworkError, msg, opts...) }

// IllegalState returns a status indicating that the operation is not valid in
// the component's current state.
func IllegalState(msg string, opts ...Option) Status { return New(code.IllegalState, msg, opts...) }

// NotAuthorized returns a status indicating that the caller lacks permission.
func NotAuthorized(msg string, opts ...Option) Status { return New(code.NotAuthorized, msg, opts...) }

// Aborted returns a status indicating that the operation was stopped before
// completion.
func Aborted(msg string, opts ...Option) Status { return New(code.Aborted, msg, opts...) }

// RemoteError returns a status indicating an unclassified failure reported by
// a remote peer.
func RemoteError(msg string, opts ...Option) Status { return New(code.RemoteError, msg, opts...) }

// ServiceUnavailable returns a status indicating that a required service is
// temporarily unable to handle the request.
func ServiceUnavailable(msg string, opts ...Option) Status {
	return New(code.ServiceUnavailable, msg, opts...)
}

// TimedOut returns a status indicating that the operation exceeded its time
// budget.
func TimedOut(msg string, opts ...Option) Status { return New(code.TimedOut, msg, opts...) }

// Uninitialized returns a status indicating that a component was used before
// initialization.
func Uninitialized(msg string, opts ...Option) Status { return New(code.Uninitialized, msg, opts...) }

// ConfigurationError returns a status indicating invalid or inconsistent
// configuration.
func ConfigurationError(msg string, opts ...Option) Status {
	return New(code.ConfigurationError, msg, opts...)
}

// IsOK reports whether the status indicates success.
func (s Status) IsOK() bool { return s.state == nil }

// Code returns the outcome category. Success reports code.OK.
func (s Status) Code() code.Code {
	if s.state == nil {
		return code.OK
	}
	return s.state.code
}

// IsNotFound reports whether the status carries code.NotFound.
func (s Status) IsNotFound() bool { return s.Code() == code.NotFound }

// IsCorruption reports whether the status carries code.Corruption.
func (s Status) IsCorruption() bool { return s.Code() == code.Corruption }

// IsNotSupported reports whether the status carries code.NotSupported.
func (s Status) IsNotSupported() bool { return s.Code() == code.NotSupported }

// IsInvalidArgument reports whether the status carries code.InvalidArgument.
func (s Status) IsInvalidArgument() bool { return s.Code() == code.InvalidArgument }

// IsIOError reports whether the status carries code.IOError.
func (s Status) IsIOError() bool { return s.Code() == code.IOError }

// IsAlreadyPresent reports whether the status carries code.AlreadyPresent.
func (s Status) IsAlreadyPresent() bool { return s.Code() == code.AlreadyPresent }

// IsRuntimeError reports whether the status carries code.RuntimeError.
func (s Status) IsRuntimeError() bool { return s.Code() == code.RuntimeError }

// IsNetworkError reports whether the status carries code.NetworkError.
func (s Status) IsNetworkError() bool { return s.Code() == code.NetworkError }

// IsIllegalState reports whether the status carries code.IllegalState.
func (s Status) IsIllegalState() bool { return s.Code() == code.IllegalState }

// IsNotAuthorized reports whether the status carries code.NotAuthorized.
func (s Status) IsNotAuthorized() bool { return s.Code() == code.NotAuthorized }

// IsAborted reports whether the status carries code.Aborted.
func (s Status) IsAborted() bool { return s.Code() == code.Aborted }

// IsRemoteError reports whether the status carries code.RemoteError.
func (s Status) IsRemoteError() bool { return s.Code() == code.RemoteError }

// IsServiceUnavailable reports whether the status carries code.ServiceUnavailable.
func (s Status) IsServiceUnavailable() bool { return s.Code() == code.ServiceUnavailable }

// IsTimedOut reports whether the status carries code.TimedOut.
func (s Status) IsTimedOut() bool { return s.Code() == code.TimedOut }

// IsUninitialized reports whether the status carries code.Uninitialized.
func (s Status) IsUninitialized() bool { return s.Code() == code.Uninitialized }

// IsConfigurationError reports whether the status carries code.ConfigurationError.
func (s Status) IsConfigurationError() bool { return s.Code() == code.ConfigurationError }

// Message returns the failure message with no code or POSIX framing.
// Success reports the empty string.
func (s Status) Message() string {
	if s.state == nil {
		return ""
	}
	return s.state.msg
}

// PosixCode returns the POSIX error number attached at construction, or
// NoPosixCode when none was supplied or the status is OK. The value is
// advisory diagnostic context; nothing in this package interprets it.
func (s Status) PosixCode() int16 {
	if s.state == nil {
		return NoPosixCode
	}
	return s.state.posix
}

// CodeName returns the display name of the outcome category, independent of
// the message, e.g. "Not found" or "IO error".
func (s Status) CodeName() string { return s.Code().String() }

// String renders the canonical diagnostic form:
//
//	OK
//	Not found: no row with key "k"
//	IO error: write failed (error 28)
//
// This is the representation call sites log at warning level or include in
// fatal check output.
func (s Status) String() string {
	if s.state == nil {
		return "OK"
	}
	var b strings.Builder
	b.WriteString(s.state.code.String())
	b.WriteString(messageSeparator)
	b.WriteString(s.state.msg)
	if s.state.posix != NoPosixCode {
		fmt.Fprintf(&b, " (error %d)", s.state.posix)
	}
	return b.String()
}

// CloneAndPrepend returns a status with the same code and POSIX code whose
// message is msg, the separator, then the original message. It is the
// building block of the "propagate with added context" idiom:
//
//	if st := tablet.Open(); !st.IsOK() {
//		return st.CloneAndPrepend("opening tablet " + id)
//	}
//
// Calling CloneAndPrepend on an OK status is a contract violation — there is
// no failure to annotate — and panics. Guard with IsOK first.
func (s Status) CloneAndPrepend(msg string) Status {
	if s.state == nil {
		panic("status: CloneAndPrepend on OK status")
	}
	joined := msg
	if s.state.msg != "" {
		joined = msg + messageSeparator + s.state.msg
	}
	return Status{state: &state{code: s.state.code, posix: s.state.posix, msg: joined}}
}

// Error adapts a non-OK Status to the built-in error interface for call
// boundaries that speak error. Obtain one via Status.Err and recover the
// Status via FromError or errors.As.
type Error struct {
	st Status
}

// Error implements the built-in error interface using the canonical
// diagnostic form.
func (e *Error) Error() string { return e.st.String() }

// Status returns the wrapped status value.
func (e *Error) Status() Status { return e.st }

// Code returns the wrapped status's outcome category.
func (e *Error) Code() code.Code { return e.st.Code() }

// Err returns nil for an OK status, and an *Error wrapping the status
// otherwise. This is the bridge for APIs that return error:
//
//	return st.Err()
func (s Status) Err() error {
	if s.state == nil {
		return nil
	}
	return &Error{st: s}
}

// FromError recovers a Status from an error produced by Status.Err, possibly
// wrapped. A nil error reports OK. The second result is false when the error
// does not carry a Status.
func FromError(err error) (Status, bool) {
	if err == nil {
		return OK(), true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.st, true
	}
	return OK(), false
}
