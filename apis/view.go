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

package apis

import "dirpx.dev/status/code"

// Coded is implemented by values that can report their outcome category.
// Both status.Status and *status.Error satisfy it, so adapters and loggers
// can accept either without importing the concrete types.
type Coded interface {
	Code() code.Code
}

// StatusView is a minimal, serializable snapshot of a status.
//
// This is not the value type used internally — it is the shape we are
// comfortable exposing over the wire or writing to structured logs. Keeping
// it here lets the HTTP and gRPC adapters share one struct.
type StatusView struct {
	// Code is the machine-friendly category identifier, e.g. "not_found".
	Code string `json:"code"`

	// CodeName is the human-facing category name, e.g. "Not found".
	CodeName string `json:"code_name"`

	// Message is the failure message without category or POSIX framing.
	// Empty for success.
	Message string `json:"message,omitempty"`

	// PosixCode is the advisory OS error number. Zero means "not attached":
	// POSIX error numbers are strictly positive, so the sentinel is
	// unambiguous at this layer.
	PosixCode int32 `json:"posix_code,omitempty"`
}

// Descriptor is a flat, transport-friendly description of a resolved status:
// the logical category plus the concrete transport statuses it maps to.
//
// It is intended for structured logging, tracing, or message-bus propagation
// where both the category and the transport projection matter.
type Descriptor struct {
	// Code is the machine-friendly category identifier.
	Code string `json:"code"`

	// HTTPStatus is the resolved HTTP status. Zero means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the failure message. May be empty.
	Message string `json:"message,omitempty"`

	// PosixCode is the advisory OS error number; zero when not attached.
	PosixCode int32 `json:"posix_code,omitempty"`
}
