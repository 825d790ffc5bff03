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

package mapper

import (
	"net/http"

	"dirpx.dev/status/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP projections for each
// failure category. These are only defaults: boundaries that need a different
// policy override them where the HTTP response is actually produced.
var defaultHTTP = map[code.Code]int{
	// Client-visible resource and argument problems.
	code.NotFound:        http.StatusNotFound,
	code.AlreadyPresent:  http.StatusConflict,
	code.InvalidArgument: http.StatusBadRequest,
	code.NotSupported:    http.StatusNotImplemented,
	code.NotAuthorized:   http.StatusForbidden,

	// State and concurrency. IllegalState and Aborted both surface as a
	// conflict with current server state rather than a server fault.
	code.IllegalState: http.StatusConflict,
	code.Aborted:      http.StatusConflict,

	// Server-side faults.
	code.Corruption:         http.StatusInternalServerError,
	code.IOError:            http.StatusInternalServerError,
	code.RuntimeError:       http.StatusInternalServerError,
	code.ConfigurationError: http.StatusInternalServerError,

	// Dependency and availability.
	code.NetworkError:       http.StatusBadGateway,
	code.RemoteError:        http.StatusBadGateway,
	code.ServiceUnavailable: http.StatusServiceUnavailable,
	code.Uninitialized:      http.StatusServiceUnavailable,
	code.TimedOut:           http.StatusGatewayTimeout,
}

// defaultGRPC defines the library's built-in gRPC projections for each
// failure category, chosen to align with the canonical gRPC status codes
// while preserving the category's meaning.
var defaultGRPC = map[code.Code]codes.Code{
	code.NotFound:        codes.NotFound,
	code.AlreadyPresent:  codes.AlreadyExists,
	code.InvalidArgument: codes.InvalidArgument,
	code.NotSupported:    codes.Unimplemented,
	code.NotAuthorized:   codes.PermissionDenied,

	code.IllegalState: codes.FailedPrecondition,
	code.Aborted:      codes.Aborted,

	// Corruption is data loss from the caller's point of view; the rest of
	// the server-side faults collapse to Internal.
	code.Corruption:         codes.DataLoss,
	code.IOError:            codes.Internal,
	code.RuntimeError:       codes.Internal,
	code.ConfigurationError: codes.FailedPrecondition,

	code.NetworkError:       codes.Unavailable,
	code.RemoteError:        codes.Unknown,
	code.ServiceUnavailable: codes.Unavailable,
	code.Uninitialized:      codes.FailedPrecondition,
	code.TimedOut:           codes.DeadlineExceeded,
}
