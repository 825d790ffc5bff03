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

// Package grpcx carries statuses across gRPC boundaries.
//
// Outbound, a non-OK status becomes a gRPC error whose status code is
// resolved through an apis.Mapper and whose details carry a
// google.rpc.ErrorInfo with the category identifier and, when attached, the
// POSIX error number. Inbound, FromError reverses the encoding; for foreign
// gRPC errors it falls back to mapping the canonical gRPC code onto the
// nearest category, so callers always get a usable status.
package grpcx

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/status"
	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
)

// Domain identifies this library in google.rpc.ErrorInfo details, so
// receivers can tell our encoding apart from other producers' ErrorInfo.
const Domain = "dirpx.dev/status"

// posixCodeKey is the ErrorInfo metadata key carrying the POSIX error number.
const posixCodeKey = "posix_code"

// ToError converts a status into a gRPC error.
//
// OK converts to nil. A failure becomes a gRPC status whose code is resolved
// via m and whose details include an ErrorInfo preserving the exact category
// (several categories collapse onto one canonical gRPC code, so the gRPC code
// alone is lossy). If attaching details fails, the bare status error is
// returned — the category survives only as the mapped gRPC code then.
func ToError(st status.Status, m apis.Mapper) error {
	if st.IsOK() {
		return nil
	}

	base := gstatus.New(m.GRPCStatus(st.Code()), st.Message())

	info := &errdetails.ErrorInfo{
		// ErrorInfo reasons are conventionally UPPER_SNAKE_CASE.
		Reason:   strings.ToUpper(st.Code().Ident()),
		Domain:   Domain,
		Metadata: map[string]string{},
	}
	if pc := st.PosixCode(); pc != status.NoPosixCode {
		info.Metadata[posixCodeKey] = strconv.Itoa(int(pc))
	}

	if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}
	return base.Err()
}

// FromError recovers a status from a gRPC error.
//
// Resolution order:
//
//  1. nil error -> OK;
//  2. an error produced by Status.Err on this side of the wire;
//  3. a gRPC error carrying our ErrorInfo detail (exact category and POSIX
//     code restored);
//  4. any other gRPC error: the canonical gRPC code is mapped onto the
//     nearest category.
//
// The second result is false only when err is not a gRPC error at all.
func FromError(err error) (status.Status, bool) {
	if err == nil {
		return status.OK(), true
	}
	if st, ok := status.FromError(err); ok {
		return st, true
	}

	gs, ok := gstatus.FromError(err)
	if !ok {
		return status.OK(), false
	}
	if gs.Code() == gcodes.OK {
		return status.OK(), true
	}

	for _, d := range gs.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		c, perr := code.Parse(info.GetReason())
		if perr != nil || c == code.OK {
			break
		}
		var opts []status.Option
		if v, ok := info.GetMetadata()[posixCodeKey]; ok {
			if n, aerr := strconv.Atoi(v); aerr == nil {
				opts = append(opts, status.WithPosixCode(int16(n)))
			}
		}
		return status.New(c, gs.Message(), opts...), true
	}

	return status.New(categoryFor(gs.Code()), gs.Message()), true
}

// categoryFor maps a canonical gRPC code onto the nearest outcome category.
// It is the lossy inverse of the mapper's default gRPC table, used for
// errors produced by peers that do not attach our ErrorInfo.
func categoryFor(c gcodes.Code) code.Code {
	switch c {
	case gcodes.NotFound:
		return code.NotFound
	case gcodes.AlreadyExists:
		return code.AlreadyPresent
	case gcodes.InvalidArgument, gcodes.OutOfRange:
		return code.InvalidArgument
	case gcodes.Unimplemented:
		return code.NotSupported
	case gcodes.PermissionDenied, gcodes.Unauthenticated:
		return code.NotAuthorized
	case gcodes.FailedPrecondition:
		return code.IllegalState
	case gcodes.Aborted, gcodes.Canceled:
		return code.Aborted
	case gcodes.DataLoss:
		return code.Corruption
	case gcodes.Unavailable, gcodes.ResourceExhausted:
		return code.ServiceUnavailable
	case gcodes.DeadlineExceeded:
		return code.TimedOut
	case gcodes.Internal:
		return code.RuntimeError
	default:
		// Unknown and anything unanticipated: the peer failed in a way we
		// cannot classify further.
		return code.RemoteError
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler errors produced by Status.Err into rich gRPC errors via ToError.
// Errors that do not carry a status are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if st, ok := status.FromError(err); ok {
			return nil, ToError(st, m)
		}
		// Not ours — return as-is.
		return nil, err
	}
}

// ExtractErrorInfo pulls this library's ErrorInfo detail out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	gs, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range gs.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}
