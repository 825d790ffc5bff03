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
	"dirpx.dev/status/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status for
// the given category. This affects the value used when no override for that
// category is registered.
func WithHTTPDefault(c code.Code, httpStatus int) Option {
	return func(b *builder) { b.httpDefaults[c] = httpStatus }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status for
// the given category.
func WithGRPCDefault(c code.Code, grpcCode codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpcCode }
}

// WithHTTPOverride registers an exact HTTP override for the given category.
// Overrides take precedence over defaults.
func WithHTTPOverride(c code.Code, httpStatus int) Option {
	return func(b *builder) { b.httpOverride[c] = httpStatus }
}

// WithGRPCOverride registers an exact gRPC override for the given category.
// Overrides take precedence over defaults.
func WithGRPCOverride(c code.Code, grpcCode codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = grpcCode }
}

// WithFallback replaces the ultimate fallback pair used when a category has
// neither an override nor a default. The shipped fallback is
// 500 / codes.Internal.
func WithFallback(httpStatus int, grpcCode codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = httpStatus
		b.fallbackGRPC = grpcCode
	}
}
