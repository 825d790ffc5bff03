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
	"fmt"
	"strings"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate that every adjusted category is an assigned failure code.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors indicate an option keyed by code.OK or by an unassigned value:
// success is never mapped, and typos in category constants should fail the
// build, not silently fall through to the fallback at lookup time.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; seed it with the package defaults.
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	// (1) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (2) Reject rules keyed by OK or by unassigned codes.
	for _, m := range []map[code.Code]int{b.httpDefaults, b.httpOverride} {
		for c := range m {
			if err := validateRuleCode(c); err != nil {
				return nil, err
			}
		}
	}
	for _, m := range []map[code.Code]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for c := range m {
			if err := validateRuleCode(c); err != nil {
				return nil, err
			}
		}
	}

	// (3) Freeze everything into a read-only snapshot.
	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is the panic-on-error variant of New, for package-level mappers
// built from constant options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// validateRuleCode rejects mapping rules for OK and for unassigned values.
func validateRuleCode(c code.Code) error {
	if c == code.OK {
		return fmt.Errorf("mapper: cannot register a rule for OK")
	}
	if !code.Valid(c) {
		return fmt.Errorf("mapper: rule for unassigned code %d", uint8(c))
	}
	return nil
}

// mapper is an immutable mapper implementation combining per-category
// defaults and per-category exact overrides. Lookups are single map reads and
// safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given category.
	// Used when no override is present.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given category.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific categories.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific categories.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no rule at all for a category.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no rule at all for a category.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given category.
//
// Resolution order (highest to lowest):
//
//  1. exact per-category override (explicitly registered);
//  2. per-category default (library or user replaced);
//  3. ultimate fallback (HTTP must never be zero).
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given category, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Transport resolves both HTTP and gRPC using the same inputs. This keeps the
// two projections consistent for a single logical outcome.
func (m *mapper) Transport(c code.Code) apis.Transport {
	return apis.Transport{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a category.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback) for each transport.
//
// Example output:
//
//	code="illegal_state"
//	http: source=override -> 500
//	grpc: source=default -> FAILEDPRECONDITION(9)
//
// source ∈ {override | default | fallback}
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c.Ident())

	if v, ok := m.httpOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "http: source=override -> %d\n", v)
	} else if v, ok := m.httpDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "http: source=default -> %d\n", v)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=fallback -> %d\n", m.fallbackHTTP)
	}

	if v, ok := m.grpcOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=override -> %s(%d)\n", strings.ToUpper(v.String()), int(v))
	} else if v, ok := m.grpcDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=default -> %s(%d)\n", strings.ToUpper(v.String()), int(v))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=fallback -> %s(%d)\n", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
	}

	return strings.TrimSuffix(b.String(), "\n")
}
