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

package status

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"dirpx.dev/status/code"
)

// factories pairs every per-category constructor with the code it must
// produce, in wire order.
var factories = []struct {
	code code.Code
	make func(string, ...Option) Status
}{
	{code.NotFound, NotFound},
	{code.Corruption, Corruption},
	{code.NotSupported, NotSupported},
	{code.InvalidArgument, InvalidArgument},
	{code.IOError, IOError},
	{code.AlreadyPresent, AlreadyPresent},
	{code.RuntimeError, RuntimeError},
	{code.NetworkError, NetworkError},
	{code.IllegalState, IllegalState},
	{code.NotAuthorized, NotAuthorized},
	{code.Aborted, Aborted},
	{code.RemoteError, RemoteError},
	{code.ServiceUnavailable, ServiceUnavailable},
	{code.TimedOut, TimedOut},
	{code.Uninitialized, Uninitialized},
	{code.ConfigurationError, ConfigurationError},
}

// predicates maps each code to its dedicated predicate method.
var predicates = map[code.Code]func(Status) bool{
	code.NotFound:           Status.IsNotFound,
	code.Corruption:         Status.IsCorruption,
	code.NotSupported:       Status.IsNotSupported,
	code.InvalidArgument:    Status.IsInvalidArgument,
	code.IOError:            Status.IsIOError,
	code.AlreadyPresent:     Status.IsAlreadyPresent,
	code.RuntimeError:       Status.IsRuntimeError,
	code.NetworkError:       Status.IsNetworkError,
	code.IllegalState:       Status.IsIllegalState,
	code.NotAuthorized:      Status.IsNotAuthorized,
	code.Aborted:            Status.IsAborted,
	code.RemoteError:        Status.IsRemoteError,
	code.ServiceUnavailable: Status.IsServiceUnavailable,
	code.TimedOut:           Status.IsTimedOut,
	code.Uninitialized:      Status.IsUninitialized,
	code.ConfigurationError: Status.IsConfigurationError,
}

func TestOK_Basics(t *testing.T) {
	st := OK()
	if !st.IsOK() {
		t.Fatal("OK().IsOK() must be true")
	}
	if st.Code() != code.OK {
		t.Fatalf("OK().Code() = %v, want code.OK", st.Code())
	}
	if st.Message() != "" {
		t.Fatalf("OK().Message() = %q, want empty", st.Message())
	}
	if st.PosixCode() != NoPosixCode {
		t.Fatalf("OK().PosixCode() = %d, want %d", st.PosixCode(), NoPosixCode)
	}
	if st.String() != "OK" {
		t.Fatalf("OK().String() = %q, want %q", st.String(), "OK")
	}

	var zero Status
	if !zero.IsOK() {
		t.Fatal("zero-value Status must be OK")
	}
}

func TestOK_DoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		st := OK()
		if !st.IsOK() {
			t.Fatal("not ok")
		}
	})
	if allocs != 0 {
		t.Fatalf("OK() allocated %.1f times per run, want 0", allocs)
	}
}

func TestFactories_CodesAndPredicates(t *testing.T) {
	for _, f := range factories {
		t.Run(f.code.Ident(), func(t *testing.T) {
			st := f.make("boom")
			if st.IsOK() {
				t.Fatal("factory produced an OK status")
			}
			if st.Code() != f.code {
				t.Fatalf("Code() = %v, want %v", st.Code(), f.code)
			}
			for c, pred := range predicates {
				if got, want := pred(st), c == f.code; got != want {
					t.Fatalf("predicate for %v = %v, want %v", c, got, want)
				}
			}
		})
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	st := NotFound("no such row")
	if got := st.Message(); got != "no such row" {
		t.Fatalf("Message() = %q, want %q", got, "no such row")
	}
}

func TestMessage_Concatenation(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"both fragments", IOError("read failed", WithContext("/data/block-7")), "read failed: /data/block-7"},
		{"no context", IOError("read failed"), "read failed"},
		{"empty context", IOError("read failed", WithContext("")), "read failed"},
		{"empty primary", IOError("", WithContext("/data/block-7")), "/data/block-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.Message(); got != tt.want {
				t.Fatalf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPosixCode(t *testing.T) {
	if got := NotFound("x").PosixCode(); got != NoPosixCode {
		t.Fatalf("PosixCode() without option = %d, want %d", got, NoPosixCode)
	}
	if got := IOError("x", WithPosixCode(28)).PosixCode(); got != 28 {
		t.Fatalf("PosixCode() = %d, want 28", got)
	}
}

func TestString_Format(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"plain", NotFound("missing"), "Not found: missing"},
		{"with posix", IOError("write failed", WithPosixCode(28)), "IO error: write failed (error 28)"},
		{"with context and posix", NetworkError("connect", WithContext("peer down"), WithPosixCode(111)),
			"Network error: connect: peer down (error 111)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			// Inspection must be side-effect-free: repeated rendering is identical.
			if again := tt.st.String(); again != tt.want {
				t.Fatalf("second String() = %q, want %q", again, tt.want)
			}
		})
	}
}

func TestCodeName(t *testing.T) {
	if got := TimedOut("slow scan").CodeName(); got != "Timed out" {
		t.Fatalf("CodeName() = %q, want %q", got, "Timed out")
	}
	if got := OK().CodeName(); got != "OK" {
		t.Fatalf("CodeName() = %q, want %q", got, "OK")
	}
}

func TestCloneAndPrepend(t *testing.T) {
	st := NotFound("missing", WithPosixCode(2))
	got := st.CloneAndPrepend("ctx")
	if !got.IsNotFound() {
		t.Fatal("code must survive CloneAndPrepend")
	}
	if got.Message() != "ctx: missing" {
		t.Fatalf("Message() = %q, want %q", got.Message(), "ctx: missing")
	}
	if got.PosixCode() != 2 {
		t.Fatalf("PosixCode() = %d, want 2", got.PosixCode())
	}
	// The original is untouched.
	if st.Message() != "missing" {
		t.Fatalf("original mutated: %q", st.Message())
	}
}

func TestCloneAndPrepend_EmptyOriginalMessage(t *testing.T) {
	st := Aborted("").CloneAndPrepend("ctx")
	if st.Message() != "ctx" {
		t.Fatalf("Message() = %q, want %q", st.Message(), "ctx")
	}
}

func TestCloneAndPrepend_PanicsOnOK(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("CloneAndPrepend on OK must panic")
		}
	}()
	_ = OK().CloneAndPrepend("ctx")
}

func TestNew_PanicsOnOK(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(code.OK, ...) must panic")
		}
	}()
	_ = New(code.OK, "x")
}

func TestCopyIndependence(t *testing.T) {
	a := NotFound("missing")
	b := a
	a = IOError("disk failed", WithPosixCode(5))

	if !b.IsNotFound() || b.Message() != "missing" {
		t.Fatalf("copy changed after reassigning original: %v", b)
	}
	if !a.IsIOError() {
		t.Fatalf("reassigned value wrong: %v", a)
	}
}

func TestConcurrentReaders(t *testing.T) {
	st := ServiceUnavailable("draining", WithPosixCode(11))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if st.String() != "Service unavailable: draining (error 11)" {
					panic("inconsistent read")
				}
				if !st.IsServiceUnavailable() || st.PosixCode() != 11 {
					panic("inconsistent read")
				}
			}
		}()
	}
	wg.Wait()
}

func TestErr_Bridge(t *testing.T) {
	if err := OK().Err(); err != nil {
		t.Fatalf("OK().Err() = %v, want nil", err)
	}

	st := Corruption("bad checksum", WithContext("block 12"))
	err := st.Err()
	if err == nil {
		t.Fatal("non-OK Err() must not be nil")
	}
	if err.Error() != st.String() {
		t.Fatalf("Error() = %q, want %q", err.Error(), st.String())
	}

	wrapped := fmt.Errorf("scanning tablet: %w", err)
	back, ok := FromError(wrapped)
	if !ok {
		t.Fatal("FromError failed on wrapped status error")
	}
	if !back.IsCorruption() || back.Message() != st.Message() {
		t.Fatalf("FromError lost state: %v", back)
	}

	var se *Error
	if !errors.As(wrapped, &se) {
		t.Fatal("errors.As must find *status.Error")
	}
	if se.Code() != code.Corruption {
		t.Fatalf("Code() = %v, want Corruption", se.Code())
	}
}

func TestFromError_Foreign(t *testing.T) {
	if _, ok := FromError(errors.New("plain")); ok {
		t.Fatal("FromError must reject non-status errors")
	}
	st, ok := FromError(nil)
	if !ok || !st.IsOK() {
		t.Fatal("FromError(nil) must report OK")
	}
}
