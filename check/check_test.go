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

package check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/status"
)

func TestPrepend(t *testing.T) {
	ok := Prepend(status.OK(), "ctx")
	if !ok.IsOK() {
		t.Fatal("Prepend must pass OK through")
	}

	st := Prepend(status.NotFound("missing"), "opening tablet")
	if !st.IsNotFound() {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	if st.Message() != "opening tablet: missing" {
		t.Fatalf("message = %q", st.Message())
	}
}

func TestRun(t *testing.T) {
	var calls []string
	step := func(name string, st status.Status) func() status.Status {
		return func() status.Status {
			calls = append(calls, name)
			return st
		}
	}

	st := Run(
		step("a", status.OK()),
		step("b", status.IOError("disk full")),
		step("c", status.OK()),
	)
	if !st.IsIOError() {
		t.Fatalf("Run returned %v, want the IOError from step b", st)
	}
	if got := strings.Join(calls, ","); got != "a,b" {
		t.Fatalf("steps executed: %q, want %q", got, "a,b")
	}

	if st := Run(); !st.IsOK() {
		t.Fatal("empty Run must report OK")
	}
}

func TestWarnNotOK(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	WarnNotOK(&logger, status.OK(), "compaction")
	if buf.Len() != 0 {
		t.Fatalf("OK must not log, got %q", buf.String())
	}

	WarnNotOK(&logger, status.TimedOut("slow peer", status.WithPosixCode(110)), "compaction")
	out := buf.String()
	for _, sub := range []string{
		`"level":"warn"`,
		`"code":"timed_out"`,
		"compaction: Timed out: slow peer (error 110)",
	} {
		if !strings.Contains(out, sub) {
			t.Fatalf("log missing %q:\n%s", sub, out)
		}
	}
}

func TestLogNotOK(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	st := status.Corruption("bad checksum")
	got := LogNotOK(&logger, zerolog.ErrorLevel, st)
	if got.Code() != st.Code() || got.Message() != st.Message() {
		t.Fatal("LogNotOK must return the status unchanged")
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("log missing error level:\n%s", buf.String())
	}

	buf.Reset()
	if st := LogNotOK(&logger, zerolog.ErrorLevel, status.OK()); !st.IsOK() || buf.Len() != 0 {
		t.Fatal("OK must pass through silently")
	}
}

func TestFatalNotOK_OKPath(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	// The failure path exits the process, so only the OK path is testable.
	FatalNotOK(&logger, status.OK(), "startup")
	if buf.Len() != 0 {
		t.Fatalf("OK must not log, got %q", buf.String())
	}
}
