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

// Package check provides the call-site idioms layered over the status value:
// early-return propagation with added context, "warn but continue", and
// fatal assertions.
//
// The status value itself never logs or aborts; these helpers are where that
// policy lives. The typical shapes:
//
//	// propagate, adding context
//	if st := tablet.Flush(); !st.IsOK() {
//		return check.Prepend(st, "flushing tablet "+id)
//	}
//
//	// warn but continue
//	check.WarnNotOK(&logger, compact(), "background compaction")
//
//	// fatal assertion at startup
//	check.FatalNotOK(&logger, cfg.Validate(), "bad server config")
package check

import (
	"github.com/rs/zerolog"

	"dirpx.dev/status"
)

// Prepend returns st unchanged when it is OK, and st.CloneAndPrepend(msg)
// otherwise. It exists so propagation sites do not need their own OK guard
// before adding context.
func Prepend(st status.Status, msg string) status.Status {
	if st.IsOK() {
		return st
	}
	return st.CloneAndPrepend(msg)
}

// Run executes steps in order and returns the first non-OK status, skipping
// the remaining steps. It returns OK when every step succeeds. This is the
// sequential early-return chain as a combinator:
//
//	return check.Run(
//		func() status.Status { return open() },
//		func() status.Status { return replay() },
//		func() status.Status { return serve() },
//	)
func Run(steps ...func() status.Status) status.Status {
	for _, step := range steps {
		if st := step(); !st.IsOK() {
			return st
		}
	}
	return status.OK()
}

// WarnNotOK logs the status at warn level, prefixed with msg, when it is not
// OK. The caller proceeds regardless; this is the "warn but continue" idiom
// for failures that are worth recording but not worth failing the operation.
func WarnNotOK(logger *zerolog.Logger, st status.Status, msg string) {
	if st.IsOK() {
		return
	}
	logger.Warn().
		Str("code", st.Code().Ident()).
		Msg(msg + ": " + st.String())
}

// LogNotOK logs the status at the given level when it is not OK and returns
// st unchanged, so it can wrap a return expression:
//
//	return check.LogNotOK(&logger, zerolog.ErrorLevel, doWrite())
func LogNotOK(logger *zerolog.Logger, level zerolog.Level, st status.Status) status.Status {
	if !st.IsOK() {
		logger.WithLevel(level).
			Str("code", st.Code().Ident()).
			Msg(st.String())
	}
	return st
}

// FatalNotOK logs the status at fatal level, prefixed with msg, when it is
// not OK. zerolog's fatal level terminates the process, so this only returns
// on success. Reserve it for invariants where continuing would be worse than
// dying, e.g. unusable configuration at startup.
func FatalNotOK(logger *zerolog.Logger, st status.Status, msg string) {
	if st.IsOK() {
		return
	}
	logger.Fatal().
		Str("code", st.Code().Ident()).
		Msg(msg + ": " + st.String())
}
