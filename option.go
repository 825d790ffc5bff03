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

// settings collects the optional construction inputs before the single
// payload allocation in New.
type settings struct {
	context string
	posix   int16
}

// Option is a functional option for the failure factories. Options only
// influence construction; a built Status is immutable.
type Option func(*settings)

// WithContext attaches a secondary message fragment. When both the primary
// message and the fragment are non-empty they are joined with ": " into one
// combined message at construction:
//
//	status.IOError("read failed", status.WithContext(path))
//	// message: `read failed: /data/tablet-0001`
func WithContext(msg string) Option {
	return func(s *settings) { s.context = msg }
}

// WithPosixCode attaches the POSIX error number of the underlying OS failure.
// The value is advisory: it travels with the status for diagnostics and wire
// propagation but is never interpreted by this package.
func WithPosixCode(c int16) Option {
	return func(s *settings) { s.posix = c }
}
