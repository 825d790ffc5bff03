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

// Package code defines the closed set of outcome categories used by the
// status package.
//
// A code answers "what kind of failure is this?" — NotFound, Corruption,
// TimedOut, and so on — with OK as the zero value meaning "no failure".
// Unlike open-ended string codes, this set is fixed and numbered: the numeric
// values form the wire contract used by protocols that transmit outcomes as
// integers, and by logs that record them. Renumbering is therefore forbidden;
// new categories may only be appended.
//
// Each code has two textual renderings:
//
//   - a display name ("Not found") used in human-facing diagnostics;
//   - an identifier ("not_found") used in JSON payloads, log fields and
//     registries. Identifiers are lowercase and underscore-separated, and
//     Parse accepts them with conservative normalization (trimming,
//     lowercasing, dash-to-underscore).
package code
