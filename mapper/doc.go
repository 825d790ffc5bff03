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

// Package mapper builds immutable resolvers from outcome categories to
// transport statuses (HTTP and gRPC).
//
// A mapper is constructed once with New, optionally adjusted through
// functional options, and then frozen: lookups are map reads with no
// synchronization, safe for concurrent use for the lifetime of the process.
//
// Resolution order, highest to lowest:
//
//  1. exact per-category override (explicitly registered);
//  2. per-category default (library table, possibly replaced);
//  3. global fallback (500 / codes.Internal).
//
// The library defaults cover every failure category; overrides exist for
// boundaries that need a different policy (e.g. surfacing IllegalState as
// 500 instead of 409) without editing the shared table.
package mapper
