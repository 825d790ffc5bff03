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

// Package apis defines the public contracts between the status value and its
// transport adapters.
//
// The goal of this package is to provide small, composable interfaces and
// view types that the HTTP and gRPC adapters, mappers, and loggers can target
// without importing each other. Concrete implementations live in the sibling
// packages (mapper, grpcx, httpx, adapter); callers should depend on the
// shapes defined here.
//
// This package must remain lightweight: interfaces and small view structs
// only.
package apis
