// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package router owns an ordered set of static and dynamic routes plus an
// HTTP-status-code fallback table, and dispatches requests against them.
//
// A Router is built once, via New/MustNew and a set of Option values, and
// is immutable and safe for concurrent dispatch thereafter: Dispatch never
// mutates Router state, so no synchronization is needed around it.
package router
