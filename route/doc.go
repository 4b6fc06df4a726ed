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

// Package route implements Route (dynamic, pattern-based) and StaticRoute
// (exact-string), the type-checked binding between a compiled pattern's
// schema and a handler's reflected parameter list, and the per-request
// match protocol both route kinds share.
//
// A handler's parameter types are checked against the pattern's schema once,
// at construction time (NewBuffered / NewStreaming), using reflection in
// place of the compile-time template machinery the reference implementation
// used: the schema is a runtime slice of pattern.ParamType, and each type is
// mapped to exactly one Go type (int64, float64, string, or one of the
// Optional[T] instantiations). Construction fails loudly if the two
// schemas disagree in length or in any element; nothing checks this again
// at request time.
package route
