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

// Package pattern compiles route pattern strings into a regular expression
// plus an ordered parameter schema.
//
// A pattern is an ordinary path template in which six placeholder forms may
// appear; everything else is copied into the output regex verbatim (and may
// itself be regex syntax):
//
//	{{i}}        required int64
//	{{d}}        required float64
//	{{s:R}}      required string matching nested regex R
//	{{i?:C}}     optional int64, consuming literal/regex fragment C when present
//	{{d?:C}}     optional float64, consuming C when present
//	{{s?:R:C}}   optional string matching R, consuming C when present
//
// Compile returns the compiled regex together with the schema: the ordered
// sequence of ParamType values, one per placeholder, in the order the
// placeholders appeared in the source pattern. The schema is later compared
// element-wise against a handler's reflected parameter list by package route.
package pattern
