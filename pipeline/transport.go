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

package pipeline

// Transport is the underlying HTTP/1.1 or HTTP/2 connection a pipeline
// writes a response onto. It exists so the pipelines are testable without
// a real socket; the reference implementation's proxygen RequestHandler
// plays the same role on the C++ side.
//
// Calls arrive in the fixed order the response emission contract
// describes: WriteStatus once, then zero or more WriteHeader calls, then
// zero or more WriteBody calls, then exactly one End call.
type Transport interface {
	WriteStatus(status int) error
	WriteHeader(key, value string) error
	WriteBody(body []byte) error
	End() error
}
