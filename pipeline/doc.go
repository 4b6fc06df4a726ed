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

// Package pipeline drives a matched route's handler from header receipt to
// response emission, in two shapes:
//
//   - BufferedPipeline accumulates the whole body, dispatches the handler
//     once on the worker pool, and races {success, handler error, timeout}
//     to produce exactly one response.
//   - StreamingPipeline drives a long-lived per-request handler instance
//     as body chunks arrive and lets it emit response bytes incrementally,
//     serializing every transport write onto a single per-connection
//     ResponseLoop.
//
// Both pipelines are transport-agnostic: they depend only on the Transport
// interface, satisfied in production by HTTPTransport (an
// http.ResponseWriter adapter) and in tests by an in-memory fake.
package pipeline
