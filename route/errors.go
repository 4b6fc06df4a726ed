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

package route

import "errors"

var (
	// ErrHandlerNotFunc is returned when a handler argument isn't a function.
	ErrHandlerNotFunc = errors.New("route: handler is not a function")

	// ErrHandlerSignature is returned when a handler's leading parameter
	// doesn't match the kind of route it's bound to (*httpmsg.Request for
	// buffered, Sender for streaming).
	ErrHandlerSignature = errors.New("route: handler has the wrong leading parameter")

	// ErrSchemaMismatch is returned when a handler's trailing parameters
	// don't match the pattern's extracted-value schema, element for element.
	ErrSchemaMismatch = errors.New("route: handler parameters do not match pattern schema")

	// ErrHandlerPanic wraps a panic recovered from inside a handler
	// invocation, converting it into a normal error the pipeline can route
	// through its error-fallback table instead of crashing the worker.
	ErrHandlerPanic = errors.New("route: handler panicked")

	// ErrBadReturn is returned when a buffered handler's return value isn't
	// assignable to *httpmsg.Response, or a streaming factory's return value
	// isn't assignable to StreamingHandler.
	ErrBadReturn = errors.New("route: handler return value has the wrong type")
)
