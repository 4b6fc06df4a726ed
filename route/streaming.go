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

import "github.com/arkhttp/arkhttp/httpmsg"

// Sender is the outward half of the streaming handler contract: the means by
// which a StreamingHandler pushes data back toward the client. Implementers
// live in package pipeline, which posts every call onto the owning
// connection's single-threaded response loop regardless of which goroutine
// invokes it.
type Sender interface {
	SendResponseHeaders(resp *httpmsg.Response) error
	SendBodyChunk(chunk []byte) error
	SendEndOfMessage() error
}

// StreamingHandler is the inward half of the streaming contract: the
// sequence of calls a pipeline makes into a per-request handler instance as
// bytes arrive. OnRequestReceived always fires first (request line and
// headers, no body yet), then zero or more OnBodyChunk calls, then exactly
// one of OnEndOfMessage or OnUnhandledError, and finally OnRequestComplete
// once the response has fully left the connection. A handler instance is
// used for exactly one request and then discarded.
type StreamingHandler interface {
	OnRequestReceived(req *httpmsg.Request)
	OnBodyChunk(chunk []byte)
	OnEndOfMessage()
	OnRequestComplete()
	OnUnhandledError(err error)
}

// BufferedHandler documents the shape a dynamic or static buffered route's
// handler value must have: func(*httpmsg.Request, <schema-typed params>...)
// *httpmsg.Response. It exists for documentation only; NewBuffered accepts
// any function value and validates its actual reflected signature.
type BufferedHandler any

// StreamingFactory documents the shape a dynamic or static streaming route's
// handler value must have: func(Sender, <schema-typed params>...)
// StreamingHandler. It exists for documentation only; NewStreaming accepts
// any function value and validates its actual reflected signature.
type StreamingFactory any

// BufferedInvoker is the closure a Match attaches for a buffered route: the
// pipeline calls it once, with the fully-assembled Request, and gets back
// either a Response or an error (including a recovered handler panic).
type BufferedInvoker func(req *httpmsg.Request) (*httpmsg.Response, error)

// StreamingConstructor is the closure a Match attaches for a streaming
// route: the pipeline calls it once the connection's Sender exists, and
// gets back a fresh StreamingHandler instance bound to this request's
// extracted path arguments.
type StreamingConstructor func(sender Sender) (StreamingHandler, error)
