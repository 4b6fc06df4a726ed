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

import (
	"log/slog"
	"sync/atomic"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/rlog"
	"github.com/arkhttp/arkhttp/route"
)

// StreamingPipeline drives a per-request route.StreamingHandler instance.
// Both directions run on this pipeline's single-threaded ResponseLoop:
// inbound calls (OnRequestReceived, OnBodyChunk, OnEndOfMessage,
// OnUnhandledError, OnRequestComplete) are posted there in arrival order, so
// the handler never observes them out of order or concurrently with one
// another; outbound Sender calls are posted there too, so they never
// interleave writes to the transport with each other or with an inbound
// call. A handler that needs to block (e.g. reading a file) is expected to
// hand that work to the WorkerPool itself, the way staticfile's handler
// does from inside OnEndOfMessage — the WorkerPool is not used by this
// pipeline directly.
type StreamingPipeline struct {
	handler route.StreamingHandler

	transport Transport
	loop      *ResponseLoop
	logger    *slog.Logger

	headersSent atomic.Bool
}

// NewStreamingPipeline constructs the per-request handler by calling
// construct with this pipeline as its Sender. A streaming handler always
// receives its bound path arguments as ordinary constructor parameters, so
// there is no window where a handler instance exists before its arguments
// are known.
func NewStreamingPipeline(construct route.StreamingConstructor, transport Transport, loop *ResponseLoop, logger *slog.Logger) (*StreamingPipeline, error) {
	p := &StreamingPipeline{
		transport: transport,
		loop:      loop,
		logger:    rlog.OrNoop(logger),
	}
	h, err := construct(p)
	if err != nil {
		return nil, err
	}
	p.handler = h
	return p, nil
}

// RequestReceived posts OnRequestReceived onto the response loop, in order
// relative to every other inbound and outbound call posted there.
func (p *StreamingPipeline) RequestReceived(req *httpmsg.Request) {
	p.loop.Post(func() {
		p.handler.OnRequestReceived(req)
	})
}

// BodyChunk posts OnBodyChunk onto the response loop, preserving arrival
// order across successive chunks.
func (p *StreamingPipeline) BodyChunk(chunk []byte) {
	p.loop.Post(func() {
		p.handler.OnBodyChunk(chunk)
	})
}

// EndOfMessage posts OnEndOfMessage onto the response loop.
func (p *StreamingPipeline) EndOfMessage() {
	p.loop.Post(func() {
		p.handler.OnEndOfMessage()
	})
}

// UnhandledError posts OnUnhandledError onto the response loop.
func (p *StreamingPipeline) UnhandledError(err error) {
	p.loop.Post(func() {
		p.handler.OnUnhandledError(err)
	})
}

// RequestComplete posts OnRequestComplete onto the response loop, so it
// runs after every in-flight Sender call this handler posted.
func (p *StreamingPipeline) RequestComplete() {
	p.loop.Post(func() {
		p.handler.OnRequestComplete()
	})
}

// SendResponseHeaders implements route.Sender. It posts the header write
// onto the response loop and returns immediately; a second call is a no-op
// (logged), since headers may only be sent once.
func (p *StreamingPipeline) SendResponseHeaders(resp *httpmsg.Response) error {
	p.loop.Post(func() {
		if p.headersSent.Swap(true) {
			p.logger.Warn("streaming handler sent response headers more than once")
			return
		}
		_ = p.transport.WriteStatus(resp.Status())
		for key, values := range resp.Headers() {
			for _, v := range values {
				_ = p.transport.WriteHeader(key, v)
			}
		}
		resp.MarkEmitted()
	})
	return nil
}

// SendBodyChunk implements route.Sender, posting a body write onto the
// response loop. Empty chunks are dropped; a chunk sent before headers are
// sent is dropped too (logged), since both checks must run on the loop's
// single thread alongside SendResponseHeaders' own headersSent check.
func (p *StreamingPipeline) SendBodyChunk(chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}
	p.loop.Post(func() {
		if !p.headersSent.Load() {
			p.logger.Warn("streaming handler sent a body chunk before response headers")
			return
		}
		_ = p.transport.WriteBody(chunk)
	})
	return nil
}

// SendEndOfMessage implements route.Sender, posting end-of-message onto
// the response loop.
func (p *StreamingPipeline) SendEndOfMessage() error {
	p.loop.Post(func() {
		_ = p.transport.End()
	})
	return nil
}
