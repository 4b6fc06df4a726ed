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
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/rlog"
	"github.com/arkhttp/arkhttp/route"
	"github.com/arkhttp/arkhttp/router"
)

// BufferedPipeline drives the default handler shape: accumulate the whole
// body, invoke the handler once, emit exactly one response.
type BufferedPipeline struct {
	mu sync.Mutex

	state    State
	method   httpmsg.Method
	path     string
	rawQuery string
	header   http.Header
	body     httpmsg.BodyChain

	invoker     route.BufferedInvoker
	fallback500 route.BufferedInvoker
	fallback503 route.BufferedInvoker

	transport   Transport
	workers     *WorkerPool
	loop        *ResponseLoop
	timeout     time.Duration
	logger      *slog.Logger
	diagnostics router.DiagnosticHandler
}

// BufferedConfig collects a BufferedPipeline's construction-time
// dependencies.
type BufferedConfig struct {
	Method      httpmsg.Method
	Path        string
	RawQuery    string
	Invoker     route.BufferedInvoker // the matched route's handler, or the router's 404/405 fallback
	Fallback500 route.BufferedInvoker
	Fallback503 route.BufferedInvoker
	Transport   Transport
	Workers     *WorkerPool
	Loop        *ResponseLoop
	Timeout     time.Duration
	Logger      *slog.Logger
	Diagnostics router.DiagnosticHandler // optional; fallback failures are only logged if nil
}

// NewBufferedPipeline builds a pipeline in state AwaitingHeaders.
func NewBufferedPipeline(cfg BufferedConfig) *BufferedPipeline {
	return &BufferedPipeline{
		state:       AwaitingHeaders,
		method:      cfg.Method,
		path:        cfg.Path,
		rawQuery:    cfg.RawQuery,
		invoker:     cfg.Invoker,
		fallback500: cfg.Fallback500,
		fallback503: cfg.Fallback503,
		transport:   cfg.Transport,
		workers:     cfg.Workers,
		loop:        cfg.Loop,
		timeout:     cfg.Timeout,
		logger:      rlog.OrNoop(cfg.Logger),
		diagnostics: cfg.Diagnostics,
	}
}

// State returns the pipeline's current lifecycle state.
func (p *BufferedPipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// HeadersReceived captures headers and transitions AwaitingHeaders ->
// AccumulatingBody. Must be called exactly once.
func (p *BufferedPipeline) HeadersReceived(header http.Header) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != AwaitingHeaders {
		return fmt.Errorf("%w: HeadersReceived in state %s", ErrInvalidTransition, p.state)
	}
	p.header = header
	p.state = AccumulatingBody
	return nil
}

// BodyChunk appends bytes to the accumulating body. Valid zero or more
// times while in AccumulatingBody.
func (p *BufferedPipeline) BodyChunk(chunk []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != AccumulatingBody {
		return fmt.Errorf("%w: BodyChunk in state %s", ErrInvalidTransition, p.state)
	}
	p.body.Append(chunk)
	return nil
}

// bufferedOutcome is the first-wins race result EndOfMessage resolves.
type bufferedOutcome struct {
	kind string // "success", "error", "timeout"
	resp *httpmsg.Response
	err  error
}

// EndOfMessage seals the body, constructs the Request, submits the
// handler invocation to the worker pool, and arms the configured timeout.
// Transitions to Dispatched. Whichever of {handler success, handler error,
// timeout} is observed first resolves the response; the others are
// discarded.
func (p *BufferedPipeline) EndOfMessage() error {
	p.mu.Lock()
	if p.state != AccumulatingBody {
		p.mu.Unlock()
		return fmt.Errorf("%w: EndOfMessage in state %s", ErrInvalidTransition, p.state)
	}
	p.state = Dispatched
	req := httpmsg.NewRequest(httpmsg.RequestParams{
		Method:   p.method,
		Path:     p.path,
		RawQuery: p.rawQuery,
		Header:   p.header,
		Body:     p.body.Bytes(),
	})
	p.mu.Unlock()

	done := make(chan bufferedOutcome, 1)
	var once sync.Once
	send := func(o bufferedOutcome) { once.Do(func() { done <- o }) }

	p.workers.Submit(func() {
		resp, err := safeInvoke(p.invoker, req)
		if err != nil {
			send(bufferedOutcome{kind: "error", err: err})
			return
		}
		send(bufferedOutcome{kind: "success", resp: resp})
	})

	timer := time.AfterFunc(p.timeout, func() {
		send(bufferedOutcome{kind: "timeout"})
	})

	go func() {
		o := <-done
		timer.Stop()
		p.resolve(req, o)
	}()
	return nil
}

func (p *BufferedPipeline) resolve(req *httpmsg.Request, o bufferedOutcome) {
	var resp *httpmsg.Response
	switch o.kind {
	case "success":
		resp = o.resp
	case "error":
		p.logger.Error("buffered handler failed", slog.Any("error", o.err))
		r, ferr := safeInvoke(p.fallback500, req)
		if ferr != nil {
			p.logger.Error("500 fallback also failed", slog.Any("error", ferr))
			p.emitFallbackFailed(req, o.err, ferr)
			resp = httpmsg.NewString(500, "Unknown error")
		} else {
			resp = r
		}
	case "timeout":
		p.logger.Warn("buffered handler timed out")
		r, ferr := safeInvoke(p.fallback503, req)
		if ferr != nil {
			p.logger.Error("503 fallback also failed", slog.Any("error", ferr))
			p.emitFallbackFailed(req, ErrHandlerTimeout, ferr)
			resp = httpmsg.NewString(500, "Unknown error")
		} else {
			resp = r
		}
	}

	p.mu.Lock()
	p.state = ResponseReady
	p.mu.Unlock()

	p.loop.Post(func() {
		p.emit(resp)
		p.mu.Lock()
		p.state = Closed
		p.mu.Unlock()
	})
}

// emit writes a response following the contract: status, then each
// (header, value) pair, then body, then end-of-message. Response.Headers
// is an http.Header (a map), so the per-header write order follows Go's
// native map iteration rather than a guaranteed stable order; no
// downstream invariant in this module depends on header write order.
func (p *BufferedPipeline) emit(resp *httpmsg.Response) {
	_ = p.transport.WriteStatus(resp.Status())
	for key, values := range resp.Headers() {
		for _, v := range values {
			_ = p.transport.WriteHeader(key, v)
		}
	}
	_ = p.transport.WriteBody(resp.Body())
	_ = p.transport.End()
	resp.MarkEmitted()
}

// TransportError transitions directly to Closed and releases state, per
// the state machine's "fatal transport error jumps to Closed from any
// state" rule.
func (p *BufferedPipeline) TransportError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Closed
}

// RequestComplete releases pipeline state after the last response byte is
// acknowledged by the transport.
func (p *BufferedPipeline) RequestComplete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Closed
}

// emitFallbackFailed reports a status-code fallback handler itself failing,
// the one outcome the state machine has no further recovery for beyond the
// synthesized "Unknown error" response.
func (p *BufferedPipeline) emitFallbackFailed(req *httpmsg.Request, cause, fallbackErr error) {
	if p.diagnostics == nil {
		return
	}
	p.diagnostics.Emit(router.DiagnosticEvent{
		Kind:    router.DiagnosticFallbackFailed,
		Message: fmt.Sprintf("fallback handler failed while answering %s %s: %v", req.Method(), req.Path(), fallbackErr),
		Fields: map[string]any{
			"method":       string(req.Method()),
			"path":         req.Path(),
			"cause":        cause.Error(),
			"fallback_err": fallbackErr.Error(),
		},
	})
}

// safeInvoke recovers a panic from invoker and converts it to
// ErrHandlerPanic, so a misbehaving handler (the matched route's, or an
// error-fallback's) can't crash the worker goroutine running it.
func safeInvoke(invoker route.BufferedInvoker, req *httpmsg.Request) (resp *httpmsg.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
		}
	}()
	return invoker(req)
}
