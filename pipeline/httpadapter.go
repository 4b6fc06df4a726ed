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
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/rconfig"
	"github.com/arkhttp/arkhttp/rlog"
	"github.com/arkhttp/arkhttp/route"
	"github.com/arkhttp/arkhttp/router"
)

const streamReadBufferSize = 32 * 1024

// Handler adapts a Router's dispatch onto net/http's http.Handler contract,
// driving every request through the same Buffered/StreamingPipeline state
// machines a non-net/http transport would use. It is the one place in this
// module that bridges the two worlds: net/http's synchronous
// ResponseWriter, and the pipelines' post-to-a-loop write model.
type Handler struct {
	router  *router.Router
	workers *WorkerPool
	timeout time.Duration
	logger  *slog.Logger
}

// NewHandler builds an http.Handler-satisfying adapter around router,
// sized and timed by cfg.
func NewHandler(r *router.Router, cfg *rconfig.Config, logger *slog.Logger) *Handler {
	return &Handler{
		router:  r,
		workers: NewWorkerPool(cfg.WorkerThreads),
		timeout: cfg.RequestTimeout,
		logger:  rlog.OrNoop(logger),
	}
}

// ServeHTTP implements http.Handler. Routing is done up front; the matched
// (or fallback) invoker then drives a fresh Buffered or StreamingPipeline
// against this one request, and ServeHTTP blocks until that pipeline has
// written its last byte, since the ResponseWriter is only valid until this
// method returns.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method, err := httpmsg.ParseMethod(r.Method)
	if err != nil {
		w.WriteHeader(http.StatusNotImplemented)
		return
	}
	match := h.router.Dispatch(method, r.URL.Path)
	reqLogger := rlog.ForRequest(h.logger, string(method), r.URL.Path, routeTemplate(match))

	transport := NewHTTPTransport(w)
	done := make(chan struct{})
	dt := &doneTransport{Transport: transport, done: done}
	loop := NewResponseLoop(8)
	defer loop.Close()

	var complete func()
	if match.Streaming != nil {
		complete = h.serveStreaming(dt, loop, match.Streaming, method, r, reqLogger)
	} else {
		complete = h.serveBuffered(dt, loop, match.Buffered, method, r, reqLogger)
	}

	<-done
	complete()
}

// routeTemplate names the logger attribute a dispatch result should carry:
// the matched route's template, or a fixed label for the two fallback
// outcomes Dispatch itself can return.
func routeTemplate(match router.RouteMatch) string {
	switch match.Result {
	case router.RouteMatched:
		return match.Route
	case router.MethodNotMatched:
		return "<405>"
	default:
		return "<404>"
	}
}

func (h *Handler) serveBuffered(transport Transport, loop *ResponseLoop, invoker route.BufferedInvoker, method httpmsg.Method, r *http.Request, logger *slog.Logger) func() {
	p := NewBufferedPipeline(BufferedConfig{
		Method:      method,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		Invoker:     invoker,
		Fallback500: adaptErrorHandler(h.router.Fallback(500)),
		Fallback503: adaptErrorHandler(h.router.Fallback(503)),
		Transport:   transport,
		Workers:     h.workers,
		Loop:        loop,
		Timeout:     h.timeout,
		Logger:      logger,
		Diagnostics: h.router.Diagnostics(),
	})
	if err := p.HeadersReceived(r.Header); err != nil {
		logger.Error("buffered pipeline rejected headers", "error", err)
	}
	body, _ := io.ReadAll(r.Body)
	if err := p.BodyChunk(body); err != nil {
		logger.Error("buffered pipeline rejected body", "error", err)
	}
	if err := p.EndOfMessage(); err != nil {
		logger.Error("buffered pipeline rejected end of message", "error", err)
	}
	return p.RequestComplete
}

func (h *Handler) serveStreaming(transport Transport, loop *ResponseLoop, construct route.StreamingConstructor, method httpmsg.Method, r *http.Request, logger *slog.Logger) func() {
	sp, err := NewStreamingPipeline(construct, transport, loop, logger)
	if err != nil {
		logger.Error("streaming handler construction failed", "error", err)
		_ = transport.WriteStatus(http.StatusInternalServerError)
		_ = transport.End()
		return func() {}
	}

	req := httpmsg.NewRequest(httpmsg.RequestParams{
		Method:   method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header,
	})
	sp.RequestReceived(req)

	buf := make([]byte, streamReadBufferSize)
	for {
		n, readErr := r.Body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			sp.BodyChunk(chunk)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			sp.UnhandledError(readErr)
			break
		}
	}
	sp.EndOfMessage()
	return sp.RequestComplete
}

// adaptErrorHandler lifts a router.ErrorHandler (which cannot fail) into a
// route.BufferedInvoker, the shape BufferedConfig's fallback fields want.
func adaptErrorHandler(h router.ErrorHandler) route.BufferedInvoker {
	return func(req *httpmsg.Request) (*httpmsg.Response, error) {
		return h(req), nil
	}
}

// doneTransport wraps a Transport and closes done the first time End is
// called, so ServeHTTP can block until the response has actually been
// written instead of returning as soon as the pipeline accepts the request.
type doneTransport struct {
	Transport
	once sync.Once
	done chan struct{}
}

func (t *doneTransport) End() error {
	err := t.Transport.End()
	t.once.Do(func() { close(t.done) })
	return err
}
