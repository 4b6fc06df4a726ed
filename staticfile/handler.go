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

package staticfile

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/pipeline"
	"github.com/arkhttp/arkhttp/route"
)

// handler implements route.StreamingHandler for one request. It is
// constructed fresh per request by the factory NewFactory returns, bound to that
// request's extracted path argument.
type handler struct {
	sender  route.Sender
	baseDir string
	relPath string
	bufLen  int
	workers *pipeline.WorkerPool
	logger  *slog.Logger

	ifModifiedSince    time.Time
	hasIfModifiedSince bool
}

// OnRequestReceived captures the conditional-GET header; the body, if any,
// is irrelevant to serving a static file and is never read.
func (h *handler) OnRequestReceived(req *httpmsg.Request) {
	if raw, ok := req.Header("If-Modified-Since"); ok {
		h.ifModifiedSince, h.hasIfModifiedSince = parseIfModifiedSince(raw)
	}
}

// OnBodyChunk is a no-op: static file requests carry no body worth reading.
func (h *handler) OnBodyChunk([]byte) {}

// OnEndOfMessage is the only place real work happens, and it happens off the
// calling goroutine: opening and reading the file is blocking I/O, so the
// work is submitted to the worker pool rather than run inline on whatever
// goroutine delivered end-of-message.
func (h *handler) OnEndOfMessage() {
	h.workers.Submit(h.serve)
}

func (h *handler) serve() {
	full := resolvePath(h.baseDir, h.relPath)

	f, err := os.Open(full)
	if err != nil {
		h.notFound()
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		h.notFound()
		return
	}

	modTime := info.ModTime().Truncate(time.Second)
	if h.hasIfModifiedSince && !modTime.After(h.ifModifiedSince) {
		h.send(httpmsg.NewStatus(http.StatusNotModified))
		h.endOfMessage()
		return
	}

	headers := http.Header{}
	headers.Set("Last-Modified", formatLastModified(modTime))
	h.send(httpmsg.NewBytes(http.StatusOK, nil, headers))

	buf := make([]byte, h.bufLen)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if sendErr := h.sender.SendBodyChunk(chunk); sendErr != nil {
				h.logger.Warn("static file send body chunk failed", "path", full, "error", sendErr)
				break
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			h.logger.Warn("static file read failed mid-stream", "path", full, "error", readErr)
			break
		}
	}
	h.endOfMessage()
}

func (h *handler) notFound() {
	h.send(httpmsg.NewStatus(http.StatusNotFound))
	h.endOfMessage()
}

func (h *handler) send(resp *httpmsg.Response) {
	if err := h.sender.SendResponseHeaders(resp); err != nil {
		h.logger.Warn("static file send response headers failed", "error", err)
	}
}

func (h *handler) endOfMessage() {
	if err := h.sender.SendEndOfMessage(); err != nil {
		h.logger.Warn("static file send end of message failed", "error", err)
	}
}

// OnRequestComplete and OnUnhandledError are logging-only: nothing about
// serving the file needs to react to either.
func (h *handler) OnRequestComplete() {
	h.logger.Debug("static file request complete", "path", h.relPath)
}

func (h *handler) OnUnhandledError(err error) {
	h.logger.Warn("static file unhandled transport error", "path", h.relPath, "error", err)
}

var _ route.StreamingHandler = (*handler)(nil)
