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
	"net/http"
	"sync"
)

// HTTPTransport adapts an http.ResponseWriter to Transport. net/http
// requires headers to be set before the status line is written, the
// reverse of the pipeline's logical "status, then headers" contract order,
// so HTTPTransport buffers the status and flushes both together on the
// first WriteBody or End call.
type HTTPTransport struct {
	mu            sync.Mutex
	w             http.ResponseWriter
	status        int
	headerWritten bool
}

// NewHTTPTransport wraps w.
func NewHTTPTransport(w http.ResponseWriter) *HTTPTransport {
	return &HTTPTransport{w: w}
}

func (t *HTTPTransport) WriteStatus(status int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	return nil
}

func (t *HTTPTransport) WriteHeader(key, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.w.Header().Add(key, value)
	return nil
}

func (t *HTTPTransport) WriteBody(body []byte) error {
	t.mu.Lock()
	t.flushLocked()
	t.mu.Unlock()
	if len(body) == 0 {
		return nil
	}
	_, err := t.w.Write(body)
	return err
}

func (t *HTTPTransport) End() error {
	t.mu.Lock()
	t.flushLocked()
	t.mu.Unlock()
	return nil
}

func (t *HTTPTransport) flushLocked() {
	if t.headerWritten {
		return
	}
	if t.status == 0 {
		t.status = http.StatusOK
	}
	t.w.WriteHeader(t.status)
	t.headerWritten = true
}
