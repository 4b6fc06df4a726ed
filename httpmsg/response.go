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

package httpmsg

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
)

// Response is mutable during construction and immutable once emitted: once
// the transport has accepted the response headers, header mutation is no
// longer visible (MarkEmitted latches this; subsequent SetHeader/SetBody calls
// return ErrResponseEmitted instead of panicking, since a handler racing the
// transport is a programming error we want surfaced, not crashed on).
type Response struct {
	status  int
	headers http.Header
	body    []byte
	emitted atomic.Bool
}

// NewStatus builds a response carrying only a status code and no body.
func NewStatus(status int) *Response {
	return &Response{status: status, headers: http.Header{}}
}

// NewString builds a response with a string body.
func NewString(status int, body string) *Response {
	return &Response{status: status, headers: http.Header{}, body: []byte(body)}
}

// NewBytes builds a response with a byte-slice body and caller-supplied
// headers, copied verbatim.
func NewBytes(status int, body []byte, headers http.Header) *Response {
	return &Response{status: status, headers: cloneHeader(headers), body: body}
}

// NewJSON serializes v and builds a response carrying the result as the
// body, with caller-supplied headers copied verbatim plus a Content-Type of
// application/json if the caller didn't already set one. A stable member
// order is not required by the wire format but falls out naturally of
// encoding/json's struct-field-order behavior, which is convenient for tests.
func NewJSON(status int, v any, headers http.Header) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("httpmsg: encode JSON response: %w", err)
	}
	h := cloneHeader(headers)
	if h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	return &Response{status: status, headers: h, body: body}, nil
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	return h.Clone()
}

func (r *Response) Status() int { return r.status }

func (r *Response) Body() []byte { return r.body }

// Headers returns the live header map. Callers that need a snapshot after
// the response may still be mutated elsewhere should Clone() it themselves.
func (r *Response) Headers() http.Header { return r.headers }

// SetHeader adds a header value. Returns ErrResponseEmitted once the
// response has been marked emitted.
func (r *Response) SetHeader(key, value string) error {
	if r.emitted.Load() {
		return ErrResponseEmitted
	}
	r.headers.Add(key, value)
	return nil
}

// SetBody replaces the response body. Returns ErrResponseEmitted once the
// response has been marked emitted.
func (r *Response) SetBody(body []byte) error {
	if r.emitted.Load() {
		return ErrResponseEmitted
	}
	r.body = body
	return nil
}

// MarkEmitted latches the response as emitted; further mutation attempts
// fail with ErrResponseEmitted. Idempotent.
func (r *Response) MarkEmitted() {
	r.emitted.Store(true)
}

// Emitted reports whether MarkEmitted has been called.
func (r *Response) Emitted() bool {
	return r.emitted.Load()
}
