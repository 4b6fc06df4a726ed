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
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// Request is an immutable view over one HTTP request. It is built once by
// a pipeline from transport artifacts (method, raw path, raw query string,
// headers, accumulated body) and never mutated afterward; ownership belongs
// exclusively to the pipeline driving the handler until the handler returns.
type Request struct {
	method  Method
	path    string
	query   map[string][]string // keys stored as received, NOT pre-decoded
	headers http.Header
	cookies map[string][]string
	body    []byte
}

// RequestParams are the transport artifacts used to build a Request.
type RequestParams struct {
	Method   Method
	Path     string // already percent-decoded by the transport
	RawQuery string // NOT decoded; NewRequest decodes values, keys are decoded lazily, see Query
	Header   http.Header
	Body     []byte
}

// NewRequest builds an immutable Request from transport artifacts.
func NewRequest(p RequestParams) *Request {
	r := &Request{
		method:  p.Method,
		path:    p.Path,
		query:   parseRawQuery(p.RawQuery),
		headers: p.Header,
		body:    p.Body,
	}
	if r.headers == nil {
		r.headers = http.Header{}
	}
	if cookieHeader := r.headers.Get("Cookie"); cookieHeader != "" {
		r.cookies = parseCookieHeader(cookieHeader)
	}
	return r
}

func (r *Request) Method() Method { return r.method }
func (r *Request) Path() string   { return r.path }
func (r *Request) Body() []byte   { return r.body }

// parseRawQuery splits a raw (possibly percent-encoded) query string on '&'
// and '=' without decoding keys; values are decoded immediately using query
// mode ('+' as space). A value with a malformed percent-encoding is
// dropped silently rather than failing the whole parse.
func parseRawQuery(raw string) map[string][]string {
	out := make(map[string][]string)
	if raw == "" {
		return out
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, rawValue, hasEq := strings.Cut(pair, "=")
		if !hasEq {
			out[key] = append(out[key], "")
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		out[key] = append(out[key], value)
	}
	return out
}

// Query returns the first value for key. If key is not present as a raw
// stored key, every stored key is URL-decoded and compared against key,
// handling lookups where the caller passes the decoded form of a key whose
// raw form carried encoded characters. Malformed percent-encodings
// encountered during the fallback are skipped silently.
func (r *Request) Query(key string) (string, bool) {
	if vals, ok := r.query[key]; ok && len(vals) > 0 {
		return vals[0], true
	}
	for rawKey, vals := range r.query {
		decoded, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		if decoded == key && len(vals) > 0 {
			return vals[0], true
		}
	}
	return "", false
}

// QueryValues returns every stored value for key, using the same raw-then-
// decoded-fallback lookup as Query.
func (r *Request) QueryValues(key string) []string {
	if vals, ok := r.query[key]; ok {
		return vals
	}
	for rawKey, vals := range r.query {
		decoded, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		if decoded == key {
			return vals
		}
	}
	return nil
}

// Header returns the single value for a case-insensitive header name, and
// whether exactly one value was present. Headers with zero or multiple
// values return absent; use HeaderValues for the raw bag.
func (r *Request) Header(key string) (string, bool) {
	vals := r.headers[textproto.CanonicalMIMEHeaderKey(key)]
	if len(vals) == 1 {
		return vals[0], true
	}
	return "", false
}

// HeaderValues returns every value stored for a case-insensitive header name.
func (r *Request) HeaderValues(key string) []string {
	return r.headers[textproto.CanonicalMIMEHeaderKey(key)]
}

// Cookie returns the first value parsed for the named cookie.
func (r *Request) Cookie(name string) (string, bool) {
	vals := r.cookies[name]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// parseCookieHeader parses a Cookie header's ';'-separated "name=value"
// pairs. Malformed segments (no '=') are skipped silently.
func parseCookieHeader(header string) map[string][]string {
	out := make(map[string][]string)
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		out[name] = append(out[name], value)
	}
	return out
}
