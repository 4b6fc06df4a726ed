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

import (
	"fmt"
	"reflect"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/pattern"
)

// kind distinguishes a buffered route from a streaming one.
type kind int

const (
	kindBuffered kind = iota
	kindStreaming
)

// Route is a dynamic, pattern-based route: an ordered placeholder pattern
// compiled once into a regex and a value schema, a set of accepted
// methods, and exactly one bound handler (buffered or streaming).
type Route struct {
	name     string
	source   string
	methods  httpmsg.MethodSet
	compiled *pattern.Compiled
	kind     kind
	fn       reflect.Value
}

// NewBuffered compiles pattern and binds it to a buffered handler of shape
// func(*httpmsg.Request, <schema-typed params>...) *httpmsg.Response. The
// handler's trailing parameters are checked element-for-element against the
// compiled pattern's schema; any mismatch is a construction-time error.
func NewBuffered(patternSrc string, methods httpmsg.MethodSet, handler BufferedHandler) (*Route, error) {
	compiled, err := pattern.Compile(patternSrc)
	if err != nil {
		return nil, fmt.Errorf("route: compile pattern %q: %w", patternSrc, err)
	}
	fnVal, fnType, err := reflectFunc(handler)
	if err != nil {
		return nil, fmt.Errorf("route: pattern %q: %w", patternSrc, err)
	}
	if err := checkSignature(fnType, requestType, responseType, compiled.Schema, fmt.Sprintf("pattern %q", patternSrc)); err != nil {
		return nil, err
	}
	return &Route{source: patternSrc, methods: methods, compiled: compiled, kind: kindBuffered, fn: fnVal}, nil
}

// NewStreaming compiles pattern and binds it to a streaming factory of
// shape func(Sender, <schema-typed params>...) StreamingHandler.
func NewStreaming(patternSrc string, methods httpmsg.MethodSet, factory StreamingFactory) (*Route, error) {
	compiled, err := pattern.Compile(patternSrc)
	if err != nil {
		return nil, fmt.Errorf("route: compile pattern %q: %w", patternSrc, err)
	}
	fnVal, fnType, err := reflectFunc(factory)
	if err != nil {
		return nil, fmt.Errorf("route: pattern %q: %w", patternSrc, err)
	}
	if err := checkSignature(fnType, senderType, handlerType, compiled.Schema, fmt.Sprintf("pattern %q", patternSrc)); err != nil {
		return nil, err
	}
	return &Route{source: patternSrc, methods: methods, compiled: compiled, kind: kindStreaming, fn: fnVal}, nil
}

// WithName attaches a debugging name and returns the route, for chaining at
// registration time.
func (r *Route) WithName(name string) *Route {
	r.name = name
	return r
}

func (r *Route) Name() string                 { return r.name }
func (r *Route) Pattern() string              { return r.source }
func (r *Route) Methods() []httpmsg.Method    { return r.methods.Slice() }
func (r *Route) Schema() []pattern.ParamType  { return r.compiled.Schema }
func (r *Route) IsStreaming() bool            { return r.kind == kindStreaming }

// Match tests path against the compiled pattern, then method against the
// route's method set, in that order: a path miss is reported before a
// method miss is even checked, matching the reference router's precedence
// for building a 404 vs. a 405 across the whole route table.
func (r *Route) Match(method httpmsg.Method, path string) Match {
	idx, ok := r.compiled.Match(path)
	if !ok {
		return Match{Result: PathNotMatched}
	}
	if !r.methods.Has(method) {
		return Match{Result: MethodNotMatched}
	}
	values := extractAll(r.compiled, path, idx)
	switch r.kind {
	case kindBuffered:
		fn := r.fn
		return Match{Result: RouteMatched, Route: r.source, Buffered: func(req *httpmsg.Request) (*httpmsg.Response, error) {
			return invokeBuffered(fn, req, values)
		}}
	default:
		fn := r.fn
		return Match{Result: RouteMatched, Route: r.source, Streaming: func(sender Sender) (StreamingHandler, error) {
			return constructStreaming(fn, sender, values)
		}}
	}
}
