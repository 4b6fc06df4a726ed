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
)

// StaticRoute is an exact-string route: no placeholders, no schema, no
// regex engine involved in matching. It exists as its own type rather than
// a degenerate Route because the router checks it with an exact string
// comparison instead of a regex match, and consults it before any dynamic
// route.
type StaticRoute struct {
	name    string
	path    string
	methods httpmsg.MethodSet
	kind    kind
	fn      reflect.Value
}

// NewStaticBuffered binds path to a buffered handler of shape
// func(*httpmsg.Request) *httpmsg.Response (no trailing parameters, since a
// static route extracts nothing).
func NewStaticBuffered(path string, methods httpmsg.MethodSet, handler BufferedHandler) (*StaticRoute, error) {
	fnVal, fnType, err := reflectFunc(handler)
	if err != nil {
		return nil, fmt.Errorf("route: static path %q: %w", path, err)
	}
	if err := checkSignature(fnType, requestType, responseType, nil, fmt.Sprintf("static path %q", path)); err != nil {
		return nil, err
	}
	return &StaticRoute{path: path, methods: methods, kind: kindBuffered, fn: fnVal}, nil
}

// NewStaticStreaming binds path to a streaming factory of shape
// func(Sender) StreamingHandler.
func NewStaticStreaming(path string, methods httpmsg.MethodSet, factory StreamingFactory) (*StaticRoute, error) {
	fnVal, fnType, err := reflectFunc(factory)
	if err != nil {
		return nil, fmt.Errorf("route: static path %q: %w", path, err)
	}
	if err := checkSignature(fnType, senderType, handlerType, nil, fmt.Sprintf("static path %q", path)); err != nil {
		return nil, err
	}
	return &StaticRoute{path: path, methods: methods, kind: kindStreaming, fn: fnVal}, nil
}

func (s *StaticRoute) WithName(name string) *StaticRoute {
	s.name = name
	return s
}

func (s *StaticRoute) Name() string              { return s.name }
func (s *StaticRoute) Path() string               { return s.path }
func (s *StaticRoute) Methods() []httpmsg.Method  { return s.methods.Slice() }
func (s *StaticRoute) IsStreaming() bool          { return s.kind == kindStreaming }

// Match compares path for exact equality before checking method, same
// precedence as Route.Match.
func (s *StaticRoute) Match(method httpmsg.Method, path string) Match {
	if path != s.path {
		return Match{Result: PathNotMatched}
	}
	if !s.methods.Has(method) {
		return Match{Result: MethodNotMatched}
	}
	switch s.kind {
	case kindBuffered:
		fn := s.fn
		return Match{Result: RouteMatched, Route: s.path, Buffered: func(req *httpmsg.Request) (*httpmsg.Response, error) {
			return invokeBuffered(fn, req, nil)
		}}
	default:
		fn := s.fn
		return Match{Result: RouteMatched, Route: s.path, Streaming: func(sender Sender) (StreamingHandler, error) {
			return constructStreaming(fn, sender, nil)
		}}
	}
}
