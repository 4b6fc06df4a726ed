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

package router

import (
	"fmt"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/route"
)

// MatchResult is the router's name for route.MatchResult: every Route and
// StaticRoute already produces one, so the Router re-exports the type
// rather than wrapping it.
type MatchResult = route.MatchResult

const (
	PathNotMatched   = route.PathNotMatched
	MethodNotMatched = route.MethodNotMatched
	RouteMatched     = route.RouteMatched
)

// RouteMatch is the router's name for route.Match.
type RouteMatch = route.Match

// ErrorHandler answers a request that no ordinary route produced a
// response for (404/405) or that a handler or timeout turned into a
// failure (500/503). It always receives the original request.
type ErrorHandler func(req *httpmsg.Request) *httpmsg.Response

// Router owns an ordered list of static routes, an ordered list of dynamic
// routes, and a status-code fallback table. Immutable after New returns;
// Dispatch performs no writes, so concurrent dispatch needs no locking.
type Router struct {
	statics     []*route.StaticRoute
	dynamics    []*route.Route
	fallback    map[int]ErrorHandler
	diagnostics DiagnosticHandler
}

// New builds a Router from the given options.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		fallback:    make(map[int]ErrorHandler),
		diagnostics: noopDiagnosticHandler{},
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, s := range r.statics {
		if s == nil {
			return nil, ErrNilRoute
		}
	}
	for _, d := range r.dynamics {
		if d == nil {
			return nil, ErrNilRoute
		}
	}
	r.detectDuplicateStatics()
	return r, nil
}

// MustNew calls New and panics if it returns an error.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("router: %v", err))
	}
	return r
}

func (r *Router) detectDuplicateStatics() {
	seen := make(map[string]*route.StaticRoute, len(r.statics))
	for _, s := range r.statics {
		if prior, ok := seen[s.Path()]; ok {
			_ = prior
			r.diagnostics.Emit(DiagnosticEvent{
				Kind:    DiagnosticDuplicateStaticRoute,
				Message: fmt.Sprintf("static route %q registered more than once; for a method both registrations accept, the earlier one wins", s.Path()),
				Fields:  map[string]any{"path": s.Path()},
			})
			continue
		}
		seen[s.Path()] = s
	}
}

// Diagnostics returns the Router's configured DiagnosticHandler (a no-op
// sink if none was supplied), so collaborators built around a Router — such
// as pipeline.Handler — can forward their own diagnostic events through the
// same sink.
func (r *Router) Diagnostics() DiagnosticHandler { return r.diagnostics }

// StaticRoutes returns the registered static routes in dispatch order.
func (r *Router) StaticRoutes() []*route.StaticRoute { return r.statics }

// Routes returns the registered dynamic routes in dispatch order.
func (r *Router) Routes() []*route.Route { return r.dynamics }

// Dispatch finds the route matching method and path, following the
// dispatch order: static routes in insertion order, then dynamic routes in
// insertion order, first full match wins; a path that never matched
// returns the 404 fallback, a path that matched but no method did returns
// the 405 fallback.
func (r *Router) Dispatch(method httpmsg.Method, path string) RouteMatch {
	methodSeen := false

	for _, s := range r.statics {
		m := s.Match(method, path)
		switch m.Result {
		case RouteMatched:
			return m
		case MethodNotMatched:
			methodSeen = true
		}
	}
	for _, d := range r.dynamics {
		m := d.Match(method, path)
		switch m.Result {
		case RouteMatched:
			return m
		case MethodNotMatched:
			methodSeen = true
		}
	}

	if methodSeen {
		return RouteMatch{Result: MethodNotMatched, Buffered: r.bufferedFallback(405)}
	}
	return RouteMatch{Result: PathNotMatched, Buffered: r.bufferedFallback(404)}
}

// Fallback returns the configured handler for status, or a synthesized
// handler that emits an empty response carrying that status if none was
// registered.
func (r *Router) Fallback(status int) ErrorHandler {
	if h, ok := r.fallback[status]; ok {
		return h
	}
	return func(req *httpmsg.Request) *httpmsg.Response {
		return httpmsg.NewStatus(status)
	}
}

// bufferedFallback adapts Fallback(status) into a route.BufferedInvoker so
// Dispatch can hand 404/405 results back through the same shape as a real
// route match.
func (r *Router) bufferedFallback(status int) route.BufferedInvoker {
	handler := r.Fallback(status)
	return func(req *httpmsg.Request) (*httpmsg.Response, error) {
		return handler(req), nil
	}
}
