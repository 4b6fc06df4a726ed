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

import "github.com/arkhttp/arkhttp/route"

// Option configures a Router at construction time. Routers are immutable
// once New returns, so every configuration knob lives here rather than on
// setter methods.
type Option func(*Router)

// WithStaticRoutes registers one or more static (exact-path) routes, in
// the order given. Static routes are always consulted before dynamic ones
// regardless of registration order across calls.
func WithStaticRoutes(routes ...*route.StaticRoute) Option {
	return func(r *Router) {
		r.statics = append(r.statics, routes...)
	}
}

// WithRoutes registers one or more dynamic (pattern-based) routes, in the
// order given. Dynamic routes are tried in registration order, and in the
// order passed across multiple WithRoutes calls.
func WithRoutes(routes ...*route.Route) Option {
	return func(r *Router) {
		r.dynamics = append(r.dynamics, routes...)
	}
}

// WithFallback registers (or replaces) the error-fallback handler for a
// given HTTP status code. A status with no registered fallback falls back
// to a synthesized empty response carrying just that status.
func WithFallback(status int, handler ErrorHandler) Option {
	return func(r *Router) {
		r.fallback[status] = handler
	}
}

// WithDiagnostics attaches a DiagnosticHandler. Without this option,
// diagnostics are discarded.
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = h
	}
}
