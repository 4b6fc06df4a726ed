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

// DiagnosticKind categorizes a DiagnosticEvent.
type DiagnosticKind string

const (
	DiagnosticDuplicateStaticRoute DiagnosticKind = "duplicate_static_route"
	DiagnosticFallbackFailed       DiagnosticKind = "fallback_failed"
)

// DiagnosticEvent is an informational event emitted by a Router while it is
// built (duplicate static routes), or by a pipeline driving the Router's
// fallbacks (fallback failures). It carries no request-handling authority of its
// own — there is no way for a DiagnosticHandler to alter a response; it is
// strictly an observation sink, deliberately kept out of the request path
// proper so it can never become a middleware chain in disguise.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticHandler receives DiagnosticEvents from a Router being built and
// from pipelines serving it. Implementations must not block for long; Emit is called
// synchronously on whatever goroutine produced the event.
type DiagnosticHandler interface {
	Emit(event DiagnosticEvent)
}

type noopDiagnosticHandler struct{}

func (noopDiagnosticHandler) Emit(DiagnosticEvent) {}
