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

import "errors"

var (
	// ErrInvalidTransition is returned when a pipeline operation is called
	// out of order for the current state (e.g. BodyChunk before
	// HeadersReceived).
	ErrInvalidTransition = errors.New("pipeline: invalid state transition")

	// ErrHandlerPanic wraps a panic recovered from a buffered handler or an
	// error-fallback handler invocation.
	ErrHandlerPanic = errors.New("pipeline: handler panicked")

	// ErrHandlerTimeout marks the original-cause slot of a
	// DiagnosticFallbackFailed event raised after a timeout, since there is
	// no handler error in that case.
	ErrHandlerTimeout = errors.New("pipeline: handler timed out")
)
