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

package rlog

import (
	"io"
	"log/slog"
)

// noop is a singleton no-op logger used when no logger is configured.
var noop = slog.New(slog.NewTextHandler(io.Discard, nil))

// NoopLogger returns the singleton no-op logger.
func NoopLogger() *slog.Logger {
	return noop
}

// OrNoop returns logger if non-nil, otherwise the no-op singleton. Every
// constructor in this module that accepts an optional *slog.Logger funnels
// it through this helper so nil never has to be checked again downstream.
func OrNoop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return noop
	}
	return logger
}

// ForRequest builds a per-request child logger carrying the route pattern
// (or static path), method, and request path, without pulling in a
// dedicated request-logging middleware.
func ForRequest(logger *slog.Logger, method, path, routeTemplate string) *slog.Logger {
	return OrNoop(logger).With(
		slog.String("method", method),
		slog.String("path", path),
		slog.String("route", routeTemplate),
	)
}
