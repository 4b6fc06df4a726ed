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

import "errors"

var (
	// ErrDuplicateStaticRoute names the condition of two static routes
	// registering the same path. New does not return it: a duplicate path is
	// reported as a DiagnosticDuplicateStaticRoute event instead.
	ErrDuplicateStaticRoute = errors.New("router: duplicate static route")

	// ErrNilRoute is returned when a nil *route.Route or *route.StaticRoute
	// is registered.
	ErrNilRoute = errors.New("router: nil route registered")
)
