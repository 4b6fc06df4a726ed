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

import "errors"

var (
	// ErrResponseEmitted is returned when code tries to mutate a Response
	// after the transport has already accepted its headers.
	ErrResponseEmitted = errors.New("httpmsg: response already emitted")

	// ErrUnknownMethod is returned by ParseMethod for a string that is not
	// one of the nine methods the router surface accepts.
	ErrUnknownMethod = errors.New("httpmsg: unknown HTTP method")
)
