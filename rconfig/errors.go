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

package rconfig

import "errors"

var (
	ErrNoListenAddress       = errors.New("rconfig: at least one listen address is required")
	ErrWorkerThreadsInvalid  = errors.New("rconfig: worker threads must be positive")
	ErrRequestTimeoutInvalid = errors.New("rconfig: request timeout must be positive")
	ErrBufferSizeInvalid     = errors.New("rconfig: file reader buffer size must be within (0, 1 GiB]")
)
