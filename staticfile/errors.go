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

package staticfile

import "errors"

// ErrNoBaseDir is returned by NewFactory when no base directory was
// configured; serving files without one is a misconfiguration, not a
// runtime condition a request can trigger.
var ErrNoBaseDir = errors.New("staticfile: base directory not configured")
