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

// State is the buffered pipeline's lifecycle. A fatal transport error
// jumps to Closed from any state.
type State int

const (
	AwaitingHeaders State = iota
	AccumulatingBody
	Dispatched
	ResponseReady
	Closed
)

func (s State) String() string {
	switch s {
	case AwaitingHeaders:
		return "AwaitingHeaders"
	case AccumulatingBody:
		return "AccumulatingBody"
	case Dispatched:
		return "Dispatched"
	case ResponseReady:
		return "ResponseReady"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}
