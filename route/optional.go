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

package route

// Optional carries a typed placeholder value that may or may not have
// participated in a path match, for the i?, d?, and s? placeholder forms.
// Present is false exactly when the placeholder's group didn't match, which
// is distinct from the group matching an empty string.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some builds a present Optional wrapping v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Get returns the wrapped value and whether it was present, mirroring the
// two-result map/channel idiom.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrElse returns the wrapped value if present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.Present {
		return o.Value
	}
	return fallback
}
