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

package pattern

import "errors"

// Static errors for better error handling and testing.
// These errors should be wrapped with fmt.Errorf and %w when context is needed.
var (
	// ErrMissingRegex is returned when a {{s:...}} or {{s?:...}} placeholder
	// is missing its required nested regex.
	ErrMissingRegex = errors.New("pattern: placeholder is missing its nested regex")

	// ErrUnexpectedRegex is returned when a {{i}} or {{d}} placeholder
	// carries trailing content it is not allowed to have.
	ErrUnexpectedRegex = errors.New("pattern: placeholder does not accept a nested regex")

	// ErrInvalidNestedRegex is returned when a placeholder's nested regex R
	// fails to compile on its own.
	ErrInvalidNestedRegex = errors.New("pattern: invalid nested regex")

	// ErrSubstitutionInvariant is returned when the left-to-right substitution
	// cursor would have to rewind; this indicates a bug in the token scanner,
	// not a bad user pattern.
	ErrSubstitutionInvariant = errors.New("pattern: substitution cursor invariant violated")

	// ErrOuterRegexCompile is returned when the fully-substituted pattern
	// fails to compile as a regex.
	ErrOuterRegexCompile = errors.New("pattern: compiled regex failed to compile")
)
