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

import (
	"errors"
	"math"
	"strconv"
)

// parseInt64 parses a digit run the pattern regex already guarantees is
// well-formed. On overflow it substitutes math.MaxInt64 regardless of sign,
// matching the reference implementation's overflow handling rather than
// clamping toward the nearer bound.
func parseInt64(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt64
		}
		return math.MaxInt64
	}
	return v
}

// parseDouble parses a digit run the pattern regex already guarantees is
// well-formed. strconv.ParseFloat already returns a correctly-signed ±Inf on
// overflow, so no extra sign handling is needed here.
func parseDouble(raw string) float64 {
	v, _ := strconv.ParseFloat(raw, 64)
	return v
}
