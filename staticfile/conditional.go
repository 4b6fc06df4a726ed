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

import (
	"strings"
	"time"
)

// httpDateLayout is the reference-time layout for the subset of RFC 1123
// dates this package understands: day-of-week, day, month, year, time,
// second precision, no timezone component. A literal "GMT" suffix (the
// common case on the wire) is trimmed before parsing rather than made part
// of the layout, so both "Sun, 06 Nov 1994 08:49:37" and the same string
// with " GMT" appended parse the same way.
const httpDateLayout = "Mon, 02 Jan 2006 15:04:05"

// parseIfModifiedSince parses an If-Modified-Since header value. An empty or
// malformed value reports false rather than an error: a client sending a
// header we can't parse is treated the same as a client sending none.
func parseIfModifiedSince(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	raw = strings.TrimSuffix(raw, " GMT")
	t, err := time.Parse(httpDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatLastModified renders a file's modification time for the
// Last-Modified response header, truncated to whole seconds to match the
// precision If-Modified-Since round-trips at.
func formatLastModified(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(httpDateLayout) + " GMT"
}
