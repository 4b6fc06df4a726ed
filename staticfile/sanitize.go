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
	"path/filepath"
	"strings"
)

// sanitizeRelPath walks a request path component by component: "." is
// skipped, ".." pops the last accepted component instead of being allowed to
// walk above the accumulated result, and every other component is appended.
// The result never contains ".." itself, so joining it onto a base directory
// can't escape that directory no matter how many ".." segments the caller
// supplied.
func sanitizeRelPath(p string) string {
	var out []string
	for _, c := range strings.Split(p, "/") {
		switch c {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, c)
		}
	}
	return strings.Join(out, "/")
}

// resolvePath joins a sanitized relative path onto baseDir, producing the
// path on disk to open.
func resolvePath(baseDir, relPath string) string {
	return filepath.Join(baseDir, sanitizeRelPath(relPath))
}
