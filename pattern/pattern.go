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

import (
	"fmt"
	"regexp"
	"strings"
)

// ParamType identifies the type a placeholder contributes to a pattern's
// schema. It is also the type a handler's corresponding parameter must have.
type ParamType int

const (
	Int64 ParamType = iota
	Double
	String
	OptInt64
	OptDouble
	OptString
)

// String implements fmt.Stringer, mostly for schema-mismatch error messages.
func (t ParamType) String() string {
	switch t {
	case Int64:
		return "Int64"
	case Double:
		return "Double"
	case String:
		return "String"
	case OptInt64:
		return "OptInt64"
	case OptDouble:
		return "OptDouble"
	case OptString:
		return "OptString"
	default:
		return fmt.Sprintf("ParamType(%d)", int(t))
	}
}

// Compiled is the output of Compile: a regex anchored to match a full path,
// plus the ordered schema of placeholders it encodes.
type Compiled struct {
	Source string
	Regexp *regexp.Regexp
	Schema []ParamType

	// groupIndex[i] is the index into Regexp.FindStringSubmatch's result
	// slice holding the capture for Schema[i]. Computed once at compile
	// time via the regex's named "__N" subexpressions, so that a nested
	// regex R which itself contains capturing groups never shifts which
	// slot a placeholder's value lands in.
	groupIndex []int
}

// placeholderRe recognizes the six placeholder forms. Order between i?/d?/s?
// and i/d/s does not matter for correctness (the literal "?" disambiguates
// them), but optional forms are listed first to read naturally alongside the
// table in the package doc comment.
var placeholderRe = regexp.MustCompile(`\{\{(i\?|d\?|s\?|i|d|s)(?::((?:[^{}]|\{[^{}]*\})*))?\}\}`)

// Compile translates a route pattern string into a compiled regex and an
// ordered schema of typed placeholders, per the grammar in the package doc.
func Compile(src string) (*Compiled, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(src, -1)

	var schema []ParamType
	var out strings.Builder
	cursor := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		if start < cursor {
			// Each match from FindAllStringSubmatchIndex is already returned
			// in non-overlapping, left-to-right order; this check guards the
			// left-to-right substitution invariant the compiler promises.
			return nil, fmt.Errorf("%w: token at byte %d precedes cursor %d in pattern %q",
				ErrSubstitutionInvariant, start, cursor, src)
		}

		kind := src[m[2]:m[3]]
		hasContent := m[4] != -1
		var content string
		if hasContent {
			content = src[m[4]:m[5]]
		}

		idx := len(schema)
		group := fmt.Sprintf("__%d", idx)

		repl, paramType, err := substitution(src, kind, group, content, hasContent)
		if err != nil {
			return nil, err
		}

		out.WriteString(src[cursor:start])
		out.WriteString(repl)
		cursor = end
		schema = append(schema, paramType)
	}
	out.WriteString(src[cursor:])

	re, err := regexp.Compile("^" + out.String() + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrOuterRegexCompile, src, err)
	}

	groupIndex := make([]int, len(schema))
	names := re.SubexpNames()
	for i := range schema {
		want := fmt.Sprintf("__%d", i)
		groupIndex[i] = -1
		for gi, name := range names {
			if name == want {
				groupIndex[i] = gi
				break
			}
		}
	}

	return &Compiled{Source: src, Regexp: re, Schema: schema, groupIndex: groupIndex}, nil
}

// MustCompile is like Compile but panics on failure. Intended for use with
// route patterns known at compile time (package-level vars, registration
// blocks), mirroring the MustXxx convention used across this module.
func MustCompile(src string) *Compiled {
	c, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("pattern: MustCompile(%q): %v", src, err))
	}
	return c
}

// substitution builds the regex fragment and ParamType for one placeholder.
func substitution(src, kind, group, content string, hasContent bool) (string, ParamType, error) {
	switch kind {
	case "i":
		if hasContent {
			return "", 0, fmt.Errorf("%w: {{i}} in pattern %q", ErrUnexpectedRegex, src)
		}
		return fmt.Sprintf(`(?P<%s>[+-]?\d+)`, group), Int64, nil

	case "d":
		if hasContent {
			return "", 0, fmt.Errorf("%w: {{d}} in pattern %q", ErrUnexpectedRegex, src)
		}
		return fmt.Sprintf(`(?P<%s>[+-]?\d+(?:\.\d+)?)`, group), Double, nil

	case "s":
		if !hasContent {
			return "", 0, fmt.Errorf("%w: {{s}} in pattern %q", ErrMissingRegex, src)
		}
		if err := validateNested(content); err != nil {
			return "", 0, fmt.Errorf("%w: %q in pattern %q: %v", ErrInvalidNestedRegex, content, src, err)
		}
		return fmt.Sprintf(`(?P<%s>%s)`, group, content), String, nil

	case "i?":
		return fmt.Sprintf(`(?:(?P<%s>[+-]?\d+)%s)?`, group, content), OptInt64, nil

	case "d?":
		return fmt.Sprintf(`(?:(?P<%s>[+-]?\d+(?:\.\d+)?)%s)?`, group, content), OptDouble, nil

	case "s?":
		r, c, err := splitRegexAndConsumed(content)
		if err != nil {
			return "", 0, fmt.Errorf("%w in pattern %q", err, src)
		}
		if err := validateNested(r); err != nil {
			return "", 0, fmt.Errorf("%w: %q in pattern %q: %v", ErrInvalidNestedRegex, r, src, err)
		}
		return fmt.Sprintf(`(?:(?P<%s>%s)%s)?`, group, r, c), OptString, nil

	default:
		// Unreachable: placeholderRe only captures these six forms.
		return "", 0, fmt.Errorf("pattern: unknown placeholder kind %q", kind)
	}
}

// validateNested compiles R on its own: the nested regex must be valid
// independent of the surrounding pattern.
func validateNested(r string) error {
	_, err := regexp.Compile(r)
	return err
}

// splitRegexAndConsumed splits an {{s?:R:C}} placeholder's content into R and
// C at the last colon. R itself may contain colons; C (the consumed
// literal/regex fragment, typically a trailing "/") normally does not.
func splitRegexAndConsumed(content string) (r, c string, err error) {
	i := strings.LastIndex(content, ":")
	if i < 0 {
		return "", "", fmt.Errorf("%w: {{s?:R:C}} requires both a regex and a consumed fragment, got %q", ErrMissingRegex, content)
	}
	return content[:i], content[i+1:], nil
}

// Match anchors-matches path against the compiled regex and, on success,
// returns the submatch index pairs (as produced by
// regexp.Regexp.FindStringSubmatchIndex) needed to extract each schema
// value without copying strings prematurely.
func (c *Compiled) Match(path string) (idx []int, ok bool) {
	idx = c.Regexp.FindStringSubmatchIndex(path)
	return idx, idx != nil
}

// Group returns the substring captured for schema position i, and whether
// that capture group participated in the match at all (false for an
// optional placeholder that did not match). Using the index pairs rather
// than FindStringSubmatch's string slice is what lets this tell "absent"
// apart from "matched the empty string".
func (c *Compiled) Group(path string, idx []int, i int) (value string, participated bool) {
	gi := c.groupIndex[i]
	start, end := idx[2*gi], idx[2*gi+1]
	if start < 0 {
		return "", false
	}
	return path[start:end], true
}
