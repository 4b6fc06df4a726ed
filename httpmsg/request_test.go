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

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_QueryDecodesPlusAsSpace(t *testing.T) {
	r := NewRequest(RequestParams{Method: GET, Path: "/search", RawQuery: "q=golang+router"})
	v, ok := r.Query("q")
	require.True(t, ok)
	assert.Equal(t, "golang router", v)
}

func TestRequest_QueryFallbackDecodesStoredKeys(t *testing.T) {
	// Raw key carries a percent-encoded space; the lookup uses the decoded form.
	r := NewRequest(RequestParams{Method: GET, Path: "/x", RawQuery: "a%20b=1"})
	v, ok := r.Query("a b")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestRequest_QuerySkipsMalformedValueSilently(t *testing.T) {
	r := NewRequest(RequestParams{Method: GET, Path: "/x", RawQuery: "bad=%zz&good=1"})
	_, ok := r.Query("bad")
	assert.False(t, ok)
	v, ok := r.Query("good")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestRequest_QueryValuesMultiValued(t *testing.T) {
	r := NewRequest(RequestParams{Method: GET, Path: "/x", RawQuery: "tag=a&tag=b"})
	assert.Equal(t, []string{"a", "b"}, r.QueryValues("tag"))
}

func TestRequest_HeaderSingleValue(t *testing.T) {
	h := http.Header{}
	h.Set("X-Request-Id", "abc")
	r := NewRequest(RequestParams{Method: GET, Path: "/", Header: h})
	v, ok := r.Header("x-request-id")
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestRequest_HeaderMultipleValuesIsAbsent(t *testing.T) {
	h := http.Header{}
	h.Add("X-Tag", "a")
	h.Add("X-Tag", "b")
	r := NewRequest(RequestParams{Method: GET, Path: "/", Header: h})
	_, ok := r.Header("X-Tag")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, r.HeaderValues("X-Tag"))
}

func TestRequest_CookiesParsed(t *testing.T) {
	h := http.Header{}
	h.Set("Cookie", "session=xyz; theme=dark")
	r := NewRequest(RequestParams{Method: GET, Path: "/", Header: h})
	v, ok := r.Cookie("session")
	require.True(t, ok)
	assert.Equal(t, "xyz", v)
	v, ok = r.Cookie("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	_, ok = r.Cookie("missing")
	assert.False(t, ok)
}

func TestBodyChain_AppendAndBytes(t *testing.T) {
	var b BodyChain
	b.Append([]byte("hello "))
	b.Append([]byte("world"))
	assert.Equal(t, "hello world", string(b.Bytes()))
	assert.Equal(t, 11, b.Len())

	var empty BodyChain
	assert.Nil(t, empty.Bytes())
	assert.Equal(t, 0, empty.Len())
}
