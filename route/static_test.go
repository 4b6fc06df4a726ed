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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhttp/arkhttp/httpmsg"
)

func TestStaticRoute_ExactMatch(t *testing.T) {
	s, err := NewStaticBuffered("/healthz", httpmsg.NewMethodSet(httpmsg.GET),
		func(req *httpmsg.Request) *httpmsg.Response { return httpmsg.NewStatus(204) })
	require.NoError(t, err)

	m := s.Match(httpmsg.GET, "/healthz")
	require.Equal(t, RouteMatched, m.Result)
	resp, err := m.Buffered(httpmsg.NewRequest(httpmsg.RequestParams{Method: httpmsg.GET}))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.Status())

	m = s.Match(httpmsg.GET, "/healthzz")
	assert.Equal(t, PathNotMatched, m.Result)

	m = s.Match(httpmsg.POST, "/healthz")
	assert.Equal(t, MethodNotMatched, m.Result)
}

func TestStaticRoute_StreamingFactoryTakesNoExtraArgs(t *testing.T) {
	s, err := NewStaticStreaming("/events", httpmsg.NewMethodSet(httpmsg.GET),
		func(sender Sender) StreamingHandler { return &fakeStreamingHandler{sender: sender} })
	require.NoError(t, err)

	m := s.Match(httpmsg.GET, "/events")
	require.Equal(t, RouteMatched, m.Result)
	sender := &fakeSender{}
	handler, err := m.Streaming(sender)
	require.NoError(t, err)
	require.NotNil(t, handler)
}

func TestStaticRoute_Accessors(t *testing.T) {
	s, err := NewStaticBuffered("/ping", httpmsg.NewMethodSet(httpmsg.GET),
		func(req *httpmsg.Request) *httpmsg.Response { return httpmsg.NewStatus(200) })
	require.NoError(t, err)
	s.WithName("ping")

	assert.Equal(t, "ping", s.Name())
	assert.Equal(t, "/ping", s.Path())
	assert.False(t, s.IsStreaming())
}
