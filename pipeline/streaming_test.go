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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/route"
)

type recordingStreamingHandler struct {
	sender      route.Sender
	received    chan *httpmsg.Request
	chunks      chan []byte
	endOfMsg    chan struct{}
	complete    chan struct{}
	unhandled   chan error
}

func newRecordingStreamingHandler(sender route.Sender) *recordingStreamingHandler {
	return &recordingStreamingHandler{
		sender:    sender,
		received:  make(chan *httpmsg.Request, 1),
		chunks:    make(chan []byte, 8),
		endOfMsg:  make(chan struct{}, 1),
		complete:  make(chan struct{}, 1),
		unhandled: make(chan error, 1),
	}
}

func (h *recordingStreamingHandler) OnRequestReceived(req *httpmsg.Request) { h.received <- req }
func (h *recordingStreamingHandler) OnBodyChunk(chunk []byte)               { h.chunks <- chunk }
func (h *recordingStreamingHandler) OnEndOfMessage() {
	_ = h.sender.SendResponseHeaders(httpmsg.NewStatus(200))
	_ = h.sender.SendBodyChunk([]byte("streamed"))
	_ = h.sender.SendEndOfMessage()
	h.endOfMsg <- struct{}{}
}
func (h *recordingStreamingHandler) OnRequestComplete() { h.complete <- struct{}{} }
func (h *recordingStreamingHandler) OnUnhandledError(err error) { h.unhandled <- err }

func TestStreamingPipeline_FullLifecycle(t *testing.T) {
	transport := newFakeTransport()
	loop := NewResponseLoop(16)
	defer loop.Close()

	var handler *recordingStreamingHandler
	construct := func(sender route.Sender) (route.StreamingHandler, error) {
		handler = newRecordingStreamingHandler(sender)
		return handler, nil
	}

	p, err := NewStreamingPipeline(construct, transport, loop, nil)
	require.NoError(t, err)
	require.NotNil(t, handler)

	req := httpmsg.NewRequest(httpmsg.RequestParams{Method: httpmsg.GET, Path: "/stream"})
	p.RequestReceived(req)
	select {
	case got := <-handler.received:
		assert.Same(t, req, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for OnRequestReceived")
	}

	p.BodyChunk([]byte("chunk-1"))
	select {
	case got := <-handler.chunks:
		assert.Equal(t, "chunk-1", string(got))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for OnBodyChunk")
	}

	p.EndOfMessage()
	select {
	case <-handler.endOfMsg:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for OnEndOfMessage")
	}

	require.Eventually(t, func() bool {
		status, ended, bodies := transport.snapshot()
		return status == 200 && ended && len(bodies) == 1
	}, time.Second, time.Millisecond)

	p.RequestComplete()
	select {
	case <-handler.complete:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for OnRequestComplete")
	}
}

func TestStreamingPipeline_BodyChunksPreserveArrivalOrder(t *testing.T) {
	transport := newFakeTransport()
	loop := NewResponseLoop(64)
	defer loop.Close()

	var handler *recordingStreamingHandler
	construct := func(sender route.Sender) (route.StreamingHandler, error) {
		handler = newRecordingStreamingHandler(sender)
		return handler, nil
	}
	p, err := NewStreamingPipeline(construct, transport, loop, nil)
	require.NoError(t, err)

	const n = 50
	for i := 0; i < n; i++ {
		p.BodyChunk([]byte{byte(i)})
	}

	for i := 0; i < n; i++ {
		select {
		case got := <-handler.chunks:
			require.Len(t, got, 1)
			assert.Equal(t, byte(i), got[0], "chunk %d arrived out of order", i)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for chunk %d", i)
		}
	}
}

func TestStreamingPipeline_SendBodyChunkBeforeHeadersIsDropped(t *testing.T) {
	transport := newFakeTransport()
	loop := NewResponseLoop(8)
	defer loop.Close()

	construct := func(sender route.Sender) (route.StreamingHandler, error) {
		return newRecordingStreamingHandler(sender), nil
	}
	p, err := NewStreamingPipeline(construct, transport, loop, nil)
	require.NoError(t, err)

	require.NoError(t, p.SendBodyChunk([]byte("too early")))

	barrier := make(chan struct{})
	p.loop.Post(func() { close(barrier) })
	select {
	case <-barrier:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for response loop to drain")
	}
	_, _, bodies := transport.snapshot()
	assert.Empty(t, bodies)
}

func TestStreamingPipeline_SendBodyChunkDropsEmptyChunk(t *testing.T) {
	transport := newFakeTransport()
	loop := NewResponseLoop(8)
	defer loop.Close()

	construct := func(sender route.Sender) (route.StreamingHandler, error) {
		return newRecordingStreamingHandler(sender), nil
	}
	p, err := NewStreamingPipeline(construct, transport, loop, nil)
	require.NoError(t, err)

	require.NoError(t, p.SendResponseHeaders(httpmsg.NewStatus(200)))
	require.NoError(t, p.SendBodyChunk(nil))
	require.NoError(t, p.SendEndOfMessage())

	require.Eventually(t, func() bool {
		_, ended, _ := transport.snapshot()
		return ended
	}, time.Second, time.Millisecond)
	_, _, bodies := transport.snapshot()
	assert.Empty(t, bodies)
}

func TestStreamingPipeline_UnhandledError(t *testing.T) {
	transport := newFakeTransport()
	loop := NewResponseLoop(8)
	defer loop.Close()

	var handler *recordingStreamingHandler
	construct := func(sender route.Sender) (route.StreamingHandler, error) {
		handler = newRecordingStreamingHandler(sender)
		return handler, nil
	}
	p, err := NewStreamingPipeline(construct, transport, loop, nil)
	require.NoError(t, err)

	boom := assert.AnError
	p.UnhandledError(boom)
	select {
	case got := <-handler.unhandled:
		assert.Equal(t, boom, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for OnUnhandledError")
	}
}
