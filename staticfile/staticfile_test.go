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
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/pipeline"
	"github.com/arkhttp/arkhttp/route"
)

// fakeTransport is a minimal pipeline.Transport recorder, mirroring the one
// used by package pipeline's own tests.
type fakeTransport struct {
	mu      sync.Mutex
	status  int
	headers map[string][]string
	bodies  [][]byte
	ended   bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{headers: make(map[string][]string)}
}

func (f *fakeTransport) WriteStatus(status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	return nil
}

func (f *fakeTransport) WriteHeader(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.headers[key] = append(f.headers[key], value)
	return nil
}

func (f *fakeTransport) WriteBody(chunk []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(chunk))
	copy(cp, chunk)
	f.bodies = append(f.bodies, cp)
	return nil
}

func (f *fakeTransport) End() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ended = true
	return nil
}

func (f *fakeTransport) snapshot() (status int, ended bool, headers map[string][]string, bodies [][]byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.ended, f.headers, f.bodies
}

var _ pipeline.Transport = (*fakeTransport)(nil)

func newServingPipeline(t *testing.T, baseDir string, bufSize int) (*pipeline.StreamingPipeline, *fakeTransport) {
	t.Helper()
	factory, err := NewFactory(Config{
		BaseDir:    baseDir,
		BufferSize: bufSize,
		Workers:    pipeline.NewWorkerPool(4),
	})
	require.NoError(t, err)

	r, err := route.NewStreaming("/static/{{s:.+}}", httpmsg.NewMethodSet(httpmsg.GET), factory)
	require.NoError(t, err)

	transport := newFakeTransport()
	loop := pipeline.NewResponseLoop(16)
	t.Cleanup(loop.Close)

	m := r.Match(httpmsg.GET, "/static/nested/hello.txt")
	require.Equal(t, route.RouteMatched, m.Result)
	require.NotNil(t, m.Streaming)

	p, err := pipeline.NewStreamingPipeline(m.Streaming, transport, loop, nil)
	require.NoError(t, err)
	return p, transport
}

func TestStaticFile_ServesExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	content := []byte("hello world")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "hello.txt"), content, 0o644))

	p, transport := newServingPipeline(t, dir, 4)

	req := httpmsg.NewRequest(httpmsg.RequestParams{Method: httpmsg.GET, Path: "/static/nested/hello.txt"})
	p.RequestReceived(req)
	p.EndOfMessage()

	require.Eventually(t, func() bool {
		status, ended, _, _ := transport.snapshot()
		return status == http.StatusOK && ended
	}, time.Second, time.Millisecond)

	_, _, headers, bodies := transport.snapshot()
	assert.NotEmpty(t, headers["Last-Modified"])
	var got []byte
	for _, b := range bodies {
		got = append(got, b...)
	}
	assert.Equal(t, content, got)
}

func TestStaticFile_MissingFileIs404(t *testing.T) {
	dir := t.TempDir()
	p, transport := newServingPipeline(t, dir, 64)

	req := httpmsg.NewRequest(httpmsg.RequestParams{Method: httpmsg.GET, Path: "/static/nested/hello.txt"})
	p.RequestReceived(req)
	p.EndOfMessage()

	require.Eventually(t, func() bool {
		status, ended, _, _ := transport.snapshot()
		return status == http.StatusNotFound && ended
	}, time.Second, time.Millisecond)
}

func TestStaticFile_PathTraversalDoesNotEscapeBase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "hello.txt"), []byte("x"), 0o644))

	factory, err := NewFactory(Config{BaseDir: dir, Workers: pipeline.NewWorkerPool(2)})
	require.NoError(t, err)
	r, err := route.NewStreaming("/static/{{s:.+}}", httpmsg.NewMethodSet(httpmsg.GET), factory)
	require.NoError(t, err)

	transport := newFakeTransport()
	loop := pipeline.NewResponseLoop(16)
	t.Cleanup(loop.Close)

	m := r.Match(httpmsg.GET, "/static/../../etc/passwd")
	require.Equal(t, route.RouteMatched, m.Result)

	p, err := pipeline.NewStreamingPipeline(m.Streaming, transport, loop, nil)
	require.NoError(t, err)

	req := httpmsg.NewRequest(httpmsg.RequestParams{Method: httpmsg.GET, Path: "/static/../../etc/passwd"})
	p.RequestReceived(req)
	p.EndOfMessage()

	require.Eventually(t, func() bool {
		status, ended, _, _ := transport.snapshot()
		return status == http.StatusNotFound && ended
	}, time.Second, time.Millisecond)
}

func TestStaticFile_ConditionalGetReturns304(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	future := time.Now().Add(24 * time.Hour).UTC()
	ifModifiedSince := future.Format(httpDateLayout) + " GMT"

	p, transport := newServingPipelineFlat(t, dir, 64)

	req := httpmsg.NewRequest(httpmsg.RequestParams{
		Method: httpmsg.GET,
		Path:   "/static/hello.txt",
		Header: http.Header{"If-Modified-Since": []string{ifModifiedSince}},
	})
	p.RequestReceived(req)
	p.EndOfMessage()

	require.Eventually(t, func() bool {
		status, ended, _, _ := transport.snapshot()
		return status == http.StatusNotModified && ended
	}, time.Second, time.Millisecond)

	_, _, _, bodies := transport.snapshot()
	assert.Empty(t, bodies)
}

// newServingPipelineFlat is like newServingPipeline but matches a flat
// "/static/hello.txt" path instead of a nested one.
func newServingPipelineFlat(t *testing.T, baseDir string, bufSize int) (*pipeline.StreamingPipeline, *fakeTransport) {
	t.Helper()
	factory, err := NewFactory(Config{BaseDir: baseDir, BufferSize: bufSize, Workers: pipeline.NewWorkerPool(4)})
	require.NoError(t, err)

	r, err := route.NewStreaming("/static/{{s:.+}}", httpmsg.NewMethodSet(httpmsg.GET), factory)
	require.NoError(t, err)

	transport := newFakeTransport()
	loop := pipeline.NewResponseLoop(16)
	t.Cleanup(loop.Close)

	m := r.Match(httpmsg.GET, "/static/hello.txt")
	require.Equal(t, route.RouteMatched, m.Result)

	p, err := pipeline.NewStreamingPipeline(m.Streaming, transport, loop, nil)
	require.NoError(t, err)
	return p, transport
}
