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

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/router"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(":8080,:8443", false, 0, 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{":8080", ":8443"}, cfg.ListenAddrs)
	assert.False(t, cfg.H2C)
	assert.False(t, cfg.ServesStaticFiles())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(":9090", true, 16, 5*time.Second, 1024, t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.H2C)
	assert.Equal(t, 16, cfg.WorkerThreads)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1024, cfg.FileReaderBufLen)
	assert.True(t, cfg.ServesStaticFiles())
}

func TestBuildRouter_NoPublicDirRegistersNothing(t *testing.T) {
	cfg, err := loadConfig(":8080", false, 0, 0, 0, "")
	require.NoError(t, err)

	rtr, err := buildRouter(cfg, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, rtr.Routes())

	m := rtr.Dispatch(httpmsg.GET, "/static/whatever")
	assert.Equal(t, router.PathNotMatched, m.Result)
}

func TestBuildRouter_PublicDirRegistersStaticRoute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi"), 0o644))

	cfg, err := loadConfig(":8080", false, 0, 0, 0, dir)
	require.NoError(t, err)

	rtr, err := buildRouter(cfg, discardLogger())
	require.NoError(t, err)
	require.Len(t, rtr.Routes(), 1)
	assert.Equal(t, "static-files", rtr.Routes()[0].Name())

	m := rtr.Dispatch(httpmsg.GET, "/static/hello.txt")
	assert.Equal(t, router.RouteMatched, m.Result)
	assert.NotNil(t, m.Streaming)
}
