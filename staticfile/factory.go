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
	"log/slog"

	"github.com/arkhttp/arkhttp/pipeline"
	"github.com/arkhttp/arkhttp/rlog"
	"github.com/arkhttp/arkhttp/route"
)

const defaultBufferSize = 4096

// Config configures a static file factory. BaseDir is required; everything
// else defaults sensibly.
type Config struct {
	BaseDir    string
	BufferSize int // defaults to 4096 bytes
	Workers    *pipeline.WorkerPool
	Logger     *slog.Logger
}

// NewFactory returns a route.StreamingFactory with the shape
// func(route.Sender, string) route.StreamingHandler, suitable for
// route.NewStreaming with a single string placeholder capturing the
// requested path, e.g. "/static/{{s:.+}}".
func NewFactory(cfg Config) (route.StreamingFactory, error) {
	if cfg.BaseDir == "" {
		return nil, ErrNoBaseDir
	}
	bufLen := cfg.BufferSize
	if bufLen <= 0 {
		bufLen = defaultBufferSize
	}
	workers := cfg.Workers
	if workers == nil {
		workers = pipeline.NewWorkerPool(1)
	}
	logger := rlog.OrNoop(cfg.Logger)

	factory := func(sender route.Sender, relPath string) route.StreamingHandler {
		return &handler{
			sender:  sender,
			baseDir: cfg.BaseDir,
			relPath: relPath,
			bufLen:  bufLen,
			workers: workers,
			logger:  logger,
		}
	}
	return route.StreamingFactory(factory), nil
}
