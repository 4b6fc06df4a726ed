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

// Command arkhttpd is a minimal process wiring rconfig, a Router, and
// pipeline.Server together: load configuration, build the route table
// (registering the static file handler if a public directory was
// configured), and serve until an interrupt or terminate signal arrives.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/pipeline"
	"github.com/arkhttp/arkhttp/rconfig"
	"github.com/arkhttp/arkhttp/route"
	"github.com/arkhttp/arkhttp/router"
	"github.com/arkhttp/arkhttp/staticfile"
)

func main() {
	var (
		addrs          = flag.String("listen", ":8080", "comma-separated list of addresses to listen on")
		h2c            = flag.Bool("h2c", false, "enable HTTP/2 cleartext (dev or behind a trusted load balancer only)")
		workerThreads  = flag.Int("workers", 0, "worker pool size (0 uses the default)")
		requestTimeout = flag.Duration("request-timeout", 0, "per-request handler timeout (0 uses the default)")
		bufferSize     = flag.Int("file-buffer-size", 0, "static file read buffer size in bytes (0 uses the default)")
		publicDir      = flag.String("public-dir", "", "directory to serve under /static/... (disabled if empty)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(*addrs, *h2c, *workerThreads, *requestTimeout, *bufferSize, *publicDir)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rtr, err := buildRouter(cfg, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := pipeline.NewServer(rtr, cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("arkhttpd starting", "addresses", cfg.ListenAddrs, "h2c", cfg.H2C, "public_dir", cfg.PublicDir)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("arkhttpd exited cleanly")
}

func loadConfig(addrs string, h2c bool, workerThreads int, requestTimeout time.Duration, bufferSize int, publicDir string) (*rconfig.Config, error) {
	opts := []rconfig.Option{rconfig.WithListenAddrs(strings.Split(addrs, ",")...)}
	if h2c {
		opts = append(opts, rconfig.WithH2C(true))
	}
	if workerThreads > 0 {
		opts = append(opts, rconfig.WithWorkerThreads(workerThreads))
	}
	if requestTimeout > 0 {
		opts = append(opts, rconfig.WithRequestTimeout(requestTimeout))
	}
	if bufferSize > 0 {
		opts = append(opts, rconfig.WithFileReaderBufferSize(bufferSize))
	}
	if publicDir != "" {
		opts = append(opts, rconfig.WithPublicDir(publicDir))
	}
	return rconfig.New(opts...)
}

// buildRouter registers the static file handler at /static/... when a
// public directory was configured; the route table otherwise has nothing
// registered, since route registration is left to the embedding
// application rather than this process.
func buildRouter(cfg *rconfig.Config, logger *slog.Logger) (*router.Router, error) {
	var opts []router.Option
	if cfg.ServesStaticFiles() {
		factory, err := staticfile.NewFactory(staticfile.Config{
			BaseDir:    cfg.PublicDir,
			BufferSize: cfg.FileReaderBufLen,
			Workers:    pipeline.NewWorkerPool(cfg.WorkerThreads),
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		staticRoute, err := route.NewStreaming("/static/{{s:.+}}", httpmsg.NewMethodSet(httpmsg.GET), factory)
		if err != nil {
			return nil, err
		}
		opts = append(opts, router.WithRoutes(staticRoute.WithName("static-files")))
	}
	return router.New(opts...)
}
