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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/arkhttp/arkhttp/rconfig"
	"github.com/arkhttp/arkhttp/rlog"
	"github.com/arkhttp/arkhttp/router"
)

// Server owns one net/http server per configured listen address, all
// sharing a single Handler (and therefore a single WorkerPool) driven by
// one Router.
type Server struct {
	cfg     *rconfig.Config
	handler *Handler
	logger  *slog.Logger

	mu   sync.Mutex
	srvs []*http.Server
}

// NewServer builds a Server ready to ListenAndServe.
func NewServer(r *router.Router, cfg *rconfig.Config, logger *slog.Logger) *Server {
	logger = rlog.OrNoop(logger)
	return &Server{
		cfg:     cfg,
		handler: NewHandler(r, cfg, logger),
		logger:  logger,
	}
}

// ListenAndServe starts one HTTP server per Config.ListenAddrs entry and
// blocks until the context is canceled or one server reports a listen
// error; either one triggers a graceful Shutdown of every server. h2c is enabled for
// every listener when Config.H2C is set.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var h http.Handler = s.handler
	if s.cfg.H2C {
		h = h2c.NewHandler(h, &http2.Server{})
		s.logger.Info("h2c enabled; use only in dev or behind a trusted load balancer")
	}

	if len(s.cfg.ListenAddrs) == 0 {
		return fmt.Errorf("pipeline: no listen addresses configured")
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, addr := range s.cfg.ListenAddrs {
		addr := addr
		srv := &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: s.cfg.RequestTimeout,
		}
		s.mu.Lock()
		s.srvs = append(s.srvs, srv)
		s.mu.Unlock()

		g.Go(func() error {
			s.logger.Info("server starting", "address", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown gracefully shuts down every listener concurrently, returning the
// first error encountered, if any.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srvs := s.srvs
	s.mu.Unlock()

	g, _ := errgroup.WithContext(ctx)
	for _, srv := range srvs {
		srv := srv
		g.Go(func() error {
			return srv.Shutdown(ctx)
		})
	}
	return g.Wait()
}
