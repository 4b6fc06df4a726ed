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

package rconfig

import (
	"fmt"
	"time"
)

const (
	defaultWorkerThreads     = 8
	defaultRequestTimeout    = 30 * time.Second
	defaultFileReaderBufSize = 4096
	maxFileReaderBufSize     = 1 << 30 // 1 GiB
)

// Config is the process-level configuration for an arkhttp server: where it
// listens, how many I/O worker goroutines drive handlers, how long a
// buffered request may run before the 503 fallback fires, how large each
// static-file read chunk is, and an optional directory to serve static
// files from.
type Config struct {
	ListenAddrs      []string
	H2C              bool
	WorkerThreads    int
	RequestTimeout   time.Duration
	FileReaderBufLen int
	PublicDir        string // empty disables staticfile registration
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithListenAddrs sets one or more addresses to listen on (e.g. ":8080").
func WithListenAddrs(addrs ...string) Option {
	return func(c *Config) { c.ListenAddrs = addrs }
}

// WithH2C enables serving plaintext HTTP/2 (h2c) alongside HTTP/1.1.
func WithH2C(enable bool) Option {
	return func(c *Config) { c.H2C = enable }
}

// WithWorkerThreads sets the size of the I/O worker pool that runs
// handlers.
func WithWorkerThreads(n int) Option {
	return func(c *Config) { c.WorkerThreads = n }
}

// WithRequestTimeout sets how long a buffered request's handler may run
// before the pipeline fires its 503 fallback.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) { c.RequestTimeout = d }
}

// WithFileReaderBufferSize sets the chunk size staticfile reads and emits
// per send-body-chunk call.
func WithFileReaderBufferSize(n int) Option {
	return func(c *Config) { c.FileReaderBufLen = n }
}

// WithPublicDir sets the directory staticfile serves from. Empty (the
// default) disables static file serving entirely.
func WithPublicDir(dir string) Option {
	return func(c *Config) { c.PublicDir = dir }
}

// New builds a Config from defaults plus the given options, and validates
// it.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		WorkerThreads:    defaultWorkerThreads,
		RequestTimeout:   defaultRequestTimeout,
		FileReaderBufLen: defaultFileReaderBufSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("rconfig: %w", err)
	}
	return c, nil
}

// MustLoad calls New and panics if it returns an error.
func MustLoad(opts ...Option) *Config {
	c, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("rconfig: %v", err))
	}
	return c
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.ListenAddrs) == 0 {
		return ErrNoListenAddress
	}
	if c.WorkerThreads <= 0 {
		return fmt.Errorf("%w: got %d", ErrWorkerThreadsInvalid, c.WorkerThreads)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrRequestTimeoutInvalid, c.RequestTimeout)
	}
	if c.FileReaderBufLen <= 0 || c.FileReaderBufLen > maxFileReaderBufSize {
		return fmt.Errorf("%w: got %d", ErrBufferSizeInvalid, c.FileReaderBufLen)
	}
	return nil
}

// ServesStaticFiles reports whether PublicDir was configured.
func (c *Config) ServesStaticFiles() bool {
	return c.PublicDir != ""
}
