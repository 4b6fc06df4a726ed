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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkhttp/arkhttp/rconfig"
	"github.com/arkhttp/arkhttp/router"
)

func TestServer_ListenAndServe_NoAddressesIsError(t *testing.T) {
	r := router.MustNew()
	cfg, err := rconfig.New(rconfig.WithListenAddrs("127.0.0.1:0"))
	require.NoError(t, err)
	cfg.ListenAddrs = nil

	s := NewServer(r, cfg, nil)
	err = s.ListenAndServe(context.Background())
	assert.Error(t, err)
}

func TestServer_Shutdown_NoServersIsNoop(t *testing.T) {
	r := router.MustNew()
	cfg, err := rconfig.New(rconfig.WithListenAddrs("127.0.0.1:0"))
	require.NoError(t, err)

	s := NewServer(r, cfg, nil)
	assert.NoError(t, s.Shutdown(context.Background()))
}
