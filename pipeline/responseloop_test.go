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
)

func TestResponseLoop_RunsTasksInPostOrder(t *testing.T) {
	loop := NewResponseLoop(16)
	defer loop.Close()

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		loop.Post(func() {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for posted tasks")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestResponseLoop_PostAfterCloseDoesNotPanic(t *testing.T) {
	loop := NewResponseLoop(4)
	loop.Close()
	assert.NotPanics(t, func() {
		loop.Post(func() {})
	})
}
