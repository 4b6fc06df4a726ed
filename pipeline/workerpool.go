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

	"golang.org/x/sync/semaphore"
)

// WorkerPool is the I/O worker executor, passed explicitly to whatever
// needs one; there is no process-global default pool. It bounds the number
// of handler invocations running concurrently to n, using a weighted
// semaphore rather than a fixed pool of long-lived goroutines reading off
// a task channel: a submitted task gets its own goroutine once it acquires
// a slot, which keeps a slow handler from head-of-line-blocking unrelated
// submissions behind it in a shared queue.
type WorkerPool struct {
	sem *semaphore.Weighted
}

// NewWorkerPool builds a pool allowing up to n concurrent task executions.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = 1
	}
	return &WorkerPool{sem: semaphore.NewWeighted(int64(n))}
}

// Submit schedules task to run once a slot is free. Submit itself never
// blocks; the wait for a slot happens on the spawned goroutine.
func (wp *WorkerPool) Submit(task func()) {
	go func() {
		_ = wp.sem.Acquire(context.Background(), 1)
		defer wp.sem.Release(1)
		task()
	}()
}
