// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent jobs on a fixed set of goroutines.
//
// The BLAS kernels themselves are single-threaded. Callers that want to use
// several cores partition their work into calls that write disjoint outputs
// and own their own scratch, and hand those calls to a Pool:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEach(len(problems), func(i int) {
//	    solve(problems[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. It is safe for concurrent use, and
// is reused across many ForEach calls. Close may race ForEach.
type Pool struct {
	numWorkers int
	jobs       chan job

	// mu is held for reading while a ForEach enqueues, and for writing
	// by Close, so jobs is never sent on after it is closed.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts numWorkers goroutines. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan job, numWorkers),
	}
	for range numWorkers {
		go func() {
			for j := range p.jobs {
				j.run()
				j.done.Done()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued jobs finish. It is idempotent. A
// closed pool runs ForEach on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

// ForEach calls fn(i) for every i in [0, n) and returns when all calls are
// done. Indices are claimed one at a time, so uneven jobs balance across
// the workers. fn must not panic.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		runInline(n, fn)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		runInline(n, fn)
		return
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

func runInline(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}
