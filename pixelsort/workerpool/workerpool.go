// Copyright 2025 The go-pixelsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sorting
// independent chunks. A Pool is created once and reused across many images,
// so sorting a stream of frames does not pay goroutine spawn costs per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForAtomicErr(len(regions), func(i int) error {
//	    return sortRegion(regions[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForAtomicErr executes fn for each index in [0, n) using atomic
// work stealing, and blocks until every worker has stopped.
//
// Once any call returns an error, workers stop taking new indices and the
// first error reported is returned. Calls already running when the error
// occurs still finish; indices never taken are never run.
func (p *Pool) ParallelForAtomicErr(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)

	if workers == 1 || p.closed.Load() {
		// Sequential if there is nothing to share or the pool is closed
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextIdx  atomic.Int64
		failed   atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !failed.Load() {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := fn(idx); err != nil {
						errOnce.Do(func() {
							firstErr = err
							failed.Store(true)
						})
						return
					}
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return firstErr
}
