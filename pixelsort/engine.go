// Copyright 2025 go-pixelsort Authors
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

package pixelsort

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort/chunk"
	"github.com/ajroetker/go-pixelsort/pixelsort/key"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
	"github.com/ajroetker/go-pixelsort/pixelsort/workerpool"
)

const (
	// DefaultChunkSize is the chunk edge length used when none is configured.
	DefaultChunkSize = 16

	// MinParallelPixels is the minimum buffer area before chunks are handed
	// to the worker pool. Below it the pool's hand-off costs more than the
	// sort itself.
	MinParallelPixels = 64 * 1024
)

// Options configures one Sort call.
type Options struct {
	// ChunkSize is the edge length of the square chunks. Must be > 0.
	ChunkSize int

	// Key maps a pixel to its sort key. nil selects key.Default for the
	// buffer's layout.
	Key key.Func

	// Order is Ascending (the zero value) or Descending.
	Order Order
}

// Engine sorts buffers, optionally spreading chunks over a worker pool. An
// Engine may be used from several goroutines as long as each call sorts a
// different buffer.
type Engine struct {
	pool     *workerpool.Pool
	ownsPool bool
	poolSet  bool
	logger   zerolog.Logger
	sorters  sync.Pool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for per-run debug events. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPool makes the engine share an existing pool instead of creating its
// own. The engine does not close a shared pool. A nil pool gives a
// sequential engine.
func WithPool(pool *workerpool.Pool) EngineOption {
	return func(e *Engine) {
		e.pool = pool
		e.poolSet = true
	}
}

// New returns an Engine with the given number of workers. workers == 1 gives
// a sequential engine with no pool; workers <= 0 uses GOMAXPROCS. workers is
// ignored when WithPool is given.
func New(workers int, opts ...EngineOption) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	e := &Engine{logger: zerolog.Nop()}
	e.sorters.New = func() any {
		return chunk.NewSorter(DefaultChunkSize * DefaultChunkSize)
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.poolSet && workers > 1 {
		e.pool = workerpool.New(workers)
		e.ownsPool = true
	}
	return e
}

// Workers returns the number of goroutines chunks are spread over.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 1
	}
	return e.pool.NumWorkers()
}

// Close releases the engine's worker pool. The engine keeps working
// sequentially after Close.
func (e *Engine) Close() {
	if e.ownsPool {
		e.pool.Close()
	}
}

var sequential = New(1)

// Sort sorts buf in place on the calling goroutine and returns it.
//
// See Engine.Sort for the failure semantics.
func Sort(buf *pixel.Buffer, opts Options) (*pixel.Buffer, error) {
	return sequential.Sort(buf, opts)
}

// Sort partitions buf into chunks and sorts the pixels of every chunk in
// place, returning the same buffer.
//
// Invalid options or dimensions are reported before anything is written. If
// sorting a chunk fails, no further chunks are started and the first error is
// returned; chunks finished before the failure keep their sorted pixels, so
// the buffer may be partially sorted. A chunk is never left half-written.
func (e *Engine) Sort(buf *pixel.Buffer, opts Options) (*pixel.Buffer, error) {
	if buf == nil {
		return nil, oops.New(ErrInvalidDimensions, "nil buffer")
	}
	if opts.Order != Ascending && opts.Order != Descending {
		return nil, oops.New(ErrUnknownOrder, "order %d", int(opts.Order))
	}
	regions, err := chunk.Partition(buf.Width(), buf.Height(), opts.ChunkSize)
	if err != nil {
		return nil, err
	}

	fn := opts.Key
	if fn == nil {
		fn = key.Default.Func(buf.Layout())
	}

	start := time.Now()
	parallel := e.pool != nil && len(regions) > 1 && buf.Width()*buf.Height() >= MinParallelPixels
	err = e.forEachRegion(regions, parallel, func(s *chunk.Sorter, r pixel.Rect) error {
		return s.Sort(buf, r, fn, opts.Order)
	})

	workers := 1
	if parallel {
		workers = e.pool.NumWorkers()
	}
	e.logger.Debug().
		Int("width", buf.Width()).
		Int("height", buf.Height()).
		Int("chunk_size", opts.ChunkSize).
		Int("chunks", len(regions)).
		Int("workers", workers).
		Stringer("order", opts.Order).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("pixel sort")

	if err != nil {
		return nil, err
	}
	return buf, nil
}

// forEachRegion calls fn for every region with a Sorter that no other
// goroutine is using, stopping at the first error.
func (e *Engine) forEachRegion(regions []pixel.Rect, parallel bool, fn func(*chunk.Sorter, pixel.Rect) error) error {
	if !parallel {
		s := e.sorters.Get().(*chunk.Sorter)
		defer e.sorters.Put(s)
		for _, r := range regions {
			if err := fn(s, r); err != nil {
				return err
			}
		}
		return nil
	}

	return e.pool.ParallelForAtomicErr(len(regions), func(i int) error {
		s := e.sorters.Get().(*chunk.Sorter)
		defer e.sorters.Put(s)
		return fn(s, regions[i])
	})
}
