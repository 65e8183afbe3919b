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

package chunk

import (
	"errors"
	"strings"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort/key"
	"github.com/ajroetker/go-pixelsort/pixelsort/keysort"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

// ErrUnknownOrder is returned by ParseOrder.
var ErrUnknownOrder = errors.New("unknown sort order")

// Order selects the direction pixels are sorted in.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// ParseOrder accepts "asc", "ascending", "desc" and "descending". An empty
// string selects Ascending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, oops.New(ErrUnknownOrder, "%q", s)
}

// Sorter reorders the pixels of one region at a time. It owns the scratch
// space for the working list, so one Sorter per goroutine sorts any number
// of regions without allocating after the largest one. A Sorter is not safe
// for concurrent use.
type Sorter struct {
	pixels []uint8  // region bytes in scan order
	keys   []uint32 // one key per pixel in scan order
	order  keysort.Sorter
}

// NewSorter returns a Sorter with scratch for regions of up to hint pixels.
func NewSorter(hint int) *Sorter {
	s := &Sorter{}
	if hint > 0 {
		s.pixels = make([]uint8, hint*pixel.MaxChannels)
		s.keys = make([]uint32, hint)
	}
	return s
}

// Sort reorders the pixels inside region by fn.
//
// Pixels are read in row-major scan order, stably ordered by key and written
// back in the same scan order, so the i-th smallest key lands on the i-th
// coordinate of the scan. With order Descending the keys are complemented,
// which reverses the key order and still keeps equal keys in scan order.
// Only pixels inside region are read or written.
//
// fn may be nil, in which case key.Default is used.
func (s *Sorter) Sort(buf *pixel.Buffer, region pixel.Rect, fn key.Func, order Order) error {
	if buf == nil {
		return oops.New(pixel.ErrInvalidDimensions, "nil buffer")
	}
	if !region.In(buf.Bounds()) {
		return oops.New(ErrRegionOutOfBounds, "%v in %dx%d", region, buf.Width(), buf.Height())
	}
	n := region.Area()
	if n == 1 {
		return nil
	}
	if fn == nil {
		fn = key.Default.Func(buf.Layout())
	}

	ch := buf.Channels()
	rowBytes := region.Width() * ch
	lo, hi := region.X0*ch, region.X1*ch
	s.grow(n, ch)
	pixels := s.pixels[:n*ch]
	keys := s.keys[:n]

	// Collect in scan order
	for y := region.Y0; y < region.Y1; y++ {
		copy(pixels[(y-region.Y0)*rowBytes:], buf.RowSlice(y)[lo:hi])
	}

	var flip uint32
	if order == Descending {
		flip = ^uint32(0)
	}
	var p pixel.Pixel
	for i := range keys {
		copy(p[:ch], pixels[i*ch:])
		keys[i] = fn(p) ^ flip
	}

	perm := s.order.Order(keys)

	// Write back in the same scan order
	i := 0
	for y := region.Y0; y < region.Y1; y++ {
		row := buf.RowSlice(y)[lo:hi]
		for off := 0; off < rowBytes; off += ch {
			src := int(perm[i]) * ch
			copy(row[off:off+ch], pixels[src:src+ch])
			i++
		}
	}
	return nil
}

func (s *Sorter) grow(n, ch int) {
	if cap(s.pixels) < n*ch {
		s.pixels = make([]uint8, n*ch)
	}
	if cap(s.keys) < n {
		s.keys = make([]uint32, n)
	}
}
