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

// Package pixel provides the resident raster buffer sorted by the engine.
//
// A Buffer stores interleaved 8-bit channels in one contiguous, row-major
// byte slice with no row padding:
//
//	buf, _ := pixel.New(640, 480, pixel.RGBA)
//	for y := range buf.Height() {
//	    row := buf.RowSlice(y) // 640*4 bytes
//	    ...
//	}
//
// Every coordinate accessor is bounds checked and reports ErrOutOfBounds
// instead of silently clamping.
package pixel

import (
	"bytes"
	"errors"
	"math"

	"github.com/ajroetker/go-pixelsort/internal/oops"
)

var (
	// ErrInvalidDimensions is returned when a buffer is built with a
	// non-positive width or height, an unknown layout, or backing data of
	// the wrong length.
	ErrInvalidDimensions = errors.New("invalid buffer dimensions")

	// ErrOutOfBounds is returned by accessors given a coordinate outside
	// the buffer.
	ErrOutOfBounds = errors.New("pixel out of bounds")
)

// MaxChannels is the widest pixel a Buffer can hold.
const MaxChannels = 4

// Pixel holds the channel values of one pixel. Channels past the buffer's
// layout are zero.
type Pixel [MaxChannels]uint8

// Layout is the channel arrangement of a buffer. Its value is the number of
// interleaved channels per pixel.
type Layout int

const (
	Gray      Layout = 1
	GrayAlpha Layout = 2
	RGB       Layout = 3
	RGBA      Layout = 4
)

// Channels returns the number of bytes per pixel.
func (l Layout) Channels() int {
	return int(l)
}

// Valid reports whether l is one of the supported layouts.
func (l Layout) Valid() bool {
	return l >= Gray && l <= RGBA
}

// HasAlpha reports whether the last channel is alpha.
func (l Layout) HasAlpha() bool {
	return l == GrayAlpha || l == RGBA
}

func (l Layout) String() string {
	switch l {
	case Gray:
		return "gray"
	case GrayAlpha:
		return "gray+alpha"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return "unknown"
	}
}

// Buffer is a row-major raster of fixed-width pixels.
//
// A Buffer has a single writer at a time. The sort engine relies on callers
// not touching the buffer while a sort is in flight.
type Buffer struct {
	data   []uint8
	width  int
	height int
	layout Layout
	stride int // bytes per row
}

// New allocates a zeroed buffer.
func New(width, height int, layout Layout) (*Buffer, error) {
	if err := checkDimensions(width, height, layout); err != nil {
		return nil, err
	}
	stride := width * layout.Channels()
	return &Buffer{
		data:   make([]uint8, stride*height),
		width:  width,
		height: height,
		layout: layout,
		stride: stride,
	}, nil
}

// FromBytes wraps existing interleaved pixel data without copying it.
// data must hold exactly width*height*layout.Channels() bytes.
func FromBytes(width, height int, layout Layout, data []uint8) (*Buffer, error) {
	if err := checkDimensions(width, height, layout); err != nil {
		return nil, err
	}
	stride := width * layout.Channels()
	if len(data) != stride*height {
		return nil, oops.New(ErrInvalidDimensions, "got %d bytes for %dx%d %s, want %d",
			len(data), width, height, layout, stride*height)
	}
	return &Buffer{
		data:   data,
		width:  width,
		height: height,
		layout: layout,
		stride: stride,
	}, nil
}

func checkDimensions(width, height int, layout Layout) error {
	if width <= 0 || height <= 0 {
		return oops.New(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if !layout.Valid() {
		return oops.New(ErrInvalidDimensions, "unsupported layout with %d channels", int(layout))
	}
	if width > math.MaxInt/layout.Channels()/height {
		return oops.New(ErrInvalidDimensions, "%dx%d %s does not fit in memory", width, height, layout)
	}
	return nil
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Layout returns the channel layout.
func (b *Buffer) Layout() Layout {
	return b.layout
}

// Channels returns the number of bytes per pixel.
func (b *Buffer) Channels() int {
	return b.layout.Channels()
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.stride
}

// Bytes returns the backing pixel data. Writes through it are visible to
// the buffer.
func (b *Buffer) Bytes() []uint8 {
	return b.data
}

// Bounds returns the rectangle covering the whole buffer.
func (b *Buffer) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: b.width, Y1: b.height}
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) offset(x, y int) int {
	return y*b.stride + x*b.layout.Channels()
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (Pixel, error) {
	var p Pixel
	if !b.InBounds(x, y) {
		return p, oops.New(ErrOutOfBounds, "(%d,%d) in %dx%d", x, y, b.width, b.height)
	}
	off := b.offset(x, y)
	copy(p[:], b.data[off:off+b.layout.Channels()])
	return p, nil
}

// Set stores p at (x, y). Channels of p past the layout are ignored.
func (b *Buffer) Set(x, y int, p Pixel) error {
	if !b.InBounds(x, y) {
		return oops.New(ErrOutOfBounds, "(%d,%d) in %dx%d", x, y, b.width, b.height)
	}
	off := b.offset(x, y)
	copy(b.data[off:off+b.layout.Channels()], p[:])
	return nil
}

// RowSlice returns a mutable slice over the bytes of row y, or nil if y is
// out of range.
func (b *Buffer) RowSlice(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.stride : start+b.stride]
}

// Row returns a copy of row y as Width pixels.
func (b *Buffer) Row(y int) ([]Pixel, error) {
	row := b.RowSlice(y)
	if row == nil {
		return nil, oops.New(ErrOutOfBounds, "row %d of %d", y, b.height)
	}
	ch := b.layout.Channels()
	pixels := make([]Pixel, b.width)
	for x := range pixels {
		copy(pixels[x][:], row[x*ch:x*ch+ch])
	}
	return pixels, nil
}

// SetRow overwrites row y with pixels, which must hold exactly Width
// entries.
func (b *Buffer) SetRow(y int, pixels []Pixel) error {
	row := b.RowSlice(y)
	if row == nil {
		return oops.New(ErrOutOfBounds, "row %d of %d", y, b.height)
	}
	if len(pixels) != b.width {
		return oops.New(ErrOutOfBounds, "row of %d pixels written to width %d", len(pixels), b.width)
	}
	ch := b.layout.Channels()
	for x, p := range pixels {
		copy(row[x*ch:x*ch+ch], p[:])
	}
	return nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := *b
	clone.data = make([]uint8, len(b.data))
	copy(clone.data, b.data)
	return &clone
}

// Equal reports whether both buffers have the same shape, layout and bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width &&
		b.height == other.height &&
		b.layout == other.layout &&
		bytes.Equal(b.data, other.data)
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p Pixel) {
	ch := b.layout.Channels()
	for i := 0; i < len(b.data); i += ch {
		copy(b.data[i:i+ch], p[:])
	}
}
