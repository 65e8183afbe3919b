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

// Package chunk splits a buffer into square regions and sorts the pixels of
// one region at a time.
//
// Partition tiles the buffer row-major, clipping the last column and row of
// chunks to the buffer edge:
//
//	regions, _ := chunk.Partition(3, 3, 2)
//	// (0,0)-(2,2) (2,0)-(3,2) (0,2)-(2,3) (2,2)-(3,3)
//
// The regions of one partition never overlap and cover every pixel exactly
// once, so a Sorter working on one region never reads or writes a pixel of
// another.
package chunk

import (
	"errors"
	"math"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

var (
	// ErrInvalidChunkSize is returned for a chunk size <= 0.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrRegionOutOfBounds is returned when a region handed to a Sorter is
	// empty or extends past the buffer. With regions from Partition this
	// indicates a bug, not bad input.
	ErrRegionOutOfBounds = errors.New("region out of bounds")
)

// Validate checks the inputs of Partition without computing anything.
func Validate(width, height, size int) error {
	if size <= 0 {
		return oops.New(ErrInvalidChunkSize, "chunk size %d", size)
	}
	if width <= 0 || height <= 0 {
		return oops.New(pixel.ErrInvalidDimensions, "%dx%d", width, height)
	}
	return nil
}

// maxRegions bounds the length of a partition so that the region slice
// stays addressable. A Rect is at most 32 bytes.
const maxRegions = math.MaxInt / 32

// Count returns the number of regions Partition produces, or 0 for invalid
// input or a partition with more than maxRegions regions.
func Count(width, height, size int) int {
	if Validate(width, height, size) != nil {
		return 0
	}
	cols, rows := ceilDiv(width, size), ceilDiv(height, size)
	if cols > maxRegions/rows {
		return 0
	}
	return cols * rows
}

// Partition tiles [0,width) x [0,height) with size x size regions in
// row-major order: left to right within a row of chunks, then top to
// bottom. Regions on the right and bottom edges are narrower or shorter
// when the dimensions are not multiples of size.
func Partition(width, height, size int) ([]pixel.Rect, error) {
	if err := Validate(width, height, size); err != nil {
		return nil, err
	}
	cols, rows := ceilDiv(width, size), ceilDiv(height, size)
	if cols > maxRegions/rows {
		return nil, oops.New(pixel.ErrInvalidDimensions, "%dx%d in chunks of %d", width, height, size)
	}

	// Edges are computed from the remaining extent so no sum exceeds
	// width or height.
	regions := make([]pixel.Rect, 0, cols*rows)
	for y0 := 0; y0 < height; {
		y1 := y0 + min(size, height-y0)
		for x0 := 0; x0 < width; {
			x1 := x0 + min(size, width-x0)
			regions = append(regions, pixel.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1})
			x0 = x1
		}
		y0 = y1
	}
	return regions, nil
}

// ceilDiv returns ceil(a/b) for a, b > 0.
func ceilDiv(a, b int) int {
	return (a-1)/b + 1
}
