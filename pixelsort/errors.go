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
	"github.com/ajroetker/go-pixelsort/pixelsort/chunk"
	"github.com/ajroetker/go-pixelsort/pixelsort/key"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

// Error kinds. Errors returned by this package wrap one of these and can be
// matched with errors.Is.
var (
	ErrInvalidDimensions = pixel.ErrInvalidDimensions
	ErrOutOfBounds       = pixel.ErrOutOfBounds
	ErrInvalidChunkSize  = chunk.ErrInvalidChunkSize
	ErrRegionOutOfBounds = chunk.ErrRegionOutOfBounds
	ErrUnknownOrder      = chunk.ErrUnknownOrder
	ErrUnknownKey        = key.ErrUnknownKey
)

// Order selects ascending or descending keys within each chunk.
type Order = chunk.Order

const (
	Ascending  = chunk.Ascending
	Descending = chunk.Descending
)

// ParseOrder parses "asc" or "desc" (or the long forms).
func ParseOrder(s string) (Order, error) {
	return chunk.ParseOrder(s)
}
