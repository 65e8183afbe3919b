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

// Package key maps pixels to the scalar they are sorted by.
//
// Keys are uint32 so every criterion is totally ordered and exact: there is
// no floating point rounding that could make two runs disagree. Each
// Criterion is bound to a buffer layout once per run:
//
//	fn := key.Luminance.Func(buf.Layout())
//	k := fn(pixel.Pixel{255, 0, 0, 255}) // 76245
//
// Gray layouts behave as R=G=B=gray. Layouts without alpha behave as fully
// opaque (alpha 255).
package key

import (
	"errors"
	"strings"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

// ErrUnknownKey is returned by Lookup for a name that is not a Criterion.
var ErrUnknownKey = errors.New("unknown sort key")

// Func derives the sort key of a pixel. It must be pure: the engine may call
// it from several goroutines and in any order.
type Func func(p pixel.Pixel) uint32

// Criterion names a built-in key function.
type Criterion int

const (
	// Luminance is the BT.601 weighted sum 299R + 587G + 114B.
	Luminance Criterion = iota
	// Luma709 is the BT.709 weighted sum 2126R + 7152G + 722B.
	Luma709
	// Sum adds every channel of the layout, alpha included.
	Sum
	Red
	Green
	Blue
	Alpha
	// Hue is the HSV hue in hundredths of a degree, [0, 36000).
	Hue
	// Saturation is the HSV saturation scaled to [0, 1000].
	Saturation
	// Lightness is the HSL lightness doubled, max+min, [0, 510].
	Lightness
	// Value is the HSV value, the largest colour channel.
	Value

	numCriteria
)

// Default is used when no criterion is configured.
const Default = Luminance

var names = [numCriteria]string{
	Luminance:  "luminance",
	Luma709:    "luma709",
	Sum:        "sum",
	Red:        "red",
	Green:      "green",
	Blue:       "blue",
	Alpha:      "alpha",
	Hue:        "hue",
	Saturation: "saturation",
	Lightness:  "lightness",
	Value:      "value",
}

func (c Criterion) String() string {
	if c < 0 || c >= numCriteria {
		return "unknown"
	}
	return names[c]
}

// Names lists the built-in criteria in declaration order.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Lookup resolves a criterion by name, ignoring case. An empty name selects
// Default.
func Lookup(name string) (Criterion, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for c, n := range names {
		if n == name {
			return Criterion(c), nil
		}
	}
	return Default, oops.New(ErrUnknownKey, "%q (want one of %s)", name, strings.Join(names[:], ", "))
}

// Func binds the criterion to a layout.
func (c Criterion) Func(layout pixel.Layout) Func {
	switch c {
	case Luma709:
		return func(p pixel.Pixel) uint32 {
			r, g, b, _ := channels(p, layout)
			return luma709R*r + luma709G*g + luma709B*b
		}
	case Sum:
		n := layout.Channels()
		return func(p pixel.Pixel) uint32 {
			var s uint32
			for i := range n {
				s += uint32(p[i])
			}
			return s
		}
	case Red:
		return func(p pixel.Pixel) uint32 {
			r, _, _, _ := channels(p, layout)
			return r
		}
	case Green:
		return func(p pixel.Pixel) uint32 {
			_, g, _, _ := channels(p, layout)
			return g
		}
	case Blue:
		return func(p pixel.Pixel) uint32 {
			_, _, b, _ := channels(p, layout)
			return b
		}
	case Alpha:
		return func(p pixel.Pixel) uint32 {
			_, _, _, a := channels(p, layout)
			return a
		}
	case Hue:
		return func(p pixel.Pixel) uint32 {
			r, g, b, _ := channels(p, layout)
			return hue(int32(r), int32(g), int32(b))
		}
	case Saturation:
		return func(p pixel.Pixel) uint32 {
			r, g, b, _ := channels(p, layout)
			hi := max(r, g, b)
			if hi == 0 {
				return 0
			}
			return (hi - min(r, g, b)) * 1000 / hi
		}
	case Lightness:
		return func(p pixel.Pixel) uint32 {
			r, g, b, _ := channels(p, layout)
			return max(r, g, b) + min(r, g, b)
		}
	case Value:
		return func(p pixel.Pixel) uint32 {
			r, g, b, _ := channels(p, layout)
			return max(r, g, b)
		}
	default:
		return func(p pixel.Pixel) uint32 {
			r, g, b, _ := channels(p, layout)
			return lumaR*r + lumaG*g + lumaB*b
		}
	}
}

// channels expands p to straight RGBA according to layout.
func channels(p pixel.Pixel, layout pixel.Layout) (r, g, b, a uint32) {
	switch layout {
	case pixel.Gray:
		v := uint32(p[0])
		return v, v, v, 0xFF
	case pixel.GrayAlpha:
		v := uint32(p[0])
		return v, v, v, uint32(p[1])
	case pixel.RGB:
		return uint32(p[0]), uint32(p[1]), uint32(p[2]), 0xFF
	default:
		return uint32(p[0]), uint32(p[1]), uint32(p[2]), uint32(p[3])
	}
}

// hue returns the HSV hue in hundredths of a degree.
func hue(r, g, b int32) uint32 {
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo
	if d == 0 {
		return 0
	}
	var h int32
	switch hi {
	case r:
		h = 6000 * (g - b) / d
	case g:
		h = 12000 + 6000*(b-r)/d
	default:
		h = 24000 + 6000*(r-g)/d
	}
	if h < 0 {
		h += 36000
	}
	return uint32(h)
}
