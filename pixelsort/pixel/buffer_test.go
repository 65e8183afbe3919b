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

package pixel

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	buf, err := New(100, 50, RGBA)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if buf.Width() != 100 {
		t.Errorf("Width: got %d, want 100", buf.Width())
	}
	if buf.Height() != 50 {
		t.Errorf("Height: got %d, want 50", buf.Height())
	}
	if buf.Stride() != 400 {
		t.Errorf("Stride: got %d, want 400", buf.Stride())
	}
	if len(buf.Bytes()) != 100*50*4 {
		t.Errorf("len(Bytes): got %d, want %d", len(buf.Bytes()), 100*50*4)
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		layout Layout
	}{
		{"zero", 0, 0, RGBA},
		{"negative width", -1, 10, RGBA},
		{"zero height", 10, 0, RGB},
		{"no channels", 10, 10, Layout(0)},
		{"too many channels", 10, 10, Layout(5)},
		{"byte count overflows", math.MaxInt/4 + 1, 4, RGBA},
		{"row overflows", math.MaxInt/2 + 1, 1, GrayAlpha},
		{"huge both", math.MaxInt, math.MaxInt, Gray},
	}
	for _, tc := range cases {
		buf, err := New(tc.w, tc.h, tc.layout)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%s: got err %v, want ErrInvalidDimensions", tc.name, err)
		}
		if buf != nil {
			t.Errorf("%s: got buffer, want nil", tc.name)
		}
	}
}

func TestFromBytes(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	buf, err := FromBytes(3, 2, Gray, data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	// No copy
	data[4] = 42
	if p, _ := buf.At(1, 1); p[0] != 42 {
		t.Errorf("At(1,1) after external write: got %d, want 42", p[0])
	}

	if _, err := FromBytes(3, 2, RGB, data); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("short data: got err %v, want ErrInvalidDimensions", err)
	}

	// width*4*4 wraps to 0 and would otherwise match an empty slice.
	if buf, err := FromBytes(math.MaxInt/4+1, 4, RGBA, nil); !errors.Is(err, ErrInvalidDimensions) || buf != nil {
		t.Errorf("overflowing size: got (%v, %v), want ErrInvalidDimensions", buf, err)
	}
}

func TestBuffer_AtSet(t *testing.T) {
	buf, _ := New(10, 10, RGBA)

	want := Pixel{1, 2, 3, 4}
	if err := buf.Set(5, 7, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := buf.At(5, 7)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got != want {
		t.Errorf("At(5,7): got %v, want %v", got, want)
	}

	// Neighbours untouched
	for _, c := range [][2]int{{4, 7}, {6, 7}, {5, 6}, {5, 8}} {
		if p, _ := buf.At(c[0], c[1]); p != (Pixel{}) {
			t.Errorf("At(%d,%d): got %v, want zero", c[0], c[1], p)
		}
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if _, err := buf.At(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d,%d): got err %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := buf.Set(c[0], c[1], want); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d): got err %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestBuffer_SetIgnoresExtraChannels(t *testing.T) {
	buf, _ := New(2, 1, RGB)
	if err := buf.Set(0, 0, Pixel{9, 8, 7, 6}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := buf.At(0, 0)
	if got != (Pixel{9, 8, 7, 0}) {
		t.Errorf("At(0,0): got %v, want [9 8 7 0]", got)
	}
	if p, _ := buf.At(1, 0); p != (Pixel{}) {
		t.Errorf("At(1,0): got %v, want zero", p)
	}
}

func TestBuffer_RowSlice(t *testing.T) {
	buf, _ := New(10, 5, RGBA)

	row := buf.RowSlice(2)
	if len(row) != 40 {
		t.Fatalf("RowSlice length: got %d, want 40", len(row))
	}
	row[4] = 99
	if p, _ := buf.At(1, 2); p[0] != 99 {
		t.Errorf("write through RowSlice not visible: got %v", p)
	}

	// Appending must not spill into the next row
	_ = append(row, 7)
	if p, _ := buf.At(0, 3); p[0] != 0 {
		t.Errorf("append to RowSlice overwrote next row: got %v", p)
	}

	if buf.RowSlice(-1) != nil {
		t.Error("RowSlice(-1) should return nil")
	}
	if buf.RowSlice(5) != nil {
		t.Error("RowSlice(5) should return nil")
	}
}

func TestBuffer_RowSetRow(t *testing.T) {
	buf, _ := New(3, 2, RGBA)
	want := []Pixel{{1, 1, 1, 1}, {2, 2, 2, 2}, {3, 3, 3, 3}}
	if err := buf.SetRow(1, want); err != nil {
		t.Fatalf("SetRow: %v", err)
	}
	got, err := buf.Row(1)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row(1)[%d]: got %v, want %v", i, got[i], want[i])
		}
	}

	// Row returns a copy
	got[0] = Pixel{}
	if p, _ := buf.At(0, 1); p != want[0] {
		t.Error("mutating Row result changed the buffer")
	}

	if _, err := buf.Row(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Row(2): got err %v, want ErrOutOfBounds", err)
	}
	if err := buf.SetRow(0, want[:2]); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRow short: got err %v, want ErrOutOfBounds", err)
	}
}

func TestBuffer_CloneEqual(t *testing.T) {
	buf, _ := New(4, 4, RGB)
	buf.Fill(Pixel{10, 20, 30})

	clone := buf.Clone()
	if !clone.Equal(buf) {
		t.Fatal("Clone should equal the original")
	}

	clone.Set(0, 0, Pixel{})
	if clone.Equal(buf) {
		t.Error("Clone should be independent")
	}
	if p, _ := buf.At(0, 0); p != (Pixel{10, 20, 30}) {
		t.Errorf("original changed: got %v", p)
	}

	other, _ := New(4, 4, RGBA)
	if other.Equal(buf) {
		t.Error("buffers with different layouts should not be equal")
	}
}

func TestLayout(t *testing.T) {
	cases := []struct {
		layout   Layout
		channels int
		alpha    bool
		name     string
	}{
		{Gray, 1, false, "gray"},
		{GrayAlpha, 2, true, "gray+alpha"},
		{RGB, 3, false, "rgb"},
		{RGBA, 4, true, "rgba"},
	}
	for _, tc := range cases {
		if tc.layout.Channels() != tc.channels {
			t.Errorf("%s: Channels() = %d, want %d", tc.name, tc.layout.Channels(), tc.channels)
		}
		if tc.layout.HasAlpha() != tc.alpha {
			t.Errorf("%s: HasAlpha() = %v, want %v", tc.name, tc.layout.HasAlpha(), tc.alpha)
		}
		if tc.layout.String() != tc.name {
			t.Errorf("String() = %q, want %q", tc.layout.String(), tc.name)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X0: 2, Y0: 3, X1: 6, Y1: 5}
	if r.Width() != 4 || r.Height() != 2 || r.Area() != 8 {
		t.Errorf("Rect %v: got %dx%d area %d", r, r.Width(), r.Height(), r.Area())
	}
	if !r.Contains(2, 3) || r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("Contains should be half-open")
	}
	if !r.In(Rect{X1: 6, Y1: 5}) {
		t.Error("In: rect should fit exactly")
	}
	if r.In(Rect{X1: 5, Y1: 5}) {
		t.Error("In: rect overflows on x")
	}
	if (Rect{X0: 1, X1: 1, Y1: 1}).In(Rect{X1: 5, Y1: 5}) {
		t.Error("In: empty rect should never fit")
	}
	if r.Overlaps(Rect{X0: 6, Y0: 3, X1: 8, Y1: 5}) {
		t.Error("adjacent rects should not overlap")
	}
	if !r.Overlaps(Rect{X0: 5, Y0: 4, X1: 8, Y1: 8}) {
		t.Error("rects sharing (5,4) should overlap")
	}
	if got := r.String(); got != "(2,3)-(6,5)" {
		t.Errorf("String() = %q", got)
	}
}
