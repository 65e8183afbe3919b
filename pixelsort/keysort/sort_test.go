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

package keysort

import (
	"math/rand"
	"slices"
	"testing"
)

// checkStableOrder verifies order is a permutation that sorts keys and keeps
// equal keys in input order.
func checkStableOrder(t *testing.T, keys []uint32, order []int32) {
	t.Helper()
	if len(order) != len(keys) {
		t.Fatalf("len(order) = %d, want %d", len(order), len(keys))
	}
	seen := make([]bool, len(keys))
	for i, o := range order {
		if o < 0 || int(o) >= len(keys) || seen[o] {
			t.Fatalf("order is not a permutation at %d: %v", i, o)
		}
		seen[o] = true
		if i == 0 {
			continue
		}
		prev := order[i-1]
		if keys[prev] > keys[o] {
			t.Fatalf("keys out of order at %d: %d > %d", i, keys[prev], keys[o])
		}
		if keys[prev] == keys[o] && prev > o {
			t.Fatalf("equal keys swapped at %d: index %d before %d", i, prev, o)
		}
	}
}

// TestOrderEmpty tests ordering empty input
func TestOrderEmpty(t *testing.T) {
	var s Sorter
	if order := s.Order(nil); len(order) != 0 {
		t.Errorf("Order(nil) = %v, want empty", order)
	}
}

// TestOrderSingle tests ordering one key
func TestOrderSingle(t *testing.T) {
	var s Sorter
	order := s.Order([]uint32{42})
	if len(order) != 1 || order[0] != 0 {
		t.Errorf("Order([42]) = %v, want [0]", order)
	}
}

// TestOrderAlreadySorted tests that sorted input yields the identity
func TestOrderAlreadySorted(t *testing.T) {
	for _, n := range []int{8, InsertionThreshold, InsertionThreshold + 1, 1000} {
		keys := make([]uint32, n)
		for i := range keys {
			keys[i] = uint32(i / 3) // with duplicates
		}
		var s Sorter
		order := s.Order(keys)
		for i, o := range order {
			if int(o) != i {
				t.Fatalf("n=%d: order[%d] = %d, want identity", n, i, o)
			}
		}
	}
}

// TestOrderReverse tests reverse sorted input
func TestOrderReverse(t *testing.T) {
	keys := []uint32{8, 7, 6, 5, 4, 3, 2, 1}
	var s Sorter
	order := s.Order(keys)
	want := []int32{7, 6, 5, 4, 3, 2, 1, 0}
	if !slices.Equal(order, want) {
		t.Errorf("Order(reverse) = %v, want %v", order, want)
	}
}

// TestOrderAllSame tests that all-equal keys keep their positions
func TestOrderAllSame(t *testing.T) {
	for _, n := range []int{5, 300} {
		keys := make([]uint32, n)
		for i := range keys {
			keys[i] = 0xDEADBEEF
		}
		var s Sorter
		order := s.Order(keys)
		for i, o := range order {
			if int(o) != i {
				t.Fatalf("n=%d: order[%d] = %d, want %d", n, i, o, i)
			}
		}
	}
}

// TestOrderDoesNotModifyKeys tests that the input slice is read-only
func TestOrderDoesNotModifyKeys(t *testing.T) {
	keys := []uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	orig := slices.Clone(keys)
	var s Sorter
	s.Order(keys)
	if !slices.Equal(keys, orig) {
		t.Errorf("keys modified: got %v, want %v", keys, orig)
	}
}

// TestOrderRandom tests both the insertion and radix paths
func TestOrderRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{2, 7, 16, 31, 63, 64, 65, 100, 256, 1000, 4096}
	ranges := []uint32{4, 256, 1 << 16, 0xFFFFFFFF}
	var s Sorter // reused across sizes
	for _, n := range sizes {
		for _, r := range ranges {
			keys := make([]uint32, n)
			for i := range keys {
				keys[i] = uint32(rng.Int63()) % r
				if r == 0xFFFFFFFF {
					keys[i] = rng.Uint32()
				}
			}
			checkStableOrder(t, keys, s.Order(keys))
		}
	}
}

// TestOrderMatchesStdlib compares against slices.SortStableFunc
func TestOrderMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	keys := make([]uint32, 2000)
	for i := range keys {
		keys[i] = uint32(rng.Intn(50)) << 20
	}

	want := make([]int32, len(keys))
	for i := range want {
		want[i] = int32(i)
	}
	slices.SortStableFunc(want, func(a, b int32) int {
		switch {
		case keys[a] < keys[b]:
			return -1
		case keys[a] > keys[b]:
			return 1
		}
		return 0
	})

	var s Sorter
	if got := s.Order(keys); !slices.Equal(got, want) {
		t.Error("Order disagrees with slices.SortStableFunc")
	}
}

func TestHistograms(t *testing.T) {
	keys := []uint32{0x01020304, 0x01020305, 0xFF000004}
	var hist [digits][256]int
	Histograms(keys, &hist)

	if hist[0][0x04] != 2 || hist[0][0x05] != 1 {
		t.Errorf("digit 0: got %d/%d, want 2/1", hist[0][0x04], hist[0][0x05])
	}
	if hist[3][0x01] != 2 || hist[3][0xFF] != 1 {
		t.Errorf("digit 3: got %d/%d, want 2/1", hist[3][0x01], hist[3][0xFF])
	}
	if !trivialDigit(&[256]int{7: 3}, 3) {
		t.Error("single bucket should be trivial")
	}
	if trivialDigit(&hist[0], 3) {
		t.Error("two buckets should not be trivial")
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted(nil) || !IsSorted([]uint32{1, 1, 2}) {
		t.Error("IsSorted should accept ascending input")
	}
	if IsSorted([]uint32{2, 1}) {
		t.Error("IsSorted should reject descending input")
	}
}
