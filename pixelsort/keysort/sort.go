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

// InsertionThreshold: use insertion sort for inputs this size or smaller.
const InsertionThreshold = 64

// Sorter computes stable orderings and keeps its scratch space between
// calls. The zero value is ready to use. A Sorter is not safe for
// concurrent use.
type Sorter struct {
	keys, keysTmp []uint32
	idx, idxTmp   []int32
	hist          [digits][256]int
}

// Order returns the stable permutation that sorts keys ascending:
// keys[order[i]] <= keys[order[i+1]], and equal keys keep their input order.
// keys is not modified. The returned slice is owned by the Sorter and is
// only valid until the next call.
func (s *Sorter) Order(keys []uint32) []int32 {
	n := len(keys)
	s.grow(n)

	sk := s.keys[:n]
	si := s.idx[:n]
	copy(sk, keys)
	for i := range si {
		si[i] = int32(i)
	}

	if n <= 1 {
		return si
	}

	if n <= InsertionThreshold {
		insertionSortPairs(sk, si)
		return si
	}

	Histograms(sk, &s.hist)
	dk := s.keysTmp[:n]
	di := s.idxTmp[:n]
	for d := range digits {
		if trivialDigit(&s.hist[d], n) {
			continue
		}
		RadixPass(sk, dk, si, di, uint(8*d), &s.hist[d])
		sk, dk = dk, sk
		si, di = di, si
	}
	return si
}

func (s *Sorter) grow(n int) {
	if cap(s.keys) >= n {
		return
	}
	s.keys = make([]uint32, n)
	s.keysTmp = make([]uint32, n)
	s.idx = make([]int32, n)
	s.idxTmp = make([]int32, n)
}

// insertionSortPairs sorts keys ascending and applies the same moves to idx.
// The strict comparison keeps equal keys in place.
func insertionSortPairs(keys []uint32, idx []int32) {
	for i := 1; i < len(keys); i++ {
		key := keys[i]
		id := idx[i]
		j := i - 1
		for j >= 0 && keys[j] > key {
			keys[j+1] = keys[j]
			idx[j+1] = idx[j]
			j--
		}
		keys[j+1] = key
		idx[j+1] = id
	}
}

// IsSorted reports whether keys is in ascending order.
func IsSorted(keys []uint32) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return false
		}
	}
	return true
}
