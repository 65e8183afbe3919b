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

// digits is the number of 8-bit radix digits in a uint32 key.
const digits = 4

// Histograms counts every digit of every key in a single scan.
// hist[d][b] is the number of keys whose d-th byte (from the least
// significant) equals b.
func Histograms(keys []uint32, hist *[digits][256]int) {
	*hist = [digits][256]int{}

	for _, k := range keys {
		hist[0][k&0xFF]++
		hist[1][(k>>8)&0xFF]++
		hist[2][(k>>16)&0xFF]++
		hist[3][k>>24]++
	}
}

// RadixPass scatters (key, index) pairs from src to dst by the byte at
// shift, using count as the digit histogram. The scatter walks src in order,
// so the pass is stable. count is consumed.
func RadixPass(srcKeys, dstKeys []uint32, srcIdx, dstIdx []int32, shift uint, count *[256]int) {
	// Compute prefix sum to get bucket offsets
	offset := 0
	for b := range 256 {
		c := count[b]
		count[b] = offset
		offset += c
	}

	// Scatter elements to destination
	for i, k := range srcKeys {
		digit := (k >> shift) & 0xFF
		pos := count[digit]
		dstKeys[pos] = k
		dstIdx[pos] = srcIdx[i]
		count[digit]++
	}
}

// trivialDigit reports whether every key falls in the same bucket, in which
// case the pass would be the identity.
func trivialDigit(count *[256]int, n int) bool {
	for _, c := range count {
		if c == n {
			return true
		}
		if c != 0 {
			return false
		}
	}
	return false
}
