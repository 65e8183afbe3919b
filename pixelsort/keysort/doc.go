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

// Package keysort computes stable sort permutations for uint32 keys.
//
// Pixel sorting never moves keys on their own: it needs to know where each
// pixel goes. A Sorter therefore returns the permutation that orders the keys
// and leaves the keys untouched:
//
//	var s keysort.Sorter
//	order := s.Order(keys) // keys[order[0]] <= keys[order[1]] <= ...
//
// # Stability
//
// Equal keys keep their input order. Sorting an already ordered sequence
// returns the identity permutation, which is what makes re-sorting a chunk a
// no-op.
//
// # Algorithms
//
//   - Insertion sort for inputs up to InsertionThreshold elements
//   - LSD radix sort (8-bit digits) above that, skipping any digit whose
//     histogram puts every key in one bucket
//
// Both are stable, so the choice never changes the result, only the speed.
package keysort
