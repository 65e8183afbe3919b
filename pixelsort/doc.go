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

// Package pixelsort reorders the pixels of an image inside fixed-size square
// chunks.
//
// The buffer is tiled into chunks of ChunkSize x ChunkSize pixels (edge chunks
// are clipped). Within each chunk the pixels are read in row-major order,
// stably sorted by a key and written back in the same order. Pixels never move
// between chunks, so chunks can be sorted in any order or concurrently.
//
// Basic usage:
//
//	buf, _, err := imageio.Decode(f)
//	if err != nil { ... }
//	_, err = pixelsort.Sort(buf, pixelsort.Options{ChunkSize: 16})
//
// Sorting many images with a worker pool:
//
//	engine := pixelsort.New(runtime.GOMAXPROCS(0))
//	defer engine.Close()
//	for _, buf := range frames {
//	    if _, err := engine.Sort(buf, opts); err != nil { ... }
//	}
//
// # Sort keys
//
// Options.Key maps a pixel to an unsigned integer. Package key provides the
// built-in criteria; a nil Key sorts by BT.601 luminance.
//
// # Failure
//
// Options and buffer dimensions are validated before any pixel is touched, so
// a configuration error leaves the buffer byte-for-byte unchanged. An error
// while sorting a chunk stops the remaining chunks; chunks that were already
// sorted stay sorted. Each chunk is either fully sorted or untouched.
package pixelsort
