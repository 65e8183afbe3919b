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

// Package dispatch reports the vector width of the running CPU.
//
// The sorting kernels are plain Go, but they process keys in blocks sized to
// the widest register the CPU offers so the compiler can keep a block's loads
// and counters hot. Setting PIXELSORT_NO_SIMD forces the scalar width.
package dispatch

import (
	"os"
	"strconv"
)

// Level represents the instruction set detected at startup.
type Level int

const (
	// LevelScalar indicates no vector extension was detected or requested.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512F (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE.
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// scalarWidth keeps block sizes meaningful when no vector unit is used.
const scalarWidth = 16

// currentLevel and currentWidth are set by init() in dispatch_*.go files.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the detected instruction set.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the detected level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// Lanes32 returns how many 32-bit values fit in one register.
func Lanes32() int {
	return currentWidth / 4
}

// NoSimdEnv checks if the PIXELSORT_NO_SIMD environment variable is set.
func NoSimdEnv() bool {
	val := os.Getenv("PIXELSORT_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = scalarWidth
}
