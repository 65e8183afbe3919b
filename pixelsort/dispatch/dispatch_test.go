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

package dispatch

import (
	"runtime"
	"testing"
)

func TestCurrentWidth(t *testing.T) {
	w := CurrentWidth()
	switch w {
	case 16, 32, 64:
	default:
		t.Fatalf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	if Lanes32()*4 != w {
		t.Errorf("Lanes32() = %d, inconsistent with width %d", Lanes32(), w)
	}
}

func TestCurrentName(t *testing.T) {
	name := CurrentName()
	if name == "" || name == "unknown" {
		t.Fatalf("CurrentName() = %q", name)
	}
	if NoSimdEnv() && CurrentLevel() != LevelScalar {
		t.Errorf("PIXELSORT_NO_SIMD set but level is %s", name)
	}
	if runtime.GOARCH == "amd64" && !NoSimdEnv() && CurrentLevel() == LevelScalar {
		t.Error("amd64 should report at least sse2")
	}
}

func TestNoSimdEnv(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tc := range cases {
		t.Setenv("PIXELSORT_NO_SIMD", tc.val)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	levels := map[Level]string{
		LevelScalar: "scalar",
		LevelSSE2:   "sse2",
		LevelAVX2:   "avx2",
		LevelAVX512: "avx512",
		LevelNEON:   "neon",
		LevelSVE:    "sve",
		Level(99):   "unknown",
	}
	for l, want := range levels {
		if l.String() != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(l), l.String(), want)
		}
	}
}
