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

package key

// BT.601 luma coefficients (the RGB to Y row of the JPEG/JFIF YCbCr
// transform), scaled by 1000 so keys stay integral.
const (
	// Y = LumaR*R + LumaG*G + LumaB*B
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114

	lumaR uint32 = 299
	lumaG uint32 = 587
	lumaB uint32 = 114
)

// BT.709 luma coefficients, scaled by 10000.
const (
	Luma709R = 0.2126
	Luma709G = 0.7152
	Luma709B = 0.0722

	luma709R uint32 = 2126
	luma709G uint32 = 7152
	luma709B uint32 = 722
)

// MaxLuminance is the Luminance key of a white pixel.
const MaxLuminance = (lumaR + lumaG + lumaB) * 0xFF
