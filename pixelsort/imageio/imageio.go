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

// Package imageio converts between encoded images and pixel buffers.
//
// Decoded images are normalised to 8-bit RGBA with straight alpha: 16-bit
// samples are truncated to their high byte, palettes and gray are expanded to
// RGB, and images without alpha get an opaque alpha channel. The only
// exception is the pxz container, which stores a buffer's bytes and layout
// verbatim.
package imageio

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

var (
	// ErrUnsupportedFormat is returned for formats that cannot be decoded or
	// encoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrCorrupt is returned for pxz data whose header or payload is
	// inconsistent.
	ErrCorrupt = errors.New("corrupt image data")
)

// JPEGQuality is used when encoding JPEG output.
const JPEGQuality = 95

// Decode reads an image and returns it as a buffer together with the name of
// the detected format ("png", "jpeg", "gif", "bmp", "tiff", "webp" or "pxz").
func Decode(r io.Reader) (*pixel.Buffer, string, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(pxzMagic)); err == nil && bytes.Equal(magic, pxzMagic[:]) {
		buf, err := decodePXZ(br)
		return buf, FormatPXZ, err
	}

	img, format, err := image.Decode(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", oops.New(ErrUnsupportedFormat, "decoding image")
		}
		return nil, format, oops.New(err, "decoding %s image", format)
	}
	buf, err := FromImage(img)
	return buf, format, err
}

// FromImage copies img into a new RGBA buffer.
func FromImage(img image.Image) (*pixel.Buffer, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf, err := pixel.New(w, h, pixel.RGBA)
	if err != nil {
		return nil, err
	}

	// Draw straight into the buffer's memory.
	dst := &image.NRGBA{
		Pix:    buf.Bytes(),
		Stride: buf.Stride(),
		Rect:   image.Rect(0, 0, w, h),
	}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return buf, nil
}

// ToImage returns an image.Image view of buf. Gray buffers become
// *image.Gray and RGBA buffers *image.NRGBA, both sharing buf's memory. Gray
// with alpha and RGB buffers are expanded into a new *image.NRGBA.
func ToImage(buf *pixel.Buffer) image.Image {
	w, h := buf.Width(), buf.Height()
	rect := image.Rect(0, 0, w, h)
	switch buf.Layout() {
	case pixel.Gray:
		return &image.Gray{Pix: buf.Bytes(), Stride: buf.Stride(), Rect: rect}
	case pixel.RGBA:
		return &image.NRGBA{Pix: buf.Bytes(), Stride: buf.Stride(), Rect: rect}
	}

	img := image.NewNRGBA(rect)
	for y := range h {
		src := buf.RowSlice(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := range w {
			d := dst[4*x : 4*x+4]
			if buf.Layout() == pixel.GrayAlpha {
				v := src[2*x]
				d[0], d[1], d[2], d[3] = v, v, v, src[2*x+1]
			} else {
				d[0], d[1], d[2], d[3] = src[3*x], src[3*x+1], src[3*x+2], 0xFF
			}
		}
	}
	return img
}

// Format names accepted by Encode and returned by Decode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
	FormatPXZ  = "pxz"
)

var extensions = map[string]string{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
	".pxz":  FormatPXZ,
}

// FormatFromPath maps a file extension to a format name, or "" if the
// extension is unknown.
func FormatFromPath(path string) string {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Encode writes buf in the named format. Supported formats are png, jpeg,
// gif, bmp, tiff and pxz.
func Encode(w io.Writer, buf *pixel.Buffer, format string) error {
	if buf == nil {
		return oops.New(pixel.ErrInvalidDimensions, "nil buffer")
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if f, ok := extensions["."+format]; ok {
		format = f
	}

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, ToImage(buf))
	case FormatJPEG:
		err = jpeg.Encode(w, opaque(ToImage(buf)), &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, ToImage(buf), nil)
	case FormatBMP:
		err = bmp.Encode(w, ToImage(buf))
	case FormatTIFF:
		err = tiff.Encode(w, ToImage(buf), &tiff.Options{Compression: tiff.Deflate})
	case FormatPXZ:
		return encodePXZ(w, buf)
	default:
		return oops.New(ErrUnsupportedFormat, "encoding %q", format)
	}
	if err != nil {
		return oops.New(err, "encoding %s", format)
	}
	return nil
}

// opaque composites img over black, since JPEG has no alpha channel.
func opaque(img image.Image) image.Image {
	if _, ok := img.(*image.Gray); ok {
		return img
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Over)
	return dst
}
