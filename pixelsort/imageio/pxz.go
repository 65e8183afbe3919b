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

package imageio

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

// pxz layout:
//
//	[0:4]   magic "PXZ1"
//	[4]     layout (channel count)
//	[5:9]   width, big endian
//	[9:13]  height, big endian
//	[13:]   zstd frame holding width*height*channels bytes
var pxzMagic = [4]byte{'P', 'X', 'Z', '1'}

const (
	pxzHeaderSize = 13

	// maxPXZBytes bounds the decompressed payload so a forged header cannot
	// trigger a huge allocation.
	maxPXZBytes = 1 << 31
)

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(
			nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		)
		if err != nil {
			panic(err)
		}
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(
			nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
			zstd.WithDecoderMaxMemory(maxPXZBytes),
		)
		if err != nil {
			panic(err)
		}
		return dec
	},
}

func encodePXZ(w io.Writer, buf *pixel.Buffer) error {
	var header [pxzHeaderSize]byte
	copy(header[:4], pxzMagic[:])
	header[4] = byte(buf.Layout())
	binary.BigEndian.PutUint32(header[5:9], uint32(buf.Width()))
	binary.BigEndian.PutUint32(header[9:13], uint32(buf.Height()))

	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(buf.Bytes(), header[:])
	zstdEncPool.Put(enc)

	if _, err := w.Write(out); err != nil {
		return oops.New(err, "writing pxz")
	}
	return nil
}

func decodePXZ(r io.Reader) (*pixel.Buffer, error) {
	var header [pxzHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, oops.New(ErrCorrupt, "pxz header: %v", err)
	}
	if [4]byte(header[:4]) != pxzMagic {
		return nil, oops.New(ErrCorrupt, "pxz magic %q", header[:4])
	}
	layout := pixel.Layout(header[4])
	if !layout.Valid() {
		return nil, oops.New(ErrCorrupt, "pxz layout %d", header[4])
	}
	width := binary.BigEndian.Uint32(header[5:9])
	height := binary.BigEndian.Uint32(header[9:13])
	size := uint64(width) * uint64(height) * uint64(layout.Channels())
	if width == 0 || height == 0 || size > maxPXZBytes {
		return nil, oops.New(ErrCorrupt, "pxz dimensions %dx%d", width, height)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, oops.New(err, "reading pxz payload")
	}
	dec := zstdDecPool.Get().(*zstd.Decoder)
	data, err := dec.DecodeAll(payload, make([]byte, 0, size))
	zstdDecPool.Put(dec)
	if err != nil {
		return nil, oops.New(ErrCorrupt, "pxz payload: %v", err)
	}
	if uint64(len(data)) != size {
		return nil, oops.New(ErrCorrupt, "pxz payload is %d bytes, want %d", len(data), size)
	}
	return pixel.FromBytes(int(width), int(height), layout, data)
}
