package encoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNotPNG indicates data that does not start with the PNG signature.
var ErrNotPNG = errors.New("not a PNG file")

// ChunkInfo summarizes one chunk found by Inspect.
type ChunkInfo struct {
	Type   string
	Length int
	CRC    uint32
}

// Info is the header and chunk layout of a PNG file.
type Info struct {
	Width     int
	Height    int
	BitDepth  uint8
	ColorType uint8
	Interlace uint8
	Chunks    []ChunkInfo
}

// Count returns how many chunks of the given type the file carries.
func (i *Info) Count(typ string) int {
	n := 0
	for _, c := range i.Chunks {
		if c.Type == typ {
			n++
		}
	}
	return n
}

// IsRGBA8 reports whether the header describes a non-interlaced
// 8-bit truecolor-with-alpha image, the only layout EncodePNG writes.
func (i *Info) IsRGBA8() bool {
	return i.BitDepth == BitDepth8 && i.ColorType == ColorTypeRGBA && i.Interlace == InterlaceNone
}

// Inspect walks the chunk structure of a PNG file, checking the
// signature, every chunk CRC, that IHDR comes first and IEND last.
// Pixel data is not decompressed.
func Inspect(data []byte) (*Info, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, ErrNotPNG
	}
	r := bytes.NewReader(data[len(Signature):])
	info := &Info{}

	for {
		// Reject declared lengths that run past the end before allocating.
		if r.Len() >= 4 {
			var peek [4]byte
			if _, err := r.ReadAt(peek[:], r.Size()-int64(r.Len())); err == nil {
				if n := int64(binary.BigEndian.Uint32(peek[:])); n > int64(r.Len())-12 {
					return nil, fmt.Errorf("chunk %d: %w: length %d exceeds remaining data",
						len(info.Chunks), io.ErrUnexpectedEOF, n)
				}
			}
		}

		c, err := ReadChunk(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(info.Chunks), err)
		}
		typ := c.TypeString()

		if len(info.Chunks) == 0 {
			if typ != "IHDR" {
				return nil, fmt.Errorf("first chunk is %s, want IHDR", typ)
			}
			if len(c.Data) != 13 {
				return nil, fmt.Errorf("IHDR length %d, want 13", len(c.Data))
			}
			info.Width = int(binary.BigEndian.Uint32(c.Data[0:4]))
			info.Height = int(binary.BigEndian.Uint32(c.Data[4:8]))
			info.BitDepth = c.Data[8]
			info.ColorType = c.Data[9]
			info.Interlace = c.Data[12]
		} else if typ == "IHDR" {
			return nil, errors.New("duplicate IHDR chunk")
		}

		info.Chunks = append(info.Chunks, ChunkInfo{Type: typ, Length: len(c.Data), CRC: c.CRC()})

		if typ == "IEND" {
			if r.Len() != 0 {
				return nil, fmt.Errorf("%d trailing bytes after IEND", r.Len())
			}
			return info, nil
		}
	}
	return nil, fmt.Errorf("missing IEND chunk: %w", io.ErrUnexpectedEOF)
}
