package encoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/zlib"
)

// Signature is the fixed 8-byte header of every PNG file.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// IHDR field values written by EncodePNG.
const (
	BitDepth8          = 8
	ColorTypeRGBA      = 6
	CompressionDeflate = 0
	FilterAdaptive     = 0
	InterlaceNone      = 0

	filterNone = 0
)

var (
	// ErrInvalidDimensions indicates a width or height that is not positive
	// or does not fit the IHDR fields.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrPixelBufferSize indicates a pixel buffer whose length is not width*height*4.
	ErrPixelBufferSize = errors.New("pixel buffer size mismatch")
)

// EncodePNG encodes a row-major RGBA buffer (four bytes per pixel,
// non-premultiplied) as an 8-bit truecolor-with-alpha PNG.
//
// The output is the signature followed by exactly one IHDR, one IDAT and
// one IEND chunk. Every scanline uses filter type None and the whole
// scanline buffer is compressed as a single zlib stream at the default
// level. pix is only read. On error no output is returned.
func EncodePNG(width, height int, pix []byte) ([]byte, error) {
	rowLen, err := checkBuffer(width, height, len(pix))
	if err != nil {
		return nil, err
	}

	raw := scanlines(width, height, rowLen, pix)

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress scanlines: %w", err)
	}

	chunks := make([]Chunk, 0, 3)
	for _, c := range []struct {
		typ  string
		data []byte
	}{
		{"IHDR", ihdr(width, height)},
		{"IDAT", idat.Bytes()},
		{"IEND", nil},
	} {
		ch, err := NewChunk(c.typ, c.data)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, ch)
	}

	size := len(Signature)
	for _, ch := range chunks {
		size += ch.Len()
	}
	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, ch := range chunks {
		if out, err = ch.AppendTo(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkBuffer validates the dimensions against the buffer length and
// returns the byte length of one pixel row.
func checkBuffer(width, height, n int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if uint64(width) > math.MaxInt32 || uint64(height) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidDimensions, width, height, math.MaxInt32)
	}
	// Scanlines carry one extra filter byte per row.
	if uint64(width)*4+1 > uint64(math.MaxInt)/uint64(height) {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	rowLen := width * 4
	if want := rowLen * height; n != want {
		return 0, fmt.Errorf("%w: got %d bytes, want %d (%dx%dx4)", ErrPixelBufferSize, n, want, width, height)
	}
	return rowLen, nil
}

// scanlines copies pix into a new buffer with a filter byte before each row.
func scanlines(width, height, rowLen int, pix []byte) []byte {
	stride := rowLen + 1
	raw := make([]byte, height*stride)
	for y := 0; y < height; y++ {
		dst := raw[y*stride:]
		dst[0] = filterNone
		copy(dst[1:stride], pix[y*rowLen:(y+1)*rowLen])
	}
	return raw
}

func ihdr(width, height int) []byte {
	b := make([]byte, 13)
	binary.BigEndian.PutUint32(b[0:4], uint32(width))
	binary.BigEndian.PutUint32(b[4:8], uint32(height))
	b[8] = BitDepth8
	b[9] = ColorTypeRGBA
	b[10] = CompressionDeflate
	b[11] = FilterAdaptive
	b[12] = InterlaceNone
	return b
}
