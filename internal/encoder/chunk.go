package encoder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxChunkLength is the largest payload a chunk length field may declare.
const MaxChunkLength = 1<<31 - 1

var (
	// ErrChunkType indicates a chunk type tag that is not four ASCII letters.
	ErrChunkType = errors.New("invalid chunk type")
	// ErrChunkTooLarge indicates a payload that does not fit the length field.
	ErrChunkTooLarge = errors.New("chunk payload too large")
	// ErrChecksum indicates a chunk whose stored CRC does not match its contents.
	ErrChecksum = errors.New("chunk checksum mismatch")
)

// Chunk is one length-prefixed, CRC-protected PNG record.
// Build it with NewChunk and serialize it; it is not modified afterwards.
type Chunk struct {
	Type [4]byte
	Data []byte
}

// NewChunk validates the type tag and payload size and returns the chunk.
// Data is referenced, not copied.
func NewChunk(typ string, data []byte) (Chunk, error) {
	var c Chunk
	if len(typ) != 4 {
		return c, fmt.Errorf("%w: %q", ErrChunkType, typ)
	}
	for i := 0; i < 4; i++ {
		if !isLetter(typ[i]) {
			return c, fmt.Errorf("%w: %q", ErrChunkType, typ)
		}
		c.Type[i] = typ[i]
	}
	if err := checkChunkLength(uint64(len(data))); err != nil {
		return c, fmt.Errorf("chunk %s: %w", typ, err)
	}
	c.Data = data
	return c, nil
}

func isLetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

func checkChunkLength(n uint64) error {
	if n > MaxChunkLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrChunkTooLarge, n, uint64(MaxChunkLength))
	}
	return nil
}

// TypeString returns the four-letter type tag.
func (c Chunk) TypeString() string { return string(c.Type[:]) }

// CRC returns the checksum stored after the payload: CRC-32 over type ∥ data.
func (c Chunk) CRC() uint32 {
	return UpdateCRC32(CRC32(c.Type[:]), c.Data)
}

// Len is the serialized size: length + type + data + CRC.
func (c Chunk) Len() int { return 12 + len(c.Data) }

// AppendTo appends the serialized chunk to buf.
func (c Chunk) AppendTo(buf []byte) ([]byte, error) {
	if err := checkChunkLength(uint64(len(c.Data))); err != nil {
		return buf, err
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(c.Data)))
	buf = append(buf, c.Type[:]...)
	buf = append(buf, c.Data...)
	buf = binary.BigEndian.AppendUint32(buf, c.CRC())
	return buf, nil
}

// Bytes returns the serialized chunk.
func (c Chunk) Bytes() ([]byte, error) {
	return c.AppendTo(make([]byte, 0, c.Len()))
}

// FrameChunk frames data as a chunk of the given type.
func FrameChunk(typ string, data []byte) ([]byte, error) {
	c, err := NewChunk(typ, data)
	if err != nil {
		return nil, err
	}
	return c.Bytes()
}

// ReadChunk reads one chunk from r and verifies its checksum.
// io.EOF is returned unchanged when r is exhausted before the first byte.
func ReadChunk(r io.Reader) (Chunk, error) {
	var c Chunk
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return c, fmt.Errorf("read chunk header: %w", err)
		}
		return c, err
	}
	n := binary.BigEndian.Uint32(hdr[:4])
	if err := checkChunkLength(uint64(n)); err != nil {
		return c, err
	}
	copy(c.Type[:], hdr[4:8])
	for _, b := range c.Type {
		if !isLetter(b) {
			return c, fmt.Errorf("%w: %q", ErrChunkType, c.Type[:])
		}
	}

	c.Data = make([]byte, n)
	if _, err := io.ReadFull(r, c.Data); err != nil {
		return c, fmt.Errorf("read %s payload: %w", c.TypeString(), noEOF(err))
	}
	var tail [4]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return c, fmt.Errorf("read %s crc: %w", c.TypeString(), noEOF(err))
	}
	if got, want := binary.BigEndian.Uint32(tail[:]), c.CRC(); got != want {
		return c, fmt.Errorf("%w: %s stored %08x, computed %08x", ErrChecksum, c.TypeString(), got, want)
	}
	return c, nil
}

// noEOF turns a clean EOF in the middle of a chunk into ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
