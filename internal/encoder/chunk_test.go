package encoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFrameChunk_Layout(t *testing.T) {
	got, err := FrameChunk("IEND", nil)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if !bytes.Equal(got, want) {
		t.Errorf("IEND: got % x, want % x", got, want)
	}

	payload := []byte{1, 2, 3}
	got, err = FrameChunk("tEXt", payload)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if n := binary.BigEndian.Uint32(got[:4]); n != 3 {
		t.Errorf("length field: got %d, want 3", n)
	}
	if crc := binary.BigEndian.Uint32(got[len(got)-4:]); crc != CRC32(append([]byte("tEXt"), payload...)) {
		t.Errorf("crc field %08x does not cover type+payload", crc)
	}
}

func TestChunk_Roundtrip(t *testing.T) {
	payloads := map[string][]byte{
		"IEND": {},
		"IHDR": ihdr(240, 16),
		"IDAT": bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 1000),
		"abCD": {0},
	}
	for typ, data := range payloads {
		raw, err := FrameChunk(typ, data)
		if err != nil {
			t.Fatalf("%s: frame: %v", typ, err)
		}
		c, err := ReadChunk(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("%s: read: %v", typ, err)
		}
		if c.TypeString() != typ {
			t.Errorf("type: got %q, want %q", c.TypeString(), typ)
		}
		if diff := cmp.Diff(data, c.Data, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s payload (-want +got):\n%s", typ, diff)
		}
	}
}

func TestReadChunk_Sequence(t *testing.T) {
	var buf bytes.Buffer
	for _, typ := range []string{"IHDR", "IDAT", "IEND"} {
		raw, err := FrameChunk(typ, []byte(typ))
		if err != nil {
			t.Fatal(err)
		}
		buf.Write(raw)
	}
	var types []string
	for {
		c, err := ReadChunk(&buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		types = append(types, c.TypeString())
	}
	if diff := cmp.Diff([]string{"IHDR", "IDAT", "IEND"}, types); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
}

func TestReadChunk_Corrupt(t *testing.T) {
	raw, err := FrameChunk("IDAT", []byte("pixels"))
	if err != nil {
		t.Fatal(err)
	}

	flipped := append([]byte(nil), raw...)
	flipped[9] ^= 0x01
	if _, err := ReadChunk(bytes.NewReader(flipped)); !errors.Is(err, ErrChecksum) {
		t.Errorf("flipped payload: got %v, want ErrChecksum", err)
	}

	if _, err := ReadChunk(bytes.NewReader(raw[:len(raw)-2])); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated crc: got %v, want ErrUnexpectedEOF", err)
	}
	if _, err := ReadChunk(bytes.NewReader(raw[:5])); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated header: got %v, want ErrUnexpectedEOF", err)
	}
}

func TestNewChunk_InvalidType(t *testing.T) {
	for _, typ := range []string{"", "IHD", "IHDRX", "IH1R", "IH R"} {
		if _, err := NewChunk(typ, nil); !errors.Is(err, ErrChunkType) {
			t.Errorf("%q: got %v, want ErrChunkType", typ, err)
		}
	}
}

func TestCheckChunkLength(t *testing.T) {
	if err := checkChunkLength(MaxChunkLength); err != nil {
		t.Errorf("max length rejected: %v", err)
	}
	for _, n := range []uint64{MaxChunkLength + 1, 1 << 32, 1<<32 + 5} {
		if err := checkChunkLength(n); !errors.Is(err, ErrChunkTooLarge) {
			t.Errorf("%d: got %v, want ErrChunkTooLarge", n, err)
		}
	}
}
