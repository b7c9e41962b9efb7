package encoder

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"io"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func randomPixels(seed int64, w, h int) []byte {
	pix := make([]byte, w*h*4)
	rand.New(rand.NewSource(seed)).Read(pix)
	return pix
}

// checkerAlpha alternates fully transparent and fully opaque pixels.
func checkerAlpha(w, h int) []byte {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = uint8(x * 17)
			pix[i+1] = uint8(y * 31)
			pix[i+2] = 0x80
			if (x+y)%2 == 0 {
				pix[i+3] = 0xff
			}
		}
	}
	return pix
}

// splitChunks parses an encoded file without going through Inspect.
func splitChunks(t *testing.T, data []byte) []Chunk {
	t.Helper()
	if !bytes.HasPrefix(data, Signature[:]) {
		t.Fatalf("missing signature: % x", data[:8])
	}
	r := bytes.NewReader(data[8:])
	var chunks []Chunk
	for {
		c, err := ReadChunk(r)
		if err == io.EOF {
			return chunks
		}
		if err != nil {
			t.Fatalf("chunk %d: %v", len(chunks), err)
		}
		chunks = append(chunks, c)
	}
}

// unfilter decompresses the IDAT payload and strips the filter bytes.
func unfilter(t *testing.T, idat []byte, w, h int) []byte {
	t.Helper()
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		t.Fatalf("zlib: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	stride := 1 + w*4
	if len(raw) != h*stride {
		t.Fatalf("raw len: got %d, want %d", len(raw), h*stride)
	}
	pix := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := raw[y*stride : (y+1)*stride]
		if row[0] != 0 {
			t.Fatalf("row %d filter: got %d, want 0", y, row[0])
		}
		pix = append(pix, row[1:]...)
	}
	return pix
}

func TestEncodePNG_Structure(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 7}, {240, 16}, {128, 64}} {
		w, h := sz[0], sz[1]
		data, err := EncodePNG(w, h, randomPixels(int64(w*h), w, h))
		if err != nil {
			t.Fatalf("%dx%d: %v", w, h, err)
		}

		chunks := splitChunks(t, data)
		var types []string
		for _, c := range chunks {
			types = append(types, c.TypeString())
		}
		if diff := cmp.Diff([]string{"IHDR", "IDAT", "IEND"}, types); diff != "" {
			t.Fatalf("%dx%d chunk order (-want +got):\n%s", w, h, diff)
		}

		hdr := chunks[0].Data
		if len(hdr) != 13 {
			t.Fatalf("IHDR len: got %d", len(hdr))
		}
		if gw, gh := binary.BigEndian.Uint32(hdr[0:4]), binary.BigEndian.Uint32(hdr[4:8]); gw != uint32(w) || gh != uint32(h) {
			t.Errorf("IHDR size: got %dx%d, want %dx%d", gw, gh, w, h)
		}
		if diff := cmp.Diff([]byte{8, 6, 0, 0, 0}, hdr[8:]); diff != "" {
			t.Errorf("IHDR fields (-want +got):\n%s", diff)
		}
		if n := len(chunks[2].Data); n != 0 {
			t.Errorf("IEND payload: got %d bytes", n)
		}
		if !bytes.HasSuffix(data, []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}) {
			t.Errorf("file does not end with the canonical IEND chunk")
		}
	}
}

func TestEncodePNG_PixelRoundtrip(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		pix  []byte
	}{
		{"1x1", 1, 1, []byte{12, 34, 56, 78}},
		{"terrain_240x16", 240, 16, randomPixels(240, 240, 16)},
		{"alpha_checker", 9, 5, checkerAlpha(9, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orig := append([]byte(nil), tc.pix...)
			data, err := EncodePNG(tc.w, tc.h, tc.pix)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !bytes.Equal(orig, tc.pix) {
				t.Fatal("encoder modified the input buffer")
			}

			chunks := splitChunks(t, data)
			got := unfilter(t, chunks[1].Data, tc.w, tc.h)
			if !bytes.Equal(got, tc.pix) {
				t.Errorf("pixels differ after inflate")
			}
		})
	}
}

// image/png must accept the output and see the same non-premultiplied pixels.
func TestEncodePNG_DecodesWithImagePNG(t *testing.T) {
	w, h := 9, 5
	pix := checkerAlpha(w, h)
	data, err := EncodePNG(w, h, pix)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded type %T, want *image.NRGBA", img)
	}
	if nrgba.Bounds() != image.Rect(0, 0, w, h) {
		t.Fatalf("bounds: got %v", nrgba.Bounds())
	}
	if !bytes.Equal(nrgba.Pix, pix) {
		t.Error("decoded pixels differ")
	}
}

func TestEncodePNG_Deterministic(t *testing.T) {
	pix := randomPixels(7, 32, 32)
	a, err := EncodePNG(32, 32, pix)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodePNG(32, 32, pix)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodings of the same buffer differ")
	}
}

func TestEncodePNG_BufferMismatch(t *testing.T) {
	cases := []struct {
		w, h, n int
	}{
		{4, 4, 4*4*4 - 1},
		{4, 4, 4*4*4 + 4},
		{240, 16, 0},
	}
	for _, tc := range cases {
		data, err := EncodePNG(tc.w, tc.h, make([]byte, tc.n))
		if !errors.Is(err, ErrPixelBufferSize) {
			t.Errorf("%dx%d with %d bytes: got %v, want ErrPixelBufferSize", tc.w, tc.h, tc.n, err)
		}
		if data != nil {
			t.Errorf("%dx%d with %d bytes: partial output returned", tc.w, tc.h, tc.n)
		}
	}
}

func TestEncodePNG_InvalidDimensions(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-1, 4}, {-3, -3}} {
		if _, err := EncodePNG(sz[0], sz[1], nil); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%dx%d: got %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}
}

func TestEncodePNG_Concurrent(t *testing.T) {
	pix := randomPixels(3, 16, 16)
	want, err := EncodePNG(16, 16, pix)
	if err != nil {
		t.Fatal(err)
	}
	errc := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := EncodePNG(16, 16, pix)
			if err == nil && !bytes.Equal(got, want) {
				err = errors.New("concurrent output differs")
			}
			errc <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-errc; err != nil {
			t.Error(err)
		}
	}
}

func BenchmarkEncodePNG_Terrain(b *testing.B) {
	pix := randomPixels(1, 240, 16)
	b.SetBytes(int64(len(pix)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodePNG(240, 16, pix); err != nil {
			b.Fatal(err)
		}
	}
}
