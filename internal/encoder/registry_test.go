package encoder

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/AnyUserName/spritegen/internal/canvas"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
)

func TestRegistry_Formats(t *testing.T) {
	r := NewRegistry()
	if diff := cmp.Diff([]string{"bmp", "png"}, r.Available()); diff != "" {
		t.Errorf("available (-want +got):\n%s", diff)
	}
	if _, err := r.Get("PNG"); err != nil {
		t.Errorf("case-insensitive lookup: %v", err)
	}
	if _, err := r.Get("webp"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestRegistry_EncodersAgreeOnPixels(t *testing.T) {
	c := canvas.New(4, 3)
	c.FillRect(0, 0, 4, 3, color.NRGBA{0, 0, 0, 255})
	c.FillRect(1, 1, 2, 1, color.NRGBA{200, 100, 50, 255})

	r := NewRegistry()
	pngEnc, _ := r.Get("png")
	data, err := pngEnc.Encode(c)
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if info, err := Inspect(data); err != nil || info.Width != 4 || info.Height != 3 {
		t.Errorf("png inspect: %+v, %v", info, err)
	}

	bmpEnc, _ := r.Get("bmp")
	data, err = bmpEnc.Encode(c)
	if err != nil {
		t.Fatalf("bmp: %v", err)
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("bmp decode: %v", err)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("bmp pixel (1,1): got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
