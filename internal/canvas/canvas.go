// Package canvas holds the RGBA pixel buffers the sprite generators draw
// into and the encoder reads from.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Canvas is a row-major, non-premultiplied RGBA buffer of Width*Height*4
// bytes. A new canvas is fully transparent.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a transparent canvas. It panics on a negative size;
// callers building from external input validate first.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: negative size %dx%d", width, height))
	}
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FromImage copies any image into a new canvas.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	draw.Draw(c.Image(), c.Image().Bounds(), img, b.Min, draw.Src)
	return c
}

// Image returns an *image.NRGBA sharing the canvas pixels.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}

func (c *Canvas) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0, false
	}
	return (y*c.Width + x) * 4, true
}

// Set writes one pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = col.A
}

// At reads one pixel; outside the canvas it is transparent black.
func (c *Canvas) At(x, y int) color.NRGBA {
	i, ok := c.offset(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: c.Pix[i+3]}
}

// FillRect paints the w×h rectangle at (x0, y0), clipped to the canvas.
func (c *Canvas) FillRect(x0, y0, w, h int, col color.NRGBA) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			c.Set(x, y, col)
		}
	}
}

// FillFrame paints frame number idx of a horizontal strip of frameW×frameH frames.
func (c *Canvas) FillFrame(idx, frameW, frameH int, col color.NRGBA) {
	c.FillRect(idx*frameW, 0, frameW, frameH, col)
}

// Cross draws a five-pixel plus sign centred on (cx, cy).
func (c *Canvas) Cross(cx, cy int, col color.NRGBA) {
	c.Set(cx, cy, col)
	c.Set(cx-1, cy, col)
	c.Set(cx+1, cy, col)
	c.Set(cx, cy-1, col)
	c.Set(cx, cy+1, col)
}

// HasAlpha reports whether any pixel is not fully opaque.
func (c *Canvas) HasAlpha() bool {
	for i := 3; i < len(c.Pix); i += 4 {
		if c.Pix[i] != 0xff {
			return true
		}
	}
	return false
}

// AverageColor is the mean RGB of the pixels that are not fully transparent.
func (c *Canvas) AverageColor() [3]uint8 {
	var r, g, b, n uint64
	for i := 0; i+3 < len(c.Pix); i += 4 {
		if c.Pix[i+3] == 0 {
			continue
		}
		r += uint64(c.Pix[i])
		g += uint64(c.Pix[i+1])
		b += uint64(c.Pix[i+2])
		n++
	}
	if n == 0 {
		return [3]uint8{}
	}
	return [3]uint8{uint8(r / n), uint8(g / n), uint8(b / n)}
}

// Scale returns a copy enlarged by factor with nearest-neighbour sampling,
// which keeps pixel art edges hard.
func (c *Canvas) Scale(factor int) *Canvas {
	if factor <= 1 {
		dup := New(c.Width, c.Height)
		copy(dup.Pix, c.Pix)
		return dup
	}
	return FromImage(imaging.Resize(c.Image(), c.Width*factor, c.Height*factor, imaging.NearestNeighbor))
}
