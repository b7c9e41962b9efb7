package sprites

import (
	"fmt"
	"image/color"

	"github.com/AnyUserName/spritegen/internal/canvas"
)

// Strip describes a horizontal animation strip of identical-size frames.
type Strip struct {
	Name   string // output file name, e.g. "conveyor.png"
	Frames int
	Width  int // frame width
	Height int // frame height
	Color  color.NRGBA
}

// Validate rejects geometry that cannot be drawn.
func (s Strip) Validate() error {
	if s.Frames < 1 || s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("strip %q: invalid geometry frames=%d size=%dx%d", s.Name, s.Frames, s.Width, s.Height)
	}
	return nil
}

// DefaultStrips are the generic entity strips generated when no strip
// file is configured.
var DefaultStrips = []Strip{
	{Name: "conveyor.png", Frames: 4, Width: 16, Height: 16, Color: rgb(89, 89, 102)},
	{Name: "item_entity.png", Frames: 1, Width: 16, Height: 16, Color: rgb(128, 128, 128)},
}

var (
	frameBorder = color.NRGBA{A: 60}
	animDot     = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
)

// EntityStrip draws s.Frames frames side by side: base fill, a two-pixel
// dot that moves three pixels per frame and a translucent border.
// Frames narrower than five pixels have no room for the dot.
// s must pass Validate.
func EntityStrip(s Strip) *canvas.Canvas {
	c := canvas.New(s.Frames*s.Width, s.Height)
	for f := 0; f < s.Frames; f++ {
		ox := f * s.Width
		c.FillFrame(f, s.Width, s.Height, s.Color)

		if s.Width > 4 {
			dotX := ox + 2 + (f*3)%(s.Width-4)
			dotY := s.Height / 2
			c.Set(dotX, dotY, animDot)
			c.Set(dotX+1, dotY, animDot)
		}

		for x := 0; x < s.Width; x++ {
			c.Set(ox+x, 0, frameBorder)
			c.Set(ox+x, s.Height-1, frameBorder)
		}
		for y := 0; y < s.Height; y++ {
			c.Set(ox, y, frameBorder)
			c.Set(ox+s.Width-1, y, frameBorder)
		}
	}
	return c
}

// Miner sprite geometry.
const (
	MinerBodyWidth  = 48
	MinerBodyHeight = 16
	MinerHeadFrames = 8
	MinerHeadSize   = 16
	// Frames from this index on show the mining animation; earlier ones idle.
	MinerMiningFrame = 4
)

// MinerBody draws the static three-tile chassis.
func MinerBody() *canvas.Canvas {
	c := canvas.New(MinerBodyWidth, MinerBodyHeight)
	c.FillRect(0, 0, 48, 16, rgb(51, 51, 51))

	// treads
	c.FillRect(1, 12, 46, 3, rgb(35, 35, 35))
	for x := 3; x < 46; x += 4 {
		c.Set(x, 13, rgb(70, 70, 70))
	}
	c.FillRect(2, 3, 44, 2, rgb(70, 70, 70))

	// drill housing at the front, engine block at the rear
	c.FillRect(38, 2, 8, 10, rgb(80, 80, 80))
	c.FillRect(44, 4, 3, 6, rgb(100, 100, 100))
	c.FillRect(2, 5, 8, 6, rgb(60, 60, 60))
	c.Cross(6, 8, gearHub)
	return c
}

// MinerHead draws the 8-frame head strip: frames 0-3 idle with a bobbing
// antenna, frames 4-7 mining with a jittering visor and sparks.
func MinerHead() *canvas.Canvas {
	const w, h = MinerHeadSize, MinerHeadSize
	c := canvas.New(MinerHeadFrames*w, h)

	for f := 0; f < MinerHeadFrames; f++ {
		ox := f * w
		mining := f >= MinerMiningFrame

		head := rgb(55, 55, 65)
		if mining {
			head = rgb(60, 60, 70)
		}
		c.FillRect(ox+2, 2, 12, 12, head)

		eyeY := 5
		if mining {
			eyeY += f % 2
		}
		c.FillRect(ox+4, eyeY, 8, 3, rgb(100, 200, 255))

		antennaTop := 1
		if !mining && f%2 == 0 {
			antennaTop = 0
		}
		c.Set(ox+7, antennaTop, rgb(255, 100, 100))
		c.Set(ox+7, antennaTop+1, rgb(200, 200, 200))

		if mining {
			k := f - MinerMiningFrame
			sparkX := ox + 10 + (k*2)%5
			sparkY := 10 + k%3
			if sparkX < ox+w && sparkY < h {
				c.Set(sparkX, sparkY, rgb(255, 230, 50))
			}
		}
	}
	return c
}
