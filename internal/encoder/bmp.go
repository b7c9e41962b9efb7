package encoder

import (
	"bytes"

	"github.com/AnyUserName/spritegen/internal/canvas"
	"golang.org/x/image/bmp"
)

// BMPEncoder writes 32-bit BMP files. Only used for preview output,
// for tools that cannot open PNG.
type BMPEncoder struct{}

func (e *BMPEncoder) Format() string    { return "bmp" }
func (e *BMPEncoder) Extension() string { return "bmp" }

func (e *BMPEncoder) Encode(c *canvas.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(54 + len(c.Pix))
	if err := bmp.Encode(&buf, c.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
