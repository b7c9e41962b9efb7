package encoder

import "github.com/AnyUserName/spritegen/internal/canvas"

// Encoder writes a canvas in one file format.
type Encoder interface {
	// Format returns the format name ("png", "bmp").
	Format() string

	// Extension returns the file extension without dot.
	Extension() string

	// Encode serializes the canvas. The canvas is not modified.
	Encode(c *canvas.Canvas) ([]byte, error)
}
