package encoder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AnyUserName/spritegen/internal/canvas"
)

// PNGEncoder adapts EncodePNG to the Encoder interface.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }

func (e *PNGEncoder) Encode(c *canvas.Canvas) ([]byte, error) {
	return EncodePNG(c.Width, c.Height, c.Pix)
}

// Registry maps format names to encoders.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry holding every built-in encoder.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}
	for _, enc := range []Encoder{&PNGEncoder{}, &BMPEncoder{}} {
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Get returns the encoder for format, or an error naming the known formats.
func (r *Registry) Get(format string) (Encoder, error) {
	if enc, ok := r.encoders[strings.ToLower(format)]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("unknown format %q (%s)", format, r)
}

// Available returns all format names, sorted.
func (r *Registry) Available() []string {
	result := make([]string, 0, len(r.encoders))
	for f := range r.encoders {
		result = append(result, f)
	}
	sort.Strings(result)
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	return fmt.Sprintf("encoders: %s", strings.Join(r.Available(), ", "))
}
