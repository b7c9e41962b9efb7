package profile

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path"
	"strings"

	"github.com/AnyUserName/spritegen/internal/sprites"
	"gopkg.in/yaml.v3"
)

// StripFile is the YAML layout of a custom entity strip table:
//
//	entities:
//	  - name: conveyor.png
//	    frames: 4
//	    width: 16
//	    height: 16
//	    color: [89, 89, 102]
type StripFile struct {
	Entities []StripEntry `yaml:"entities"`
}

// StripEntry is one strip in a StripFile. Color holds 3 (opaque) or 4 components.
type StripEntry struct {
	Name   string `yaml:"name"`
	Frames int    `yaml:"frames"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  []int  `yaml:"color"`
}

// LoadStrips reads a strip file. An empty path returns the built-in strips.
func LoadStrips(file string) ([]sprites.Strip, error) {
	if file == "" {
		return append([]sprites.Strip(nil), sprites.DefaultStrips...), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read strips: %w", err)
	}
	strips, err := ParseStrips(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return strips, nil
}

// ParseStrips decodes and validates a YAML strip table.
func ParseStrips(data []byte) ([]sprites.Strip, error) {
	var f StripFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse strips: %w", err)
	}
	if len(f.Entities) == 0 {
		return nil, errors.New("no entities defined")
	}

	// The miner sprites share the entity directory.
	seen := map[string]bool{"miner_body.png": true, "miner_head.png": true}
	strips := make([]sprites.Strip, 0, len(f.Entities))
	for i, e := range f.Entities {
		s, err := e.toStrip()
		if err != nil {
			return nil, fmt.Errorf("entities[%d]: %w", i, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("entities[%d]: name %q already in use", i, s.Name)
		}
		seen[s.Name] = true
		strips = append(strips, s)
	}
	return strips, nil
}

func (e StripEntry) toStrip() (sprites.Strip, error) {
	var s sprites.Strip
	if e.Name == "" || path.Ext(e.Name) != ".png" || strings.ContainsAny(e.Name, `/\`) || e.Name == ".png" {
		return s, fmt.Errorf("name %q must be a bare *.png file name", e.Name)
	}
	// The animation dot needs at least one free column: width-4 > 0.
	if e.Frames < 1 || e.Width < 5 || e.Height < 1 {
		return s, fmt.Errorf("%s: invalid geometry frames=%d size=%dx%d (need frames>=1, width>=5, height>=1)",
			e.Name, e.Frames, e.Width, e.Height)
	}
	if len(e.Color) != 3 && len(e.Color) != 4 {
		return s, fmt.Errorf("%s: color needs 3 or 4 components, got %d", e.Name, len(e.Color))
	}
	rgba := [4]uint8{0, 0, 0, 255}
	for i, v := range e.Color {
		if v < 0 || v > 255 {
			return s, fmt.Errorf("%s: color component %d out of range: %d", e.Name, i, v)
		}
		rgba[i] = uint8(v)
	}
	return sprites.Strip{
		Name:   e.Name,
		Frames: e.Frames,
		Width:  e.Width,
		Height: e.Height,
		Color:  color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]},
	}, nil
}
