package pipeline

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/spritegen/internal/encoder"
	"github.com/AnyUserName/spritegen/internal/hasher"
	"github.com/AnyUserName/spritegen/internal/manifest"
	"github.com/AnyUserName/spritegen/internal/sprites"
)

// assetResult holds the outcome of generating one asset.
type assetResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// generateAsset renders one spec, encodes it to PNG and writes the file
// (and its preview, when preview is non-nil). Both outputs are encoded
// before anything is written; a failed asset leaves no file behind.
func generateAsset(s sprites.Spec, cfg Config, preview encoder.Encoder) assetResult {
	result := assetResult{key: s.Key}

	c, err := s.Render()
	if err != nil {
		result.err = fmt.Errorf("render %s: %w", s.Path, err)
		return result
	}
	data, err := encoder.EncodePNG(c.Width, c.Height, c.Pix)
	if err != nil {
		result.err = fmt.Errorf("encode %s: %w", s.Path, err)
		return result
	}

	var pdata []byte
	var prel string
	if preview != nil {
		pdata, err = preview.Encode(c.Scale(cfg.Profile.PreviewScale))
		if err != nil {
			result.err = fmt.Errorf("preview %s as %s: %w", s.Path, preview.Format(), err)
			return result
		}
		prel = path.Join(cfg.Profile.PreviewDir,
			strings.TrimSuffix(s.Path, path.Ext(s.Path))+"."+preview.Extension())
	}

	if err := writeFile(cfg.OutputDir, s.Path, data); err != nil {
		result.err = err
		return result
	}
	if preview != nil {
		if err := writeFile(cfg.OutputDir, prel, pdata); err != nil {
			os.Remove(filepath.Join(cfg.OutputDir, filepath.FromSlash(s.Path)))
			result.err = err
			return result
		}
	}

	avg := c.AverageColor()
	result.asset = manifest.Asset{
		Path:        s.Path,
		Kind:        string(s.Kind),
		Width:       c.Width,
		Height:      c.Height,
		Frames:      s.Frames,
		FrameWidth:  s.FrameWidth,
		FrameHeight: s.FrameHeight,
		Size:        int64(len(data)),
		Hash:        hasher.ContentHash(data, hasher.HexLen),
		HasAlpha:    c.HasAlpha(),
		AvgColor:    &avg,
	}
	if preview != nil {
		result.asset.Preview = &manifest.Preview{
			Format: preview.Format(),
			Scale:  cfg.Profile.PreviewScale,
			Path:   prel,
			Size:   int64(len(pdata)),
		}
	}

	return result
}

// writeFile writes data to the slash-separated rel path under dir,
// creating parent directories.
func writeFile(dir, rel string, data []byte) error {
	out := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
