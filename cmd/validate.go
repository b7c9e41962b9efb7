package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/spritegen/internal/encoder"
	"github.com/AnyUserName/spritegen/internal/hasher"
	"github.com/AnyUserName/spritegen/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a spritegen manifest and the PNG files it references",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(m.BasePath))
	errors := validateManifest(m, baseDir)

	if len(errors) == 0 {
		fmt.Printf("  %s Manifest is valid\n", okMark)
		fmt.Printf("  %s %d assets, %d frames — all files present and well-formed\n",
			okMark, m.Stats.TotalAssets, m.Stats.TotalFrames)
		return nil
	}

	fmt.Printf("  %s Manifest has %d error(s):\n", failMark, len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	keys := make([]string, 0, len(m.Assets))
	for k := range m.Assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seenPaths := map[string]string{}
	for _, key := range keys {
		a := m.Assets[key]

		if a.Width <= 0 || a.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid dimensions %dx%d", key, a.Width, a.Height))
		}
		if a.Frames <= 0 || a.FrameWidth <= 0 || a.FrameHeight <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid frame geometry %d×%dx%d",
				key, a.Frames, a.FrameWidth, a.FrameHeight))
		} else if a.Kind == "entity" && (a.Frames*a.FrameWidth != a.Width || a.FrameHeight != a.Height) {
			errs = append(errs, fmt.Sprintf("asset %q: %d frames of %dx%d do not tile %dx%d",
				key, a.Frames, a.FrameWidth, a.FrameHeight, a.Width, a.Height))
		}
		if a.Hash == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing hash", key))
		}
		if a.Path == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing path", key))
			continue
		}
		if other, dup := seenPaths[a.Path]; dup {
			errs = append(errs, fmt.Sprintf("asset %q: path %q also used by %q", key, a.Path, other))
		}
		seenPaths[a.Path] = key

		errs = append(errs, validateFile(key, a, baseDir)...)

		if a.Preview != nil {
			if _, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(a.Preview.Path))); err != nil {
				errs = append(errs, fmt.Sprintf("asset %q: preview not found: %s", key, a.Preview.Path))
			}
		}
	}

	// Verify stats consistency.
	frames := 0
	for _, a := range m.Assets {
		frames += a.Frames
	}
	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}
	if m.Stats.TotalFrames != frames {
		errs = append(errs, fmt.Sprintf("stats.total_frames mismatch: %d != %d", m.Stats.TotalFrames, frames))
	}

	return errs
}

// validateFile checks one PNG against its manifest entry.
func validateFile(key string, a manifest.Asset, baseDir string) []string {
	fullPath := filepath.Join(baseDir, filepath.FromSlash(a.Path))
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return []string{fmt.Sprintf("asset %q: file not found: %s", key, a.Path)}
	}

	var errs []string
	if a.Size > 0 && int64(len(data)) != a.Size {
		errs = append(errs, fmt.Sprintf("asset %q: size mismatch: manifest=%d, disk=%d", key, a.Size, len(data)))
	}
	if h := hasher.ContentHash(data, hasher.HexLen); a.Hash != "" && h != a.Hash {
		errs = append(errs, fmt.Sprintf("asset %q: hash mismatch: manifest=%s, disk=%s", key, a.Hash, h))
	}

	info, err := encoder.Inspect(data)
	if err != nil {
		return append(errs, fmt.Sprintf("asset %q: malformed PNG: %v", key, err))
	}
	if info.Width != a.Width || info.Height != a.Height {
		errs = append(errs, fmt.Sprintf("asset %q: IHDR %dx%d, manifest %dx%d",
			key, info.Width, info.Height, a.Width, a.Height))
	}
	if !info.IsRGBA8() {
		errs = append(errs, fmt.Sprintf("asset %q: not 8-bit RGBA non-interlaced (depth=%d color=%d interlace=%d)",
			key, info.BitDepth, info.ColorType, info.Interlace))
	}
	if info.Count("IDAT") != 1 || len(info.Chunks) != 3 {
		errs = append(errs, fmt.Sprintf("asset %q: unexpected chunk layout (%d chunks, %d IDAT)",
			key, len(info.Chunks), info.Count("IDAT")))
	}
	return errs
}
