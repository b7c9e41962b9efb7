package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/spritegen/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <game_dir_or_manifest>",
	Short: "Display statistics for a generated asset directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	fmt.Printf("  Total frames:     %d\n", s.TotalFrames)
	fmt.Printf("  Raw RGBA:         %s\n", formatBytes(s.TotalRawBytes))
	fmt.Printf("  PNG size:         %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalRawBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalRawBytes) * 100
		fmt.Printf("  Compression:      %.1f%% of raw\n", ratio)
	}
	fmt.Println()

	// Per-kind breakdown.
	kindStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, a := range m.Assets {
		ks := kindStats[a.Kind]
		ks.count++
		ks.bytes += a.Size
		kindStats[a.Kind] = ks
	}
	kinds := make([]string, 0, len(kindStats))
	for k := range kindStats {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Println("  Kind breakdown:")
	for _, k := range kinds {
		ks := kindStats[k]
		fmt.Printf("    %-8s  %4d files  %s\n", k, ks.count, formatBytes(ks.bytes))
	}
	fmt.Println()

	keys := make([]string, 0, len(m.Assets))
	for k := range m.Assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("  Assets:")
	for _, k := range keys {
		a := m.Assets[k]
		alpha := ""
		if a.HasAlpha {
			alpha = "alpha"
		}
		fmt.Printf("    %-44s %4dx%-3d %2d × %dx%d  %-5s %s\n", truncKey(a.Path, 44),
			a.Width, a.Height, a.Frames, a.FrameWidth, a.FrameHeight, alpha, formatBytes(a.Size))
	}

	// Warnings.
	var warnings []string
	for _, k := range keys {
		a := m.Assets[k]
		if a.Hash == "" {
			warnings = append(warnings, fmt.Sprintf("asset %q missing hash", k))
		}
		if a.Frames == 0 {
			warnings = append(warnings, fmt.Sprintf("asset %q has no frames", k))
		}
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    %s %s\n", warnMark, w)
		}
	}
	fmt.Println()
}
