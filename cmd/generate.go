package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AnyUserName/spritegen/internal/manifest"
	"github.com/AnyUserName/spritegen/internal/pipeline"
	"github.com/AnyUserName/spritegen/internal/profile"
	"github.com/spf13/cobra"
)

var (
	genProfile string
	genWorkers int
	genStrips  string
)

var generateCmd = &cobra.Command{
	Use:   "generate [game_dir]",
	Short: "Draw all placeholder sprites and write them as PNG",
	Long: `Renders the terrain atlas, item icon atlas and entity sprite strips
into the game directory (default ./game):

  resources/tiles/terrain_atlas.png
  resources/icons/items/item_icon_atlas.png
  resources/sprites/entities/*.png

and writes ` + manifest.FileName + ` next to them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "default",
		"output profile ("+strings.Join(profile.Names(), ", ")+")")
	generateCmd.Flags().IntVarP(&genWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	generateCmd.Flags().StringVar(&genStrips, "strips", "", "YAML file with entity strip definitions")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gameDir := "./game"
	if len(args) == 1 {
		gameDir = args[0]
	}
	start := time.Now()

	absOutput, err := filepath.Abs(gameDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof := profile.Get(genProfile)
	strips, err := profile.LoadStrips(genStrips)
	if err != nil {
		return err
	}

	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (preview scale=%d, format=%q)", prof.Name, prof.PreviewScale, prof.PreviewFormat)
	logVerbose("strips:  %d", len(strips))

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		OutputDir: absOutput,
		Profile:   prof,
		Strips:    strips,
		Workers:   genWorkers,
		Verbose:   verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printGenerateReport(m, absOutput, time.Since(start))
	return nil
}

func printGenerateReport(m *manifest.Manifest, outDir string, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║            spritegen generate complete           ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	keys := make([]string, 0, len(m.Assets))
	for k := range m.Assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a := m.Assets[k]
		fmt.Printf("  %s %-48s %4dx%-3d %8s\n", okMark,
			truncKey(filepath.Join(outDir, filepath.FromSlash(a.Path)), 48),
			a.Width, a.Height, formatBytes(a.Size))
	}
	fmt.Println()

	s := m.Stats
	ratio := float64(0)
	if s.TotalRawBytes > 0 {
		ratio = float64(s.TotalOutputBytes) / float64(s.TotalRawBytes) * 100
	}
	fmt.Printf("  Assets:      %d (%d frames)\n", s.TotalAssets, s.TotalFrames)
	fmt.Printf("  Raw RGBA:    %s\n", formatBytes(s.TotalRawBytes))
	fmt.Printf("  PNG size:    %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.1f%% of raw\n", ratio)
	if s.TotalPreviews > 0 {
		fmt.Printf("  Previews:    %d\n", s.TotalPreviews)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Manifest:    %s\n", manifest.FileName)
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
