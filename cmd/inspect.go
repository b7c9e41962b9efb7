package cmd

import (
	"fmt"
	"os"

	"github.com/AnyUserName/spritegen/internal/encoder"
	"github.com/AnyUserName/spritegen/internal/pipeline"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file_or_dir>",
	Short: "List the chunks of PNG files and verify their checksums",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	sources, err := pipeline.ScanPNGs(args[0])
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no PNG files found in %s", args[0])
	}
	logVerbose("found %d PNG files", len(sources))

	failed := 0
	for _, src := range sources {
		data, err := os.ReadFile(src.AbsPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", src.RelPath, err)
		}
		info, err := encoder.Inspect(data)
		if err != nil {
			failed++
			fmt.Printf("  %s %s: %v\n", failMark, src.RelPath, err)
			continue
		}
		fmt.Printf("  %s %s  %dx%d depth=%d color=%d interlace=%d  %s\n", okMark, src.RelPath,
			info.Width, info.Height, info.BitDepth, info.ColorType, info.Interlace, formatBytes(src.Size))
		if verbose {
			for _, c := range info.Chunks {
				fmt.Printf("      %s %8d  crc=%08x\n", c.Type, c.Length, c.CRC)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files are malformed", failed, len(sources))
	}
	return nil
}
