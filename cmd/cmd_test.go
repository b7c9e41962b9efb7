package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/spritegen/internal/manifest"
)

// generateInto runs the generate command and returns the manifest path.
func generateInto(t *testing.T, args ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "game")
	rootCmd.SetArgs(append([]string{"generate", dir}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	return filepath.Join(dir, manifest.FileName)
}

func TestGenerateThenValidate(t *testing.T) {
	path := generateInto(t, "--profile", "preview")
	m, err := manifest.ReadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Stats.TotalAssets != 6 || m.Stats.TotalPreviews != 6 {
		t.Errorf("stats: %+v", m.Stats)
	}
	if errs := validateManifest(m, filepath.Dir(path)); len(errs) != 0 {
		t.Errorf("fresh output invalid:\n%s", strings.Join(errs, "\n"))
	}

	rootCmd.SetArgs([]string{"validate", path})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("validate command: %v", err)
	}
	rootCmd.SetArgs([]string{"stats", filepath.Dir(path)})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("stats command: %v", err)
	}
	rootCmd.SetArgs([]string{"inspect", filepath.Dir(path)})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("inspect command: %v", err)
	}
}

func TestValidate_DetectsDamage(t *testing.T) {
	path := generateInto(t, "--profile", "default")
	base := filepath.Dir(path)
	m, err := manifest.ReadJSON(path)
	if err != nil {
		t.Fatal(err)
	}

	// Flip one byte inside the terrain atlas IDAT payload.
	terrain := filepath.Join(base, "resources", "tiles", "terrain_atlas.png")
	data, err := os.ReadFile(terrain)
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)-20] ^= 0xff
	if err := os.WriteFile(terrain, data, 0o644); err != nil {
		t.Fatal(err)
	}
	// Remove another file outright.
	if err := os.Remove(filepath.Join(base, "resources", "sprites", "entities", "conveyor.png")); err != nil {
		t.Fatal(err)
	}

	errs := validateManifest(m, base)
	joined := strings.Join(errs, "\n")
	for _, want := range []string{"hash mismatch", "malformed PNG", "file not found"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}

	rootCmd.SetArgs([]string{"validate", path})
	if err := rootCmd.Execute(); err == nil {
		t.Error("validate command accepted damaged output")
	}
}

func TestValidate_ManifestConsistency(t *testing.T) {
	m := manifest.New("x")
	m.Version = 2
	m.Assets["a"] = manifest.Asset{Kind: "entity", Width: 30, Height: 16, Frames: 2, FrameWidth: 16, FrameHeight: 16}
	m.Stats.TotalAssets = 5

	joined := strings.Join(validateManifest(m, t.TempDir()), "\n")
	for _, want := range []string{"unsupported manifest version", "do not tile", "missing hash", "missing path", "total_assets mismatch", "total_frames mismatch"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestGenerate_BadStripsFile(t *testing.T) {
	strips := filepath.Join(t.TempDir(), "strips.yaml")
	if err := os.WriteFile(strips, []byte("entities: [{name: a.png, frames: 0}]"), 0o644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs([]string{"generate", t.TempDir(), "--strips", strips})
	defer func() { genStrips = "" }()
	if err := rootCmd.Execute(); err == nil {
		t.Error("invalid strips file accepted")
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{0: "0 B", 1023: "1023 B", 1536: "1.5 KB", 3 << 20: "3.0 MB"}
	for in, want := range cases {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d): got %q, want %q", in, got, want)
		}
	}
	if got := truncKey("abcdefghij", 6); got != "...hij" {
		t.Errorf("truncKey: got %q", got)
	}
}
