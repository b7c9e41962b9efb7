package manifest

// FileName is the manifest written into the game directory.
const FileName = "spritegen.manifest.json"

// Manifest is the top-level output of a spritegen run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers  int      `json:"workers"`
	Encoders []string `json:"encoders,omitempty"`
}

// Asset describes one generated PNG.
type Asset struct {
	Path        string    `json:"path"` // relative to base_path
	Kind        string    `json:"kind"` // "terrain", "items", "entity"
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Frames      int       `json:"frames"`
	FrameWidth  int       `json:"frame_width"`
	FrameHeight int       `json:"frame_height"`
	Size        int64     `json:"size"` // bytes on disk
	Hash        string    `json:"hash"` // first 16 hex chars of xxhash64
	HasAlpha    bool      `json:"has_alpha"`
	AvgColor    *[3]uint8 `json:"avg_color,omitempty"`
	Preview     *Preview  `json:"preview,omitempty"`
}

// Preview is an enlarged copy of an asset for viewing.
type Preview struct {
	Format string `json:"format"`
	Scale  int    `json:"scale"`
	Path   string `json:"path"`
	Size   int64  `json:"size"`
}

// Stats aggregates build metrics.
type Stats struct {
	TotalAssets      int   `json:"total_assets"`
	TotalFrames      int   `json:"total_frames"`
	TotalRawBytes    int64 `json:"total_raw_bytes"` // uncompressed RGBA
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalPreviews    int   `json:"total_previews,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
