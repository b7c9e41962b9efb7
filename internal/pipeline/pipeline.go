package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/spritegen/internal/encoder"
	"github.com/AnyUserName/spritegen/internal/manifest"
	"github.com/AnyUserName/spritegen/internal/profile"
	"github.com/AnyUserName/spritegen/internal/sprites"
)

// Config holds all parameters for a generate run.
type Config struct {
	OutputDir string // game directory; asset paths are relative to it
	Profile   profile.Profile
	Strips    []sprites.Strip
	Workers   int
	Verbose   bool
}

// Pipeline renders, encodes and writes every catalog asset.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[spritegen] "+format+"\n", args...)
	}
}

// Run generates all assets and returns the manifest describing them.
// A failing asset does not stop the others; Run fails only when every
// asset failed.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	p.logf("%s", p.registry)

	var preview encoder.Encoder
	if p.cfg.Profile.Previews() {
		enc, err := p.registry.Get(p.cfg.Profile.PreviewFormat)
		if err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
		preview = enc
	}

	specs := sprites.Catalog(p.cfg.Strips)
	p.logf("generating %d assets with %d workers", len(specs), p.cfg.Workers)

	// Render and encode in parallel; results keep catalog order.
	results := make([]assetResult, len(specs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, spec := range specs {
		wg.Add(1)
		go func(idx int, s sprites.Spec) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = generateAsset(s, p.cfg, preview)

			if results[idx].err == nil {
				p.logf("wrote %s (%dx%d, %d bytes)", s.Path,
					results[idx].asset.Width, results[idx].asset.Height, results[idx].asset.Size)
			}
		}(i, spec)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Profile.Name)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	// Report errors but don't fail the entire run for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[spritegen] error: %v\n", e)
		}
		if len(errs) == len(specs) {
			return nil, fmt.Errorf("all %d assets failed", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[spritegen] warning: %d of %d assets had errors\n",
			len(errs), len(specs))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:  p.cfg.Workers,
		Encoders: p.registry.Available(),
	}
	m.ComputeStats()
	return m, nil
}
