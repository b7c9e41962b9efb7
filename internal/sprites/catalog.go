package sprites

import (
	"path"
	"strings"

	"github.com/AnyUserName/spritegen/internal/canvas"
)

// Kind classifies a generated asset.
type Kind string

const (
	KindTerrain Kind = "terrain"
	KindItems   Kind = "items"
	KindEntity  Kind = "entity"
)

// Output directories, relative to the game directory.
const (
	TilesDir    = "resources/tiles"
	ItemsDir    = "resources/icons/items"
	EntitiesDir = "resources/sprites/entities"
)

// Spec is one asset the generator produces.
type Spec struct {
	// Key identifies the asset in the manifest (path without extension).
	Key string
	// Path is the output file, slash-separated and relative to the game directory.
	Path   string
	Kind   Kind
	Frames int
	// FrameWidth and FrameHeight are the size of one atlas cell or animation frame.
	FrameWidth  int
	FrameHeight int
	Render      func() (*canvas.Canvas, error)
}

// always wraps a generator that cannot fail.
func always(draw func() *canvas.Canvas) func() (*canvas.Canvas, error) {
	return func() (*canvas.Canvas, error) { return draw(), nil }
}

func newSpec(p string, kind Kind, frames, fw, fh int, render func() (*canvas.Canvas, error)) Spec {
	return Spec{
		Key:         strings.TrimSuffix(p, path.Ext(p)),
		Path:        p,
		Kind:        kind,
		Frames:      frames,
		FrameWidth:  fw,
		FrameHeight: fh,
		Render:      render,
	}
}

// Catalog returns every asset in generation order: terrain atlas, item
// atlas, miner body and head, then one entry per entity strip. Invalid
// strips are not rejected here; their Render returns the Validate error.
func Catalog(strips []Strip) []Spec {
	specs := []Spec{
		newSpec(path.Join(TilesDir, "terrain_atlas.png"), KindTerrain,
			TerrainTileCount, TerrainTileSize, TerrainTileSize, always(TerrainAtlas)),
		newSpec(path.Join(ItemsDir, "item_icon_atlas.png"), KindItems,
			ItemAtlasCols*ItemAtlasRows, ItemCellSize, ItemCellSize, always(ItemIconAtlas)),
		newSpec(path.Join(EntitiesDir, "miner_body.png"), KindEntity,
			1, MinerBodyWidth, MinerBodyHeight, always(MinerBody)),
		newSpec(path.Join(EntitiesDir, "miner_head.png"), KindEntity,
			MinerHeadFrames, MinerHeadSize, MinerHeadSize, always(MinerHead)),
	}
	for _, s := range strips {
		s := s
		specs = append(specs, newSpec(path.Join(EntitiesDir, s.Name), KindEntity,
			s.Frames, s.Width, s.Height, func() (*canvas.Canvas, error) {
				if err := s.Validate(); err != nil {
					return nil, err
				}
				return EntityStrip(s), nil
			}))
	}
	return specs
}
