// Package sprites draws the placeholder terrain, item and entity artwork.
package sprites

import (
	"image/color"

	"github.com/AnyUserName/spritegen/internal/canvas"
)

// Terrain atlas geometry: one row of TerrainTileCount tiles, indexed by block type.
const (
	TerrainTileCount = 15
	TerrainTileSize  = 16
)

// Block types, in atlas order.
const (
	BlockAir = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockWood
	BlockLeaves
	BlockSand
	BlockWater
	BlockCoalOre
	BlockIronOre
	BlockGoldOre
	BlockDiamondOre
	BlockCobblestone
	BlockPlanks
	BlockBedrock
)

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 255} }

// TerrainColors is the base colour of each block type.
var TerrainColors = [TerrainTileCount]color.NRGBA{
	BlockAir:         {},
	BlockGrass:       rgb(76, 153, 51),
	BlockDirt:        rgb(140, 90, 46),
	BlockStone:       rgb(128, 128, 128),
	BlockWood:        rgb(140, 90, 13),
	BlockLeaves:      rgb(51, 140, 38),
	BlockSand:        rgb(217, 204, 140),
	BlockWater:       {R: 51, G: 102, B: 204, A: 180},
	BlockCoalOre:     rgb(64, 64, 64),
	BlockIronOre:     rgb(179, 140, 115),
	BlockGoldOre:     rgb(217, 191, 51),
	BlockDiamondOre:  rgb(102, 217, 230),
	BlockCobblestone: rgb(115, 115, 115),
	BlockPlanks:      rgb(179, 128, 64),
	BlockBedrock:     rgb(51, 51, 51),
}

var oreSpeckles = map[int]color.NRGBA{
	BlockCoalOre:    rgb(20, 20, 20),
	BlockIronOre:    rgb(200, 160, 130),
	BlockGoldOre:    rgb(255, 230, 50),
	BlockDiamondOre: rgb(140, 255, 255),
}

var specklePoints = [][2]int{{4, 4}, {10, 6}, {7, 11}, {12, 3}, {3, 9}}

// tileNoise is the brightness jitter applied to every terrain pixel.
func tileNoise(x, y, tile int) int {
	return ((x*7+y*13+tile*3)%5)*4 - 8
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// TerrainAtlas draws the 240×16 block atlas.
func TerrainAtlas() *canvas.Canvas {
	c := canvas.New(TerrainTileCount*TerrainTileSize, TerrainTileSize)

	for t, base := range TerrainColors {
		ox := t * TerrainTileSize
		for y := 0; y < TerrainTileSize; y++ {
			for x := 0; x < TerrainTileSize; x++ {
				n := tileNoise(x, y, t)
				c.Set(ox+x, y, color.NRGBA{
					R: clamp8(int(base.R) + n),
					G: clamp8(int(base.G) + n),
					B: clamp8(int(base.B) + n),
					A: base.A,
				})
			}
		}

		if speck, ok := oreSpeckles[t]; ok {
			for _, p := range specklePoints {
				c.Set(ox+p[0], p[1], speck)
			}
		}

		switch t {
		case BlockPlanks:
			seam := rgb(140, 100, 40)
			for x := 0; x < TerrainTileSize; x++ {
				c.Set(ox+x, 4, seam)
				c.Set(ox+x, 11, seam)
			}
		case BlockGrass:
			tuft := []color.NRGBA{rgb(40, 180, 30), rgb(50, 170, 35), rgb(60, 160, 40)}
			for y, col := range tuft {
				for x := 0; x < TerrainTileSize; x++ {
					c.Set(ox+x, y, col)
				}
			}
		}
	}
	return c
}
