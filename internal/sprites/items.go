package sprites

import (
	"image/color"

	"github.com/AnyUserName/spritegen/internal/canvas"
)

// Item icon atlas geometry.
const (
	ItemAtlasCols = 8
	ItemAtlasRows = 4
	ItemCellSize  = 16
)

// Shape selects how an item icon is drawn.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeBlock
	ShapeGem
	ShapeIngot
	ShapePick
	ShapeAxe
	ShapeShovel
	ShapeGear
	ShapeArrow
)

// Item places one icon in the atlas grid.
type Item struct {
	Name  string
	Col   int
	Row   int
	Color color.NRGBA
	Shape Shape
}

// Items lists every item type in atlas order.
var Items = []Item{
	{"none", 0, 0, color.NRGBA{}, ShapeNone},
	{"dirt", 1, 0, rgb(140, 90, 46), ShapeBlock},
	{"stone", 2, 0, rgb(128, 128, 128), ShapeBlock},
	{"wood", 3, 0, rgb(140, 90, 13), ShapeBlock},
	{"leaves", 4, 0, rgb(51, 140, 38), ShapeBlock},
	{"sand", 5, 0, rgb(217, 204, 140), ShapeBlock},
	{"grass", 6, 0, rgb(76, 153, 51), ShapeBlock},
	{"cobblestone", 7, 0, rgb(115, 115, 115), ShapeBlock},

	{"planks", 0, 1, rgb(179, 128, 64), ShapeBlock},
	{"bedrock", 1, 1, rgb(51, 51, 51), ShapeBlock},
	{"miner", 2, 1, rgb(51, 51, 51), ShapeGear},
	{"conveyor", 3, 1, rgb(89, 89, 102), ShapeArrow},

	{"coal", 0, 2, rgb(38, 38, 38), ShapeGem},
	{"iron_ore", 1, 2, rgb(179, 140, 115), ShapeGem},
	{"gold_ore", 2, 2, rgb(217, 191, 51), ShapeGem},
	{"iron_ingot", 3, 2, rgb(191, 191, 191), ShapeIngot},
	{"gold_ingot", 4, 2, rgb(242, 217, 38), ShapeIngot},
	{"diamond", 5, 2, rgb(102, 217, 230), ShapeGem},

	{"wooden_pickaxe", 0, 3, rgb(140, 90, 13), ShapePick},
	{"stone_pickaxe", 1, 3, rgb(128, 128, 128), ShapePick},
	{"iron_pickaxe", 2, 3, rgb(191, 191, 191), ShapePick},
	{"wooden_axe", 3, 3, rgb(140, 90, 13), ShapeAxe},
	{"stone_axe", 4, 3, rgb(128, 128, 128), ShapeAxe},
	{"iron_axe", 5, 3, rgb(191, 191, 191), ShapeAxe},
	{"wooden_shovel", 6, 3, rgb(140, 90, 13), ShapeShovel},
	{"stone_shovel", 7, 3, rgb(128, 128, 128), ShapeShovel},
}

var (
	outline   = color.NRGBA{A: 80}
	highlight = color.NRGBA{R: 255, G: 255, B: 255, A: 80}
	handle    = rgb(100, 70, 30)
	gearHub   = rgb(255, 200, 50)
	arrowTip  = rgb(217, 217, 51)
)

// ItemIconAtlas draws the 128×64 item icon grid.
func ItemIconAtlas() *canvas.Canvas {
	c := canvas.New(ItemAtlasCols*ItemCellSize, ItemAtlasRows*ItemCellSize)
	for _, it := range Items {
		drawItem(c, it.Col*ItemCellSize, it.Row*ItemCellSize, it)
	}
	return c
}

func drawItem(c *canvas.Canvas, ox, oy int, it Item) {
	if it.Color.A == 0 {
		return
	}
	const pad = 2
	const inner = ItemCellSize - 2*pad

	switch it.Shape {
	case ShapeBlock:
		c.FillRect(ox+pad, oy+pad, inner, inner, it.Color)
		for i := pad; i < pad+inner; i++ {
			c.Set(ox+i, oy+pad, outline)
			c.Set(ox+i, oy+pad+inner-1, outline)
			c.Set(ox+pad, oy+i, outline)
			c.Set(ox+pad+inner-1, oy+i, outline)
		}
	case ShapeGem:
		cx, cy := ox+8, oy+8
		for dy := -4; dy <= 4; dy++ {
			span := 4 - abs(dy)
			for dx := -span; dx <= span; dx++ {
				c.Set(cx+dx, cy+dy, it.Color)
			}
		}
	case ShapeIngot:
		c.FillRect(ox+3, oy+5, 10, 6, it.Color)
		c.FillRect(ox+4, oy+6, 8, 2, highlight)
	case ShapePick:
		for i := 0; i < 10; i++ {
			c.Set(ox+3+i, oy+3+i, handle)
		}
		c.FillRect(ox+2, oy+2, 8, 3, it.Color)
	case ShapeAxe:
		for i := 0; i < 10; i++ {
			c.Set(ox+4+i, oy+4+i, handle)
		}
		c.FillRect(ox+2, oy+2, 5, 6, it.Color)
	case ShapeShovel:
		for i := 0; i < 8; i++ {
			c.Set(ox+7, oy+2+i, handle)
		}
		c.FillRect(ox+5, oy+10, 5, 4, it.Color)
	case ShapeGear:
		c.FillRect(ox+5, oy+3, 6, 10, it.Color)
		c.FillRect(ox+3, oy+5, 10, 6, it.Color)
		c.Cross(ox+8, oy+8, gearHub)
	case ShapeArrow:
		c.FillRect(ox+3, oy+6, 8, 4, it.Color)
		c.Set(ox+12, oy+7, arrowTip)
		c.Set(ox+12, oy+8, arrowTip)
		c.Set(ox+13, oy+7, arrowTip)
		c.Set(ox+13, oy+8, arrowTip)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
