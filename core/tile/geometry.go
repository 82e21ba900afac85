package tile

import (
	"math"

	"github.com/ingyamilmolinar/wanted/internal/utils"
)

const (
	// MinCanvasSide is the smallest square the canvas is ever laid out to.
	MinCanvasSide = 100
	// CellFill is the share of a grid cell a tile occupies after a resize.
	CellFill = 0.85
)

// Geometry is the canvas/grid/tile sizing shared by every tile. It is a plain
// value: the round controller owns one and replaces it on resize.
type Geometry struct {
	Width, Height float64
	GridSize      int
	TileSize      float64
}

func (g Geometry) CellWidth() float64  { return g.Width / float64(g.GridSize) }
func (g Geometry) CellHeight() float64 { return g.Height / float64(g.GridSize) }

// CellOrigin is the top-left corner of a tile centered in cell (col,row).
func (g Geometry) CellOrigin(col, row int) (x, y float64) {
	cw, ch := g.CellWidth(), g.CellHeight()
	x = float64(col)*cw + (cw-g.TileSize)/2
	y = float64(row)*ch + (ch-g.TileSize)/2
	return x, y
}

// Fit lays a grid out on a square canvas of the given side. The side is
// floored at MinCanvasSide and the tile grows with the cell but never drops
// below minTile.
func Fit(side, gridSize int, minTile float64) Geometry {
	s := float64(utils.MaxInt(MinCanvasSide, side))
	size := math.Round(s / float64(gridSize) * CellFill)
	return Geometry{
		Width:    s,
		Height:   s,
		GridSize: gridSize,
		TileSize: math.Max(minTile, size),
	}
}
