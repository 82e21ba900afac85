// Package tile implements one bouncing, clickable image cell: its motion with
// wall reflection and the point-in-box hit test used to resolve clicks.
package tile

import (
	"image"
	"math/rand"
	"path"
	"strings"

	"github.com/ingyamilmolinar/wanted/internal/utils"
)

// Drawable is anything a surface knows how to paint. The ebiten surface draws
// *ebiten.Image and any image.Image; other drawables are skipped.
type Drawable interface {
	Bounds() image.Rectangle
}

// Painter is the part of a rendering surface a tile needs.
type Painter interface {
	DrawImage(img Drawable, x, y, w, h float64)
}

type Tile struct {
	Index    int
	Name     string // asset file name, e.g. "Link.svg"
	Col, Row int    // grid cell, fixed for the tile's lifetime

	X, Y   float64 // top-left of the bounding box
	VX, VY float64

	asset Drawable
}

// New places a tile centered in its cell with a random velocity in
// (-speed, speed) on each axis.
func New(index int, name string, col, row int, g Geometry, speed float64, rng *rand.Rand) *Tile {
	t := &Tile{Index: index, Name: name, Col: col, Row: row}
	t.PlaceInCell(g)
	t.VX = (rng.Float64() - 0.5) * speed * 2
	t.VY = (rng.Float64() - 0.5) * speed * 2
	return t
}

// Label is the display name: the asset name without its extension.
func (t *Tile) Label() string {
	return strings.TrimSuffix(t.Name, path.Ext(t.Name))
}

// PlaceInCell moves the tile back to the center of its grid cell. Velocity is
// left untouched.
func (t *Tile) PlaceInCell(g Geometry) {
	t.X, t.Y = g.CellOrigin(t.Col, t.Row)
}

// Update advances the tile by one frame. An axis whose step would leave any
// part of the box outside the canvas has its velocity negated and its
// position clamped back inside; the axes are handled independently.
func (t *Tile) Update(g Geometry) (bouncedX, bouncedY bool) {
	t.X += t.VX
	t.Y += t.VY

	if t.X < 0 || t.X+g.TileSize > g.Width {
		t.VX = -t.VX
		t.X = utils.Clamp(t.X, 0, g.Width-g.TileSize)
		bouncedX = true
	}
	if t.Y < 0 || t.Y+g.TileSize > g.Height {
		t.VY = -t.VY
		t.Y = utils.Clamp(t.Y, 0, g.Height-g.TileSize)
		bouncedY = true
	}
	return bouncedX, bouncedY
}

// Bounds returns the bounding box used for both drawing and hit testing.
func (t *Tile) Bounds(g Geometry) (x1, y1, x2, y2 float64) {
	return t.X, t.Y, t.X + g.TileSize, t.Y + g.TileSize
}

// Contains reports whether (px,py) lies in the bounding box, edges included.
func (t *Tile) Contains(g Geometry, px, py float64) bool {
	half := g.TileSize / 2
	cx, cy := t.X+half, t.Y+half
	return px >= cx-half && px <= cx+half &&
		py >= cy-half && py <= cy+half
}

func (t *Tile) Ready() bool { return t.asset != nil }

// SetAsset marks the tile visually ready.
func (t *Tile) SetAsset(d Drawable) { t.asset = d }

func (t *Tile) Asset() Drawable { return t.asset }

// Draw paints the tile if its asset is ready.
func (t *Tile) Draw(p Painter, g Geometry) {
	if t.asset == nil {
		return
	}
	p.DrawImage(t.asset, t.X, t.Y, g.TileSize, g.TileSize)
}
