package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/wanted/core/tile"
)

// strokeRect draws a rectangle outline. It is defined as a variable so tests
// can override it to capture draw calls.
var strokeRect = func(dst *ebiten.Image, x, y, w, h, width float32, c color.Color) {
	vector.StrokeRect(dst, x, y, w, h, width, c, true)
}

// fillRect draws a filled rectangle. Overridable like strokeRect.
var fillRect = func(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, c, true)
}

// surface adapts an ebiten screen to round.Surface.
type surface struct {
	dst *ebiten.Image
}

func (s surface) Clear(w, h float64) {
	s.dst.Clear()
	fillRect(s.dst, 0, 0, float32(w), float32(h), colBackground)
}

func (s surface) DrawImage(img tile.Drawable, x, y, w, h float64) {
	src, ok := ebitenImage(img)
	if !ok {
		return
	}
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src, op)
}

// converted caches GPU copies of plain images handed to the surface. Only the
// game goroutine draws, so it needs no lock.
var converted = map[image.Image]*ebiten.Image{}

// ebitenImage resolves a drawable to something ebiten can draw. Plain images
// are uploaded once; drawables that are neither are skipped.
func ebitenImage(img tile.Drawable) (*ebiten.Image, bool) {
	switch v := img.(type) {
	case *ebiten.Image:
		return v, true
	case image.Image:
		if e, ok := converted[v]; ok {
			return e, true
		}
		e := toEbitenImage(v)
		converted[v] = e
		return e, true
	default:
		return nil, false
	}
}

// toEbitenImage uploads a plain image. Overridable so tests need no GPU.
var toEbitenImage = ebiten.NewImageFromImage

func (s surface) StrokeRect(x, y, w, h float64, c color.Color, lineWidth float64) {
	strokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), c)
}
