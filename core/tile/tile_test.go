package tile

import (
	"image"
	"math/rand"
	"testing"
)

func testGeom() Geometry {
	return Geometry{Width: 700, Height: 700, GridSize: 7, TileSize: 70}
}

func TestNewCentersInCell(t *testing.T) {
	g := testGeom()
	tl := New(24, "Link.svg", 3, 3, g, 0.5, rand.New(rand.NewSource(1)))
	if tl.X != 315 || tl.Y != 315 {
		t.Fatalf("pos = (%v,%v), want (315,315)", tl.X, tl.Y)
	}
	if tl.VX <= -0.5 || tl.VX >= 0.5 || tl.VY <= -0.5 || tl.VY >= 0.5 {
		t.Fatalf("velocity (%v,%v) outside (-0.5,0.5)", tl.VX, tl.VY)
	}
	if tl.Label() != "Link" {
		t.Fatalf("label = %q", tl.Label())
	}
}

func TestLabelKeepsInnerDots(t *testing.T) {
	tl := &Tile{Name: "J. Robert Oppenheimer.svg"}
	if tl.Label() != "J. Robert Oppenheimer" {
		t.Fatalf("label = %q", tl.Label())
	}
}

func TestUpdateStaysInBounds(t *testing.T) {
	g := testGeom()
	rng := rand.New(rand.NewSource(42))
	tiles := make([]*Tile, 0, 49)
	for i := 0; i < 49; i++ {
		tl := New(i, "x.png", i%7, i/7, g, 9, rng)
		tiles = append(tiles, tl)
	}
	for frame := 0; frame < 5000; frame++ {
		for _, tl := range tiles {
			tl.Update(g)
			x1, y1, x2, y2 := tl.Bounds(g)
			if x1 < 0 || y1 < 0 || x2 > g.Width || y2 > g.Height {
				t.Fatalf("frame %d tile %d out of bounds: (%v,%v)-(%v,%v)", frame, tl.Index, x1, y1, x2, y2)
			}
		}
	}
}

func TestVelocityFlipsOnlyAtWalls(t *testing.T) {
	g := testGeom()
	rng := rand.New(rand.NewSource(7))
	tl := New(0, "x.png", 0, 0, g, 20, rng)
	for frame := 0; frame < 2000; frame++ {
		nx, ny := tl.X+tl.VX, tl.Y+tl.VY
		wantX := nx < 0 || nx+g.TileSize > g.Width
		wantY := ny < 0 || ny+g.TileSize > g.Height
		vx, vy := tl.VX, tl.VY
		bx, by := tl.Update(g)
		if bx != wantX || by != wantY {
			t.Fatalf("frame %d: bounced (%v,%v), want (%v,%v)", frame, bx, by, wantX, wantY)
		}
		if (tl.VX == -vx) != wantX && vx != 0 {
			t.Fatalf("frame %d: vx %v -> %v, flip expected %v", frame, vx, tl.VX, wantX)
		}
		if (tl.VY == -vy) != wantY && vy != 0 {
			t.Fatalf("frame %d: vy %v -> %v, flip expected %v", frame, vy, tl.VY, wantY)
		}
		if abs(tl.VX) != abs(vx) || abs(tl.VY) != abs(vy) {
			t.Fatalf("frame %d: speed changed", frame)
		}
	}
}

func TestCornerBouncesBothAxes(t *testing.T) {
	g := testGeom()
	tl := &Tile{X: 629.5, Y: 629.5, VX: 1, VY: 1}
	bx, by := tl.Update(g)
	if !bx || !by {
		t.Fatalf("bounced (%v,%v), want both", bx, by)
	}
	if tl.X != 630 || tl.Y != 630 || tl.VX != -1 || tl.VY != -1 {
		t.Fatalf("after corner: %+v", tl)
	}
}

func TestUpdateClampsLowEdge(t *testing.T) {
	g := testGeom()
	tl := &Tile{X: 0.2, Y: 100, VX: -0.5, VY: 0}
	bx, by := tl.Update(g)
	if !bx || by {
		t.Fatalf("bounced (%v,%v)", bx, by)
	}
	if tl.X != 0 || tl.VX != 0.5 || tl.Y != 100 {
		t.Fatalf("after bounce: %+v", tl)
	}
}

func TestContains(t *testing.T) {
	g := testGeom()
	tl := &Tile{X: 100, Y: 200}
	cases := []struct {
		x, y float64
		want bool
	}{
		{135, 235, true},
		{100, 200, true}, // corners are inside
		{170, 270, true},
		{99.9, 235, false},
		{170.1, 235, false},
		{135, 199.9, false},
		{135, 270.1, false},
	}
	for _, c := range cases {
		if got := tl.Contains(g, c.x, c.y); got != c.want {
			t.Fatalf("Contains(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

type recordPainter struct{ calls int }

func (p *recordPainter) DrawImage(Drawable, float64, float64, float64, float64) { p.calls++ }

func TestDrawSkipsUntilReady(t *testing.T) {
	g := testGeom()
	tl := &Tile{X: 10, Y: 10, VX: 1}
	p := &recordPainter{}
	tl.Draw(p, g)
	if p.calls != 0 || tl.Ready() {
		t.Fatalf("drew unloaded tile")
	}
	tl.Update(g) // motion runs regardless of readiness
	if tl.X != 11 {
		t.Fatalf("unloaded tile did not move")
	}
	tl.SetAsset(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	tl.Draw(p, g)
	if p.calls != 1 || !tl.Ready() {
		t.Fatalf("calls = %d", p.calls)
	}
}

func TestFitAndResizeScenario(t *testing.T) {
	g := Fit(700, 7, 28)
	if g.Width != 700 || g.TileSize != 85 {
		t.Fatalf("Fit(700) = %+v", g)
	}
	tl := New(24, "x.png", 3, 3, g, 0.5, rand.New(rand.NewSource(3)))
	for i := 0; i < 100; i++ {
		tl.Update(g)
	}
	g2 := Fit(560, 7, 28)
	tl.PlaceInCell(g2)
	wantX := 3*(560.0/7) + (560.0/7-g2.TileSize)/2
	if tl.Col != 3 || tl.Row != 3 || tl.X != wantX || tl.Y != wantX {
		t.Fatalf("after resize: %+v, want x=y=%v", tl, wantX)
	}
}

func TestFitFloors(t *testing.T) {
	g := Fit(40, 7, 28)
	if g.Width != MinCanvasSide || g.TileSize != 28 {
		t.Fatalf("Fit(40) = %+v", g)
	}
}

func TestLargestMinTileStaysInSmallestCanvas(t *testing.T) {
	g := Fit(40, 7, MinCanvasSide)
	if g.TileSize != g.Width {
		t.Fatalf("Fit = %+v", g)
	}
	tl := New(0, "x.png", 0, 0, g, 0.5, rand.New(rand.NewSource(3)))
	for frame := 0; frame < 100; frame++ {
		tl.Update(g)
		x1, y1, x2, y2 := tl.Bounds(g)
		if x1 < 0 || y1 < 0 || x2 > g.Width || y2 > g.Height {
			t.Fatalf("frame %d out of bounds: (%v,%v)-(%v,%v)", frame, x1, y1, x2, y2)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
