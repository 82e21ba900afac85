package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if c.CanvasSize != 700 || c.GridSize != 7 || c.TileSize != 70 || c.MinTileSize != 28 || c.Speed != 0.5 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.CorrectPulse.Duration != 800*time.Millisecond || c.IncorrectPulse.Duration != 600*time.Millisecond {
		t.Fatalf("pulses = %v / %v", c.CorrectPulse, c.IncorrectPulse)
	}
	if len(c.Assets.Names) != 48 || c.Assets.Names[0] != "Alan Garner.svg" {
		t.Fatalf("names = %d", len(c.Assets.Names))
	}
	if c.DOM.Target != "targetName" || c.DOM.Mount != "game" {
		t.Fatalf("dom = %+v", c.DOM)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wanted.toml")
	data := `
grid_size = 3
correct_pulse = "1s"

[assets]
names = ["a.png", "b.png"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.GridSize != 3 || c.CorrectPulse.Duration != time.Second {
		t.Fatalf("overlay not applied: %+v", c)
	}
	if len(c.Assets.Names) != 2 || c.Assets.Workers != 8 || c.CanvasSize != 700 {
		t.Fatalf("defaults lost: %+v", c.Assets)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("gird_size = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseValidates(t *testing.T) {
	cases := []string{
		"grid_size = 0",
		"speed = -1.0",
		"[audio]\nvolume = 2.0",
		"[assets]\nnames = []",
		"min_tile_size = 900.0",
		"tile_size = 701.0",
		"gird_size = 4",
	}
	for _, in := range cases {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) err = %v, want ErrInvalid", in, err)
		}
	}
	if _, err := Parse(`incorrect_pulse = "soon"`); err == nil {
		t.Fatalf("bad duration accepted")
	}
}

func TestParseAcceptsLargestTiles(t *testing.T) {
	c, err := Parse("min_tile_size = 100.0\ntile_size = 700.0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.MinTileSize != 100 || c.TileSize != 700 {
		t.Fatalf("sizes = %v / %v", c.MinTileSize, c.TileSize)
	}
}
