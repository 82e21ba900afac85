// Package config holds the game's tunables. Values come from the embedded
// default.toml, optionally overlaid by a user TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ingyamilmolinar/wanted/core/tile"
)

//go:embed default.toml
var defaultTOML string

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings such as "800ms".
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Assets struct {
	Dir        string   `toml:"dir"`
	Names      []string `toml:"names"`
	RasterSize int      `toml:"raster_size"` // SVGs are rasterized to this square
	Workers    int      `toml:"workers"`
}

type Audio struct {
	Music  string  `toml:"music"`
	Volume float64 `toml:"volume"`
	Cues   bool    `toml:"cues"`
}

// DOM names the page elements the browser build writes to.
type DOM struct {
	Mount    string `toml:"mount"`
	Target   string `toml:"target"`
	Score    string `toml:"score"`
	Errors   string `toml:"errors"`
	Feedback string `toml:"feedback"`
}

type Config struct {
	CanvasSize  int     `toml:"canvas_size"`
	GridSize    int     `toml:"grid_size"`
	TileSize    float64 `toml:"tile_size"`
	MinTileSize float64 `toml:"min_tile_size"`
	Speed       float64 `toml:"speed"`

	CorrectPulse   Duration `toml:"correct_pulse"`
	IncorrectPulse Duration `toml:"incorrect_pulse"`

	LogLevel string `toml:"log_level"`
	Seed     int64  `toml:"seed"` // 0 seeds from the clock

	Assets Assets `toml:"assets"`
	Audio  Audio  `toml:"audio"`
	DOM    DOM    `toml:"dom"`
}

// Default returns the embedded defaults.
func Default() Config {
	var c Config
	if _, err := toml.Decode(defaultTOML, &c); err != nil {
		panic("config: embedded defaults: " + err.Error())
	}
	return c
}

// Load decodes the file at path over the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, c.Validate()
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, c.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("unknown keys %v: %w", undec, ErrInvalid)
	}
	return nil
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (Config, error) {
	c := Default()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("grid_size %d must be positive: %w", c.GridSize, ErrInvalid)
	case c.CanvasSize <= 0:
		return fmt.Errorf("canvas_size %d must be positive: %w", c.CanvasSize, ErrInvalid)
	case c.TileSize <= 0 || c.MinTileSize <= 0:
		return fmt.Errorf("tile sizes must be positive: %w", ErrInvalid)
	case c.TileSize > float64(c.CanvasSize):
		return fmt.Errorf("tile_size %v larger than canvas_size %d: %w", c.TileSize, c.CanvasSize, ErrInvalid)
	case c.MinTileSize > tile.MinCanvasSide:
		// a resize can shrink the canvas down to MinCanvasSide
		return fmt.Errorf("min_tile_size %v larger than the smallest canvas %d: %w", c.MinTileSize, tile.MinCanvasSide, ErrInvalid)
	case c.Speed < 0:
		return fmt.Errorf("speed %v must not be negative: %w", c.Speed, ErrInvalid)
	case len(c.Assets.Names) == 0:
		return fmt.Errorf("assets.names is empty: %w", ErrInvalid)
	case c.Assets.Workers <= 0:
		return fmt.Errorf("assets.workers %d must be positive: %w", c.Assets.Workers, ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume %v outside [0,1]: %w", c.Audio.Volume, ErrInvalid)
	}
	return nil
}
