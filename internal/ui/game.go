package ui

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/wanted/core/round"
	"github.com/ingyamilmolinar/wanted/core/tile"
	"github.com/ingyamilmolinar/wanted/internal/assets"
	"github.com/ingyamilmolinar/wanted/internal/config"
	game_log "github.com/ingyamilmolinar/wanted/internal/log"
	"github.com/ingyamilmolinar/wanted/internal/utils"
)

// newImage converts a decoded asset into something the surface can draw.
// Overridden in tests so no GPU image is created.
var newImage = func(img image.Image) tile.Drawable {
	return ebiten.NewImageFromImage(img)
}

// SoundPlayer is the audio the game triggers.
type SoundPlayer interface {
	StartLoop()
	Cue(kind round.Feedback)
}

type nopSound struct{}

func (nopSound) StartLoop()         {}
func (nopSound) Cue(round.Feedback) {}

// canvasAttacher is implemented by sinks that need to move the game canvas
// into the page once ebiten has created it.
type canvasAttacher interface {
	AttachCanvas()
}

type Options struct {
	Config config.Config
	Logger *game_log.Logger
	Sound  SoundPlayer
	// Assets delivers decoded tile images; nil means no images at all.
	Assets <-chan assets.Result
	// Sinks receive the same updates as the HUD.
	Sinks []round.Sink
	// HUD draws target, score and feedback on the canvas.
	HUD  bool
	Rand *rand.Rand
	Now  func() time.Time
}

type Game struct {
	ctrl   *round.Controller
	hud    *hud
	sinks  round.Sinks
	sound  SoundPlayer
	logger *game_log.Logger

	assets         <-chan assets.Result
	loaded, failed int

	side     int
	minTile  float64
	leftPrev bool
	attached bool
	frame    int64
}

func New(opts Options) (*Game, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = game_log.Discard()
	}
	g := &Game{
		hud:     &hud{visible: opts.HUD},
		sound:   opts.Sound,
		logger:  logger.With("ui"),
		assets:  opts.Assets,
		minTile: cfg.MinTileSize,
	}
	if g.sound == nil {
		g.sound = nopSound{}
	}
	g.sinks = append(round.Sinks{g.hud}, opts.Sinks...)

	rng := opts.Rand
	if rng == nil && cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	ctrl, err := round.New(round.Options{
		Names: cfg.Assets.Names,
		Geometry: tile.Geometry{
			Width:    float64(cfg.CanvasSize),
			Height:   float64(cfg.CanvasSize),
			GridSize: cfg.GridSize,
			TileSize: cfg.TileSize,
		},
		Speed:          cfg.Speed,
		MinTileSize:    cfg.MinTileSize,
		CorrectPulse:   cfg.CorrectPulse.Duration,
		IncorrectPulse: cfg.IncorrectPulse.Duration,
		Rand:           rng,
		Now:            opts.Now,
		Sink:           g.sinks,
		OnFirstClick:   g.sound.StartLoop,
		Logger:         logger.With("round"),
	})
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	g.ctrl.Start()
	g.exportJS()
	return g, nil
}

// Controller exposes the round for embedding programs and tests.
func (g *Game) Controller() *round.Controller { return g.ctrl }

func (g *Game) Layout(w, h int) (int, int) {
	side := int(tile.Fit(utils.MinInt(w, h), g.ctrl.Geometry().GridSize, g.minTile).Width)
	if side != g.side {
		g.logger.Infof("Layout: outside=%dx%d canvas=%d", w, h, side)
		g.side = side
		g.ctrl.Resize(side)
	}
	return side, side
}

func (g *Game) Update() error {
	if !g.attached {
		g.attached = true
		for _, s := range g.sinks {
			if a, ok := s.(canvasAttacher); ok {
				a.AttachCanvas()
			}
		}
	}
	g.drainAssets()
	g.handleInput()
	g.ctrl.Tick()
	g.frame++
	return nil
}

// drainAssets applies every asset result that has arrived since the last
// frame without waiting for the rest.
func (g *Game) drainAssets() {
	for g.assets != nil {
		select {
		case r, ok := <-g.assets:
			if !ok {
				g.logger.Infof("assets done: %d loaded, %d failed", g.loaded, g.failed)
				g.assets = nil
				return
			}
			if r.Err != nil {
				g.failed++
				g.logger.Warnf("tile %d stays invisible: %v", r.Index, r.Err)
				continue
			}
			g.loaded++
			g.ctrl.SetAsset(r.Index, newImage(r.Image))
		default:
			return
		}
	}
}

func (g *Game) handleInput() {
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.leftPrev {
		x, y := cursorPosition()
		g.click(x, y)
	}
	g.leftPrev = left

	for _, id := range justPressedTouchIDs() {
		x, y := touchPosition(id)
		g.click(x, y)
	}

	if isKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}
}

// Summary is the one-line result the player can copy and share.
func (g *Game) Summary() string {
	target := ""
	if t := g.ctrl.Target(); t != nil {
		target = t.Label()
	}
	return fmt.Sprintf("Wanted: score %d, errors %d, looking for %s", g.ctrl.Score(), g.ctrl.Errors(), target)
}

func (g *Game) copySummary() {
	report := func(err error) { g.logger.Warnf("copy to clipboard: %v", err) }
	if err := writeClipboard(g.Summary(), report); err != nil {
		report(err)
		return
	}
	g.logger.Infof("summary copied to clipboard")
}

func (g *Game) click(x, y int) {
	switch g.ctrl.HandleClick(float64(x), float64(y)) {
	case round.OutcomeCorrect:
		g.sound.Cue(round.FeedbackCorrect)
	case round.OutcomeIncorrect:
		g.sound.Cue(round.FeedbackIncorrect)
	default:
		g.logger.Debugf("click at (%d,%d) hit nothing", x, y)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.Draw(surface{dst: screen})
	g.hud.Draw(screen)
}
