// Package round drives a session of the game: it owns the tiles laid out on
// the grid, picks the target, counts hits and misses and decides draw order.
package round

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ingyamilmolinar/wanted/core/tile"
	game_log "github.com/ingyamilmolinar/wanted/internal/log"
	"github.com/ingyamilmolinar/wanted/internal/utils"
)

// ErrNoTiles is returned when no tile can be built from the options.
var ErrNoTiles = errors.New("round: no tiles to play with")

const (
	DefaultCorrectPulse   = 800 * time.Millisecond
	DefaultIncorrectPulse = 600 * time.Millisecond
)

type State int

const (
	StateIdle State = iota
	StatePlaying
)

func (s State) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "idle"
}

// Outcome is the result of resolving one click.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "miss"
	}
}

type Options struct {
	Names    []string
	Geometry tile.Geometry
	Speed    float64 // max per-axis speed in px/frame
	// MinTileSize floors the tile size Resize computes.
	MinTileSize float64

	CorrectPulse   time.Duration
	IncorrectPulse time.Duration

	Rand *rand.Rand
	Now  func() time.Time
	Sink Sink
	// OnFirstClick runs once, on the first click of the session.
	OnFirstClick func()
	Logger       *game_log.Logger
}

type Controller struct {
	tiles       []*tile.Tile
	geom        tile.Geometry
	minTileSize float64
	state       State
	target      int // index into tiles, -1 while idle

	score, errors int
	pulse         Pulse

	correctPulse, incorrectPulse time.Duration

	clicked      bool
	onFirstClick func()

	rng    *rand.Rand
	now    func() time.Time
	sink   Sink
	logger *game_log.Logger
}

// New builds one tile per name in row-major grid order, up to the number of
// grid cells. The controller starts Idle; call Start to pick a target.
func New(opts Options) (*Controller, error) {
	g := opts.Geometry
	if g.GridSize <= 0 {
		return nil, ErrNoTiles
	}
	n := utils.MinInt(len(opts.Names), g.GridSize*g.GridSize)
	if n == 0 {
		return nil, ErrNoTiles
	}

	c := &Controller{
		geom:           g,
		minTileSize:    opts.MinTileSize,
		target:         -1,
		correctPulse:   opts.CorrectPulse,
		incorrectPulse: opts.IncorrectPulse,
		onFirstClick:   opts.OnFirstClick,
		rng:            opts.Rand,
		now:            opts.Now,
		sink:           opts.Sink,
		logger:         opts.Logger,
	}
	if c.correctPulse <= 0 {
		c.correctPulse = DefaultCorrectPulse
	}
	if c.incorrectPulse <= 0 {
		c.incorrectPulse = DefaultIncorrectPulse
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.sink == nil {
		c.sink = nopSink{}
	}
	if c.logger == nil {
		c.logger = game_log.Discard()
	}

	c.tiles = make([]*tile.Tile, 0, n)
	for i := 0; i < n; i++ {
		col, row := i%g.GridSize, i/g.GridSize
		c.tiles = append(c.tiles, tile.New(i, opts.Names[i], col, row, g, opts.Speed, c.rng))
	}
	c.logger.Infof("built %d tiles on a %dx%d grid (%.0fx%.0f, tile %.0f)", n, g.GridSize, g.GridSize, g.Width, g.Height, g.TileSize)
	return c, nil
}

// Start picks the first target and publishes the initial counters.
func (c *Controller) Start() {
	if c.state == StatePlaying {
		return
	}
	c.state = StatePlaying
	c.sink.SetScore(c.score)
	c.sink.SetErrors(c.errors)
	c.sink.SetFeedback("")
	c.selectTarget()
}

func (c *Controller) State() State            { return c.state }
func (c *Controller) Tiles() []*tile.Tile     { return c.tiles }
func (c *Controller) Geometry() tile.Geometry { return c.geom }
func (c *Controller) Score() int              { return c.score }
func (c *Controller) Errors() int             { return c.errors }

// TargetIndex is the index of the current target, or -1 while idle.
func (c *Controller) TargetIndex() int { return c.target }

// Target returns the current target tile, or nil while idle.
func (c *Controller) Target() *tile.Tile {
	if c.target < 0 {
		return nil
	}
	return c.tiles[c.target]
}

// Pulse returns the feedback pulse if one is still active.
func (c *Controller) Pulse() (Pulse, bool) {
	return c.pulse, c.pulse.Active(c.now())
}

// SetAsset hands a loaded image to the tile at index. Out-of-range indices
// are ignored.
func (c *Controller) SetAsset(index int, img tile.Drawable) {
	if index < 0 || index >= len(c.tiles) {
		return
	}
	c.tiles[index].SetAsset(img)
}

// selectTarget picks a tile uniformly at random. The previous target may be
// picked again.
func (c *Controller) selectTarget() {
	c.target = c.rng.Intn(len(c.tiles))
	t := c.tiles[c.target]
	c.logger.Debugf("target is tile %d %q at (%d,%d)", t.Index, t.Label(), t.Col, t.Row)
	c.sink.SetTarget(t.Label())
}

// Tick advances every tile by one frame and expires a finished pulse.
func (c *Controller) Tick() {
	if c.state != StatePlaying {
		return
	}
	for _, t := range c.tiles {
		t.Update(c.geom)
	}
	if c.pulse.Kind != FeedbackNone && !c.pulse.Active(c.now()) {
		c.logger.Debugf("%s pulse expired", c.pulse.Kind)
		c.pulse = Pulse{}
		c.sink.SetFeedback("")
		c.sink.SetPulse(FeedbackNone)
	}
}

// Draw renders non-target tiles in grid order, then the target on top with
// its highlight, then the pulse border if one is active.
func (c *Controller) Draw(s Surface) {
	g := c.geom
	s.Clear(g.Width, g.Height)
	for i, t := range c.tiles {
		if i != c.target {
			t.Draw(s, g)
		}
	}
	if t := c.Target(); t != nil {
		t.Draw(s, g)
		s.StrokeRect(t.X-targetInset, t.Y-targetInset, g.TileSize+2*targetInset, g.TileSize+2*targetInset, colTargetBorder, targetLineWidth)
	}
	if p, ok := c.Pulse(); ok {
		col := colCorrect
		if p.Kind == FeedbackIncorrect {
			col = colIncorrect
		}
		s.StrokeRect(0, 0, g.Width, g.Height, col, pulseLineWidth)
	}
}

// HandleClick resolves a click at canvas-local (px,py). The target is tested
// first since it is drawn on top of everything else.
func (c *Controller) HandleClick(px, py float64) Outcome {
	if c.state != StatePlaying {
		return OutcomeMiss
	}
	if !c.clicked {
		c.clicked = true
		if c.onFirstClick != nil {
			c.onFirstClick()
		}
	}

	if t := c.Target(); t.Contains(c.geom, px, py) {
		c.score++
		c.logger.Infof("correct click on %q at (%.0f,%.0f), score=%d", t.Label(), px, py, c.score)
		c.sink.SetScore(c.score)
		c.setPulse(FeedbackCorrect, c.correctPulse)
		c.selectTarget()
		return OutcomeCorrect
	}

	for i, t := range c.tiles {
		if i == c.target || !t.Contains(c.geom, px, py) {
			continue
		}
		c.errors++
		c.logger.Infof("wrong click on %q at (%.0f,%.0f), errors=%d", t.Label(), px, py, c.errors)
		c.sink.SetErrors(c.errors)
		c.setPulse(FeedbackIncorrect, c.incorrectPulse)
		return OutcomeIncorrect
	}
	return OutcomeMiss
}

func (c *Controller) setPulse(kind Feedback, d time.Duration) {
	c.pulse = Pulse{Kind: kind, Until: c.now().Add(d)}
	c.sink.SetPulse(kind)
	c.sink.SetFeedback(kind.Message())
}

// Resize lays the grid out on a new square canvas and moves every tile back
// to the center of its cell. Grid assignments never change.
func (c *Controller) Resize(side int) tile.Geometry {
	c.geom = tile.Fit(side, c.geom.GridSize, c.minTileSize)
	for _, t := range c.tiles {
		t.PlaceInCell(c.geom)
	}
	c.logger.Infof("resized to %.0fx%.0f, tile %.0f", c.geom.Width, c.geom.Height, c.geom.TileSize)
	return c.geom
}
