package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/ingyamilmolinar/wanted/core/round"
)

const (
	hudMargin = 4
	hudPad    = 6
	hudLine   = 16
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hud is the on-canvas text sink. The browser build hides it and relies on
// the page's own text elements instead.
type hud struct {
	visible  bool
	target   string
	score    int
	errors   int
	feedback string
	pulse    round.Feedback
}

func (h *hud) SetTarget(name string)        { h.target = name }
func (h *hud) SetScore(n int)               { h.score = n }
func (h *hud) SetErrors(n int)              { h.errors = n }
func (h *hud) SetFeedback(msg string)       { h.feedback = msg }
func (h *hud) SetPulse(kind round.Feedback) { h.pulse = kind }

type hudLineSpec struct {
	text string
	col  color.Color
}

func (h *hud) lines() []hudLineSpec {
	out := []hudLineSpec{
		{"Find: " + h.target, colHUDTarget},
		{fmt.Sprintf("Score: %d  Errors: %d", h.score, h.errors), colHUDText},
	}
	if h.feedback != "" {
		col := colCorrect
		if h.pulse == round.FeedbackIncorrect {
			col = colIncorrect
		}
		out = append(out, hudLineSpec{h.feedback, col})
	}
	return out
}

func (h *hud) Draw(dst *ebiten.Image) {
	if !h.visible {
		return
	}
	lines := h.lines()
	w := 0.0
	for _, l := range lines {
		if a := text.Advance(l.text, hudFace); a > w {
			w = a
		}
	}
	fillRect(dst, hudMargin, hudMargin, float32(w+2*hudPad), float32(len(lines)*hudLine+2*hudPad), colHUDPanel)
	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin+hudPad, float64(hudMargin+hudPad+i*hudLine))
		op.ColorScale.ScaleWithColor(l.col)
		text.Draw(dst, l.text, hudFace, op)
	}
}
