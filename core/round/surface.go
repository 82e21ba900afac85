package round

import (
	"image/color"

	"github.com/ingyamilmolinar/wanted/core/tile"
)

// Surface is the 2-D drawing target a round renders into.
type Surface interface {
	tile.Painter
	Clear(w, h float64)
	StrokeRect(x, y, w, h float64, c color.Color, lineWidth float64)
}

// Sink receives the values shown to the player outside the canvas: the HUD
// on desktop, DOM text nodes in the browser.
type Sink interface {
	SetTarget(name string)
	SetScore(n int)
	SetErrors(n int)
	SetFeedback(msg string)
	SetPulse(kind Feedback)
}

// Sinks fans every update out to each member.
type Sinks []Sink

func (s Sinks) SetTarget(name string) {
	for _, k := range s {
		k.SetTarget(name)
	}
}

func (s Sinks) SetScore(n int) {
	for _, k := range s {
		k.SetScore(n)
	}
}

func (s Sinks) SetErrors(n int) {
	for _, k := range s {
		k.SetErrors(n)
	}
}

func (s Sinks) SetFeedback(msg string) {
	for _, k := range s {
		k.SetFeedback(msg)
	}
}

func (s Sinks) SetPulse(kind Feedback) {
	for _, k := range s {
		k.SetPulse(kind)
	}
}

type nopSink struct{}

func (nopSink) SetTarget(string)   {}
func (nopSink) SetScore(int)       {}
func (nopSink) SetErrors(int)      {}
func (nopSink) SetFeedback(string) {}
func (nopSink) SetPulse(Feedback)  {}

var (
	colTargetBorder = color.RGBA{255, 217, 0, 255}
	colCorrect      = color.RGBA{40, 200, 80, 255}
	colIncorrect    = color.RGBA{220, 50, 50, 255}
)

const (
	targetInset     = 2
	targetLineWidth = 4
	pulseLineWidth  = 8
)
