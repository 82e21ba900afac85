//go:build js && wasm

package ui

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/ingyamilmolinar/wanted/core/round"
	"github.com/ingyamilmolinar/wanted/internal/config"
)

const (
	classCorrect   = "correct-shadow"
	classIncorrect = "incorrect-shadow"
)

// domSink mirrors round state into the page's text elements and toggles the
// feedback shadow on the mount element.
type domSink struct {
	mount    js.Value
	target   js.Value
	score    js.Value
	errors   js.Value
	feedback js.Value
}

// NewDOMSink looks up the configured elements. Only the mount point is
// required; missing text elements are skipped.
func NewDOMSink(cfg config.DOM) (round.Sink, error) {
	doc := js.Global().Get("document")
	mount := doc.Call("getElementById", cfg.Mount)
	if mount.IsNull() || mount.IsUndefined() {
		return nil, fmt.Errorf("%w: #%s", ErrMissingMountPoint, cfg.Mount)
	}
	byID := func(id string) js.Value {
		if id == "" {
			return js.Null()
		}
		return doc.Call("getElementById", id)
	}
	return &domSink{
		mount:    mount,
		target:   byID(cfg.Target),
		score:    byID(cfg.Score),
		errors:   byID(cfg.Errors),
		feedback: byID(cfg.Feedback),
	}, nil
}

func setText(el js.Value, s string) {
	if el.IsNull() || el.IsUndefined() {
		return
	}
	el.Set("textContent", s)
}

func (d *domSink) SetTarget(name string)  { setText(d.target, name) }
func (d *domSink) SetScore(n int)         { setText(d.score, strconv.Itoa(n)) }
func (d *domSink) SetErrors(n int)        { setText(d.errors, strconv.Itoa(n)) }
func (d *domSink) SetFeedback(msg string) { setText(d.feedback, msg) }

func (d *domSink) SetPulse(kind round.Feedback) {
	classes := d.mount.Get("classList")
	classes.Call("remove", classCorrect, classIncorrect)
	switch kind {
	case round.FeedbackCorrect:
		classes.Call("add", classCorrect)
	case round.FeedbackIncorrect:
		classes.Call("add", classIncorrect)
	}
}

// AttachCanvas moves the canvas ebiten created into the mount element.
func (d *domSink) AttachCanvas() {
	canvas := js.Global().Get("document").Call("querySelector", "canvas")
	if canvas.IsNull() {
		return
	}
	d.mount.Call("appendChild", canvas)
}

// exportJS exposes helper functions for browser-based tests.
func (g *Game) exportJS() {
	js.Global().Set("wantedState", js.FuncOf(func(js.Value, []js.Value) any {
		target := ""
		if t := g.ctrl.Target(); t != nil {
			target = t.Label()
		}
		return js.ValueOf(map[string]any{
			"score":  g.ctrl.Score(),
			"errors": g.ctrl.Errors(),
			"target": target,
			"frame":  g.frame,
		})
	}))
}
