//go:build !(js && wasm)

package ui

import (
	"github.com/ingyamilmolinar/wanted/core/round"
	"github.com/ingyamilmolinar/wanted/internal/config"
)

// NewDOMSink returns no sink outside the browser.
func NewDOMSink(config.DOM) (round.Sink, error) { return nil, nil }

func (g *Game) exportJS() {}
