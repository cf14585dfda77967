package main

import (
	"github.com/marisvali/mason/play"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FlashSeconds is how long a cleared row keeps flashing.
const FlashSeconds = 0.4

// FrameSeconds is the duration of one Update at ebitengine's default 60 TPS.
const FrameSeconds = 1.0 / 60

// RowFlash is a white band drawn over a row that was just cleared. It fades
// out and then it goes away. It doesn't represent anything in the Mason, it is
// a standalone effect.
type RowFlash struct {
	Row   int
	Alpha float32
	fade  *gween.Tween
}

// VisWorld is a world parallel to the Game that holds "visual logic". Its role
// is to store data and execute logic for ongoing visual effects. Draw() relies
// on the information in VisWorld to draw things, just like it relies on the
// Game.
//
// VisWorld is meant to be stepped right after the Game, in Update().
type VisWorld struct {
	Flashes []*RowFlash
}

func NewVisWorld() (v VisWorld) {
	return
}

func (v *VisWorld) Step(g *play.Game) {
	// Step existing flashes and filter out the ones that are done.
	n := 0
	for _, f := range v.Flashes {
		alpha, finished := f.fade.Update(FrameSeconds)
		f.Alpha = alpha
		if !finished {
			v.Flashes[n] = f
			n++
		}
	}
	v.Flashes = v.Flashes[:n]

	// Create new flashes if necessary.
	for _, row := range g.JustCleared {
		f := &RowFlash{Row: row, Alpha: 1}
		f.fade = gween.New(1, 0, FlashSeconds, ease.OutQuad)
		v.Flashes = append(v.Flashes, f)
	}

	// Game over throws everything away, including the effects.
	if g.LastEvent.GameOver {
		v.Flashes = v.Flashes[:0]
	}
}
