package main

import (
	"image"

	"github.com/marisvali/mason/play"
)

// Visual areas
// ------------
//
// - The wall area: the cells of the Mason's wall, CellPixelSize pixels each.
// - The side panel: right of the wall, shows the next brick and the counters.
// - The game area: contains all of the above. Its size depends on the level
// and is known as soon as the level is.
// - The screen: contains the game area and any margins necessary to fill in
// the application window on the OS. Its size is known only at run time.

// SidePanelCells is the width of the side panel, in cells.
const SidePanelCells = 6

type Layout struct {
	CellSize   int64
	Wall       image.Rectangle // relative to the game area
	SidePanel  image.Rectangle // relative to the game area
	GameWidth  int64
	GameHeight int64
}

func NewLayout(l play.Level, cellSize int64) (lay Layout) {
	lay.CellSize = cellSize
	wallWidth := int(l.Width * cellSize)
	wallHeight := int(l.Height * cellSize)
	lay.Wall = image.Rect(0, 0, wallWidth, wallHeight)
	lay.SidePanel = image.Rect(wallWidth, 0,
		wallWidth+int(SidePanelCells*cellSize), wallHeight)
	lay.GameWidth = int64(lay.SidePanel.Max.X)
	lay.GameHeight = int64(wallHeight)
	return
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window. Ebitengine scales that
	// bitmap to fit the window, preserving its aspect ratio.
	//
	// What I want:
	// - Cover the entire window with some background.
	// - Have a game area that I can reason about easily, no matter the aspect
	// ratio or the resolution of the user's screen.
	//
	// Solution:
	// - Compute screenWidth and screenHeight so that the aspect ratio of the
	// screen bitmap is the same as the aspect ratio of the window.
	// - Make the game area as large as it can be while still fitting inside the
	// screen. This means either screenWidth = GameWidth or
	// screenHeight = GameHeight.
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(g.layout.GameWidth) / float64(g.layout.GameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(g.layout.GameWidth)
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(g.layout.GameHeight)
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}
	return
}

// gameArea returns the part of a screen of the given size where the game
// area is drawn, centered.
func (g *Gui) gameArea(screenSize image.Point) image.Rectangle {
	marginX := (screenSize.X - int(g.layout.GameWidth)) / 2
	marginY := (screenSize.Y - int(g.layout.GameHeight)) / 2
	return image.Rect(marginX, marginY,
		marginX+int(g.layout.GameWidth), marginY+int(g.layout.GameHeight))
}
