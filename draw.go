package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/marisvali/mason/mason"
	"github.com/marisvali/mason/play"
	"golang.org/x/image/font"
)

var (
	colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
	colorWall       = color.NRGBA{R: 30, G: 30, B: 40, A: 255}
	colorSidePanel  = color.NRGBA{R: 50, G: 50, B: 60, A: 255}
	colorBlock      = color.NRGBA{R: 140, G: 110, B: 90, A: 255}
	colorBrick      = color.NRGBA{R: 251, G: 150, B: 32, A: 255}
	colorText       = color.NRGBA{R: 230, G: 237, B: 240, A: 255}
	colorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 140}
)

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)
	game := SubImage(screen, g.gameArea(screen.Bounds().Size()))

	switch g.state {
	case PlayScreen:
		g.DrawPlayScreen(game)
	case PausedScreen:
		g.DrawPlayScreen(game)
		g.DrawPausedScreen(game)
	case Playback:
		g.DrawPlayScreen(game)
		g.DrawPlaybackInfo(game)
	default:
		panic("unhandled default case")
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	wall := SubImage(screen, g.layout.Wall)
	wall.Fill(colorWall)
	g.DrawWall(wall, g.game.Mason)
	g.DrawFlashes(wall)

	panel := SubImage(screen, g.layout.SidePanel)
	panel.Fill(colorSidePanel)
	g.DrawSidePanel(panel)
}

// DrawWall draws the laid blocks and then the active brick over them.
func (g *Gui) DrawWall(screen *ebiten.Image, m *mason.Mason) {
	wall := m.Wall()
	DrawShape(screen, wall, mason.Pt{}, g.layout.CellSize, colorBlock)

	b := m.Brick()
	if b == nil {
		return
	}
	blocks := b.Blocks()
	Assert(m.InBounds(blocks, b.X(), b.Y()))
	DrawShape(screen, blocks, b.Pos(), g.layout.CellSize, colorBrick)
}

func (g *Gui) DrawFlashes(screen *ebiten.Image) {
	for _, f := range g.visWorld.Flashes {
		a := uint8(f.Alpha * 255)
		// Premultiplied white.
		DrawBand(screen, f.Row, g.layout.CellSize, color.RGBA{R: a, G: a, B: a, A: a})
	}
}

func (g *Gui) DrawSidePanel(screen *ebiten.Image) {
	cell := int(g.layout.CellSize)
	b := screen.Bounds()

	label := SubImage(screen, image.Rect(0, 0, b.Dx(), cell))
	g.DrawText(label, "Next", g.smallFont, true, true, colorText)

	// The next brick, centered in a 4x4 box.
	if next := g.game.Next(); next != nil {
		box := SubImage(screen, image.Rect(cell, cell, cell*5, cell*5))
		blocks := next.Blocks()
		offset := mason.Pt{X: (4 - blocks.Width()) / 2, Y: (4 - blocks.Height()) / 2}
		DrawShape(box, blocks, offset, g.layout.CellSize, colorBrick)
	}

	lines := []string{
		fmt.Sprintf("Lines %d", g.game.Lines),
		fmt.Sprintf("Bricks %d", g.game.Bricks),
		fmt.Sprintf("Walls %d", g.game.GameOvers+1),
		fmt.Sprintf("Resets %d", g.game.Mason.Generation()),
	}
	for i, line := range lines {
		y := cell * (6 + i)
		r := SubImage(screen, image.Rect(cell/2, y, b.Dx(), y+cell))
		g.DrawText(r, line, g.smallFont, false, true, colorText)
	}
}

func (g *Gui) DrawPausedScreen(screen *ebiten.Image) {
	screen.Fill(colorOverlay)
	g.DrawText(screen, "Paused", g.defaultFont, true, true, colorText)
}

func (g *Gui) DrawPlaybackInfo(screen *ebiten.Image) {
	cell := int(g.layout.CellSize)
	b := screen.Bounds()
	r := SubImage(screen, image.Rect(cell/2, b.Dy()-cell, b.Dx(), b.Dy()))
	msg := fmt.Sprintf("Frame %d/%d", g.frameIdx,
		len(g.playthrough.History))
	if g.playbackPaused {
		msg += " (paused)"
	}
	g.DrawText(r, msg, g.smallFont, false, true, colorText)
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, face font.Face,
	centerX bool, centerY bool, color color.Color) {
	// Remember that text there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand.
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be above y, you should do text.Draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, face, textX, textY, color)
}

// gameSummary is shown in the window title during playback.
func gameSummary(p *play.Playthrough) string {
	return fmt.Sprintf("Mason - %dx%d - %s", p.Level.Width, p.Level.Height,
		p.Id)
}
