package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/mason/play"
)

// Key repeat, in frames. A held key triggers once when pressed, then again
// after KeyRepeatDelay frames and every KeyRepeatInterval frames after that.
const KeyRepeatDelay = 12
const KeyRepeatInterval = 3

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		// The config changed, but only things that don't affect the
		// simulation are applied during a session. A new level needs a new
		// playthrough.
		level := g.playthrough.Level
		g.LoadGuiData()
		g.layout = NewLayout(level, g.CellPixelSize)
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case PausedScreen:
		g.UpdatePausedScreen()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}
	return nil
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// Repeated is true on the frame a key is pressed and then periodically while
// it is held down.
func (g *Gui) Repeated(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= KeyRepeatDelay && (d-KeyRepeatDelay)%KeyRepeatInterval == 0
}

func (g *Gui) PlayerInput() (input play.PlayerInput) {
	input.MoveLeft = g.Repeated(ebiten.KeyArrowLeft)
	input.MoveRight = g.Repeated(ebiten.KeyArrowRight)
	input.SoftDrop = g.Repeated(ebiten.KeyArrowDown)
	input.RotateCW = g.JustPressed(ebiten.KeyArrowUp) || g.JustPressed(ebiten.KeyX)
	input.RotateCCW = g.JustPressed(ebiten.KeyZ)
	input.HardDrop = g.JustPressed(ebiten.KeySpace)
	input.ResetWorld = g.JustPressed(ebiten.KeyR)
	return
}

func (g *Gui) UpdatePlayScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PausedScreen
		return
	}

	input := g.PlayerInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile && g.RecordingFile != "" {
		// IMPORTANT: save the playthrough before stepping the Game. If a bug
		// in the Mason causes it to crash, we want to save the input that
		// caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.game.Step(input)
	g.visWorld.Step(g.game)
	g.frameIdx++
}

func (g *Gui) UpdatePausedScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PlayScreen
	}
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	if g.Pressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyArrowRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	if targetFrameIdx < 0 {
		targetFrameIdx = 0
	}

	if targetFrameIdx >= nFrames {
		targetFrameIdx = nFrames - 1
	}

	if targetFrameIdx != g.frameIdx {
		// Rewind. There is no better way to go to an earlier frame than
		// replaying all the frames from the beginning.
		g.NewGame()
		for i := int64(0); i < targetFrameIdx; i++ {
			g.game.Step(g.playthrough.History[i])
		}
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && g.frameIdx < nFrames-1 {
		g.game.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(g.game)
		g.frameIdx++
	}
}
