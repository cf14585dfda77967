package main

import (
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/mason/play"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a native executable or a .wasm on the browser. It must
// change every time a new executable is handed out, and it must change when
// play.SimulationVersion or play.InputVersion change.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	PausedScreen
	Playback
)

type Gui struct {
	play.Config
	layout              Layout
	game                *play.Game
	FSys                FS
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	smallFont           font.Face
	playthrough         play.Playthrough
	frameIdx            int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipArrow      int64
	FrameSkipShiftArrow int64
	username            string
	visWorld            VisWorld
}

func main() {
	var g Gui
	g.username = getUsername()
	g.FrameSkipArrow = 1
	g.FrameSkipShiftArrow = 10

	if !play.FileExists(os.DirFS("."), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher's timestamps so that the first check doesn't
		// report a change.
		g.folderWatcher.FolderContentsChanged()
	}

	g.LoadGuiData()

	if len(os.Args) == 2 {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		p, err := play.DeserializePlaythrough(play.ReadFile(g.PlaybackFile))
		play.Check(err)
		g.playthrough = p
	case "Play":
		g.state = PlayScreen
		level, err := g.Level()
		play.Check(err)
		g.playthrough = play.NewPlaythrough(level, time.Now().UnixNano(),
			ReleaseVersion)
	default:
		play.Check(fmt.Errorf("invalid StartState: %s", g.StartState))
	}
	g.NewGame()

	if g.state == Playback {
		ebiten.SetWindowTitle(gameSummary(&g.playthrough))
	} else {
		ebiten.SetWindowTitle("Mason - " + g.username)
	}
	ebiten.SetWindowSize(int(g.layout.GameWidth), int(g.layout.GameHeight))
	err := ebiten.RunGame(&g)
	play.Check(err)
}

// NewGame restarts the simulation of the current playthrough from frame 0.
func (g *Gui) NewGame() {
	game, err := play.NewGameFromPlaythrough(&g.playthrough)
	play.Check(err)
	g.game = game
	g.frameIdx = 0
	g.visWorld = NewVisWorld()
	g.layout = NewLayout(g.playthrough.Level, g.CellPixelSize)
}
