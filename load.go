package main

import (
	"embed"
	"os"
	"time"

	"github.com/marisvali/mason/play"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible.
	previousVal := play.CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		play.CheckCrashes = false
	}
	for {
		play.CheckFailed = nil
		cfg, err := play.LoadConfig(g.FSys, "data/config.yaml")
		play.Check(err)
		if play.CheckFailed == nil {
			g.Config = cfg
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	play.CheckCrashes = previousVal

	// Load the Go Regular font.
	fontData, err := opentype.Parse(goregular.TTF)
	play.Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    float64(g.CellPixelSize) * 0.75,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	play.Check(err)

	g.smallFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    float64(g.CellPixelSize) * 0.5,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	play.Check(err)
}

// FolderWatcher reports when the files inside a folder change, so that the
// config can be edited while the game runs.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	play.Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		play.Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
