package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marisvali/mason/mason"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in sub-images. I
	// think in local coordinates when working with sub-images, so translate
	// r to the parent's coordinates here.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

// DrawCell fills the cell at pos, in a grid of cells of cellSize pixels whose
// top-left corner is the top-left corner of screen. A one pixel gap is left
// around the cell so that neighboring cells are distinguishable.
func DrawCell(screen *ebiten.Image, pos mason.Pt, cellSize int64, clr color.Color) {
	minPt := screen.Bounds().Min
	x := float32(minPt.X) + float32(int64(pos.X)*cellSize) + 1
	y := float32(minPt.Y) + float32(int64(pos.Y)*cellSize) + 1
	size := float32(cellSize) - 2
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
}

// DrawShape draws the filled blocks of shape with its top-left corner at pos.
func DrawShape(screen *ebiten.Image, shape mason.Mat, pos mason.Pt,
	cellSize int64, clr color.Color) {
	i := mason.Pt{}
	for i.Y = 0; i.Y < shape.Height(); i.Y++ {
		for i.X = 0; i.X < shape.Width(); i.X++ {
			if shape.Get(i) {
				DrawCell(screen, pos.Plus(i), cellSize, clr)
			}
		}
	}
}

// DrawBand fills a full-width horizontal band covering row.
func DrawBand(screen *ebiten.Image, row int, cellSize int64, clr color.Color) {
	b := screen.Bounds()
	y := float32(b.Min.Y) + float32(int64(row)*cellSize)
	vector.DrawFilledRect(screen, float32(b.Min.X), y, float32(b.Dx()),
		float32(cellSize), clr, false)
}
