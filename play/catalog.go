package play

import "github.com/marisvali/mason/mason"

// Piece is a named brick template.
type Piece struct {
	Name     string
	Template [][]bool
}

func mustPiece(name string, lines ...string) Piece {
	template, err := mason.ParseTemplate(lines...)
	Check(err)
	return Piece{name, template}
}

// Catalog is the set of pieces the feeder picks from. The templates are tight:
// a template's bounding box is what the Mason checks against the wall, so an
// empty border row would keep a piece from reaching the floor.
var Catalog = []Piece{
	mustPiece("O",
		"11",
		"11"),
	mustPiece("I",
		"1111"),
	mustPiece("S",
		"011",
		"110"),
	mustPiece("Z",
		"110",
		"011"),
	mustPiece("T",
		"010",
		"111"),
	mustPiece("J",
		"100",
		"111"),
	mustPiece("L",
		"001",
		"111"),
}

// SpawnPos is where a new brick with the given template appears: centered
// horizontally, touching the top of the wall.
func SpawnPos(wallWidth int64, template [][]bool) mason.Pt {
	return mason.Pt{X: (int(wallWidth) - len(template[0])) / 2, Y: 0}
}
