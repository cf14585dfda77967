package mason

import "fmt"

// InvalidShapeError is returned when a brick template is not a non-empty
// rectangular matrix of blocks.
type InvalidShapeError struct {
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return "invalid brick template: " + e.Reason
}

// Brick is a floating piece. It has a template (its canonical shape), a
// position on the wall and an orientation.
//
// The blocks of a brick are the template rotated according to the
// orientation. They are cached and are always written together with the
// orientation, never separately.
type Brick struct {
	template    Mat
	orientation int
	pos         Pt
	blocks      Mat
}

func checkTemplate(template [][]bool) error {
	if len(template) == 0 {
		return &InvalidShapeError{"template has no rows"}
	}
	if len(template[0]) == 0 {
		return &InvalidShapeError{"template has no columns"}
	}
	for y := range template {
		if len(template[y]) != len(template[0]) {
			return &InvalidShapeError{fmt.Sprintf(
				"row %d has %d blocks, expected %d",
				y, len(template[y]), len(template[0]))}
		}
	}
	return nil
}

// ParseTemplate builds a template out of rows written as strings of '0'
// (empty) and '1' (filled), for example:
//
//	ParseTemplate("010",
//	              "111")
func ParseTemplate(lines ...string) ([][]bool, error) {
	template := make([][]bool, len(lines))
	for y, line := range lines {
		template[y] = make([]bool, len(line))
		for x, c := range line {
			switch c {
			case '0':
			case '1':
				template[y][x] = true
			default:
				return nil, &InvalidShapeError{fmt.Sprintf(
					"unexpected character %q at row %d, column %d", c, y, x)}
			}
		}
	}
	if err := checkTemplate(template); err != nil {
		return nil, err
	}
	return template, nil
}

// NewBrick creates a brick at (x, y) with orientation 0.
func NewBrick(template [][]bool, x, y int) (*Brick, error) {
	return NewOrientedBrick(template, x, y, 0)
}

// NewOrientedBrick creates a brick at (x, y) with orientation r. The template
// is copied, later changes to the slice don't affect the brick.
func NewOrientedBrick(template [][]bool, x, y, r int) (*Brick, error) {
	if err := checkTemplate(template); err != nil {
		return nil, err
	}
	b := &Brick{}
	b.template = NewMatFromRows(template)
	b.pos = Pt{x, y}
	b.SetOrientation(r)
	return b, nil
}

// trueMod is the modulo operation that never returns a negative value.
func trueMod(n, base int) int {
	return (n%base + base) % base
}

func (b *Brick) X() int {
	return b.pos.X
}

func (b *Brick) Y() int {
	return b.pos.Y
}

func (b *Brick) Pos() Pt {
	return b.pos
}

func (b *Brick) Orientation() int {
	return b.orientation
}

// Width of the template, which is the width of the blocks only for even
// orientations.
func (b *Brick) Width() int {
	return b.template.Width()
}

// Height of the template.
func (b *Brick) Height() int {
	return b.template.Height()
}

func (b *Brick) Template() Mat {
	return b.template.Clone()
}

// Blocks returns the template as it looks in the current orientation.
func (b *Brick) Blocks() Mat {
	return b.blocks.Clone()
}

// Move sets the position without any validation. Checking that the brick
// fits at the new position is the job of the Mason.
func (b *Brick) Move(x, y int) {
	b.pos = Pt{x, y}
}

// SetOrientation sets the orientation to o mod 4 and recomputes the blocks.
func (b *Brick) SetOrientation(o int) {
	b.orientation = trueMod(o, 4)
	b.blocks = b.Rotated(0)
}

// setBlockOrientation commits blocks which were already computed with
// Rotated(o - orientation).
func (b *Brick) setBlockOrientation(blocks Mat, o int) {
	b.blocks = blocks
	b.orientation = trueMod(o, 4)
}

// Rotated returns the template rotated by orientation+delta quarter turns,
// without changing the brick. Positive values turn clockwise.
//
// Each orientation is a mirror on X, a mirror on Y and a transpose:
//
//	0: nothing
//	1: mirror on Y, then transpose (clockwise)
//	2: mirror on X and on Y
//	3: mirror on X, then transpose (counter-clockwise)
func (b *Brick) Rotated(delta int) Mat {
	o := trueMod(b.orientation+delta, 4)
	transpose := o%2 == 1
	mirrorX := o >= 2
	mirrorY := o == 1 || o == 2

	size := b.template.Size()
	if transpose {
		size = size.Transposed()
	}
	rotated := NewMat(size)

	src := Pt{}
	for src.Y = 0; src.Y < b.template.Height(); src.Y++ {
		for src.X = 0; src.X < b.template.Width(); src.X++ {
			dst := src
			if mirrorX {
				dst.X = b.template.Width() - 1 - src.X
			}
			if mirrorY {
				dst.Y = b.template.Height() - 1 - src.Y
			}
			if transpose {
				dst = dst.Transposed()
			}
			rotated.Set(dst, b.template.Get(src))
		}
	}
	return rotated
}
