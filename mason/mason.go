// Package mason implements the state of a Tetris-like game.
//
// Terminology:
//   - The wall is the grid of blocks that have settled.
//   - A block is a 1x1 unit of the wall. A filled block has collision, an
//     empty block doesn't. Empty is the default.
//   - A brick is a set of blocks floating over the wall, not attached to it.
//   - Laying a brick fills the blocks of the wall under the brick's filled
//     blocks and removes the brick.
//   - Deleting a block clears it and shifts everything above it down by one.
//   - Imploding a block clears it and makes everything above it fall until
//     there are no gaps left.
//   - A full row (no empty blocks) is deleted, block by block.
//
// Mason is not safe for concurrent use. The caller drives it from a single
// goroutine: Tick on an interval, the other methods in response to input.
package mason

import "errors"

var ErrInvalidSize = errors.New("mason: width and height must be positive")

// ClearMode says what happens to full rows when a brick is laid.
type ClearMode int

const (
	// ClearShift deletes a full row and shifts everything above it down by
	// exactly one row.
	ClearShift ClearMode = iota
	// ClearCascade collapses a full row: blocks above fall until they rest on
	// something. Rows that fill up as a result are collapsed as well.
	ClearCascade
)

// Event reports what happened during a call that changes the game.
type Event struct {
	Moved    bool // the active brick moved down
	Spawned  bool // a brick was taken from the queue
	Landed   bool // the active brick was laid on the wall
	GameOver bool // a dequeued brick didn't fit and the wall was reset
	// Cleared holds the rows that were removed, top to bottom, as indexes at
	// the moment each one was removed.
	Cleared []int
}

// Merge combines the events of several calls, for example all the calls made
// during one frame.
func (e Event) Merge(other Event) Event {
	e.Moved = e.Moved || other.Moved
	e.Spawned = e.Spawned || other.Spawned
	e.Landed = e.Landed || other.Landed
	e.GameOver = e.GameOver || other.GameOver
	e.Cleared = append(e.Cleared, other.Cleared...)
	return e
}

type Mason struct {
	width      int
	height     int
	wall       Mat
	brick      *Brick
	brickQueue []*Brick
	generation int64
	clearMode  ClearMode
}

func NewMason(width, height int) (*Mason, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	m := &Mason{width: width, height: height}
	m.Reset()
	m.generation = 0
	return m, nil
}

// Reset empties the wall and removes the active brick. The queue is kept.
func (m *Mason) Reset() {
	m.wall = NewMat(Pt{m.width, m.height})
	m.brick = nil
	m.generation++
}

func (m *Mason) Width() int {
	return m.width
}

func (m *Mason) Height() int {
	return m.height
}

// Generation is the number of resets since the Mason was created. Game-over
// resets the wall, so a change in Generation is how a driver can tell.
func (m *Mason) Generation() int64 {
	return m.generation
}

func (m *Mason) SetClearMode(mode ClearMode) {
	m.clearMode = mode
}

func (m *Mason) ClearMode() ClearMode {
	return m.clearMode
}

// Rows returns a copy of the wall, row 0 being the top row.
func (m *Mason) Rows() [][]bool {
	return m.wall.Rows()
}

// Wall returns a copy of the wall.
func (m *Mason) Wall() Mat {
	return m.wall.Clone()
}

// Brick returns the active brick, or nil if there is none. The brick must
// not be changed by the caller.
func (m *Mason) Brick() *Brick {
	return m.brick
}

// Queue returns the bricks waiting to become active, first one first.
func (m *Mason) Queue() []*Brick {
	q := make([]*Brick, len(m.brickQueue))
	copy(q, m.brickQueue)
	return q
}

// Tick advances the game by one step: the active brick drops by one row or,
// if there is no active brick, the next one is taken from the queue.
func (m *Mason) Tick() Event {
	if m.hasValidBrick() {
		return m.DropBrick(1)
	}
	return m.DequeueBrick()
}

func (m *Mason) SlideBrickRight(n int) bool {
	return m.TranslateBrick(n, 0)
}

func (m *Mason) SlideBrickLeft(n int) bool {
	return m.TranslateBrick(-n, 0)
}

// DropBrick moves the active brick down n rows, one at a time. As soon as the
// brick can't go down, it is laid on the wall.
func (m *Mason) DropBrick(n int) (e Event) {
	if !m.hasValidBrick() {
		return
	}
	for range n {
		if !m.stepBrick(0, 1) {
			return e.Merge(m.LayBrick())
		}
		e.Moved = true
	}
	return
}

// RotateBrick turns the active brick by n quarter turns (clockwise for
// positive n) if the rotated shape fits where the brick is.
func (m *Mason) RotateBrick(n int) bool {
	if !m.hasValidBrick() {
		return false
	}
	rotated := m.brick.Rotated(n)
	if !m.Fits(rotated, m.brick.X(), m.brick.Y()) {
		return false
	}
	m.brick.setBlockOrientation(rotated, m.brick.Orientation()+n)
	return true
}

func (m *Mason) QueueNextBrick(b *Brick) {
	m.brickQueue = append(m.brickQueue, b)
}

// DequeueBrick makes the first brick in the queue the active brick. If it
// doesn't fit where it is, the game is over and the wall is reset.
func (m *Mason) DequeueBrick() (e Event) {
	if len(m.brickQueue) == 0 {
		return
	}
	m.brick = m.brickQueue[0]
	m.brickQueue[0] = nil
	m.brickQueue = m.brickQueue[1:]
	e.Spawned = true

	if !m.Fits(m.brick.blocks, m.brick.X(), m.brick.Y()) {
		m.Reset()
		e.GameOver = true
	}
	return
}

// LayBrick fills the wall under the active brick, removes the rows that
// became full and discards the brick.
func (m *Mason) LayBrick() (e Event) {
	if !m.hasValidBrick() {
		return
	}

	b := m.brick
	m.applyShape(b.blocks, b.X(), b.Y())
	e.Landed = true

	switch m.clearMode {
	case ClearCascade:
		e.Cleared = m.collapseFullRows()
	default:
		for y := b.Y(); y < b.Y()+b.blocks.Height(); y++ {
			if m.isRow(y) && !m.RowHasEmpty(y) {
				m.DeleteRow(y)
				e.Cleared = append(e.Cleared, y)
			}
		}
	}

	m.brick = nil
	return
}

// TranslateBrick moves the active brick by (dx, dy), one block at a time,
// alternating between X and Y while both still have distance left. A step
// that would collide or go out of the wall is skipped. Returns true if the
// brick moved at all.
func (m *Mason) TranslateBrick(dx, dy int) (moved bool) {
	if !m.hasValidBrick() {
		return false
	}
	for dx != 0 || dy != 0 {
		if dx != 0 {
			sx := sign(dx)
			dx -= sx
			if m.stepBrick(sx, 0) {
				moved = true
			}
		}
		if dy != 0 {
			sy := sign(dy)
			dy -= sy
			if m.stepBrick(0, sy) {
				moved = true
			}
		}
	}
	return
}

// stepBrick moves the brick by one block in the direction of (dx, dy) if the
// new position is valid.
func (m *Mason) stepBrick(dx, dy int) bool {
	x := m.brick.X() + sign(dx)
	y := m.brick.Y() + sign(dy)
	if !m.Fits(m.brick.blocks, x, y) {
		return false
	}
	m.brick.Move(x, y)
	return true
}

func sign(n int) int {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}

func (m *Mason) hasValidBrick() bool {
	return m.brick != nil && !m.brick.blocks.Empty()
}

// InBounds checks that shape placed with its top-left corner at (x, y) is
// entirely inside the wall.
func (m *Mason) InBounds(shape Mat, x, y int) bool {
	return x >= 0 && x+shape.Width() <= m.width &&
		y >= 0 && y+shape.Height() <= m.height
}

// Fits checks that shape placed at (x, y) is inside the wall and none of its
// filled blocks overlaps a filled block of the wall.
func (m *Mason) Fits(shape Mat, x, y int) bool {
	if !m.InBounds(shape, x, y) {
		return false
	}
	s := Pt{}
	for s.Y = 0; s.Y < shape.Height(); s.Y++ {
		for s.X = 0; s.X < shape.Width(); s.X++ {
			if shape.Get(s) && m.IsFilled(x+s.X, y+s.Y) {
				return false
			}
		}
	}
	return true
}

// applyShape fills the wall under the filled blocks of shape. Blocks that fall
// outside the wall are ignored.
func (m *Mason) applyShape(shape Mat, x, y int) {
	s := Pt{}
	for s.Y = 0; s.Y < shape.Height(); s.Y++ {
		for s.X = 0; s.X < shape.Width(); s.X++ {
			if shape.Get(s) {
				m.FillBlock(x+s.X, y+s.Y)
			}
		}
	}
}
