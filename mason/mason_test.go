package mason

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMason(t testing.TB, width, height int) *Mason {
	m, err := NewMason(width, height)
	require.NoError(t, err)
	return m
}

// fillRow fills row y except for the columns in holes.
func fillRow(m *Mason, y int, holes ...int) {
	for x := 0; x < m.Width(); x++ {
		m.FillBlock(x, y)
	}
	for _, x := range holes {
		m.ClearBlock(x, y)
	}
}

func randomWall(r *rand.Rand, m *Mason) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if r.IntN(3) == 0 {
				m.FillBlock(x, y)
			}
		}
	}
}

func TestNewMason(t *testing.T) {
	m, err := NewMason(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, m.Width())
	assert.Equal(t, 20, m.Height())
	assert.Nil(t, m.Brick())
	assert.Empty(t, m.Queue())
	assert.Equal(t, int64(0), m.Generation())
	rows := m.Rows()
	require.Len(t, rows, 20)
	for _, row := range rows {
		assert.Equal(t, make([]bool, 10), row)
	}

	for _, size := range []Pt{{0, 5}, {5, 0}, {-1, 3}} {
		_, err = NewMason(size.X, size.Y)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestMason_ResetKeepsQueue(t *testing.T) {
	m := mustMason(t, 10, 20)
	m.QueueNextBrick(mustBrick(t, 0, 0, "1"))
	m.QueueNextBrick(mustBrick(t, 0, 0, "11"))
	m.Tick()
	m.FillBlock(3, 3)
	require.NotNil(t, m.Brick())

	m.Reset()
	assert.Nil(t, m.Brick())
	assert.False(t, m.IsFilled(3, 3))
	assert.Len(t, m.Queue(), 1)
	assert.Equal(t, int64(1), m.Generation())
}

func TestMason_Fits(t *testing.T) {
	r := rand.New(rand.NewPCG(0, 0))
	for range 200 {
		m := mustMason(t, r.IntN(8)+1, r.IntN(8)+1)
		randomWall(r, m)

		shape := NewMat(Pt{r.IntN(4) + 1, r.IntN(4) + 1})
		i := Pt{}
		for i.Y = 0; i.Y < shape.Height(); i.Y++ {
			for i.X = 0; i.X < shape.Width(); i.X++ {
				shape.Set(i, r.IntN(2) == 0)
			}
		}

		for y := -2; y < m.Height()+2; y++ {
			for x := -2; x < m.Width()+2; x++ {
				expected := x >= 0 && y >= 0 &&
					x+shape.Width() <= m.Width() &&
					y+shape.Height() <= m.Height()
				if expected {
					for i.Y = 0; i.Y < shape.Height(); i.Y++ {
						for i.X = 0; i.X < shape.Width(); i.X++ {
							if shape.Get(i) && m.wall.Get(Pt{x + i.X, y + i.Y}) {
								expected = false
							}
						}
					}
				}
				assert.Equal(t, expected, m.Fits(shape, x, y))
			}
		}
	}
}

func TestMason_BrickLandsOnFloor(t *testing.T) {
	m := mustMason(t, 10, 20)
	m.QueueNextBrick(mustBrick(t, 4, 0, "11", "11"))
	e := m.DequeueBrick()
	assert.True(t, e.Spawned)
	assert.False(t, e.GameOver)
	require.NotNil(t, m.Brick())

	var landed Event
	for range 19 {
		landed = landed.Merge(m.Tick())
	}
	assert.Nil(t, m.Brick())
	assert.True(t, landed.Landed)
	assert.Empty(t, landed.Cleared)

	for _, p := range []Pt{{4, 19}, {5, 19}, {4, 18}, {5, 18}} {
		assert.True(t, m.IsFilled(p.X, p.Y), "%v", p)
	}
	wall := m.Wall()
	assert.Equal(t, 4, wall.Count())
}

func TestMason_TickNeverDropsAndDequeues(t *testing.T) {
	m := mustMason(t, 4, 4)

	// Nothing to do.
	e := m.Tick()
	assert.Equal(t, Event{}, e)

	m.QueueNextBrick(mustBrick(t, 0, 0, "1"))
	m.QueueNextBrick(mustBrick(t, 2, 0, "1"))

	e = m.Tick()
	assert.True(t, e.Spawned)
	assert.False(t, e.Moved)
	assert.Equal(t, Pt{0, 0}, m.Brick().Pos())

	e = m.Tick()
	assert.True(t, e.Moved)
	assert.False(t, e.Spawned)
	assert.Equal(t, Pt{0, 1}, m.Brick().Pos())

	// Land the first brick. The tick that lays it doesn't dequeue.
	m.Tick()
	m.Tick()
	e = m.Tick()
	assert.True(t, e.Landed)
	assert.False(t, e.Spawned)
	assert.Nil(t, m.Brick())
	assert.Len(t, m.Queue(), 1)

	e = m.Tick()
	assert.True(t, e.Spawned)
	assert.Equal(t, Pt{2, 0}, m.Brick().Pos())
}

func TestMason_DropBrickOnFloorLaysImmediately(t *testing.T) {
	m := mustMason(t, 5, 5)
	m.QueueNextBrick(mustBrick(t, 1, 3, "11", "11"))
	m.DequeueBrick()

	e := m.DropBrick(1)
	assert.True(t, e.Landed)
	assert.False(t, e.Moved)
	assert.Nil(t, m.Brick())
	assert.True(t, m.IsFilled(1, 3))
	assert.True(t, m.IsFilled(2, 4))

	// Resting on filled blocks counts the same.
	m.QueueNextBrick(mustBrick(t, 1, 2, "1"))
	m.DequeueBrick()
	e = m.DropBrick(3)
	assert.True(t, e.Landed)
	assert.False(t, e.Moved)
	assert.Nil(t, m.Brick())
	assert.True(t, m.IsFilled(1, 2))
}

func TestMason_DropBrickSeveralRows(t *testing.T) {
	m := mustMason(t, 5, 10)
	m.QueueNextBrick(mustBrick(t, 0, 0, "1"))
	m.DequeueBrick()

	e := m.DropBrick(4)
	assert.True(t, e.Moved)
	assert.False(t, e.Landed)
	assert.Equal(t, 4, m.Brick().Y())

	// More rows than there is room for: moves to the floor, then lands.
	e = m.DropBrick(100)
	assert.True(t, e.Moved)
	assert.True(t, e.Landed)
	assert.True(t, m.IsFilled(0, 9))

	// Nothing happens without a brick.
	assert.Equal(t, Event{}, m.DropBrick(1))
	assert.Equal(t, Event{}, m.LayBrick())
}

func TestMason_DropBrickZero(t *testing.T) {
	m := mustMason(t, 5, 5)
	m.QueueNextBrick(mustBrick(t, 0, 4, "1"))
	m.DequeueBrick()
	assert.Equal(t, Event{}, m.DropBrick(0))
	assert.NotNil(t, m.Brick())
}

func TestMason_Slide(t *testing.T) {
	m := mustMason(t, 10, 20)
	m.QueueNextBrick(mustBrick(t, 7, 0, "1"))
	m.DequeueBrick()

	// Partial success: only two of the five steps fit.
	assert.True(t, m.SlideBrickRight(5))
	assert.Equal(t, 9, m.Brick().X())
	assert.False(t, m.SlideBrickRight(1))
	assert.Equal(t, 9, m.Brick().X())

	assert.True(t, m.SlideBrickLeft(3))
	assert.Equal(t, 6, m.Brick().X())

	m.FillBlock(4, 0)
	assert.True(t, m.SlideBrickLeft(3))
	assert.Equal(t, 5, m.Brick().X())
	assert.Equal(t, 0, m.Brick().Y())
}

func TestMason_TranslateAlternatesAxes(t *testing.T) {
	m := mustMason(t, 10, 10)
	m.FillBlock(1, 0)
	m.QueueNextBrick(mustBrick(t, 0, 0, "1"))
	m.DequeueBrick()

	// The first step right is blocked, the first step down is not, after
	// that the second step right succeeds.
	assert.True(t, m.TranslateBrick(2, 2))
	assert.Equal(t, Pt{1, 2}, m.Brick().Pos())

	assert.True(t, m.TranslateBrick(-1, -2))
	assert.Equal(t, Pt{0, 0}, m.Brick().Pos())

	// Translating never lays the brick.
	assert.True(t, m.TranslateBrick(0, 50))
	assert.Equal(t, Pt{0, 9}, m.Brick().Pos())
	assert.False(t, m.TranslateBrick(0, 1))
	assert.NotNil(t, m.Brick())
}

func TestMason_Rotate(t *testing.T) {
	m := mustMason(t, 10, 3)
	m.QueueNextBrick(mustBrick(t, 0, 0, "1111"))
	m.DequeueBrick()

	// A vertical I needs 4 rows.
	assert.False(t, m.RotateBrick(1))
	assert.Equal(t, 0, m.Brick().Orientation())
	blocks := m.Brick().Blocks()
	assert.Equal(t, Pt{4, 1}, blocks.Size())

	m = mustMason(t, 10, 10)
	m.QueueNextBrick(mustBrick(t, 3, 3, "010", "111"))
	m.DequeueBrick()
	assert.True(t, m.RotateBrick(1))
	assert.Equal(t, 1, m.Brick().Orientation())
	blocks = m.Brick().Blocks()
	assert.Equal(t, mustTemplate(t, "10", "11", "10"), blocks.Rows())
	assert.Equal(t, Pt{3, 3}, m.Brick().Pos())

	// Blocked by the wall content: the next orientation would cover (5, 3).
	m.FillBlock(5, 3)
	assert.False(t, m.RotateBrick(1))
	assert.Equal(t, 1, m.Brick().Orientation())

	assert.True(t, m.RotateBrick(-1))
	assert.Equal(t, 0, m.Brick().Orientation())

	// Four turns in total bring the brick back.
	m.ClearBlock(5, 3)
	original := m.Brick().Blocks()
	for range 4 {
		require.True(t, m.RotateBrick(1))
	}
	assert.Equal(t, 0, m.Brick().Orientation())
	assert.True(t, original.Equal(m.Brick().Blocks()))
}

func TestMason_FullRowIsDeleted(t *testing.T) {
	m := mustMason(t, 10, 20)
	fillRow(m, 19, 9)
	m.FillBlock(0, 18)
	m.FillBlock(3, 17)

	m.QueueNextBrick(mustBrick(t, 9, 0, "1"))
	m.DequeueBrick()
	e := m.DropBrick(20)

	assert.True(t, e.Landed)
	assert.Equal(t, []int{19}, e.Cleared)
	assert.Nil(t, m.Brick())

	// Everything above moved down one row.
	assert.True(t, m.IsFilled(0, 19))
	assert.True(t, m.IsFilled(3, 18))
	wall := m.Wall()
	assert.Equal(t, 2, wall.Count())
	assert.False(t, m.RowHasEmpty(-1))
	assert.True(t, m.RowHasEmpty(19))
}

func TestMason_AlmostFullRowIsKept(t *testing.T) {
	m := mustMason(t, 10, 20)
	fillRow(m, 19, 0, 9)

	m.QueueNextBrick(mustBrick(t, 9, 0, "1"))
	m.DequeueBrick()
	e := m.DropBrick(20)

	assert.True(t, e.Landed)
	assert.Empty(t, e.Cleared)
	assert.True(t, m.RowHasEmpty(19))
	assert.True(t, m.IsFilled(9, 19))
	assert.True(t, m.IsEmpty(0, 19))
}

func TestMason_SeveralRowsCleared(t *testing.T) {
	m := mustMason(t, 4, 6)
	fillRow(m, 5, 3)
	fillRow(m, 4, 3)
	fillRow(m, 3, 2, 3)
	fillRow(m, 2, 3)
	m.FillBlock(0, 1)

	// A vertical I on column 3 completes rows 2, 4 and 5 but not 3.
	m.QueueNextBrick(mustBrick(t, 3, 0, "1", "1", "1", "1"))
	m.DequeueBrick()
	e := m.DropBrick(10)

	assert.True(t, e.Landed)
	assert.Equal(t, []int{2, 4, 5}, e.Cleared)
	assert.Equal(t, [][]bool{
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
		{true, false, false, false},
		{true, true, false, true},
	}, m.Rows())
}

func TestMason_DeleteRow(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		m := mustMason(t, r.IntN(10)+1, r.IntN(10)+1)
		randomWall(r, m)
		before := m.Rows()
		y := r.IntN(m.Height())

		m.DeleteRow(y)
		after := m.Rows()

		assert.Equal(t, make([]bool, m.Width()), after[0])
		for row := 1; row <= y; row++ {
			assert.Equal(t, before[row-1], after[row])
		}
		for row := y + 1; row < m.Height(); row++ {
			assert.Equal(t, before[row], after[row])
		}
	}

	// Out of range rows are ignored.
	m := mustMason(t, 3, 3)
	m.FillBlock(1, 1)
	m.DeleteRow(3)
	m.DeleteRow(-1)
	assert.True(t, m.IsFilled(1, 1))
}

func TestMason_ImplodeBlock(t *testing.T) {
	m := mustMason(t, 1, 6)
	m.FillBlock(0, 0)
	m.FillBlock(0, 2)
	m.FillBlock(0, 4)
	m.FillBlock(0, 5)

	m.ImplodeBlock(0, 4)
	assert.Equal(t, [][]bool{{false}, {false}, {false}, {true}, {true}, {true}}, m.Rows())

	m.ImplodeBlock(0, 5)
	assert.Equal(t, [][]bool{{false}, {false}, {false}, {false}, {true}, {true}}, m.Rows())
}

func TestMason_CascadeClear(t *testing.T) {
	m := mustMason(t, 3, 5)
	m.SetClearMode(ClearCascade)
	assert.Equal(t, ClearCascade, m.ClearMode())

	// Row 4 is missing column 2. Columns 0 and 1 have blocks floating above
	// gaps.
	fillRow(m, 4, 2)
	m.FillBlock(0, 1)
	m.FillBlock(1, 2)

	// A vertical brick lands on rows 3 and 4 of column 2.
	m.QueueNextBrick(mustBrick(t, 2, 0, "1", "1"))
	m.DequeueBrick()
	e := m.DropBrick(10)
	require.True(t, e.Landed)

	// Collapsing row 4 pulls the floating blocks and the top of the brick
	// down into row 4, which is full again and collapses too.
	assert.Equal(t, []int{4, 4}, e.Cleared)
	wall := m.Wall()
	assert.Equal(t, 0, wall.Count())
}

func TestMason_ShiftClearKeepsGaps(t *testing.T) {
	m := mustMason(t, 3, 5)
	fillRow(m, 4, 2)
	m.FillBlock(0, 1)
	m.FillBlock(1, 2)

	m.QueueNextBrick(mustBrick(t, 2, 0, "1", "1"))
	m.DequeueBrick()
	e := m.DropBrick(10)
	require.True(t, e.Landed)

	assert.Equal(t, []int{4}, e.Cleared)
	assert.Equal(t, [][]bool{
		{false, false, false},
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{false, false, true},
	}, m.Rows())
}

func TestMason_DequeueCollisionResets(t *testing.T) {
	m := mustMason(t, 10, 20)
	m.FillBlock(4, 0)
	m.FillBlock(0, 19)
	m.QueueNextBrick(mustBrick(t, 4, 0, "11", "11"))
	m.QueueNextBrick(mustBrick(t, 4, 0, "1"))

	var e Event
	require.NotPanics(t, func() { e = m.DequeueBrick() })
	assert.True(t, e.GameOver)
	assert.True(t, e.Spawned)
	assert.Nil(t, m.Brick())
	wall := m.Wall()
	assert.Equal(t, 0, wall.Count())
	assert.Equal(t, int64(1), m.Generation())
	assert.Len(t, m.Queue(), 1)

	// Out of bounds is the same as colliding.
	m = mustMason(t, 3, 3)
	m.QueueNextBrick(mustBrick(t, 2, 0, "11"))
	e = m.DequeueBrick()
	assert.True(t, e.GameOver)

	// An empty queue does nothing.
	m = mustMason(t, 3, 3)
	m.FillBlock(1, 1)
	assert.Equal(t, Event{}, m.DequeueBrick())
	assert.True(t, m.IsFilled(1, 1))
}

func TestMason_LayBrickClipsOutsideBlocks(t *testing.T) {
	m := mustMason(t, 3, 3)
	m.brick = mustBrick(t, 2, 2, "11", "11")
	var e Event
	require.NotPanics(t, func() { e = m.LayBrick() })
	assert.True(t, e.Landed)
	assert.True(t, m.IsFilled(2, 2))
	wall := m.Wall()
	assert.Equal(t, 1, wall.Count())
	assert.Nil(t, m.Brick())
}

func TestMason_BlockPrimitivesOutOfRange(t *testing.T) {
	m := mustMason(t, 3, 3)
	assert.NotPanics(t, func() {
		m.FillBlock(-1, 0)
		m.FillBlock(3, 0)
		m.ClearBlock(0, 3)
		m.DeleteBlock(5, 5)
		m.ImplodeBlock(-1, -1)
		m.CollapseRow(7)
	})
	assert.False(t, m.IsFilled(-1, 0))
	assert.False(t, m.IsEmpty(-1, 0))
	assert.True(t, m.IsEmpty(0, 0))
}

func TestMason_StateBytes(t *testing.T) {
	play := func(moves int) *Mason {
		m := mustMason(t, 6, 8)
		for range 3 {
			m.QueueNextBrick(mustBrick(t, 2, 0, "010", "111"))
		}
		for i := range moves {
			m.Tick()
			if i%3 == 0 {
				m.RotateBrick(1)
			}
			if i%4 == 0 {
				m.SlideBrickLeft(1)
			}
		}
		return m
	}

	assert.Equal(t, play(15).StateBytes(), play(15).StateBytes())
	assert.NotEqual(t, play(15).StateBytes(), play(16).StateBytes())
	assert.NotEqual(t, play(0).StateBytes(), play(1).StateBytes())
}

// BenchmarkMason_Game runs bricks down a wall until it fills up and resets.
func BenchmarkMason_Game(b *testing.B) {
	template := mustTemplate(b, "010", "111")
	m := mustMason(b, 10, 20)
	r := rand.New(rand.NewPCG(0, 0))
	for b.Loop() {
		if len(m.Queue()) == 0 {
			brick, _ := NewBrick(template, r.IntN(8), 0)
			m.QueueNextBrick(brick)
		}
		m.Tick()
		m.SlideBrickLeft(r.IntN(3) - 1)
		m.RotateBrick(r.IntN(3) - 1)
	}
}
