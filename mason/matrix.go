package mason

// Mat is a dense matrix of blocks. A true value means the block is filled.
// It is used for the wall as well as for the shapes of bricks.
// The zero Mat is an empty 0x0 matrix.
type Mat struct {
	cells []bool
	size  Pt
}

func NewMat(size Pt) Mat {
	m := Mat{}
	m.size = size
	m.cells = make([]bool, size.X*size.Y)
	return m
}

// NewMatFromRows copies rows into a new Mat. rows must already be known to be
// rectangular, see checkTemplate.
func NewMatFromRows(rows [][]bool) Mat {
	if len(rows) == 0 {
		return Mat{}
	}
	m := NewMat(Pt{len(rows[0]), len(rows)})
	for y := range rows {
		copy(m.cells[y*m.size.X:(y+1)*m.size.X], rows[y])
	}
	return m
}

func (m *Mat) Set(pos Pt, val bool) {
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat) Get(pos Pt) bool {
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

func (m *Mat) Size() Pt {
	return m.size
}

func (m *Mat) Width() int {
	return m.size.X
}

func (m *Mat) Height() int {
	return m.size.Y
}

// Empty is true for a matrix without any cells.
func (m *Mat) Empty() bool {
	return m.size.X <= 0 || m.size.Y <= 0
}

// Row returns a copy of row y.
func (m *Mat) Row(y int) []bool {
	row := make([]bool, m.size.X)
	copy(row, m.cells[y*m.size.X:(y+1)*m.size.X])
	return row
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Mat) Rows() [][]bool {
	rows := make([][]bool, m.size.Y)
	for y := range rows {
		rows[y] = m.Row(y)
	}
	return rows
}

// Clone makes a copy that doesn't share storage with m.
func (m *Mat) Clone() Mat {
	c := Mat{size: m.size}
	c.cells = make([]bool, len(m.cells))
	copy(c.cells, m.cells)
	return c
}

func (m *Mat) Equal(other Mat) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of filled blocks.
func (m *Mat) Count() (n int) {
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return
}

func (m *Mat) Submat(pos, size Pt) Mat {
	sm := NewMat(size)
	i := Pt{}
	for i.Y = 0; i.Y < size.Y; i.Y++ {
		for i.X = 0; i.X < size.X; i.X++ {
			sm.Set(i, m.Get(pos.Plus(i)))
		}
	}
	return sm
}
