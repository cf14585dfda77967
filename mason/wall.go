package mason

func (m *Mason) isColumn(x int) bool {
	return x >= 0 && x < m.width
}

func (m *Mason) isRow(y int) bool {
	return y >= 0 && y < m.height
}

func (m *Mason) set(x, y int, v bool) {
	if m.isColumn(x) && m.isRow(y) {
		m.wall.Set(Pt{x, y}, v)
	}
}

// IsFilled is false for blocks outside of the wall.
func (m *Mason) IsFilled(x, y int) bool {
	return m.isColumn(x) && m.isRow(y) && m.wall.Get(Pt{x, y})
}

// IsEmpty is false for blocks outside of the wall.
func (m *Mason) IsEmpty(x, y int) bool {
	return m.isColumn(x) && m.isRow(y) && !m.wall.Get(Pt{x, y})
}

// FillBlock fills a block of the wall. Blocks outside of the wall are ignored.
func (m *Mason) FillBlock(x, y int) {
	m.set(x, y, true)
}

// ClearBlock empties a block of the wall. Blocks outside of the wall are
// ignored.
func (m *Mason) ClearBlock(x, y int) {
	m.set(x, y, false)
}

// RowHasEmpty is false for rows outside of the wall.
func (m *Mason) RowHasEmpty(y int) bool {
	if !m.isRow(y) {
		return false
	}
	for x := 0; x < m.width; x++ {
		if !m.wall.Get(Pt{x, y}) {
			return true
		}
	}
	return false
}

// DeleteBlock clears the block at (x, y) and moves every block above it in the
// same column down by one. The top block of the column becomes empty.
func (m *Mason) DeleteBlock(x, y int) {
	if !m.isColumn(x) || !m.isRow(y) {
		return
	}
	for row := y; row > 0; row-- {
		m.wall.Set(Pt{x, row}, m.wall.Get(Pt{x, row - 1}))
	}
	m.wall.Set(Pt{x, 0}, false)
}

// ImplodeBlock clears the block at (x, y) and lets the blocks above it in the
// same column fall until there are no gaps between (x, y) and them.
func (m *Mason) ImplodeBlock(x, y int) {
	if !m.isColumn(x) || !m.isRow(y) {
		return
	}
	m.wall.Set(Pt{x, y}, false)
	to := y
	for row := y; row >= 0; row-- {
		if m.wall.Get(Pt{x, row}) {
			m.wall.Set(Pt{x, row}, false)
			m.wall.Set(Pt{x, to}, true)
			to--
		}
	}
}

// DeleteRow deletes every block of row y: the row's content is discarded,
// everything above moves down one row and the top row becomes empty.
func (m *Mason) DeleteRow(y int) {
	if !m.isRow(y) {
		return
	}
	for x := m.width - 1; x >= 0; x-- {
		m.DeleteBlock(x, y)
	}
}

// CollapseRow implodes every block of row y.
func (m *Mason) CollapseRow(y int) {
	if !m.isRow(y) {
		return
	}
	for x := m.width - 1; x >= 0; x-- {
		m.ImplodeBlock(x, y)
	}
}

// collapseFullRows collapses full rows until there are none left and returns
// the rows it collapsed, in order.
func (m *Mason) collapseFullRows() (cleared []int) {
	for {
		full := -1
		for y := 0; y < m.height; y++ {
			if !m.RowHasEmpty(y) {
				full = y
				break
			}
		}
		if full < 0 {
			return
		}
		m.CollapseRow(full)
		cleared = append(cleared, full)
	}
}
