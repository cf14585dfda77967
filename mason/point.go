package mason

// Pt is a position on the wall, in blocks. X grows to the right and Y grows
// downwards, so Pt{0, 0} is the top-left block.
type Pt struct {
	X int
	Y int
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p *Pt) Add(other Pt) {
	p.X = p.X + other.X
	p.Y = p.Y + other.Y
}

// Transposed swaps X and Y.
func (p Pt) Transposed() Pt {
	return Pt{p.Y, p.X}
}
