package play

// PlayerInput is everything the player did during one frame.
// It is stored in playthroughs as is so it only has fixed-size fields.
type PlayerInput struct {
	MoveLeft   bool
	MoveRight  bool
	RotateCW   bool
	RotateCCW  bool
	SoftDrop   bool
	HardDrop   bool
	ResetWorld bool
}

// EventOccurred is true if the player did anything at all.
func (p *PlayerInput) EventOccurred() bool {
	return p.MoveLeft || p.MoveRight || p.RotateCW || p.RotateCCW ||
		p.SoftDrop || p.HardDrop || p.ResetWorld
}
