package play

import (
	"bytes"
	"fmt"

	"github.com/marisvali/mason/mason"
)

// SimulationVersion identifies the behavior of Game.Step. Two executables with
// the same SimulationVersion produce the same Game from the same playthrough.
// It must change every time the simulation changes in a way that a recorded
// playthrough would notice.
const SimulationVersion = 1

// Game runs a Mason the way a player experiences it: one Step per frame, a
// Tick every TickFrames frames, and a queue that never runs out of bricks.
type Game struct {
	Level
	Mason       *mason.Mason
	Rand        Rand
	FrameIdx    int64
	Bricks      int64 // bricks laid on the wall
	Lines       int64 // rows cleared
	GameOvers   int64
	LastEvent   mason.Event // everything that happened during the last Step
	JustCleared []int       // rows cleared during the last Step
}

func NewGame(l Level, seed int64) (*Game, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	m, err := mason.NewMason(int(l.Width), int(l.Height))
	if err != nil {
		return nil, err
	}
	m.SetClearMode(mason.ClearMode(l.ClearMode))

	g := &Game{Level: l, Mason: m, Rand: NewRand(seed)}
	g.feed()
	return g, nil
}

// NewGameFromPlaythrough creates the Game a playthrough was recorded with.
func NewGameFromPlaythrough(p *Playthrough) (*Game, error) {
	if p.SimulationVersion != SimulationVersion {
		return nil, fmt.Errorf("can't replay this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion)
	}
	return NewGame(p.Level, p.Seed)
}

// feed tops up the queue with random pieces from the catalog.
func (g *Game) feed() {
	for int64(len(g.Mason.Queue())) < g.QueueSize {
		piece := Catalog[g.Rand.RInt(0, int64(len(Catalog))-1)]
		pos := SpawnPos(g.Width, piece.Template)
		b, err := mason.NewBrick(piece.Template, pos.X, pos.Y)
		Check(err)
		g.Mason.QueueNextBrick(b)
	}
}

// Next returns the brick that becomes active after the current one, or nil.
func (g *Game) Next() *mason.Brick {
	q := g.Mason.Queue()
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

// Step advances the game by one frame.
func (g *Game) Step(input PlayerInput) {
	m := g.Mason
	var e mason.Event

	if input.ResetWorld {
		m.Reset()
	}
	if input.RotateCW {
		m.RotateBrick(1)
	}
	if input.RotateCCW {
		m.RotateBrick(-1)
	}
	if input.MoveLeft {
		m.SlideBrickLeft(1)
	}
	if input.MoveRight {
		m.SlideBrickRight(1)
	}
	if input.SoftDrop {
		e = e.Merge(m.DropBrick(1))
	}
	if input.HardDrop {
		// One more row than the wall has is enough for any brick to land.
		e = e.Merge(m.DropBrick(m.Height() + 1))
	}

	g.FrameIdx++
	if g.FrameIdx%g.TickFrames == 0 {
		g.feed()
		e = e.Merge(m.Tick())
	}

	if e.Landed {
		g.Bricks++
	}
	if e.GameOver {
		g.GameOvers++
	}
	g.Lines += int64(len(e.Cleared))
	g.JustCleared = e.Cleared
	g.LastEvent = e
}

// StateBytes is the state of the Mason plus the counters a player sees.
func (g *Game) StateBytes() []byte {
	buf := new(bytes.Buffer)
	buf.Write(g.Mason.StateBytes())
	Serialize(buf, g.Bricks)
	Serialize(buf, g.Lines)
	Serialize(buf, g.GameOvers)
	return buf.Bytes()
}
