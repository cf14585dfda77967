package play

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
const InputVersion = 1

// Playthrough represents all the input sent to a Game during a session. Given
// this input and the same SimulationVersion, the same Game comes out in the
// end.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Level
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(l Level, seed int64, releaseVersion int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = releaseVersion
	p.Level = l
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.Level)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return p, fmt.Errorf("unzipping playthrough: %w", err)
	}
	d := &decoder{r: bytes.NewReader(raw)}
	d.read(&p.InputVersion)
	if d.err == nil && p.InputVersion != InputVersion {
		return p, fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"%d", InputVersion, p.InputVersion)
	}
	d.read(&p.SimulationVersion)
	d.read(&p.ReleaseVersion)
	d.read(&p.Level)
	d.read(&p.Id)
	d.read(&p.Seed)
	deserializeSlice(d, &p.History)
	if d.err != nil {
		return p, fmt.Errorf("reading playthrough: %w", d.err)
	}
	return p, nil
}
