package play

import (
	"crypto/sha256"
	"encoding/hex"
)

// RegressionId returns a string which uniquely identifies what happens during
// a playthrough. It is a hash of the state of the Game after every frame.
//
// It is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the Mason or the Game.
// - Compute the RegressionId for the same playthrough again.
// - If it changed, the refactoring changed what the player experiences.
func RegressionId(p *Playthrough) (string, error) {
	g, err := NewGameFromPlaythrough(p)
	if err != nil {
		return "", err
	}

	hash := sha256.New()
	hash.Write(g.StateBytes())
	for i := range p.History {
		g.Step(p.History[i])
		hash.Write(g.StateBytes())
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
