package rps

import "math/rand"

// Chooser picks the computer's move for a round.
type Chooser interface {
	Choose() Move
}

// RandomChooser draws uniformly from Moves, independent of any prior round.
type RandomChooser struct{}

// Choose implements Chooser.
func (RandomChooser) Choose() Move {
	return Moves[rand.Intn(len(Moves))]
}

// FixedChooser always plays the same move.
type FixedChooser Move

// Choose implements Chooser.
func (f FixedChooser) Choose() Move {
	return Move(f)
}
