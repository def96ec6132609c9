// Package rps implements rock-paper-scissors judging and a persisted score tally.
package rps

import (
	"fmt"
	"strings"
)

// Move is one of the three hand shapes.
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves is the full alphabet in display order.
var Moves = []Move{Rock, Paper, Scissors}

// beats maps each move to the one move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// ParseMove accepts a move name or its first letter, case-insensitively.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "s":
		return Scissors, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// Valid reports whether m is part of the alphabet.
func (m Move) Valid() bool {
	_, ok := beats[m]
	return ok
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return beats[m] == other
}

// Title returns the capitalized move name.
func (m Move) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// Emoji returns the glyph shown next to the move in the UI.
func (m Move) Emoji() string {
	switch m {
	case Rock:
		return "🪨"
	case Paper:
		return "📄"
	case Scissors:
		return "✂️"
	}
	return "?"
}

// Outcome is the result of a round from the user's point of view.
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Tie  Outcome = "tie"
)

// Judge decides a round. Equal moves tie; otherwise the user wins iff the
// user's move beats the computer's under rock>scissors>paper>rock.
func Judge(user, computer Move) Outcome {
	if user == computer {
		return Tie
	}
	if user.Beats(computer) {
		return Win
	}
	return Lose
}

// Banner returns the large result text.
func (o Outcome) Banner() string {
	switch o {
	case Win:
		return "YOU WIN!"
	case Lose:
		return "YOU LOSE!"
	default:
		return "IT'S A TIE!"
	}
}

// Sentence returns the short verdict appended to a round summary.
func (o Outcome) Sentence() string {
	switch o {
	case Win:
		return "You win!"
	case Lose:
		return "You lose!"
	default:
		return "It's a tie!"
	}
}
