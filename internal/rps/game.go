package rps

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/fentz26/deskkit/internal/models"
)

// RoundRecorder stores round history. *journal.Journal satisfies it.
type RoundRecorder interface {
	RecordRound(ctx context.Context, r models.RoundRecord) (*models.RoundRecord, error)
}

// Round is the result of one Play call.
type Round struct {
	User     Move
	Computer Move
	Outcome  Outcome
	Score    Score // tally after the round
}

// Message summarizes the round in one line.
func (r Round) Message() string {
	return fmt.Sprintf("You chose %s — Computer chose %s. %s", r.User.Title(), r.Computer.Title(), r.Outcome.Sentence())
}

// Game owns the score for one session. The score is read once at
// construction and flushed after every round and reset.
type Game struct {
	mu      sync.Mutex
	score   Score
	file    *ScoreFile
	chooser Chooser
	journal RoundRecorder
	logger  *log.Logger
}

// NewGame loads the tally from file. A nil chooser uses RandomChooser and a
// nil logger discards output.
func NewGame(file *ScoreFile, chooser Chooser, logger *log.Logger) *Game {
	if chooser == nil {
		chooser = RandomChooser{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		score:   file.Load(),
		file:    file,
		chooser: chooser,
		logger:  logger,
	}
}

// SetJournal attaches a round history store.
func (g *Game) SetJournal(j RoundRecorder) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.journal = j
}

// Score returns the current tally.
func (g *Game) Score() Score {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Play runs one round against a freshly drawn computer move.
func (g *Game) Play(ctx context.Context, user Move) (Round, error) {
	if !user.Valid() {
		return Round{}, fmt.Errorf("%w: %q", ErrInvalidMove, string(user))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	computer := g.chooser.Choose()
	outcome := Judge(user, computer)
	switch outcome {
	case Win:
		g.score.User++
	case Lose:
		g.score.Computer++
	}
	g.flush()

	round := Round{User: user, Computer: computer, Outcome: outcome, Score: g.score}
	if g.journal != nil {
		_, err := g.journal.RecordRound(ctx, models.RoundRecord{
			UserMove:      string(user),
			ComputerMove:  string(computer),
			Outcome:       string(outcome),
			UserScore:     g.score.User,
			ComputerScore: g.score.Computer,
		})
		if err != nil {
			g.logger.Printf("rps: journal round: %v", err)
		}
	}
	return round, nil
}

// Reset zeroes both counters and flushes.
func (g *Game) Reset(ctx context.Context) Score {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.score = Score{}
	g.flush()
	return g.score
}

// flush persists the score; failures are logged and the in-memory tally
// stays authoritative.
func (g *Game) flush() {
	if err := g.file.Save(g.score); err != nil {
		g.logger.Printf("rps: %v", err)
	}
}
