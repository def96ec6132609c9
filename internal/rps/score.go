package rps

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fentz26/deskkit/internal/fsutil"
)

// Score is the cumulative win tally.
type Score struct {
	User     int `json:"user"`
	Computer int `json:"comp"`
}

// String renders the scoreboard line.
func (s Score) String() string {
	return fmt.Sprintf("You: %d    Computer: %d", s.User, s.Computer)
}

// ScoreFile persists a Score as a JSON object.
type ScoreFile struct {
	path   string
	logger *log.Logger
}

// NewScoreFile returns a ScoreFile at path. A nil logger discards output.
func NewScoreFile(path string, logger *log.Logger) *ScoreFile {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ScoreFile{path: path, logger: logger}
}

// Path returns the backing file path.
func (f *ScoreFile) Path() string {
	return f.path
}

// Load reads the tally. A missing file yields a zero score; an unreadable
// or malformed file is logged and also yields a zero score.
func (f *ScoreFile) Load() Score {
	var s Score
	err := fsutil.ReadJSON(f.path, &s)
	if errors.Is(err, os.ErrNotExist) {
		return Score{}
	}
	if err != nil {
		f.logger.Printf("rps: load scores: %v (starting from 0/0)", err)
		return Score{}
	}
	if s.User < 0 || s.Computer < 0 {
		f.logger.Printf("rps: load scores: negative tally %d/%d (starting from 0/0)", s.User, s.Computer)
		return Score{}
	}
	return s
}

// Save writes the tally atomically.
func (f *ScoreFile) Save(s Score) error {
	if err := fsutil.WriteJSON(f.path, s, ""); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}
