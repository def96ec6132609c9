// Package session wires config, the log file and the journal for one
// command invocation.
package session

import (
	"errors"
	"fmt"

	"github.com/fentz26/deskkit/internal/config"
	"github.com/fentz26/deskkit/internal/journal"
	"github.com/fentz26/deskkit/internal/logging"
)

// Env is everything a command needs besides its own store.
type Env struct {
	Config  *config.Config
	Logger  *logging.Logger
	Journal *journal.Journal // nil when disabled or unavailable
}

// Options select the config file and overrides for an invocation.
type Options struct {
	ConfigPath string
	DataDir    string
	LogPrefix  string
}

// Open loads config and opens the log file and journal. Config errors are
// returned; a journal that cannot be opened is logged and left nil so the
// command still works without history.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.SetDataDir(opts.DataDir)
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger, err := logging.Open(cfg.LogPath(), opts.LogPrefix)
	if err != nil {
		return nil, err
	}

	env := &Env{Config: cfg, Logger: logger}
	if cfg.Journal.Enabled {
		j, err := journal.Open(cfg.JournalPath())
		if err != nil {
			logger.Printf("journal unavailable: %v", err)
		} else {
			env.Journal = j
		}
	}
	return env, nil
}

// ErrNoJournal is returned by history commands when the journal is off.
var ErrNoJournal = errors.New("journal is disabled (set journal.enabled in config.yaml)")

// RequireJournal returns the journal or ErrNoJournal.
func (e *Env) RequireJournal() (*journal.Journal, error) {
	if e.Journal == nil {
		return nil, ErrNoJournal
	}
	return e.Journal, nil
}

// Close releases the journal and log file.
func (e *Env) Close() error {
	var errs []error
	if e.Journal != nil {
		errs = append(errs, e.Journal.Close())
	}
	errs = append(errs, e.Logger.Close())
	return errors.Join(errs...)
}
