package todo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fentz26/deskkit/internal/fsutil"
	"github.com/fentz26/deskkit/internal/models"
)

// EventRecorder receives every successful mutation. *audit.Recorder
// satisfies it.
type EventRecorder interface {
	RecordTask(ctx context.Context, action models.TaskAction, taskID, text string, inputs interface{}) error
}

// Store keeps the board in memory and rewrites the whole task file after
// every successful mutation.
type Store struct {
	mu       sync.Mutex
	path     string
	board    Board
	recorder EventRecorder
	logger   *log.Logger
}

// Open reads the task file at path. A missing file yields an empty board;
// an unreadable or malformed file is logged and also yields an empty board.
// A nil logger discards output.
func Open(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{path: path, logger: logger}

	var f boardFile
	err := fsutil.ReadJSON(path, &f)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		logger.Printf("todo: load tasks: %v (starting empty)", err)
	default:
		s.board = f.toBoard()
	}
	return s
}

// SetRecorder attaches a mutation history sink.
func (s *Store) SetRecorder(r EventRecorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = r
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Board returns a copy of the current state.
func (s *Store) Board() Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.clone()
}

// Find locates a task by ID.
func (s *Store) Find(id string) (Task, List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, l, _, ok := s.board.Find(id)
	return t, l, ok
}

// Add appends a new task to pending.
func (s *Store) Add(ctx context.Context, text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := newTask(text)
	s.board.Pending = append(s.board.Pending, t)
	s.commit(ctx, models.TaskActionAdd, t, map[string]string{"text": text})
	return t, nil
}

// Edit replaces the text of the task with the given ID, keeping its list
// and position.
func (s *Store) Edit(ctx context.Context, id, text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, l, i, ok := s.board.Find(id)
	if !ok {
		return Task{}, ErrNoSelection
	}
	tasks := *s.board.bucket(l)
	tasks[i].Text = text
	t := tasks[i]
	s.commit(ctx, models.TaskActionEdit, t, map[string]string{"id": id, "text": text})
	return t, nil
}

// Complete moves a pending task to the tail of completed.
func (s *Store) Complete(ctx context.Context, id string) (Task, error) {
	return s.move(ctx, models.TaskActionComplete, id, Pending, Completed)
}

// Reopen moves a completed task to the tail of pending.
func (s *Store) Reopen(ctx context.Context, id string) (Task, error) {
	return s.move(ctx, models.TaskActionReopen, id, Completed, Pending)
}

// Delete removes the task from whichever list holds it.
func (s *Store) Delete(ctx context.Context, id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, l, i, ok := s.board.Find(id)
	if !ok {
		return Task{}, ErrNoSelection
	}
	b := s.board.bucket(l)
	*b = removeAt(*b, i)
	s.commit(ctx, models.TaskActionDelete, t, map[string]string{"id": id})
	return t, nil
}

func (s *Store) move(ctx context.Context, action models.TaskAction, id string, from, to List) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, l, i, ok := s.board.Find(id)
	if !ok || l != from {
		return Task{}, fmt.Errorf("%w in %s", ErrNoSelection, from)
	}
	src := s.board.bucket(from)
	*src = removeAt(*src, i)
	dst := s.board.bucket(to)
	*dst = append(*dst, t)
	s.commit(ctx, action, t, map[string]string{"id": id})
	return t, nil
}

// commit persists the board and journals the mutation. Both failures are
// logged; the in-memory board stays authoritative. Caller holds s.mu.
func (s *Store) commit(ctx context.Context, action models.TaskAction, t Task, inputs interface{}) {
	if err := fsutil.WriteJSON(s.path, s.board.toFile(), "  "); err != nil {
		s.logger.Printf("todo: save tasks: %v", err)
	}
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordTask(ctx, action, t.ID, t.Text, inputs); err != nil {
		s.logger.Printf("todo: journal %s: %v", action, err)
	}
}
