package todo

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref addresses a task by list and 1-based row, e.g. "p2" or "c1".
type Ref struct {
	List List
	Row  int
}

// String renders the ref in its parseable form.
func (r Ref) String() string {
	return fmt.Sprintf("%c%d", r.List[0], r.Row)
}

// ParseRef parses "p<N>" (pending) or "c<N>" (completed). A bare number
// refers to pending.
func ParseRef(s string) (Ref, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Ref{}, ErrNoSelection
	}

	list := Pending
	digits := s
	switch s[0] {
	case 'p':
		digits = s[1:]
	case 'c':
		list = Completed
		digits = s[1:]
	}

	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || strings.HasPrefix(digits, "+") {
		return Ref{}, fmt.Errorf("%w: %s", ErrInvalidRef, s)
	}
	return Ref{List: list, Row: row}, nil
}

// Resolve maps a ref to the task currently at that row.
func (b Board) Resolve(r Ref) (Task, error) {
	tasks := b.Tasks(r.List)
	if r.Row < 1 || r.Row > len(tasks) {
		return Task{}, fmt.Errorf("%w: %s has %d tasks, no row %d", ErrNoSelection, r.List, len(tasks), r.Row)
	}
	return tasks[r.Row-1], nil
}
