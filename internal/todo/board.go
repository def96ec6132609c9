// Package todo implements the two-bucket to-do list and its JSON file store.
package todo

import "github.com/google/uuid"

// List names one of the two buckets.
type List string

const (
	Pending   List = "pending"
	Completed List = "completed"
)

// Task is a single to-do entry. ID is assigned at creation and stays stable
// for the life of the process; Text may change through Edit.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Board holds both buckets in display order.
type Board struct {
	Pending   []Task `json:"pending"`
	Completed []Task `json:"completed"`
}

// Len returns the number of tasks across both lists.
func (b Board) Len() int {
	return len(b.Pending) + len(b.Completed)
}

// Tasks returns the bucket for l.
func (b Board) Tasks(l List) []Task {
	if l == Completed {
		return b.Completed
	}
	return b.Pending
}

// Find locates a task by ID.
func (b Board) Find(id string) (Task, List, int, bool) {
	if id == "" {
		return Task{}, "", -1, false
	}
	for i, t := range b.Pending {
		if t.ID == id {
			return t, Pending, i, true
		}
	}
	for i, t := range b.Completed {
		if t.ID == id {
			return t, Completed, i, true
		}
	}
	return Task{}, "", -1, false
}

func (b Board) clone() Board {
	return Board{
		Pending:   append([]Task(nil), b.Pending...),
		Completed: append([]Task(nil), b.Completed...),
	}
}

func (b *Board) bucket(l List) *[]Task {
	if l == Completed {
		return &b.Completed
	}
	return &b.Pending
}

func removeAt(tasks []Task, i int) []Task {
	return append(tasks[:i:i], tasks[i+1:]...)
}

func newTask(text string) Task {
	return Task{ID: uuid.New().String(), Text: text}
}

// boardFile is the on-disk shape: two ordered lists of task text.
type boardFile struct {
	Pending   []string `json:"pending"`
	Completed []string `json:"completed"`
}

func (b Board) toFile() boardFile {
	f := boardFile{
		Pending:   make([]string, 0, len(b.Pending)),
		Completed: make([]string, 0, len(b.Completed)),
	}
	for _, t := range b.Pending {
		f.Pending = append(f.Pending, t.Text)
	}
	for _, t := range b.Completed {
		f.Completed = append(f.Completed, t.Text)
	}
	return f
}

func (f boardFile) toBoard() Board {
	var b Board
	for _, text := range f.Pending {
		b.Pending = append(b.Pending, newTask(text))
	}
	for _, text := range f.Completed {
		b.Completed = append(b.Completed, newTask(text))
	}
	return b
}
