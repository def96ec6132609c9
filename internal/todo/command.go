package todo

import (
	"context"

	"github.com/fentz26/deskkit/internal/models"
)

// Command is one user request against the store. ID is the selected task;
// Text is the entry box contents. Fields an action does not use are ignored.
type Command struct {
	Action models.TaskAction
	ID     string
	Text   string
}

type handler func(s *Store, ctx context.Context, c Command) (Task, error)

var handlers = map[models.TaskAction]handler{
	models.TaskActionAdd: func(s *Store, ctx context.Context, c Command) (Task, error) {
		return s.Add(ctx, c.Text)
	},
	models.TaskActionEdit: func(s *Store, ctx context.Context, c Command) (Task, error) {
		return s.Edit(ctx, c.ID, c.Text)
	},
	models.TaskActionComplete: func(s *Store, ctx context.Context, c Command) (Task, error) {
		return s.Complete(ctx, c.ID)
	},
	models.TaskActionReopen: func(s *Store, ctx context.Context, c Command) (Task, error) {
		return s.Reopen(ctx, c.ID)
	},
	models.TaskActionDelete: func(s *Store, ctx context.Context, c Command) (Task, error) {
		return s.Delete(ctx, c.ID)
	},
}

// Do dispatches c to the matching operation.
func (s *Store) Do(ctx context.Context, c Command) (Task, error) {
	h, ok := handlers[c.Action]
	if !ok {
		return Task{}, ErrUnknownAction
	}
	return h(s, ctx, c)
}
