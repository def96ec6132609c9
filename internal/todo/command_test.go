package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/fentz26/deskkit/internal/models"
)

func TestDoDispatches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task, err := s.Do(ctx, Command{Action: models.TaskActionAdd, Text: "a"})
	if err != nil {
		t.Fatalf("Do add failed: %v", err)
	}
	if _, err := s.Do(ctx, Command{Action: models.TaskActionEdit, ID: task.ID, Text: "b"}); err != nil {
		t.Fatalf("Do edit failed: %v", err)
	}
	if _, err := s.Do(ctx, Command{Action: models.TaskActionComplete, ID: task.ID}); err != nil {
		t.Fatalf("Do complete failed: %v", err)
	}
	assertLists(t, s.Board(), nil, []string{"b"})

	if _, err := s.Do(ctx, Command{Action: models.TaskActionReopen, ID: task.ID}); err != nil {
		t.Fatalf("Do reopen failed: %v", err)
	}
	if _, err := s.Do(ctx, Command{Action: models.TaskActionDelete, ID: task.ID}); err != nil {
		t.Fatalf("Do delete failed: %v", err)
	}
	assertLists(t, s.Board(), nil, nil)

	if _, err := s.Do(ctx, Command{Action: "archive"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}
