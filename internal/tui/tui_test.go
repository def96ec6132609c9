package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fentz26/deskkit/internal/rps"
	"github.com/fentz26/deskkit/internal/todo"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends k and feeds the message produced by the returned command back
// into the model, mimicking one turn of the bubbletea runtime.
func press(t *testing.T, m tea.Model, k tea.KeyMsg) tea.Model {
	t.Helper()
	next, cmd := m.Update(k)
	if cmd == nil {
		return next
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); ok || msg == nil {
		return next
	}
	next, _ = next.Update(msg)
	return next
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestRPS(t *testing.T, computer rps.Move) *RPSModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rps_scores.json")
	return NewRPS(rps.NewGame(rps.NewScoreFile(path, nil), rps.FixedChooser(computer), nil))
}

func TestRPSPlayFlow(t *testing.T) {
	m := newTestRPS(t, rps.Scissors)
	if !strings.Contains(m.View(), "High Scores — You: 0    Computer: 0") {
		t.Fatalf("home view missing scoreboard:\n%s", m.View())
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("expected game screen, got %v", m.screen)
	}

	press(t, m, runes("r"))
	if m.screen != screenResult {
		t.Fatalf("expected result screen, got %v", m.screen)
	}
	if m.lastRound == nil || m.lastRound.Outcome != rps.Win {
		t.Fatalf("expected a won round, got %+v", m.lastRound)
	}
	view := m.View()
	for _, want := range []string{"YOU WIN!", "You: Rock", "Computer: Scissors", "You: 1    Computer: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q:\n%s", want, view)
		}
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("play again should return to the game screen, got %v", m.screen)
	}
	press(t, m, runes("p"))
	if m.lastRound.Outcome != rps.Lose || m.game.Score() != (rps.Score{User: 1, Computer: 1}) {
		t.Errorf("expected a loss with 1/1, got %+v / %+v", m.lastRound, m.game.Score())
	}
}

func TestRPSResetRequiresConfirmationFromHome(t *testing.T) {
	m := newTestRPS(t, rps.Paper)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, runes("s"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenHome {
		t.Fatalf("expected home, got %v", m.screen)
	}

	press(t, m, runes("x"))
	if m.screen != screenConfirmReset {
		t.Fatalf("expected confirmation screen, got %v", m.screen)
	}
	press(t, m, runes("n"))
	if m.screen != screenHome || m.game.Score().User != 1 {
		t.Fatalf("declining must keep the score, got %+v", m.game.Score())
	}

	press(t, m, runes("x"))
	press(t, m, runes("y"))
	if m.game.Score() != (rps.Score{}) {
		t.Errorf("expected 0/0 after reset, got %+v", m.game.Score())
	}
	if m.screen != screenGame {
		t.Errorf("confirmed reset should open the game screen, got %v", m.screen)
	}
}

func TestRPSQuit(t *testing.T) {
	m := newTestRPS(t, rps.Rock)
	if _, cmd := m.Update(runes("q")); !isQuit(cmd) {
		t.Error("q on home should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func newTestTodo(t *testing.T) *TodoModel {
	t.Helper()
	return NewTodo(todo.Open(filepath.Join(t.TempDir(), "tasks.json"), nil))
}

func typeText(m *TodoModel, s string) {
	m.input.SetValue(s)
}

func TestTodoAddCompleteDelete(t *testing.T) {
	m := newTestTodo(t)

	typeText(m, "Buy milk")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.board.Pending) != 1 || m.board.Pending[0].Text != "Buy milk" {
		t.Fatalf("expected Buy milk pending, got %+v", m.board)
	}
	if m.input.Value() != "" {
		t.Error("entry should be cleared after add")
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if len(m.board.Pending) != 0 || len(m.board.Completed) != 1 {
		t.Fatalf("expected task completed, got %+v", m.board)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.board.Len() != 0 {
		t.Fatalf("expected empty board, got %+v", m.board)
	}
	if m.store.Board().Len() != 0 {
		t.Error("store and view disagree")
	}
}

func TestTodoWarnings(t *testing.T) {
	m := newTestTodo(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.warning || m.status != "Enter a task!" {
		t.Errorf("expected empty-text warning, got %q", m.status)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.status != "Select a task" {
		t.Errorf("expected no-selection warning, got %q", m.status)
	}

	typeText(m, "a")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.status != "Select a completed task" {
		t.Errorf("reopen from pending pane should warn, got %q", m.status)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if m.status != "Type new text" {
		t.Errorf("edit without text should warn, got %q", m.status)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if m.status != "Select a pending task" {
		t.Errorf("complete from completed pane should warn, got %q", m.status)
	}
	if len(m.board.Pending) != 1 {
		t.Errorf("warnings must not change state, got %+v", m.board)
	}
}

func TestTodoEditAndSelection(t *testing.T) {
	m := newTestTodo(t)
	for _, s := range []string{"a", "b", "c"} {
		typeText(m, s)
		press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	if got := m.selected[todo.Pending]; got != 2 {
		t.Fatalf("selection should follow the new task, got %d", got)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	typeText(m, "B")
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if m.board.Pending[1].Text != "B" {
		t.Fatalf("expected in-place edit, got %+v", m.board.Pending)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.selected[todo.Pending]; got != 2 {
		t.Errorf("selection must stop at the last row, got %d", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.selected[todo.Pending]; got != 1 {
		t.Errorf("selection should clamp after delete, got %d", got)
	}

	view := m.View()
	for _, want := range []string{"Pending Tasks", "Completed", "p1  a", "p2  B"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTodoQuit(t *testing.T) {
	m := newTestTodo(t)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}
