package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/deskkit/internal/models"
	"github.com/fentz26/deskkit/internal/todo"
)

type todoKeyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Complete key.Binding
	Reopen   key.Binding
	Delete   key.Binding
	Switch   key.Binding
	Up       key.Binding
	Down     key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func newTodoKeyMap() todoKeyMap {
	return todoKeyMap{
		Add:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Edit:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
		Complete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "mark completed")),
		Reopen:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "move to pending")),
		Delete:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k todoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Complete, k.Reopen, k.Delete, k.Switch, k.Quit}
}

// FullHelp implements help.KeyMap
func (k todoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete},
		{k.Complete, k.Reopen},
		{k.Switch, k.Up, k.Down, k.Clear, k.Quit},
	}
}

// warnings shown when an operation is refused, keyed by action.
var (
	emptyTextWarnings = map[models.TaskAction]string{
		models.TaskActionAdd:  "Enter a task!",
		models.TaskActionEdit: "Type new text",
	}
	noSelectionWarnings = map[models.TaskAction]string{
		models.TaskActionEdit:     "Select a task",
		models.TaskActionComplete: "Select a pending task",
		models.TaskActionReopen:   "Select a completed task",
		models.TaskActionDelete:   "Select a task",
	}
)

type mutationDoneMsg struct {
	action models.TaskAction
	task   todo.Task
	err    error
}

// TodoModel is the entry box plus pending and completed panes.
type TodoModel struct {
	store    *todo.Store
	board    todo.Board
	input    textinput.Model
	keys     todoKeyMap
	help     help.Model
	focus    todo.List
	selected map[todo.List]int
	status   string
	warning  bool
	width    int
	height   int
}

// NewTodo creates the model over an opened store.
func NewTodo(store *todo.Store) *TodoModel {
	ti := textinput.New()
	ti.Placeholder = "Type a task, enter to add"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &TodoModel{
		store:    store,
		board:    store.Board(),
		input:    ti,
		keys:     newTodoKeyMap(),
		help:     help.New(),
		focus:    todo.Pending,
		selected: map[todo.List]int{todo.Pending: 0, todo.Completed: 0},
	}
}

// Run starts the full-screen program.
func (m *TodoModel) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m *TodoModel) Init() tea.Cmd {
	return textinput.Blink
}

// SelectedID returns the ID of the highlighted task in the focused pane, or
// "" when that pane is empty.
func (m *TodoModel) SelectedID() string {
	tasks := m.board.Tasks(m.focus)
	i := m.selected[m.focus]
	if i < 0 || i >= len(tasks) {
		return ""
	}
	return tasks[i].ID
}

// selectionIn returns the selected ID only when the focused pane is l.
func (m *TodoModel) selectionIn(l todo.List) string {
	if m.focus != l {
		return ""
	}
	return m.SelectedID()
}

func (m *TodoModel) do(c todo.Command) tea.Cmd {
	return func() tea.Msg {
		task, err := m.store.Do(context.Background(), c)
		return mutationDoneMsg{action: c.Action, task: task, err: err}
	}
}

// Update implements tea.Model
func (m *TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		m.help.Width = msg.Width
		return m, nil

	case mutationDoneMsg:
		m.applyResult(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			return m, m.do(todo.Command{Action: models.TaskActionAdd, Text: m.input.Value()})
		case key.Matches(msg, m.keys.Edit):
			return m, m.do(todo.Command{Action: models.TaskActionEdit, ID: m.SelectedID(), Text: m.input.Value()})
		case key.Matches(msg, m.keys.Complete):
			return m, m.do(todo.Command{Action: models.TaskActionComplete, ID: m.selectionIn(todo.Pending)})
		case key.Matches(msg, m.keys.Reopen):
			return m, m.do(todo.Command{Action: models.TaskActionReopen, ID: m.selectionIn(todo.Completed)})
		case key.Matches(msg, m.keys.Delete):
			return m, m.do(todo.Command{Action: models.TaskActionDelete, ID: m.SelectedID()})
		case key.Matches(msg, m.keys.Switch):
			if m.focus == todo.Pending {
				m.focus = todo.Completed
			} else {
				m.focus = todo.Pending
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.selected[m.focus] > 0 {
				m.selected[m.focus]--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected[m.focus] < len(m.board.Tasks(m.focus))-1 {
				m.selected[m.focus]++
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.status = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TodoModel) applyResult(msg mutationDoneMsg) {
	switch {
	case errors.Is(msg.err, todo.ErrEmptyText):
		m.warn(emptyTextWarnings[msg.action])
		return
	case errors.Is(msg.err, todo.ErrNoSelection):
		m.warn(noSelectionWarnings[msg.action])
		return
	case msg.err != nil:
		m.warn("Error: " + msg.err.Error())
		return
	}

	m.board = m.store.Board()
	m.clampSelection()
	m.warning = false
	switch msg.action {
	case models.TaskActionAdd:
		m.input.SetValue("")
		m.status = fmt.Sprintf("Added %q", msg.task.Text)
		m.selected[todo.Pending] = len(m.board.Pending) - 1
	case models.TaskActionEdit:
		m.input.SetValue("")
		m.status = fmt.Sprintf("Updated %q", msg.task.Text)
	case models.TaskActionComplete:
		m.status = fmt.Sprintf("Completed %q", msg.task.Text)
	case models.TaskActionReopen:
		m.status = fmt.Sprintf("Moved %q to pending", msg.task.Text)
	case models.TaskActionDelete:
		m.status = fmt.Sprintf("Deleted %q", msg.task.Text)
	}
}

func (m *TodoModel) warn(text string) {
	m.status = text
	m.warning = true
}

func (m *TodoModel) clampSelection() {
	for _, l := range []todo.List{todo.Pending, todo.Completed} {
		n := len(m.board.Tasks(l))
		if m.selected[l] >= n {
			m.selected[l] = max(0, n-1)
		}
	}
}

func (m *TodoModel) renderPane(l todo.List, title string) string {
	var b strings.Builder
	heading := titleStyle.Render(title)
	if l == todo.Completed {
		heading = titleStyle.Copy().Foreground(mintColor).Render(title)
	}
	b.WriteString(heading)
	b.WriteString("\n")

	tasks := m.board.Tasks(l)
	if len(tasks) == 0 {
		b.WriteString(subtitleStyle.Render("  (empty)"))
	}
	for i, t := range tasks {
		line := fmt.Sprintf("%c%d  %s", l[0], i+1, t.Text)
		switch {
		case l == m.focus && i == m.selected[l]:
			line = selectedStyle.Render(line)
		case l == todo.Completed:
			line = completedItemStyle.Render(line)
		default:
			line = itemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	width := 40
	if m.width > 0 {
		width = max(20, m.width/2-4)
	}
	style := panelStyle
	if l == m.focus {
		style = activePanelStyle
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// View implements tea.Model
func (m *TodoModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SUPER TO-DO LIST"))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(todo.Pending, "Pending Tasks"),
		m.renderPane(todo.Completed, "Completed"),
	))
	b.WriteString("\n")
	if m.status != "" {
		if m.warning {
			b.WriteString(warningStyle.Render("⚠ " + m.status))
		} else {
			b.WriteString(infoStyle.Render("✓ " + m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
