package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/deskkit/internal/rps"
)

type rpsScreen int

const (
	screenHome rpsScreen = iota
	screenGame
	screenResult
	screenConfirmReset
)

type rpsKeyMap struct {
	Play     key.Binding
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Reset    key.Binding
	Home     key.Binding
	Yes      key.Binding
	No       key.Binding
	Quit     key.Binding
}

func newRPSKeyMap() rpsKeyMap {
	return rpsKeyMap{
		Play:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Rock:     key.NewBinding(key.WithKeys("r", "1"), key.WithHelp("r", "rock")),
		Paper:    key.NewBinding(key.WithKeys("p", "2"), key.WithHelp("p", "paper")),
		Scissors: key.NewBinding(key.WithKeys("s", "3"), key.WithHelp("s", "scissors")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset scores")),
		Home:     key.NewBinding(key.WithKeys("esc", "h"), key.WithHelp("esc", "home")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpFor returns the bindings shown in the footer of a screen.
func (k rpsKeyMap) helpFor(s rpsScreen) []key.Binding {
	switch s {
	case screenGame:
		return []key.Binding{k.Rock, k.Paper, k.Scissors, k.Reset, k.Home}
	case screenResult:
		return []key.Binding{k.Play, k.Home, k.Quit}
	case screenConfirmReset:
		return []key.Binding{k.Yes, k.No}
	default:
		return []key.Binding{k.Play, k.Reset, k.Quit}
	}
}

type roundPlayedMsg struct {
	round rps.Round
	err   error
}

type scoresResetMsg struct {
	score rps.Score
}

// RPSModel is the rock-paper-scissors screen flow: home, game and result.
type RPSModel struct {
	game      *rps.Game
	keys      rpsKeyMap
	help      help.Model
	screen    rpsScreen
	lastRound *rps.Round
	status    string
	statusErr bool
	width     int
}

// NewRPS creates the model over an already loaded game.
func NewRPS(game *rps.Game) *RPSModel {
	return &RPSModel{
		game:   game,
		keys:   newRPSKeyMap(),
		help:   help.New(),
		screen: screenHome,
	}
}

// Run starts the full-screen program.
func (m *RPSModel) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m *RPSModel) Init() tea.Cmd {
	return nil
}

func (m *RPSModel) play(move rps.Move) tea.Cmd {
	return func() tea.Msg {
		round, err := m.game.Play(context.Background(), move)
		return roundPlayedMsg{round: round, err: err}
	}
}

func (m *RPSModel) reset() tea.Cmd {
	return func() tea.Msg {
		return scoresResetMsg{score: m.game.Reset(context.Background())}
	}
}

// Update implements tea.Model
func (m *RPSModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case roundPlayedMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		round := msg.round
		m.lastRound = &round
		m.status = round.Message()
		m.statusErr = false
		m.screen = screenResult

	case scoresResetMsg:
		m.status = "Scores reset."
		m.statusErr = false
		m.lastRound = nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *RPSModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHome:
		switch {
		case key.Matches(msg, m.keys.Play):
			m.screen = screenGame
		case key.Matches(msg, m.keys.Reset):
			m.screen = screenConfirmReset
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case screenConfirmReset:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.screen = screenGame
			return m, m.reset()
		case key.Matches(msg, m.keys.No):
			m.screen = screenHome
		}

	case screenGame:
		switch {
		case key.Matches(msg, m.keys.Rock):
			return m, m.play(rps.Rock)
		case key.Matches(msg, m.keys.Paper):
			return m, m.play(rps.Paper)
		case key.Matches(msg, m.keys.Scissors):
			return m, m.play(rps.Scissors)
		case key.Matches(msg, m.keys.Reset):
			return m, m.reset()
		case key.Matches(msg, m.keys.Home):
			m.screen = screenHome
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case screenResult:
		switch {
		case key.Matches(msg, m.keys.Play):
			m.screen = screenGame
		case key.Matches(msg, m.keys.Home):
			m.screen = screenHome
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *RPSModel) View() string {
	var b strings.Builder
	score := m.game.Score()

	switch m.screen {
	case screenHome:
		b.WriteString(titleStyle.Render("SUPER R O C K  •  P A P E R  •  S C I S S O R S"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Press play and beat the computer! Best of luck."))
		b.WriteString("\n\n")
		b.WriteString(scoreStyle.Render("High Scores — " + score.String()))

	case screenConfirmReset:
		b.WriteString(titleStyle.Render("Reset Scores"))
		b.WriteString("\n\n")
		b.WriteString(warningStyle.Render("Are you sure you want to reset scores? (y/n)"))

	case screenGame:
		b.WriteString(scoreStyle.Render("Score — " + score.String()))
		b.WriteString("\n\n")
		var cards []string
		for _, mv := range rps.Moves {
			cards = append(cards, panelStyle.Render(fmt.Sprintf("%s\n%s\n[%c]", mv.Emoji(), mv.Title(), mv[0])))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Choose your move — the first key registers your selection."))

	case screenResult:
		if r := m.lastRound; r != nil {
			b.WriteString(fmt.Sprintf("You: %s %s\n", r.User.Title(), r.User.Emoji()))
			b.WriteString(fmt.Sprintf("Computer: %s %s\n\n", r.Computer.Title(), r.Computer.Emoji()))
			color := outcomeColor(string(r.Outcome))
			b.WriteString(bannerStyle.Copy().Foreground(color).BorderForeground(color).Render(r.Outcome.Banner()))
			b.WriteString("\n\n")
		}
		b.WriteString(scoreStyle.Render("Scoreboard — " + score.String()))
	}

	if m.status != "" && m.screen != screenHome {
		b.WriteString("\n\n")
		style := infoStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.helpFor(m.screen)))
	return b.String()
}
