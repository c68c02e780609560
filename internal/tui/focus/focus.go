// Package focus renders the full-screen focus countdown for one habit.
// It drives the session state machine from one-second ticks and reports
// the terminal outcome back to the caller, which owns persistence.
package focus

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	microStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0).
			Align(lipgloss.Center)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			Padding(1, 0)
)

type keyMap struct {
	Toggle key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "start/pause"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TickMsg advances the countdown by one second.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the bubbletea model for a focus session.
type Model struct {
	Habit    models.Habit
	Session  *session.Session
	progress progress.Model
	width    int
	height   int
	quitting bool
}

// New builds a focus model for the habit with a fresh Ready session.
func New(habit models.Habit) (Model, error) {
	sess, err := session.New(habit.FocusMinutes)
	if err != nil {
		return Model{}, err
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return Model{
		Habit:    habit,
		Session:  sess,
		progress: bar,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if m.Session.State().IsTerminal() {
			return m, nil
		}
		if m.Session.Tick() {
			// Countdown reached zero; let the final frame render, then exit.
			m.quitting = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			switch m.Session.State() {
			case session.StateReady, session.StatePaused:
				_ = m.Session.Start()
			case session.StateRunning:
				_ = m.Session.Pause()
			}
			return m, nil

		case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
			if !m.Session.State().IsTerminal() {
				switch m.Session.State() {
				case session.StateRunning, session.StatePaused:
					_ = m.Session.Cancel()
				}
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting && m.Session.State() != session.StateCompleted {
		return ""
	}

	var status string
	switch m.Session.State() {
	case session.StateReady:
		status = hintStyle.Render("space: begin focusing · c: cancel")
	case session.StateRunning:
		status = hintStyle.Render("space: pause · c: cancel")
	case session.StatePaused:
		status = hintStyle.Render("paused · space: resume · c: cancel")
	case session.StateCompleted:
		status = doneStyle.Render("✅ Done! Micro-habit complete.")
	case session.StateCancelled:
		status = hintStyle.Render("cancelled")
	}

	theme := lipgloss.Color(m.Habit.ThemeColor)
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Foreground(theme).Render(fmt.Sprintf("%s  %s", m.Habit.Emoji, m.Habit.Title)),
		microStyle.Render(fmt.Sprintf("Focus on: %s", m.Habit.MicroAction)),
		clockStyle.Render(m.Session.Clock()),
		m.progress.ViewAs(m.Session.Progress()),
		status,
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Outcome describes how the session ended, for the caller to persist.
type Outcome struct {
	State          session.State
	ElapsedSeconds int
}

// Outcome returns the terminal result after the program has finished.
func (m Model) Outcome() Outcome {
	return Outcome{
		State:          m.Session.State(),
		ElapsedSeconds: m.Session.ElapsedSeconds(),
	}
}
