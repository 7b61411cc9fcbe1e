// Package tui hosts the interactive focus-session countdown. The bubbletea
// program drives the timer state machine with one-second ticks; the caller
// inspects the final model to decide whether to log the session.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/timer"
)

type focusKeyMap struct {
	Toggle key.Binding
	Cancel key.Binding
}

func (k focusKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Cancel}
}

func (k focusKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Cancel}}
}

func newFocusKeyMap() focusKeyMap {
	return focusKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c", "esc", "ctrl+c"),
			key.WithHelp("c", "cancel"),
		),
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FocusModel is the bubbletea model for one countdown.
type FocusModel struct {
	session *timer.Session
	keys    focusKeyMap
	help    help.Model
}

// NewFocusModel starts a countdown for the task.
func NewFocusModel(task string, minutes int) FocusModel {
	return FocusModel{
		session: timer.New(task, minutes, time.Now()),
		keys:    newFocusKeyMap(),
		help:    help.New(),
	}
}

// Session exposes the timer after the program exits.
func (m FocusModel) Session() *timer.Session {
	return m.session
}

func (m FocusModel) Init() tea.Cmd {
	return tickCmd()
}

func (m FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.session.Cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			switch m.session.State(now) {
			case timer.StateRunning:
				_ = m.session.Pause(now)
			case timer.StatePaused:
				_ = m.session.Resume(now)
			}
			return m, nil
		}
	case tickMsg:
		if m.session.Done(now) {
			return m, tea.Quit
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m FocusModel) View() string {
	now := time.Now()
	remaining := m.session.Remaining(now)
	mins := int(remaining.Round(time.Second).Seconds()) / 60
	secs := int(remaining.Round(time.Second).Seconds()) % 60

	view := taskStyle.Render(m.session.Task) + "\n"
	view += clockStyle.Render(fmt.Sprintf("%02d:%02d", mins, secs)) + "\n"

	switch m.session.State(now) {
	case timer.StatePaused:
		view += pausedStyle.Render("paused") + "\n"
	case timer.StateDone:
		view += doneStyle.Render("done!") + "\n"
	case timer.StateCancelled:
		view += cancelledStyle.Render("cancelled") + "\n"
	}

	view += "\n" + m.help.View(m.keys)
	return docStyle.Render(view)
}

// RunFocus runs the countdown to completion or cancellation and returns the
// final session.
func RunFocus(task string, minutes int) (*timer.Session, error) {
	program := tea.NewProgram(NewFocusModel(task, minutes))
	finalModel, err := program.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(FocusModel)
	if !ok {
		return nil, fmt.Errorf("unexpected focus model type %T", finalModel)
	}
	return m.Session(), nil
}
