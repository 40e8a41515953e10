package internal

import (
	"errors"

	"workwatch/internal/history"
	"workwatch/internal/session"
	"workwatch/internal/worklog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgTick triggers a re-render so the elapsed timer stays fresh; the
// time itself is always recomputed from the clock.
type MsgTick struct{}

// MsgNotifyErr carries a webhook delivery failure to show as a warning.
type MsgNotifyErr struct {
	Err error
}

type promptMode int

const (
	promptNone promptMode = iota
	promptAdd
	promptEdit
)

const recentSessions = 5

type Model struct {
	Session *session.Session

	prompt promptMode
	input  textinput.Model
	status string

	archive *history.Repository
	recent  []history.Record
}

// NewModel wires the TUI around an existing session. archive may be nil
// when the session archive is disabled.
func NewModel(sess *session.Session, archive *history.Repository) *Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 44

	m := &Model{
		Session: sess,
		input:   input,
		archive: archive,
	}
	m.refreshRecent()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		return m, nil
	case MsgNotifyErr:
		m.status = "Webhook: " + msg.Err.Error()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.prompt != promptNone {
		return m.handlePromptInput(msg)
	}

	m.status = ""

	switch m.Session.Mode() {
	case session.ModeMenu:
		return m.handleMenuKey(msg)
	case session.ModeWorking:
		return m.handleWorkingKey(msg)
	case session.ModeLogs:
		return m.handleLogsKey(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		m.report(m.Session.ClockIn())
	}
	return m, nil
}

func (m *Model) handleWorkingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.clockOut()
	case "l":
		m.report(m.Session.OpenLogs())
	case "a":
		m.openPrompt(promptAdd, "")
	}
	return m, nil
}

func (m *Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.clockOut()
	case "t":
		m.report(m.Session.CloseLogs())
	case "a":
		m.openPrompt(promptAdd, "")
	case "e":
		selected, ok := m.Session.Logs().Selected()
		if !ok {
			m.status = statusFor(worklog.ErrNoSelection)
			return m, nil
		}
		m.openPrompt(promptEdit, selected.Text)
	case "d":
		m.report(m.Session.DeleteLog())
	case "up", "k":
		m.report(m.Session.SelectPrev())
	case "down", "j":
		m.report(m.Session.SelectNext())
	}
	return m, nil
}

// handlePromptInput routes keys to the text input until the prompt is
// committed or cancelled. A rejected commit keeps the prompt open.
func (m *Model) handlePromptInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var err error
		if m.prompt == promptEdit {
			err = m.Session.EditLog(m.input.Value())
		} else {
			err = m.Session.AddLog(m.input.Value())
		}
		if err != nil {
			m.status = statusFor(err)
			return m, nil
		}
		m.closePrompt()
	case "esc":
		m.closePrompt()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) openPrompt(mode promptMode, initial string) {
	m.prompt = mode
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Reset()
	m.input.Blur()
	m.status = ""
}

func (m *Model) clockOut() {
	if m.report(m.Session.ClockOut()) {
		m.refreshRecent()
	}
}

// report surfaces a rejected operation as a transient status line and
// returns whether the operation succeeded.
func (m *Model) report(err error) bool {
	if err != nil {
		m.status = statusFor(err)
		return false
	}
	m.status = ""
	return true
}

func (m *Model) refreshRecent() {
	if m.archive == nil {
		return
	}
	recent, err := m.archive.Recent(recentSessions)
	if err != nil {
		m.recent = nil
		return
	}
	m.recent = recent
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidTransition):
		return "That action isn't available right now."
	case errors.Is(err, worklog.ErrEmptyInput):
		return "Log text can't be empty."
	case errors.Is(err, worklog.ErrNoSelection):
		return "No log selected."
	default:
		return err.Error()
	}
}
