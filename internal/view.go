package internal

import (
	"fmt"
	"strings"
	"time"

	"workwatch/internal/session"

	"github.com/charmbracelet/lipgloss"
)

const viewWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	logSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("120")).
				Bold(true)

	logItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	logTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(viewWidth).
			Align(lipgloss.Center).
			Padding(0, 1)
)

// formatDuration renders elapsed time compactly, growing units as the
// session gets longer.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	sec := total % 60
	min := (total / 60) % 60
	hr := (total / 3600) % 24
	days := total / 86400

	switch {
	case days > 0:
		return fmt.Sprintf("%d:%02d:%02d:%02d", days, hr, min, sec)
	case hr > 0:
		return fmt.Sprintf("%02d:%02d:%02d", hr, min, sec)
	case min > 0:
		return fmt.Sprintf("%02d:%02d", min, sec)
	default:
		return fmt.Sprintf("%02d", sec)
	}
}

func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.mainView())

	if m.prompt != promptNone {
		sections = append(sections, m.promptView())
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.controlsView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) mainView() string {
	switch m.Session.Mode() {
	case session.ModeWorking:
		return m.workingView()
	case session.ModeLogs:
		return m.logsView()
	default:
		return m.menuView()
	}
}

func (m *Model) menuView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Welcome To WorkWatch, %s", m.Session.Username())))

	if len(m.recent) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("Recent Sessions"))
		sb.WriteString("\n")
		for _, rec := range m.recent {
			line := fmt.Sprintf("%s  %s",
				logTimeStyle.Render(rec.StoppedAt.Format("Jan 02 15:04")),
				formatDuration(rec.Duration),
			)
			sb.WriteString(inactiveStyle.Render(line))
			sb.WriteString("\n")
		}
	}

	return boxStyle.Render(sb.String()) + "\n"
}

func (m *Model) workingView() string {
	content := fmt.Sprintf("Elapsed Time: %s",
		timerStyle.Render(formatDuration(m.Session.Elapsed())))
	return boxStyle.Render(content) + "\n"
}

func (m *Model) logsView() string {
	store := m.Session.Logs()
	if store.Len() == 0 {
		return boxStyle.Render(inactiveStyle.Render("No Logs Yet")) + "\n"
	}

	var sb strings.Builder
	selected := store.SelectedIndex()
	for i, e := range store.Entries() {
		line := fmt.Sprintf("%s %s", logTimeStyle.Render(e.At.Format("15:04")), e.Text)
		if i == selected {
			sb.WriteString(logSelectedStyle.Render(line))
		} else {
			sb.WriteString(logItemStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(sb.String(), "\n")) + "\n"
}

func (m *Model) promptView() string {
	title := "Input"
	if m.prompt == promptEdit {
		title = "Edit"
	}
	content := titleStyle.Render(title) + "\n" + m.input.View()
	return boxStyle.Align(lipgloss.Left).Render(content) + "\n"
}

func (m *Model) controlsView() string {
	var controls string
	if m.prompt != promptNone {
		controls = " Enter - Save | Esc - Cancel "
	} else {
		switch m.Session.Mode() {
		case session.ModeWorking:
			controls = " L - View Logs | A - Add Log | C - Clock Out "
		case session.ModeLogs:
			controls = " T - View Time | A - Add Log | E - Edit Log | D - Delete Log | C - Clock Out "
		default:
			controls = " C - Clock In | Q - Quit "
		}
	}
	return boxStyle.Render(helpStyle.Render(controls))
}
