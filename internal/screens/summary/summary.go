// Package summary renders the end-of-session per-topic report.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdutta/revq/internal/router"
	"github.com/sdutta/revq/internal/screen"
	"github.com/sdutta/revq/internal/session"
	"github.com/sdutta/revq/internal/ui/layout"
	"github.com/sdutta/revq/internal/ui/theme"
)

// Screen shows the session result and the cumulative per-topic accuracy for
// the bank that was just practised.
type Screen struct {
	state   *session.State
	rows    []session.TopicSummary
	warning string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the summary screen.
func New(state *session.State, rows []session.TopicSummary, warning string) *Screen {
	return &Screen{state: state, rows: rows, warning: warning}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Session Summary" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Main menu"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.HomeMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(
		fmt.Sprintf("Session complete — %d/%d correct", s.state.TotalCorrect, s.state.TotalAnswered)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s %s — %s", strings.ReplaceAll(s.state.Level, "_", " "),
			strings.ReplaceAll(s.state.Subject, "_", " "), s.state.FilterInfo)))
	b.WriteString("\n\n")

	for _, row := range s.rows {
		line := fmt.Sprintf("%-24s %5.1f%% correct (%d/%d)",
			row.Topic, row.Accuracy*100, row.Correct, row.Attempted)
		b.WriteString(center.Render(theme.Body.Render(line)))
		b.WriteString("\n")
	}

	if s.warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Error).Render(s.warning))
	}
	return b.String()
}
