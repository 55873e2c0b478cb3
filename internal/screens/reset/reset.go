// Package reset implements the clear-performance confirmation screen.
package reset

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/sdutta/revq/internal/perf"
	"github.com/sdutta/revq/internal/router"
	"github.com/sdutta/revq/internal/screen"
	"github.com/sdutta/revq/internal/ui/components"
	"github.com/sdutta/revq/internal/ui/layout"
	"github.com/sdutta/revq/internal/ui/theme"
)

// Screen asks for an explicit uppercase YES before wiping performance data.
type Screen struct {
	store  *perf.Store
	log    *zap.Logger
	input  components.TextInput
	result string
	done   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the reset screen.
func New(store *perf.Store, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	return &Screen{
		store: store,
		log:   log,
		input: components.NewTextInput("Type YES to confirm", 10),
	}
}

func (s *Screen) Init() tea.Cmd { return s.input.Init() }

func (s *Screen) Title() string { return "Clear Performance" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{{Key: "any key", Description: "Main menu"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.done {
		return s, func() tea.Msg { return router.HomeMsg{} }
	}

	if kmsg.String() == "enter" {
		// Confirmation is deliberately strict: uppercase YES, nothing else.
		if strings.TrimSpace(s.input.Value()) == "YES" {
			if err := s.store.Clear(); err != nil {
				s.log.Warn("clear performance failed", zap.Error(err))
				s.result = "Could not clear performance data: " + err.Error()
			} else {
				s.result = "All performance data has been cleared."
			}
		} else {
			s.result = "Clear operation cancelled. No changes made."
		}
		s.done = true
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.done {
		return "\n\n" + center.Foreground(theme.Text).Render(s.result)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Error).Bold(true).Render(
		"WARNING: This permanently deletes all recorded performance data."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		"Type YES (uppercase) to proceed, or press Esc to cancel."))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.input.View()))
	return b.String()
}
