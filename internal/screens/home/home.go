// Package home implements the main menu screen.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdutta/revq/internal/router"
	"github.com/sdutta/revq/internal/screen"
	"github.com/sdutta/revq/internal/screens/performance"
	"github.com/sdutta/revq/internal/screens/quiz"
	"github.com/sdutta/revq/internal/screens/reset"
	"github.com/sdutta/revq/internal/ui/components"
	"github.com/sdutta/revq/internal/ui/theme"
)

// Screen is the top-level menu.
type Screen struct {
	deps quiz.Deps
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen.
func New(deps quiz.Deps) *Screen {
	s := &Screen{deps: deps}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Quiz", Action: pushScreen(func() screen.Screen { return quiz.NewSetup(deps) })},
		{Label: "View Performance", Action: pushScreen(func() screen.Screen { return performance.New(deps.Perf) })},
		{Label: "Clear Performance", Action: pushScreen(func() screen.Screen { return reset.New(deps.Perf, deps.Log) })},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func pushScreen(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Main Menu" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Revision & Quiz"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render("practise, check, remember"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	return b.String()
}
