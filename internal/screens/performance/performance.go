// Package performance renders the all-time recorded performance report.
package performance

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdutta/revq/internal/perf"
	"github.com/sdutta/revq/internal/screen"
	"github.com/sdutta/revq/internal/ui/layout"
	"github.com/sdutta/revq/internal/ui/theme"
)

// Screen lists every recorded bank with per-topic accuracy.
type Screen struct {
	store *perf.Store
	data  perf.Performance
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the performance screen backed by the given store.
func New(store *perf.Store) *Screen {
	return &Screen{store: store}
}

type loadedMsg perf.Performance

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg { return loadedMsg(s.store.Load()) }
}

func (s *Screen) Title() string { return "Performance" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		s.data = perf.Performance(m)
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if len(s.data) == 0 {
		return "\n\n" + center.Foreground(theme.TextDim).Render("No performance data found.")
	}

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("All Recorded Performance"))
	b.WriteString("\n\n")

	for _, key := range keys {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(strings.ReplaceAll(key, "_", " ")))
		b.WriteString("\n")

		topics := make([]string, 0, len(s.data[key]))
		for topic := range s.data[key] {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		for _, topic := range topics {
			stat := s.data[key][topic]
			line := fmt.Sprintf("    %-24s %5.1f%% correct (%d/%d)",
				topic, stat.Accuracy()*100, stat.Correct, stat.Attempted)
			b.WriteString(theme.Body.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
