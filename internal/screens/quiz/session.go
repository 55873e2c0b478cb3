package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/sdutta/revq/internal/perf"
	"github.com/sdutta/revq/internal/router"
	"github.com/sdutta/revq/internal/screen"
	"github.com/sdutta/revq/internal/screens/summary"
	"github.com/sdutta/revq/internal/session"
	"github.com/sdutta/revq/internal/store"
	"github.com/sdutta/revq/internal/ui/components"
	"github.com/sdutta/revq/internal/ui/layout"
	"github.com/sdutta/revq/internal/ui/theme"
)

// SessionScreen runs the question loop for an active quiz session.
type SessionScreen struct {
	deps     Deps
	state    *session.State
	perfData perf.Performance
	input    components.TextInput
	feedback *session.Outcome
	saveErr  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// NewSession creates the screen for the given session state. The cumulative
// performance record is loaded up front and saved once the session ends.
func NewSession(deps Deps, state *session.State) *SessionScreen {
	return &SessionScreen{
		deps:     deps,
		state:    state,
		perfData: deps.Perf.Load(),
		input:    components.NewTextInput("Type your answer...", 120),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	return fmt.Sprintf("%s %s", display(s.state.Level), display(s.state.Subject))
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.feedback != nil {
		s.feedback = nil
		s.state.Advance()
		if s.state.Done() {
			return s, s.finish()
		}
		s.input.Reset()
		return s, nil
	}

	if kmsg.String() == "enter" {
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

// submit checks the current answer and queues the history append.
func (s *SessionScreen) submit() tea.Cmd {
	q := s.state.Current()
	if q == nil {
		return nil
	}

	response := s.input.Value()
	outcome := session.HandleAnswer(s.state, s.perfData, s.deps.Matcher, response)
	s.feedback = &outcome

	if s.deps.Answers == nil {
		return nil
	}
	ev := store.AnswerEvent{
		SessionID: s.state.SessionID,
		BankKey:   s.state.BankKey,
		Topic:     q.Topic,
		Prompt:    q.Prompt,
		Response:  response,
		Accepted:  outcome.Accepted,
		Matched:   outcome.Matched,
	}
	if outcome.Accepted {
		ev.Rule = outcome.Rule.String()
	}
	return func() tea.Msg {
		if err := s.deps.Answers.Append(context.Background(), ev); err != nil {
			s.deps.Log.Warn("history append failed", zap.Error(err))
		}
		return nil
	}
}

// finish saves the performance record and swaps in the summary screen.
func (s *SessionScreen) finish() tea.Cmd {
	if err := s.deps.Perf.Save(s.perfData); err != nil {
		s.deps.Log.Warn("performance save failed", zap.Error(err))
		s.saveErr = "Warning: performance could not be saved."
	}
	rows := session.Summarize(s.perfData, s.state.BankKey)
	sum := summary.New(s.state, rows, s.saveErr)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
}

func (s *SessionScreen) View(width, height int) string {
	if s.feedback != nil {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := s.state.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	info := fmt.Sprintf("  Question %d/%d", s.state.Index+1, len(s.state.Questions))
	right := fmt.Sprintf("Topic: %s", q.Topic)
	if q.Marks > 0 {
		right += fmt.Sprintf("  [%d marks]", q.Marks)
	}
	infoLeft := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info)
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	out := s.feedback
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	if out.Accepted {
		msg := "✓ Correct!"
		if out.Matched != "" {
			msg += fmt.Sprintf(" (accepted: %s)", out.Matched)
		}
		b.WriteString(center.Render(theme.Correct.Render(msg)))
	} else {
		b.WriteString(center.Render(theme.Incorrect.Render(
			"✗ Incorrect. Correct answer: " + strings.Join(out.Answers, ", "))))
	}
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Subtitle.Render(
		fmt.Sprintf("Score so far: %d/%d", s.state.TotalCorrect, s.state.TotalAnswered))))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Hint.Render("Press any key to continue")))
	return b.String()
}
