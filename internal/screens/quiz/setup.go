package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdutta/revq/internal/bank"
	"github.com/sdutta/revq/internal/router"
	"github.com/sdutta/revq/internal/screen"
	"github.com/sdutta/revq/internal/session"
	"github.com/sdutta/revq/internal/ui/components"
	"github.com/sdutta/revq/internal/ui/layout"
	"github.com/sdutta/revq/internal/ui/theme"
)

type setupStage int

const (
	stageLevel setupStage = iota
	stageSubject
	stageFilter
	stageDifficulty
	stageMarks
	stageCount
)

// SetupScreen walks the learner through level, subject, filter and question
// count. Each stage is its own instance pushed on the router stack, so Esc
// steps back one stage at a time.
type SetupScreen struct {
	deps  Deps
	stage setupStage

	level      string
	subject    string
	filterInfo string

	questions []bank.Question // full bank, loaded after subject selection
	filtered  []bank.Question // after the filter stage

	menu   components.Menu
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)

type bankLoadedMsg struct {
	subject   string
	questions []bank.Question
	err       error
}

// NewSetup creates the first wizard stage (level selection).
func NewSetup(deps Deps) *SetupScreen {
	s := &SetupScreen{deps: deps, stage: stageLevel}
	items := make([]components.MenuItem, 0, len(deps.Config.Levels))
	for _, level := range deps.Config.Levels {
		items = append(items, components.MenuItem{
			Label:  display(level),
			Action: s.pushStage(func() screen.Screen { return newSubjectStage(deps, level) }),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func newSubjectStage(deps Deps, level string) *SetupScreen {
	s := &SetupScreen{deps: deps, stage: stageSubject, level: level}
	items := make([]components.MenuItem, 0, len(deps.Config.Subjects))
	for _, subject := range deps.Config.Subjects {
		subject := subject
		items = append(items, components.MenuItem{
			Label: display(subject),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					qs, err := deps.Loader.Load(level, subject)
					return bankLoadedMsg{subject: subject, questions: qs, err: err}
				}
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func newFilterStage(deps Deps, level, subject string, qs []bank.Question) *SetupScreen {
	s := &SetupScreen{deps: deps, stage: stageFilter, level: level, subject: subject, questions: qs}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "None", Action: s.pushStage(func() screen.Screen {
			return newCountStage(deps, level, subject, "None", qs)
		})},
		{Label: "Difficulty", Action: s.pushStage(func() screen.Screen {
			return newDifficultyStage(deps, level, subject, qs)
		})},
		{Label: "Marks", Action: s.pushStage(func() screen.Screen {
			return newMarksStage(deps, level, subject, qs)
		})},
	})
	return s
}

func newDifficultyStage(deps Deps, level, subject string, qs []bank.Question) *SetupScreen {
	s := &SetupScreen{deps: deps, stage: stageDifficulty, level: level, subject: subject, questions: qs}
	options := bank.Difficulties(qs)
	items := make([]components.MenuItem, 0, len(options))
	for _, d := range options {
		d := d
		items = append(items, components.MenuItem{
			Label: d,
			Action: func() tea.Cmd {
				filtered := bank.FilterDifficulty(qs, d)
				if len(filtered) == 0 {
					return s.fail(fmt.Sprintf("No questions found for difficulty %q.", d))
				}
				return push(newCountStage(deps, level, subject, "Difficulty: "+d, filtered))
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func newMarksStage(deps Deps, level, subject string, qs []bank.Question) *SetupScreen {
	s := &SetupScreen{deps: deps, stage: stageMarks, level: level, subject: subject, questions: qs}
	s.input = components.NewTextInput("e.g. 2, 1-3 or all", 10)
	return s
}

func newCountStage(deps Deps, level, subject, filterInfo string, filtered []bank.Question) *SetupScreen {
	s := &SetupScreen{
		deps:       deps,
		stage:      stageCount,
		level:      level,
		subject:    subject,
		filterInfo: filterInfo,
		filtered:   filtered,
	}
	s.input = components.NewTextInput(fmt.Sprintf("1-%d or all", len(filtered)), 6)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	if s.stage == stageMarks || s.stage == stageCount {
		return s.input.Init()
	}
	return nil
}

func (s *SetupScreen) Title() string {
	switch s.stage {
	case stageLevel:
		return "Choose Level"
	case stageSubject:
		return "Choose Subject"
	case stageFilter:
		return "Filter Questions"
	case stageDifficulty:
		return "Choose Difficulty"
	case stageMarks:
		return "Filter by Marks"
	default:
		return "Question Count"
	}
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.stage {
	case stageMarks, stageCount:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		if errors.Is(msg.err, bank.ErrBankNotFound) || (msg.err == nil && len(msg.questions) == 0) {
			s.errMsg = fmt.Sprintf("No questions found for %s %s.", display(s.level), display(msg.subject))
			return s, nil
		}
		if msg.err != nil {
			s.errMsg = "Could not load question bank: " + msg.err.Error()
			return s, nil
		}
		return s, push(newFilterStage(s.deps, s.level, msg.subject, msg.questions))

	case setupErrMsg:
		s.errMsg = string(msg)
		return s, nil

	case tea.KeyMsg:
		switch s.stage {
		case stageMarks, stageCount:
			if msg.String() == "enter" {
				return s, s.submitInput()
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		default:
			s.errMsg = ""
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// submitInput handles Enter on the marks and count stages.
func (s *SetupScreen) submitInput() tea.Cmd {
	value := strings.ToLower(strings.TrimSpace(s.input.Value()))

	if s.stage == stageMarks {
		lo, hi, all, err := parseMarksFilter(value)
		if err != nil {
			s.errMsg = "Enter a number, a range like 1-2, or all."
			return nil
		}
		filtered := s.questions
		info := "Marks: all"
		if !all {
			filtered = bank.FilterMarks(s.questions, lo, hi)
			if lo == hi {
				info = fmt.Sprintf("Marks: %d", lo)
			} else {
				info = fmt.Sprintf("Marks: %d-%d", lo, hi)
			}
		}
		if len(filtered) == 0 {
			s.errMsg = "No questions found for the selected marks."
			return nil
		}
		return push(newCountStage(s.deps, s.level, s.subject, info, filtered))
	}

	count, err := parseCount(value, len(s.filtered))
	if err != nil {
		s.errMsg = fmt.Sprintf("Enter a number between 1 and %d, or all.", len(s.filtered))
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selected := bank.Sample(s.filtered, count, rng)
	state := session.New(s.level, s.subject, s.filterInfo, selected)
	return push(NewSession(s.deps, state))
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.prompt()))
	b.WriteString("\n\n")

	switch s.stage {
	case stageMarks, stageCount:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.input.View()))
	default:
		b.WriteString(s.menu.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	}
	return b.String()
}

func (s *SetupScreen) prompt() string {
	switch s.stage {
	case stageLevel:
		return "Choose qualification level"
	case stageSubject:
		return "Choose subject"
	case stageFilter:
		return "Filter questions by"
	case stageDifficulty:
		return "Choose difficulty (Any = all difficulties)"
	case stageMarks:
		return "Enter marks to filter"
	default:
		return fmt.Sprintf("%d questions available (%s)", len(s.filtered), s.filterInfo)
	}
}

type setupErrMsg string

// fail returns a command that surfaces an inline stage error.
func (s *SetupScreen) fail(msg string) tea.Cmd {
	return func() tea.Msg { return setupErrMsg(msg) }
}

// pushStage wraps a stage constructor into a menu action.
func (s *SetupScreen) pushStage(next func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd { return push(next()) }
}

func push(scr screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

// display renders stored identifiers like "Further_Maths" for humans.
func display(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// parseMarksFilter parses a marks filter: "" or "all" means no filter, a
// single integer filters exact marks, "lo-hi" filters an inclusive range.
func parseMarksFilter(s string) (lo, hi int, all bool, err error) {
	if s == "" || s == "all" {
		return 0, 0, true, nil
	}
	if before, after, found := strings.Cut(s, "-"); found {
		lo, err = strconv.Atoi(strings.TrimSpace(before))
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid range start: %w", err)
		}
		hi, err = strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid range end: %w", err)
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid marks value: %w", err)
	}
	return n, n, false, nil
}

// parseCount parses the question-count input: "" or "all" selects every
// available question, otherwise an integer in [1, max].
func parseCount(s string, max int) (int, error) {
	if s == "" || s == "all" {
		return max, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid count: %w", err)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("count %d out of range 1-%d", n, max)
	}
	return n, nil
}
