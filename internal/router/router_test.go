package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sdutta/revq/internal/screen"
)

type stubScreen struct {
	name string
}

func (s stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s stubScreen) View(int, int) string                    { return s.name }
func (s stubScreen) Title() string                           { return s.name }

func TestPushPop(t *testing.T) {
	r := New(stubScreen{name: "home"})
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	r.Push(stubScreen{name: "quiz"})
	if r.Depth() != 2 || r.Active().Title() != "quiz" {
		t.Fatalf("after push: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Fatalf("after pop: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	// The root screen is never popped.
	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("root popped: depth %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(stubScreen{name: "home"})
	r.Push(stubScreen{name: "level"})
	r.Replace(stubScreen{name: "subject"})

	if r.Depth() != 2 || r.Active().Title() != "subject" {
		t.Fatalf("after replace: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Fatalf("replace grew the stack: active %q", r.Active().Title())
	}
}

func TestHome(t *testing.T) {
	r := New(stubScreen{name: "home"})
	r.Push(stubScreen{name: "a"})
	r.Push(stubScreen{name: "b"})

	r.Home()
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Fatalf("after home: depth %d, active %q", r.Depth(), r.Active().Title())
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	r := New(stubScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: stubScreen{name: "quiz"}})
	if r.Active().Title() != "quiz" {
		t.Fatalf("push msg: active %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("pop msg: active %q", r.Active().Title())
	}
}
