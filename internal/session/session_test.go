package session

import (
	"testing"

	"github.com/sdutta/revq/internal/bank"
	"github.com/sdutta/revq/internal/match"
	"github.com/sdutta/revq/internal/perf"
)

func testQuestions() []bank.Question {
	return []bank.Question{
		{Prompt: "Powerhouse of the cell?", Topic: "Cells", Answers: bank.Answers{"mitochondria"}},
		{Prompt: "2 + 19?", Topic: "Arithmetic", Answers: bank.Answers{"21", "twenty one"}},
		{Prompt: "Largest planet?", Topic: "Space", Answers: bank.Answers{"jupiter"}},
	}
}

func TestNewState(t *testing.T) {
	s := New("GCSE", "Biology", "None", testQuestions())

	if s.SessionID == "" {
		t.Error("expected a session ID")
	}
	if s.BankKey != "GCSE_Biology" {
		t.Errorf("bank key = %q, want GCSE_Biology", s.BankKey)
	}
	if s.Done() {
		t.Error("fresh session reported done")
	}
	if q := s.Current(); q == nil || q.Topic != "Cells" {
		t.Errorf("current = %v, want first question", q)
	}
}

func TestHandleAnswerUpdatesTallies(t *testing.T) {
	s := New("GCSE", "Biology", "None", testQuestions())
	p := perf.Performance{}
	m := match.New(match.DefaultConfig())

	out := HandleAnswer(s, p, m, "mitocondria") // fuzzy-close typo
	if !out.Accepted {
		t.Fatalf("outcome = %+v, want accepted", out)
	}
	if out.Topic != "Cells" {
		t.Errorf("topic = %q, want Cells", out.Topic)
	}
	s.Advance()

	out = HandleAnswer(s, p, m, "nineteen")
	if out.Accepted {
		t.Fatalf("outcome = %+v, want rejected", out)
	}
	if len(out.Answers) != 2 {
		t.Errorf("answers = %v, want both canonical forms", out.Answers)
	}
	s.Advance()

	out = HandleAnswer(s, p, m, "jupiter")
	if !out.Accepted {
		t.Fatalf("outcome = %+v, want accepted", out)
	}
	s.Advance()

	if !s.Done() {
		t.Error("session not done after last question")
	}
	if s.TotalAnswered != 3 || s.TotalCorrect != 2 {
		t.Errorf("tallies = %d/%d, want 2/3", s.TotalCorrect, s.TotalAnswered)
	}

	cells := p["GCSE_Biology"]["Cells"]
	if cells == nil || cells.Attempted != 1 || cells.Correct != 1 {
		t.Errorf("Cells stat = %+v, want {1 1}", cells)
	}
	arith := p["GCSE_Biology"]["Arithmetic"]
	if arith == nil || arith.Attempted != 1 || arith.Correct != 0 {
		t.Errorf("Arithmetic stat = %+v, want {1 0}", arith)
	}
}

func TestHandleAnswerAfterDone(t *testing.T) {
	s := New("GCSE", "Maths", "None", nil)
	p := perf.Performance{}
	m := match.New(match.DefaultConfig())

	out := HandleAnswer(s, p, m, "anything")
	if out.Accepted || s.TotalAnswered != 0 {
		t.Errorf("answering a finished session changed state: %+v", out)
	}
}

func TestSummarize(t *testing.T) {
	p := perf.Performance{}
	p.Record("GCSE_Biology", "Enzymes", true)
	p.Record("GCSE_Biology", "Cells", true)
	p.Record("GCSE_Biology", "Cells", false)

	rows := Summarize(p, "GCSE_Biology")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Topic != "Cells" || rows[1].Topic != "Enzymes" {
		t.Errorf("rows not sorted by topic: %v", rows)
	}
	if rows[0].Accuracy != 0.5 {
		t.Errorf("Cells accuracy = %v, want 0.5", rows[0].Accuracy)
	}

	if got := Summarize(p, "missing"); len(got) != 0 {
		t.Errorf("Summarize(missing) = %v, want empty", got)
	}
}
