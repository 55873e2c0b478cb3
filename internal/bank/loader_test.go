package bank

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeBank(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "GCSE_Biology.json", `[
		{"question": "Powerhouse of the cell?", "topic": "Cells", "answer": "mitochondria"},
		{"question": "2 + 19?", "topic": "Arithmetic", "answer": ["21", "twenty one"], "difficulty": "Easy", "marks": 1}
	]`)

	l := NewLoader(dir, zap.NewNop())
	qs, err := l.Load("GCSE", "Biology")
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "Cells", qs[0].Topic)
	assert.Equal(t, Answers{"mitochondria"}, qs[0].Answers)
	assert.Equal(t, Answers{"21", "twenty one"}, qs[1].Answers)
	assert.Equal(t, "Easy", qs[1].Difficulty)
	assert.Equal(t, 1, qs[1].Marks)
}

func TestLoaderMissingBank(t *testing.T) {
	l := NewLoader(t.TempDir(), zap.NewNop())
	qs, err := l.Load("ALevel", "Physics")
	require.ErrorIs(t, err, ErrBankNotFound)
	assert.Empty(t, qs)
}

func TestLoaderRejectsInvalidBank(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", `not json at all`},
		{"missing topic", `[{"question": "q", "answer": "a"}]`},
		{"numeric answer", `[{"question": "q", "topic": "t", "answer": 42}]`},
		{"empty answer list", `[{"question": "q", "topic": "t", "answer": []}]`},
		{"unknown field", `[{"question": "q", "topic": "t", "answer": "a", "hint": "h"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeBank(t, dir, "GCSE_Maths.json", tc.content)

			l := NewLoader(dir, zap.NewNop())
			_, err := l.Load("GCSE", "Maths")
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrBankNotFound)
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "GCSE_Further_Maths", Key("GCSE", "Further_Maths"))
}

func TestDifficulties(t *testing.T) {
	qs := []Question{
		{Difficulty: "Hard"},
		{Difficulty: "Easy"},
		{Difficulty: "Fiendish"},
		{Difficulty: ""},
		{Difficulty: "Easy"},
	}
	assert.Equal(t, []string{"Any", "Easy", "Hard", "Fiendish"}, Difficulties(qs))
}

func TestFilterDifficulty(t *testing.T) {
	qs := []Question{
		{Prompt: "a", Difficulty: "Easy"},
		{Prompt: "b", Difficulty: "Hard"},
		{Prompt: "c", Difficulty: "Easy"},
	}

	easy := FilterDifficulty(qs, "Easy")
	require.Len(t, easy, 2)

	all := FilterDifficulty(qs, "Any")
	assert.Len(t, all, 3)
}

func TestFilterMarks(t *testing.T) {
	qs := []Question{
		{Prompt: "a", Marks: 1},
		{Prompt: "b", Marks: 2},
		{Prompt: "c", Marks: 5},
	}

	assert.Len(t, FilterMarks(qs, 1, 2), 2)
	assert.Len(t, FilterMarks(qs, 2, 1), 2) // reversed bounds swap
	assert.Len(t, FilterMarks(qs, 3, 3), 0)
	assert.Len(t, FilterMarks(qs, 5, 5), 1)
}

func TestSample(t *testing.T) {
	qs := []Question{{Prompt: "a"}, {Prompt: "b"}, {Prompt: "c"}, {Prompt: "d"}}
	rng := rand.New(rand.NewSource(1))

	picked := Sample(qs, 2, rng)
	assert.Len(t, picked, 2)

	all := Sample(qs, 10, rng)
	assert.Len(t, all, 4)

	// Input slice is not mutated.
	assert.Equal(t, "a", qs[0].Prompt)
}
