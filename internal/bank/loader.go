package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrBankNotFound reports a missing question bank file. Callers treat it as
// "zero questions available", never as a fatal condition.
var ErrBankNotFound = errors.New("question bank not found")

// Loader resolves and parses question bank files from a directory.
type Loader struct {
	dir string
	log *zap.Logger
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, log: log}
}

// Load reads the bank for a level/subject pair. A missing file returns
// ErrBankNotFound (wrapped with the resolved path); a present but invalid
// file returns the validation or decode error.
func (l *Loader) Load(level, subject string) ([]Question, error) {
	path := filepath.Join(l.dir, Key(level, subject)+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Warn("question bank missing", zap.String("path", path))
			return nil, fmt.Errorf("%w: %s", ErrBankNotFound, path)
		}
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}

	if err := validateBank(raw); err != nil {
		return nil, fmt.Errorf("bank %s: %w", path, err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode bank %s: %w", path, err)
	}

	l.log.Debug("loaded question bank",
		zap.String("path", path),
		zap.Int("questions", len(questions)),
	)
	return questions, nil
}
