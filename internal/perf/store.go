// Package perf persists per-topic accuracy across quiz sessions as a small
// JSON file: bank key -> topic -> attempted/correct counts.
package perf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// TopicStat counts answers for one topic. Correct never exceeds Attempted.
type TopicStat struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// Accuracy returns the fraction of correct answers, 0 when nothing has been
// attempted.
func (s TopicStat) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// Performance maps bank keys to per-topic stats.
type Performance map[string]map[string]*TopicStat

// Record tallies one answered question. Attempted is always incremented,
// Correct only when the answer was accepted.
func (p Performance) Record(key, topic string, accepted bool) {
	if p[key] == nil {
		p[key] = make(map[string]*TopicStat)
	}
	stat := p[key][topic]
	if stat == nil {
		stat = &TopicStat{}
		p[key][topic] = stat
	}
	stat.Attempted++
	if accepted {
		stat.Correct++
	}
}

// Store reads and writes a Performance file.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore creates a Store for the given file path.
func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the performance file. A missing, empty or corrupt file yields
// an empty Performance; corruption is logged as a warning, never fatal.
func (s *Store) Load() Performance {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("performance file unreadable, starting fresh",
				zap.String("path", s.path), zap.Error(err))
		}
		return Performance{}
	}
	if len(raw) == 0 {
		return Performance{}
	}

	var p Performance
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn("performance file corrupted, starting fresh",
			zap.String("path", s.path), zap.Error(err))
		return Performance{}
	}
	if p == nil {
		return Performance{}
	}
	return p
}

// Save writes the full performance map as indented JSON, overwriting the
// previous contents.
func (s *Store) Save(p Performance) error {
	raw, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("encode performance: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create performance dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write performance: %w", err)
	}
	return nil
}

// Clear removes the performance file and writes an empty object back so the
// next run starts with a valid file.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove performance file: %w", err)
	}
	return s.Save(Performance{})
}
