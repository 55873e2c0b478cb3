// Package bank loads and filters revision question banks. A bank is a JSON
// file holding the questions for one level/subject pair.
package bank

import (
	"encoding/json"
	"fmt"
)

// Question is a single revision question. Immutable once loaded.
type Question struct {
	Prompt     string  `json:"question"`
	Topic      string  `json:"topic"`
	Answers    Answers `json:"answer"`
	Difficulty string  `json:"difficulty,omitempty"`
	Marks      int     `json:"marks,omitempty"`
}

// Answers holds one or more accepted canonical answers. The JSON form is
// either a plain string or an array of strings.
type Answers []string

func (a *Answers) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Answers{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be a string or an array of strings")
	}
	*a = Answers(many)
	return nil
}

func (a Answers) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

// Key returns the bank key for a level/subject pair, e.g. "GCSE_Biology".
// It doubles as the performance-store session key.
func Key(level, subject string) string {
	return level + "_" + subject
}
