package session

import (
	"sort"

	"github.com/sdutta/revq/internal/perf"
)

// TopicSummary is one row of the end-of-session report.
type TopicSummary struct {
	Topic     string
	Attempted int
	Correct   int
	Accuracy  float64
}

// Summarize builds the per-topic report for a bank key from the cumulative
// performance record, sorted by topic name.
func Summarize(p perf.Performance, key string) []TopicSummary {
	topics := p[key]
	out := make([]TopicSummary, 0, len(topics))
	for topic, stat := range topics {
		out = append(out, TopicSummary{
			Topic:     topic,
			Attempted: stat.Attempted,
			Correct:   stat.Correct,
			Accuracy:  stat.Accuracy(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}
