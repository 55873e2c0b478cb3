package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerEvent records one answered question.
type AnswerEvent struct {
	ID        int64
	SessionID string
	BankKey   string
	Topic     string
	Prompt    string
	Response  string
	Accepted  bool
	Matched   string // canonical answer that matched, empty if rejected
	Rule      string // matching rule that fired, empty if rejected
	CreatedAt time.Time
}

// BankCount aggregates answer counts for one bank key.
type BankCount struct {
	BankKey  string
	Answered int
	Correct  int
}

// AnswerRepo provides append and query access to answer events.
type AnswerRepo struct {
	db *sql.DB
}

// Append records an answered question.
func (r *AnswerRepo) Append(ctx context.Context, ev AnswerEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO answer_events (session_id, bank_key, topic, prompt, response, accepted, matched, rule)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.BankKey, ev.Topic, ev.Prompt, ev.Response, ev.Accepted, ev.Matched, ev.Rule,
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

// Recent returns the most recent events, newest first. limit <= 0 means 50.
func (r *AnswerRepo) Recent(ctx context.Context, limit int) ([]AnswerEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, bank_key, topic, prompt, response, accepted, matched, rule, created_at
		FROM answer_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var ev AnswerEvent
		if err := rows.Scan(
			&ev.ID, &ev.SessionID, &ev.BankKey, &ev.Topic, &ev.Prompt,
			&ev.Response, &ev.Accepted, &ev.Matched, &ev.Rule, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountByBank returns per-bank answered/correct totals across all sessions.
func (r *AnswerRepo) CountByBank(ctx context.Context) ([]BankCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT bank_key, COUNT(*), COALESCE(SUM(accepted), 0)
		FROM answer_events GROUP BY bank_key ORDER BY bank_key`)
	if err != nil {
		return nil, fmt.Errorf("count by bank: %w", err)
	}
	defer rows.Close()

	var counts []BankCount
	for rows.Next() {
		var c BankCount
		if err := rows.Scan(&c.BankKey, &c.Answered, &c.Correct); err != nil {
			return nil, fmt.Errorf("scan bank count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
