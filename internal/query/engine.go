// Package query answers reading-history questions for one client. The
// JSON store file is the source of truth; readings are loaded into an
// in-memory SQLite database used purely as the query engine, and no
// database file is ever written.
package query

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/arcana/pkg/types"
)

const schemaSQL = `
CREATE TABLE readings (
    reading_id  TEXT PRIMARY KEY,
    date        TEXT NOT NULL,
    spread      TEXT NOT NULL,
    notes       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE reading_cards (
    reading_id  TEXT NOT NULL REFERENCES readings(reading_id),
    position    INTEGER NOT NULL,
    card        TEXT NOT NULL,
    orientation TEXT NOT NULL,
    PRIMARY KEY (reading_id, position)
);

CREATE INDEX idx_readings_spread ON readings(spread);
CREATE INDEX idx_readings_date ON readings(date);
`

// dateFormat is the stored timestamp encoding. Dates are normalized to
// UTC and fixed width so that lexicographic comparison in SQL matches
// chronological order; RFC3339Nano alone would keep each reading's
// original offset and trim trailing zeros, both of which break text
// ordering.
const dateFormat = "2006-01-02T15:04:05.000000000Z"

// Engine holds one client's reading history in an in-memory database.
// Close releases it; the durable store is never touched.
type Engine struct {
	db *sql.DB
}

// Load builds an engine over the given client's readings.
func Load(client *types.Client) (*Engine, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	insReading, err := tx.Prepare("INSERT INTO readings (reading_id, date, spread, notes) VALUES (?, ?, ?, ?)")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare readings insert: %w", err)
	}
	defer insReading.Close()

	insCard, err := tx.Prepare("INSERT INTO reading_cards (reading_id, position, card, orientation) VALUES (?, ?, ?, ?)")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare cards insert: %w", err)
	}
	defer insCard.Close()

	for _, r := range client.Readings {
		if _, err := insReading.Exec(r.ID, r.Date.UTC().Format(dateFormat), r.Spread, r.Notes); err != nil {
			db.Close()
			return nil, fmt.Errorf("insert reading %s: %w", r.ID, err)
		}
		for i, card := range r.Cards {
			if _, err := insCard.Exec(r.ID, i, card, string(r.Orientations[i])); err != nil {
				db.Close()
				return nil, fmt.Errorf("insert card %d of reading %s: %w", i, r.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, fmt.Errorf("commit load: %w", err)
	}
	return &Engine{db: db}, nil
}

// Close releases the in-memory database. Idempotent.
func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	err := e.db.Close()
	e.db = nil
	return err
}

// Summary is one reading row without its cards, newest first in all
// query results.
type Summary struct {
	ID        string
	Date      time.Time
	Spread    string
	CardCount int
	Notes     string
}

const summarySQL = `
SELECT r.reading_id, r.date, r.spread, COUNT(c.position), r.notes
FROM readings r
LEFT JOIN reading_cards c ON c.reading_id = r.reading_id
%s
GROUP BY r.reading_id
ORDER BY r.date DESC`

// All returns every reading, newest first.
func (e *Engine) All() ([]Summary, error) {
	return e.summaries(fmt.Sprintf(summarySQL, ""))
}

// BySpread returns readings of one spread, newest first.
func (e *Engine) BySpread(name string) ([]Summary, error) {
	return e.summaries(fmt.Sprintf(summarySQL, "WHERE r.spread = ?"), name)
}

// Between returns readings whose date falls in [from, to), newest first.
func (e *Engine) Between(from, to time.Time) ([]Summary, error) {
	return e.summaries(fmt.Sprintf(summarySQL, "WHERE r.date >= ? AND r.date < ?"),
		from.UTC().Format(dateFormat), to.UTC().Format(dateFormat))
}

// Since returns readings on or after the given time, newest first.
func (e *Engine) Since(from time.Time) ([]Summary, error) {
	return e.summaries(fmt.Sprintf(summarySQL, "WHERE r.date >= ?"),
		from.UTC().Format(dateFormat))
}

func (e *Engine) summaries(query string, args ...any) ([]Summary, error) {
	rows, err := e.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		var date string
		if err := rows.Scan(&s.ID, &date, &s.Spread, &s.CardCount, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		t, err := time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parse reading date %q: %w", date, err)
		}
		s.Date = t
		out = append(out, s)
	}
	return out, rows.Err()
}

// CardCount is the draw frequency of one card label, split by
// orientation, across the loaded history.
type CardCount struct {
	Card     string
	Upright  int
	Reversed int
}

// Total returns the combined draw count.
func (c CardCount) Total() int { return c.Upright + c.Reversed }

// CardCounts returns per-card draw frequencies, most-drawn first, ties
// broken by card label.
func (e *Engine) CardCounts() ([]CardCount, error) {
	rows, err := e.db.Query(`
SELECT card,
       SUM(CASE WHEN orientation = 'Upright' THEN 1 ELSE 0 END),
       SUM(CASE WHEN orientation = 'Reversed' THEN 1 ELSE 0 END)
FROM reading_cards
GROUP BY card
ORDER BY COUNT(*) DESC, card ASC`)
	if err != nil {
		return nil, fmt.Errorf("query card counts: %w", err)
	}
	defer rows.Close()

	var out []CardCount
	for rows.Next() {
		var c CardCount
		if err := rows.Scan(&c.Card, &c.Upright, &c.Reversed); err != nil {
			return nil, fmt.Errorf("scan card count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
