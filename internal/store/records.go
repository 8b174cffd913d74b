package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dukaforge/arcana/pkg/types"
)

// AppendReading records a completed reading under the current client:
// newest first, evicting past the reading cap. Fails without mutation
// when no client is current or when cards and orientations are missing
// or mismatched in length.
func (s *Store) AppendReading(spreadName string, cards []string, orientations []types.Orientation, notes string) error {
	c, ok := s.Current()
	if !ok {
		return types.ErrNoCurrentClient
	}

	reading := types.Reading{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Date:         s.now(),
		Spread:       spreadName,
		Cards:        cards,
		Orientations: orientations,
		Notes:        notes,
	}
	if err := reading.Validate(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidReadingData, err)
	}

	c.Readings = append([]types.Reading{reading}, c.Readings...)
	if len(c.Readings) > s.cfg.ReadingCap {
		c.Readings = c.Readings[:s.cfg.ReadingCap]
	}

	s.persist()
	return nil
}

// AppendJournalEntry records a free-text note under the current
// client: newest first, evicting past the journal cap. Fails without
// mutation when no client is current or the text trims to empty.
func (s *Store) AppendJournalEntry(text string) error {
	c, ok := s.Current()
	if !ok {
		return types.ErrNoCurrentClient
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ErrEmptyEntry
	}

	entry := types.JournalEntry{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Date: s.now(),
		Text: text,
	}

	c.Journal = append([]types.JournalEntry{entry}, c.Journal...)
	if len(c.Journal) > s.cfg.JournalCap {
		c.Journal = c.Journal[:s.cfg.JournalCap]
	}

	s.persist()
	return nil
}

// HasCompletedToday reports whether the current client already has a
// reading of the named spread on today's calendar date. Today is taken
// from the injected clock, compared by local date, not full timestamp.
func (s *Store) HasCompletedToday(spreadName string) bool {
	c, ok := s.Current()
	if !ok {
		return false
	}
	today := s.now()
	for _, r := range c.Readings {
		if r.Spread == spreadName && r.MatchesDay(today) {
			return true
		}
	}
	return false
}
