package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/arcana/pkg/types"
)

func TestAppendReading(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	s := newTestStore(t, WithClock(fixedClock(now)))

	err := s.AppendReading("Past-Present-Future",
		[]string{"The Fool", "Death", "The Star"},
		[]types.Orientation{types.Upright, types.Reversed, types.Upright},
		"first session")
	require.NoError(t, err)

	c, ok := s.Current()
	require.True(t, ok)
	require.Len(t, c.Readings, 1)

	r := c.Readings[0]
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, now, r.Date)
	assert.Equal(t, "Past-Present-Future", r.Spread)
	assert.Equal(t, "first session", r.Notes)
	require.Len(t, r.Cards, 3)
}

func TestAppendReadingValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name         string
		cards        []string
		orientations []types.Orientation
	}{
		{"nil cards", nil, []types.Orientation{types.Upright}},
		{"nil orientations", []string{"The Fool"}, nil},
		{"mismatched lengths", []string{"The Fool", "Death"}, []types.Orientation{types.Upright}},
		{"empty both", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AppendReading("Daily Guidance", tt.cards, tt.orientations, "")
			assert.ErrorIs(t, err, types.ErrInvalidReadingData)

			c, _ := s.Current()
			assert.Empty(t, c.Readings, "failed append must not mutate")
		})
	}
}

func TestAppendReadingNoCurrentClient(t *testing.T) {
	s := New("ignored") // uninitialized: no current client
	err := s.AppendReading("Daily Guidance", []string{"The Fool"}, []types.Orientation{types.Upright}, "")
	assert.ErrorIs(t, err, types.ErrNoCurrentClient)
}

func TestReadingEviction(t *testing.T) {
	s := newTestStore(t, WithConfig(types.Config{ReadingCap: 100}))

	for i := 0; i < 101; i++ {
		err := s.AppendReading("Daily Guidance",
			[]string{fmt.Sprintf("card-%d", i)},
			[]types.Orientation{types.Upright}, "")
		require.NoError(t, err)
	}

	c, _ := s.Current()
	require.Len(t, c.Readings, 100, "cap holds")
	assert.Equal(t, "card-100", c.Readings[0].Cards[0], "newest at index 0")
	assert.Equal(t, "card-1", c.Readings[99].Cards[0], "previously-oldest evicted")
}

func TestJournalEntries(t *testing.T) {
	s := newTestStore(t, WithConfig(types.Config{JournalCap: 3}))

	assert.ErrorIs(t, s.AppendJournalEntry("   "), types.ErrEmptyEntry)

	for i := 0; i < 4; i++ {
		require.NoError(t, s.AppendJournalEntry(fmt.Sprintf("entry %d", i)))
	}

	c, _ := s.Current()
	require.Len(t, c.Journal, 3)
	assert.Equal(t, "entry 3", c.Journal[0].Text, "newest first")
	assert.Equal(t, "entry 1", c.Journal[2].Text, "oldest evicted")
	assert.NotEmpty(t, c.Journal[0].ID)
}

func TestAppendJournalEntryTrims(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendJournalEntry("  reflections  "))

	c, _ := s.Current()
	assert.Equal(t, "reflections", c.Journal[0].Text)
}

func TestHasCompletedToday(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	clock := now
	s := newTestStore(t, WithClock(func() time.Time { return clock }))

	assert.False(t, s.HasCompletedToday("Daily Guidance"), "no readings yet")

	require.NoError(t, s.AppendReading("Daily Guidance",
		[]string{"The Fool"}, []types.Orientation{types.Upright}, ""))

	assert.True(t, s.HasCompletedToday("Daily Guidance"))
	assert.False(t, s.HasCompletedToday("Celtic Cross"), "spread name matches exactly")

	// Still true later the same day, for repeated same-day readings too.
	clock = now.Add(10 * time.Hour)
	assert.True(t, s.HasCompletedToday("Daily Guidance"))
	require.NoError(t, s.AppendReading("Daily Guidance",
		[]string{"Death"}, []types.Orientation{types.Reversed}, ""))
	assert.True(t, s.HasCompletedToday("Daily Guidance"))

	// Gone at the next calendar day.
	clock = now.AddDate(0, 0, 1)
	assert.False(t, s.HasCompletedToday("Daily Guidance"))
}

func TestHasCompletedTodayPerClient(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	s := newTestStore(t, WithClock(fixedClock(now)))

	require.NoError(t, s.AppendReading("Daily Guidance",
		[]string{"The Fool"}, []types.Orientation{types.Upright}, ""))
	require.True(t, s.HasCompletedToday("Daily Guidance"))

	id, err := s.AddClient("Sarah", "")
	require.NoError(t, err)
	require.NoError(t, s.SwitchCurrent(id))

	assert.False(t, s.HasCompletedToday("Daily Guidance"), "the gate is per client")
}
