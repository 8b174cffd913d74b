package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadingValidate(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		reading Reading
		wantErr bool
	}{
		{
			name: "valid single card",
			reading: Reading{
				Date:         now,
				Spread:       "Daily Guidance",
				Cards:        []string{"The Fool"},
				Orientations: []Orientation{Upright},
			},
		},
		{
			name: "valid multi card",
			reading: Reading{
				Date:         now,
				Spread:       "Past-Present-Future",
				Cards:        []string{"The Fool", "Death", "The Star"},
				Orientations: []Orientation{Upright, Reversed, Upright},
			},
		},
		{
			name: "missing cards",
			reading: Reading{
				Date:         now,
				Spread:       "Daily Guidance",
				Orientations: []Orientation{Upright},
			},
			wantErr: true,
		},
		{
			name: "missing orientations",
			reading: Reading{
				Date:   now,
				Spread: "Daily Guidance",
				Cards:  []string{"The Fool"},
			},
			wantErr: true,
		},
		{
			name: "mismatched lengths",
			reading: Reading{
				Date:         now,
				Spread:       "Past-Present-Future",
				Cards:        []string{"The Fool", "Death"},
				Orientations: []Orientation{Upright},
			},
			wantErr: true,
		},
		{
			name: "unrecognized orientation",
			reading: Reading{
				Date:         now,
				Spread:       "Daily Guidance",
				Cards:        []string{"The Fool"},
				Orientations: []Orientation{"Sideways"},
			},
			wantErr: true,
		},
		{
			name: "missing spread",
			reading: Reading{
				Date:         now,
				Cards:        []string{"The Fool"},
				Orientations: []Orientation{Upright},
			},
			wantErr: true,
		},
		{
			name: "zero date",
			reading: Reading{
				Spread:       "Daily Guidance",
				Cards:        []string{"The Fool"},
				Orientations: []Orientation{Upright},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reading.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadingMatchesDay(t *testing.T) {
	base := time.Date(2026, 8, 29, 23, 55, 0, 0, time.Local)
	r := Reading{Date: base}

	assert.True(t, r.MatchesDay(time.Date(2026, 8, 29, 0, 1, 0, 0, time.Local)),
		"same calendar day, different time of day")
	assert.False(t, r.MatchesDay(base.Add(10*time.Minute)),
		"ten minutes later crosses midnight")
	assert.False(t, r.MatchesDay(base.AddDate(-1, 0, 0)), "same day, prior year")
}

func TestOrientationValid(t *testing.T) {
	assert.True(t, Upright.Valid())
	assert.True(t, Reversed.Valid())
	assert.False(t, Orientation("").Valid())
	assert.False(t, Orientation("upright").Valid(), "orientation values are case-sensitive")
}
