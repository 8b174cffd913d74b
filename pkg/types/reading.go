package types

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Orientation is the facing of a drawn card.
type Orientation string

// Recognized orientations.
const (
	Upright  Orientation = "Upright"
	Reversed Orientation = "Reversed"
)

// validOrientations is the set of recognized orientation values.
var validOrientations = map[Orientation]bool{
	Upright:  true,
	Reversed: true,
}

// Valid reports whether o is a recognized orientation.
func (o Orientation) Valid() bool {
	return validOrientations[o]
}

// Reading is one completed draw-and-interpret session. Readings are
// append-only: created once, never edited, removed only by cap
// eviction or client deletion.
type Reading struct {
	ID           string        `json:"id"` // UUID v7, generated on append.
	Date         time.Time     `json:"date"`
	Spread       string        `json:"spread"`
	Cards        []string      `json:"cards"`
	Orientations []Orientation `json:"orientations"`
	Notes        string        `json:"notes"`
}

// Validate checks the reading at the deserialization boundary.
// Cards and orientations must be present and of equal length, and
// every orientation must be recognized.
func (r Reading) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Spread, validation.Required),
		validation.Field(&r.Cards, validation.Required),
		validation.Field(&r.Orientations, validation.Required, validation.By(r.orientationsMatchCards)),
	)
}

// orientationsMatchCards enforces the one-orientation-per-card pairing.
func (r Reading) orientationsMatchCards(any) error {
	if len(r.Orientations) != len(r.Cards) {
		return fmt.Errorf("%d orientations for %d cards", len(r.Orientations), len(r.Cards))
	}
	for _, o := range r.Orientations {
		if !o.Valid() {
			return fmt.Errorf("unrecognized orientation %q", o)
		}
	}
	return nil
}

// MatchesDay reports whether the reading was recorded on the given
// calendar day in the given location. The comparison is by local date,
// not full timestamp.
func (r Reading) MatchesDay(day time.Time) bool {
	y1, m1, d1 := r.Date.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
