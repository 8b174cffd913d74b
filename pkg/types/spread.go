package types

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SpreadDefinition is a named template specifying how many cards are
// drawn and what each drawn position means. Definitions are immutable
// and constructed once at startup.
type SpreadDefinition struct {
	Name        string   `json:"name"`
	CardCount   int      `json:"card_count"`
	Positions   []string `json:"position_labels"`
	Description string   `json:"description"`
}

// Validate checks that the definition is well-formed: a positive card
// count and exactly one position label per card.
func (s SpreadDefinition) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.CardCount, validation.Required, validation.Min(1)),
		validation.Field(&s.Positions, validation.By(s.positionsMatchCount)),
	)
}

func (s SpreadDefinition) positionsMatchCount(any) error {
	if len(s.Positions) != s.CardCount {
		return fmt.Errorf("%d position labels for %d cards", len(s.Positions), s.CardCount)
	}
	return nil
}
