package types

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JournalEntry is one free-text note recorded under a client.
// Entries are append-only, like readings.
type JournalEntry struct {
	ID   string    `json:"id"` // UUID v7, generated on append.
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// Validate checks the entry at the deserialization boundary.
func (e JournalEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.Text, validation.Required, validation.By(notBlank)),
	)
}

// notBlank rejects strings that trim to empty. ozzo's Required accepts
// whitespace-only strings, which the store must not.
func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "must not be blank")
	}
	return nil
}
