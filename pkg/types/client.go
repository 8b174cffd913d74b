package types

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ClientSettings is the small free-form preferences record carried per
// client. It is persisted and round-tripped but carries no store
// invariants.
type ClientSettings struct {
	DailyLimit       bool     `json:"daily_limit"`
	PreferredSpreads []string `json:"preferred_spreads"`
	Notes            string   `json:"notes"`
}

// DefaultClientSettings returns the settings a new client starts with.
func DefaultClientSettings() ClientSettings {
	return ClientSettings{DailyLimit: true, PreferredSpreads: []string{}}
}

// Client is a named profile under which readings and journal entries
// are recorded. ID and CreatedAt are set once at creation and never
// change; Name is unique case-insensitively among live clients.
type Client struct {
	ID          string         `json:"-"` // map key in the persisted document
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_date"`
	Readings    []Reading      `json:"readings"`
	Journal     []JournalEntry `json:"journal"`
	Settings    ClientSettings `json:"settings"`
}

// Validate checks the client at the deserialization boundary. Readings
// and journal entries are validated individually so one malformed
// record names itself in the error.
func (c Client) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&c.CreatedAt, validation.Required),
		validation.Field(&c.Readings),
		validation.Field(&c.Journal),
	)
}

// NormalizeName returns the canonical form of a client name used for
// uniqueness comparison: trimmed and lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
