package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Retention defaults. The caps are policy, not format: a store loaded
// with more records than the cap evicts on the next append.
const (
	DefaultReadingCap = 100
	DefaultJournalCap = 200
)

// Config holds store tuning for store.New. Zero values are replaced
// with the defaults above, so an empty Config is usable.
type Config struct {
	ReadingCap int `json:"reading_cap" yaml:"reading_cap"`
	JournalCap int `json:"journal_cap" yaml:"journal_cap"`
}

// DefaultConfig returns the canonical retention configuration.
func DefaultConfig() Config {
	return Config{
		ReadingCap: DefaultReadingCap,
		JournalCap: DefaultJournalCap,
	}
}

// Validate checks that the configured caps are usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ReadingCap, validation.Min(1)),
		validation.Field(&c.JournalCap, validation.Min(1)),
	)
}

// WithDefaults returns c with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.ReadingCap == 0 {
		c.ReadingCap = DefaultReadingCap
	}
	if c.JournalCap == 0 {
		c.JournalCap = DefaultJournalCap
	}
	return c
}
