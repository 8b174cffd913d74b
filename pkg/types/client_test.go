package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientValidate(t *testing.T) {
	now := time.Now()

	valid := Client{
		ID:        "client_1_sarah",
		Name:      "Sarah",
		CreatedAt: now,
		Readings:  []Reading{},
		Journal:   []JournalEntry{},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Client)
	}{
		{"missing id", func(c *Client) { c.ID = "" }},
		{"missing name", func(c *Client) { c.Name = "" }},
		{"blank name", func(c *Client) { c.Name = "   " }},
		{"zero created_at", func(c *Client) { c.CreatedAt = time.Time{} }},
		{"invalid nested reading", func(c *Client) {
			c.Readings = []Reading{{Date: now, Spread: "Daily Guidance"}}
		}},
		{"invalid nested journal entry", func(c *Client) {
			c.Journal = []JournalEntry{{Date: now, Text: "  "}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "sarah johnson", NormalizeName("  Sarah Johnson "))
	assert.Equal(t, NormalizeName("SARAH"), NormalizeName("sarah"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestDefaultClientSettings(t *testing.T) {
	s := DefaultClientSettings()
	assert.True(t, s.DailyLimit)
	assert.NotNil(t, s.PreferredSpreads)
	assert.Empty(t, s.PreferredSpreads)
}
