package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultReadingCap, cfg.ReadingCap)
	assert.Equal(t, DefaultJournalCap, cfg.JournalCap)
	assert.NoError(t, cfg.Validate())
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultConfig(), cfg)

	custom := Config{ReadingCap: 5}.WithDefaults()
	assert.Equal(t, 5, custom.ReadingCap)
	assert.Equal(t, DefaultJournalCap, custom.JournalCap)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{ReadingCap: 1, JournalCap: 1}.Validate())
	assert.Error(t, Config{ReadingCap: -1, JournalCap: 10}.Validate())
	assert.Error(t, Config{ReadingCap: 10, JournalCap: -1}.Validate())
}

func TestSpreadDefinitionValidate(t *testing.T) {
	valid := SpreadDefinition{
		Name:      "Past-Present-Future",
		CardCount: 3,
		Positions: []string{"Past", "Present", "Future"},
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = ""
	assert.Error(t, missingName.Validate())

	zeroCount := valid
	zeroCount.CardCount = 0
	assert.Error(t, zeroCount.Validate())

	mismatched := valid
	mismatched.Positions = []string{"Past"}
	assert.Error(t, mismatched.Validate())
}
