// Shared helpers for arcana CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dukaforge/arcana/internal/store"
	"github.com/dukaforge/arcana/pkg/types"
)

// openStore resolves the store path, builds the logger, and returns an
// initialized store. Initialize synthesizes the default client on a new
// or unreadable file, so the returned store always has a current client.
func openStore() (*store.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	cfg := types.Config{
		ReadingCap: configCaps.ReadingCap,
		JournalCap: configCaps.JournalCap,
	}
	if err := cfg.WithDefaults().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	s := store.New(path,
		store.WithConfig(cfg),
		store.WithLogger(newLogger()),
	)
	if err := s.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return s, nil
}

// newLogger builds a file logger under the config directory. Logging
// is best-effort: any failure degrades to a nop logger rather than
// blocking the command.
func newLogger() *zap.Logger {
	configDir, err := resolveConfigDir()
	if err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(configDir, "arcana.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// newRNG returns the randomness source for card draws: seeded from the
// --seed flag when given, otherwise from the clock.
func newRNG() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
