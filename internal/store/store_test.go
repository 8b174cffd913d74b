package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/arcana/pkg/types"
)

// fixedClock returns a clock pinned to the given time.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// newTestStore builds an initialized store over a fresh temp file.
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.json")
	s := New(path, opts...)
	require.NoError(t, s.Initialize())
	return s
}

func TestInitializeFreshInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	s := New(path)

	require.NoError(t, s.Initialize())

	assert.Equal(t, 1, s.Len(), "exactly one client after fresh initialize")
	assert.Equal(t, "Personal", s.CurrentName())
	assert.False(t, s.HasCompletedToday("Daily Guidance"))

	// The default client is persisted immediately.
	_, err := os.Stat(path)
	assert.NoError(t, err, "store file written on initialize")
}

func TestInitializeCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	require.NoError(t, s.Initialize(), "corrupt file must not raise")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "Personal", s.CurrentName())
}

func TestInitializeRepairsDanglingCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")

	s := New(path)
	require.NoError(t, s.Initialize())
	_, err := s.AddClient("Sarah", "")
	require.NoError(t, err)

	// Point the persisted current pointer at a client that does not
	// exist, then reload.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	doc["current_client_id"] = json.RawMessage(`"client_gone"`)
	doctored, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, doctored, 0o644))

	reloaded := New(path)
	require.NoError(t, reloaded.Initialize())
	cur, ok := reloaded.Current()
	require.True(t, ok, "current pointer repaired to a live client")
	assert.NotEqual(t, "client_gone", cur.ID)
	assert.Equal(t, 2, reloaded.Len())
}

func TestInitializeDropsInvalidClients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	doc := `{
  "clients": {
    "client_1_good": {
      "name": "Good",
      "created_date": "2026-08-01T10:00:00Z",
      "readings": [],
      "journal": [],
      "settings": {"daily_limit": true, "preferred_spreads": [], "notes": ""}
    },
    "client_2_bad": {
      "name": "   ",
      "created_date": "2026-08-01T10:00:00Z"
    }
  },
  "current_client_id": "client_1_good"
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := New(path)
	require.NoError(t, s.Initialize())

	assert.Equal(t, 1, s.Len(), "blank-named client dropped at load")
	assert.Equal(t, "Good", s.CurrentName())
}

func TestInitializeAllClientsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	doc := `{
  "clients": {
    "client_1_bad": {
      "name": "   ",
      "created_date": "2026-08-01T10:00:00Z"
    }
  },
  "current_client_id": "client_1_bad"
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := New(path)
	require.NoError(t, s.Initialize())

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "Personal", s.CurrentName(), "synthesized default becomes current")
}

func TestNewClientIDDisambiguation(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.AddClient("Sarah Johnson", "")
	require.NoError(t, err)
	assert.Equal(t, "client_2_sarah_johnson", id1)

	// "Sarah_Johnson" slugs identically but is a distinct name. Remove
	// the default client first so both ids share a sequence number and
	// the numeric suffix has to disambiguate.
	personal := s.firstClientID()
	require.NoError(t, s.DeleteClient(personal))

	id2, err := s.AddClient("Sarah_Johnson", "")
	require.NoError(t, err)
	assert.Equal(t, "client_2_sarah_johnson_2", id2)
}

func TestCapsFromConfig(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	s := newTestStore(t,
		WithConfig(types.Config{ReadingCap: 3, JournalCap: 2}),
		WithClock(fixedClock(now)),
	)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendReading("Daily Guidance", []string{"The Fool"}, []types.Orientation{types.Upright}, ""))
		require.NoError(t, s.AppendJournalEntry("entry"))
	}

	c, ok := s.Current()
	require.True(t, ok)
	assert.Len(t, c.Readings, 3)
	assert.Len(t, c.Journal, 2)
}
