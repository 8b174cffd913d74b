package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dukaforge/arcana/pkg/types"
)

// document is the persisted JSON shape: the full client map keyed by
// id plus the current pointer. Key order and whitespace carry no
// meaning; list contents round-trip in order.
type document struct {
	Clients         map[string]*types.Client `json:"clients"`
	CurrentClientID *string                  `json:"current_client_id"`
}

// load reads the persisted document into memory. Any failure — missing
// file, unreadable file, corrupt JSON — is recovered as empty state
// and logged; load never fails. Clients that do not validate are
// dropped rather than letting one malformed record poison the store.
func (s *Store) load() {
	s.clients = make(map[string]*types.Client)
	s.current = ""

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("store file unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("store file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return
	}

	for id, c := range doc.Clients {
		if c == nil {
			continue
		}
		c.ID = id
		if c.Readings == nil {
			c.Readings = []types.Reading{}
		}
		if c.Journal == nil {
			c.Journal = []types.JournalEntry{}
		}
		if c.Settings.PreferredSpreads == nil {
			c.Settings.PreferredSpreads = []string{}
		}
		if err := c.Validate(); err != nil {
			s.log.Warn("dropping invalid client record",
				zap.String("client_id", id), zap.Error(err))
			continue
		}
		s.clients[id] = c
	}
	if doc.CurrentClientID != nil {
		s.current = *doc.CurrentClientID
	}
}

// persist serializes the full store and atomically replaces the file
// on disk: write to a temp file in the same directory, fsync, close,
// rename over the target. The target path is never written directly,
// so a crash mid-write leaves the prior file intact.
//
// A failed persist is logged and the in-memory mutation is kept; disk
// and memory may diverge until the next successful save. Mutating
// operations that succeeded in memory do not surface the failure.
func (s *Store) persist() {
	if err := s.writeFile(); err != nil {
		s.log.Error("persist failed, on-disk state unchanged",
			zap.String("path", s.path), zap.Error(err))
	}
}

func (s *Store) writeFile() error {
	var cur *string
	if s.current != "" {
		cur = &s.current
	}
	doc := document{Clients: s.clients, CurrentClientID: cur}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".clients-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
