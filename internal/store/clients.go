package store

import (
	"sort"
	"strings"

	"github.com/dukaforge/arcana/pkg/types"
)

// AddClient creates a new client profile and persists the store.
// The name is trimmed; an empty result is rejected with ErrEmptyName
// and a case-insensitive duplicate with ErrDuplicateName, leaving the
// store unchanged. The new client becomes current when no client is.
// Returns the generated client id.
func (s *Store) AddClient(name, description string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", types.ErrEmptyName
	}
	norm := types.NormalizeName(name)
	for _, c := range s.clients {
		if types.NormalizeName(c.Name) == norm {
			return "", types.ErrDuplicateName
		}
	}

	id := s.newClientID(name)
	s.clients[id] = &types.Client{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now(),
		Readings:    []types.Reading{},
		Journal:     []types.JournalEntry{},
		Settings:    types.DefaultClientSettings(),
	}
	if s.current == "" {
		s.current = id
	}

	s.persist()
	return id, nil
}

// Current returns the current client, or false when none is current.
// The returned client is the store's live record; callers must treat
// it as read-only and mutate through store operations.
func (s *Store) Current() (*types.Client, bool) {
	c, ok := s.clients[s.current]
	return c, ok
}

// CurrentName returns the current client's name, or the NoClientName
// sentinel when none is current.
func (s *Store) CurrentName() string {
	if c, ok := s.Current(); ok {
		return c.Name
	}
	return NoClientName
}

// SwitchCurrent moves the current pointer to the given client id.
// Returns ErrClientNotFound for an unknown id; the pointer only ever
// references a live client.
func (s *Store) SwitchCurrent(id string) error {
	if _, ok := s.clients[id]; !ok {
		return types.ErrClientNotFound
	}
	s.current = id
	s.persist()
	return nil
}

// DeleteClient removes a client and all of its readings and journal
// entries. The last remaining client cannot be deleted (ErrLastClient).
// When the deleted client was current, the first remaining client in
// stored order becomes current.
func (s *Store) DeleteClient(id string) error {
	if _, ok := s.clients[id]; !ok {
		return types.ErrClientNotFound
	}
	if len(s.clients) == 1 {
		return types.ErrLastClient
	}

	delete(s.clients, id)
	if s.current == id {
		s.current = s.firstClientID()
	}

	s.persist()
	return nil
}

// Clients returns all client profiles in stored (ascending id) order.
func (s *Store) Clients() []*types.Client {
	out := make([]*types.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateSettings replaces the settings record of the given client.
func (s *Store) UpdateSettings(id string, settings types.ClientSettings) error {
	c, ok := s.clients[id]
	if !ok {
		return types.ErrClientNotFound
	}
	c.Settings = settings
	s.persist()
	return nil
}
