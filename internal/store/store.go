// Package store owns the mapping of client identity to profile data
// (readings, journal, settings) and its consistency rules: unique
// names, bounded history retention, the one-daily-reading gate, and
// atomic persistence to a single JSON file.
//
// The store is single-threaded and synchronous. Every operation runs
// to completion on the calling goroutine; the only managed resource is
// the file handle opened and closed inside one persist call.
package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dukaforge/arcana/pkg/types"
)

// NoClientName is the sentinel CurrentName returns when no client is
// current. Initialize guarantees a current client, so callers should
// only see this before initialization.
const NoClientName = "No Client Selected"

// Default profile synthesized when the persisted set is empty.
const (
	defaultClientName = "Personal"
	defaultClientDesc = "Your personal readings"
)

// Store is the client data store. Construct with New, then call
// Initialize before any other operation.
type Store struct {
	path string
	cfg  types.Config
	log  *zap.Logger
	now  func() time.Time

	clients map[string]*types.Client
	current string
}

// Option configures a Store at construction.
type Option func(*Store)

// WithConfig sets the retention caps. Zero fields keep their defaults.
func WithConfig(cfg types.Config) Option {
	return func(s *Store) { s.cfg = cfg.WithDefaults() }
}

// WithClock injects the "now" provider used for timestamps and the
// daily-gate calendar comparison.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for persist failures and recovered
// load errors. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store persisting to the JSON file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		cfg:     types.DefaultConfig(),
		log:     zap.NewNop(),
		now:     time.Now,
		clients: make(map[string]*types.Client),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads persisted state from the store's path. A missing or
// corrupt file is recovered as empty state, never an error. If the
// resulting client set is empty, a default client is synthesized, made
// current, and persisted, so after Initialize at least one client
// always exists and exactly one is current.
func (s *Store) Initialize() error {
	s.load()

	if len(s.clients) == 0 {
		s.current = ""
		if _, err := s.AddClient(defaultClientName, defaultClientDesc); err != nil {
			return fmt.Errorf("create default client: %w", err)
		}
		return nil
	}

	// Repair a dangling or absent current pointer from stored order.
	if _, ok := s.clients[s.current]; !ok {
		s.current = s.firstClientID()
		s.persist()
	}
	return nil
}

// Len returns the number of live clients.
func (s *Store) Len() int {
	return len(s.clients)
}

// firstClientID returns the first client id in stored order. The
// persisted document keys clients by id in a JSON object, which has no
// order of its own, so stored order is defined as ascending id.
func (s *Store) firstClientID() string {
	ids := make([]string, 0, len(s.clients))
	for id := range s.clients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// newClientID derives a unique id from the client name and a running
// sequence number, disambiguating with a numeric suffix on collision.
func (s *Store) newClientID(name string) string {
	slug := strings.ReplaceAll(types.NormalizeName(name), " ", "_")
	base := fmt.Sprintf("client_%d_%s", len(s.clients)+1, slug)
	id := base
	for n := 2; ; n++ {
		if _, taken := s.clients[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}
