// Package scorekeep accumulates failure scores per named counter, decays
// them over elapsed wall-clock time, and reports when a score crosses its
// threshold. State is shared process-wide per identity and persisted to a
// SQLite database so scores survive restarts.
//
// A typical use is watching a flaky dependency: every failed probe adds
// points, idle time bleeds them off, and sustained failure eventually
// crosses the threshold and fires a callback.
//
//	sk, err := scorekeep.Open(path)
//	if err != nil { ... }
//	defer sk.Close()
//
//	k, err := sk.Keeper("api-health", scorekeep.WithDecay(5*time.Second))
//	out, err := k.Apply(10)
//	if out.Exceeded { ... }
//
// Crossing the threshold is the intended notification, not a fault: a
// sufficiently unhealthy counter is expected to trip. Storage failures, by
// contrast, propagate to the caller unretried.
package scorekeep

import (
	"fmt"

	"github.com/lazypower/scorekeep/internal/store"
)

// Service owns the persistence handle and the per-process registry of
// shared counter state. All Keepers issued by one Service share one
// database and one registry.
type Service struct {
	db       *store.DB
	registry *Registry
}

// DefaultPath returns the conventional database location,
// ~/.scorekeep/scorekeep.db. It is a convenience for callers; Open always
// takes the path explicitly.
func DefaultPath() (string, error) {
	return store.DefaultPath()
}

// Open opens (or creates) the score database at path and returns a Service.
func Open(path string) (*Service, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}
	return &Service{db: db, registry: NewRegistry()}, nil
}

// OpenMemory opens a Service backed by an in-memory database. Scores do not
// survive the process; intended for tests.
func OpenMemory() (*Service, error) {
	db, err := store.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}
	return &Service{db: db, registry: NewRegistry()}, nil
}

// Close closes the underlying database. Keepers issued by this Service must
// not be used afterward.
func (s *Service) Close() error {
	return s.db.Close()
}

// Keeper returns the accumulator for an identity. The first call for an
// identity loads its persisted state; every call returns a Keeper bound to
// the same shared in-memory state, so all Keepers for one identity observe
// one score. Options set per-identity defaults that individual Apply calls
// may override.
func (s *Service) Keeper(identity string, opts ...Option) (*Keeper, error) {
	state, created := s.registry.GetOrCreate(identity)
	if created {
		rec, err := s.db.ReadScore(identity)
		if err != nil {
			return nil, fmt.Errorf("load state for %q: %w", identity, err)
		}
		state.Score = rec.Score
		state.LastUpdated = rec.UpdatedAt
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Keeper{
		identity: identity,
		state:    state,
		db:       s.db,
		cfg:      cfg,
	}, nil
}
