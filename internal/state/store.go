package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrNotFound is returned by a Port when no snapshot has been persisted yet.
var ErrNotFound = errors.New("no persisted snapshot")

// Port is the persistence contract the store mirrors snapshots through.
// The blob is opaque to the port; encoding lives in this package.
type Port interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Store owns the current snapshot. All changes go through Dispatch, which
// applies the reducer and then mirrors the new snapshot through the port.
// Dispatch order is the total order over state changes.
type Store struct {
	port Port
	mu   sync.RWMutex
	snap Snapshot

	// saveMu serializes port writes in dispatch order. It is acquired
	// while mu is still held, so two dispatches cannot race to Save
	// with their snapshots swapped.
	saveMu sync.Mutex
}

// NewStore creates a store holding the default snapshot.
func NewStore(port Port) *Store {
	return &Store{snap: DefaultSnapshot(), port: port}
}

// Open creates a store and rehydrates it from the port. A missing blob
// means first run; a corrupt or unreadable blob is logged and discarded,
// leaving the defaults in place. Neither case is an error to the caller.
func Open(ctx context.Context, port Port) *Store {
	st := NewStore(port)
	data, err := port.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		slog.Debug("no persisted snapshot, starting from defaults")
	case err != nil:
		slog.Error("failed to load persisted snapshot, using defaults", "error", err)
	default:
		snap, decErr := Decode(data)
		if decErr != nil {
			slog.Error("discarding corrupt persisted snapshot", "error", decErr)
		} else {
			st.snap = Reduce(st.snap, LoadState{Snapshot: snap})
		}
	}
	return st
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Dispatch applies the operations in order, swaps in the resulting
// snapshot, and mirrors it through the port. Persistence failures are
// logged, never propagated: operations always succeed structurally.
func (s *Store) Dispatch(ctx context.Context, ops ...Op) Snapshot {
	s.mu.Lock()
	next := s.snap
	for _, op := range ops {
		next = Reduce(next, op)
	}
	s.snap = next
	s.saveMu.Lock()
	s.mu.Unlock()
	defer s.saveMu.Unlock()

	if s.port != nil {
		data, err := Encode(next)
		if err != nil {
			slog.Error("failed to encode snapshot", "error", err)
			return next
		}
		if err := s.port.Save(ctx, data); err != nil {
			slog.Error("failed to persist snapshot", "error", err)
		}
	}
	return next
}
