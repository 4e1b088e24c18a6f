package store

import (
	"context"
	"slices"
	"sync"
)

// Status is the load state of a resource store's collection.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

// Entity is anything a resource store can hold, addressed by an opaque
// integer id.
type Entity interface {
	EntityID() int64
}

// Fetch retrieves the full collection from the remote gateway.
type Fetch[T Entity] func(ctx context.Context) ([]T, error)

// Store is the sole in-memory holder of one entity collection plus its
// load status and last error. Mutations never fail; only the injected
// fetch can, and that failure is reported through the status fields
// rather than corrupting the snapshot.
//
// The snapshot slice is copy-on-write: every mutation installs a fresh
// slice and bumps the version, so readers holding an old snapshot see a
// stable view and memoized selectors can key on the version.
type Store[T Entity] struct {
	mu      sync.RWMutex
	fetch   Fetch[T]
	items   []T
	status  Status
	lastErr string
	version uint64
}

func New[T Entity](fetch Fetch[T]) *Store[T] {
	return &Store[T]{
		fetch:  fetch,
		status: StatusIdle,
	}
}

// Load replaces the collection wholesale on success. On failure the
// prior collection is left untouched and only the status and error
// message change.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.lastErr = ""
	s.version++
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status = StatusErrored
		s.lastErr = err.Error()
		s.version++
		return err
	}

	s.items = items
	s.status = StatusLoaded
	s.version++
	return nil
}

// Snapshot returns the current collection and its version. Callers must
// treat the slice as read-only.
func (s *Store[T]) Snapshot() ([]T, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.version
}

// Version returns the snapshot version without the collection.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Status returns the load state and, when errored, the last error
// message.
func (s *Store[T]) Status() (Status, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastErr
}

// Get returns the entity with the given id, if present.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// replace installs item at the position of the entity with the same id.
// A missing id is a silent miss. Copy-on-write keeps old snapshots
// stable.
func (s *Store[T]) replace(id int64, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.EntityID() == id {
			items := slices.Clone(s.items)
			items[i] = item
			s.items = items
			s.version++
			return
		}
	}
}
