// Package poolstore persists pool accrual-state snapshots so a pool can
// be closed and later reopened at the same point on its vesting line.
package poolstore

import (
	"errors"
	"sync"

	"github.com/vestpool/libvestpool-go/pool"
)

var (
	// ErrNoState indicates no snapshot has been saved yet.
	ErrNoState = errors.New("poolstore: no saved state")
)

// StateStore persists and recovers pool accrual state.
type StateStore interface {
	// Save stores the snapshot, replacing any previous one.
	Save(s pool.State) error

	// Load returns the most recently saved snapshot.
	Load() (pool.State, error)
}

// MemStateStore is an in-memory StateStore for testing.
type MemStateStore struct {
	mu    sync.RWMutex
	state pool.State
	saved bool
}

// Compile-time interface check.
var _ StateStore = (*MemStateStore)(nil)

// NewMemStateStore creates an empty in-memory state store.
func NewMemStateStore() *MemStateStore {
	return &MemStateStore{}
}

// Save stores the snapshot, replacing any previous one.
func (s *MemStateStore) Save(st pool.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	s.saved = true
	return nil
}

// Load returns the most recently saved snapshot.
func (s *MemStateStore) Load() (pool.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return pool.State{}, ErrNoState
	}
	return s.state, nil
}
