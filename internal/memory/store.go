// Package memory implements the in-process menu Store: an ordered slice
// guarded by a read-write mutex. Nothing outlives Detach.
package memory

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store keeps menu items in insertion order with an index from item ID to
// slice position for duplicate checks.
type Store struct {
	mu       sync.RWMutex
	attached bool
	items    []types.MenuItem
	index    map[string]int
}

// NewStore creates a detached Store; call Attach before use.
func NewStore() *Store {
	return &Store{}
}

// Attach validates config and resets the store to an empty menu.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.items = nil
	s.index = make(map[string]int)
	s.attached = true
	return nil
}

// Detach drops all items. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = false
	s.items = nil
	s.index = nil
	return nil
}

// Add appends item to the end of the menu.
func (s *Store) Add(item types.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("adding item %q: %w", item.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if _, ok := s.index[item.ID]; ok {
		return fmt.Errorf("adding item %q: %w", item.ID, types.ErrDuplicateID)
	}

	s.index[item.ID] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

// Remove deletes the item with the given ID, keeping the order of the rest.
// Unknown IDs are ignored.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	pos, ok := s.index[id]
	if !ok {
		return nil
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return nil
}

// List returns a copy of the items in insertion order. The result is never
// nil so callers can marshal it as an empty JSON array.
func (s *Store) List() ([]types.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	out := make([]types.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}
