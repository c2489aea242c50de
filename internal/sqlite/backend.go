// Package sqlite implements the menu Store on a private in-memory SQLite
// database. The database lives on a single connection and vanishes when the
// backend detaches, so no menu data is ever written to disk.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// memoryDSN opens a fresh, connection-private database.
const memoryDSN = ":memory:"

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite as the session's item table.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	items    *itemsTable
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the in-memory database and creates the schema.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("opening sqlite: %w", err)
	}
	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.items = &itemsTable{backend: b}
	b.attached = true
	return nil
}

// Detach closes the database, discarding every item. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	b.attached = false
	b.items = nil
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		if err != nil {
			return fmt.Errorf("closing sqlite: %w", err)
		}
	}
	return nil
}

// Add appends item to the menu.
func (b *Backend) Add(item types.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("adding item %q: %w", item.ID, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return b.items.insert(item)
}

// Remove deletes the item with the given ID; unknown IDs are ignored.
func (b *Backend) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return b.items.delete(id)
}

// List returns every item in insertion order.
func (b *Backend) List() ([]types.MenuItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.items.fetch(types.CourseNone)
}

// ListByCourse returns the items of one course in insertion order; the
// zero course returns everything. It lets the filter push the predicate
// into SQL instead of scanning in Go.
func (b *Backend) ListByCourse(course types.Course) ([]types.MenuItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.items.fetch(course)
}
