package types

import "errors"

// Store holds the ordered menu for one session. Implementations keep items
// in insertion order and never persist them beyond Detach.
type Store interface {
	// Attach prepares the backend described by config.
	// Returns ErrAlreadyAttached if called twice without Detach.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach every
	// other operation returns ErrStoreDetached.
	Detach() error

	// Add appends item to the end of the menu. Returns ErrDuplicateID if
	// an item with the same ID is already present.
	Add(item MenuItem) error

	// Remove deletes the item with the given ID. Removing an ID that is
	// not present is a no-op.
	Remove(id string) error

	// List returns a copy of the menu in insertion order.
	List() ([]MenuItem, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Item errors.
var (
	ErrInvalidID     = errors.New("invalid item ID")
	ErrDuplicateID   = errors.New("duplicate item ID")
	ErrInvalidCourse = errors.New("invalid course")
	ErrInvalidPrice  = errors.New("price must not be negative")
)
