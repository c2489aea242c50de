package menu

import (
	"fmt"

	"github.com/mesh-intelligence/flavorscape/internal/memory"
	"github.com/mesh-intelligence/flavorscape/internal/sqlite"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// NewStore creates the backend named by config.Backend and attaches it.
// The caller owns the returned Store and must Detach it, usually through
// Session.Close.
func NewStore(config types.Config) (types.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var store types.Store
	switch config.Backend {
	case types.BackendSQLite:
		store = sqlite.NewBackend()
	default:
		store = memory.NewStore()
	}

	if err := store.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s store: %w", config.Backend, err)
	}
	return store, nil
}
