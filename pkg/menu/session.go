package menu

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// Snapshot is the menu as observers see it after a change.
type Snapshot struct {
	Items  []types.MenuItem
	Totals Totals
}

// courseLister is implemented by stores that can filter by course natively.
type courseLister interface {
	ListByCourse(course types.Course) ([]types.MenuItem, error)
}

// Session owns the Store for the lifetime of the application and is the
// only path through which the menu changes. Every successful mutation
// recomputes Totals and notifies subscribers synchronously.
type Session struct {
	mu     sync.Mutex
	store  types.Store
	log    *zap.SugaredLogger
	snap   Snapshot
	subs   map[int]func(Snapshot)
	order  []int
	nextID int
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for mutation events.
func WithLogger(log *zap.SugaredLogger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSession wraps an attached store and takes its current contents as the
// initial snapshot.
func NewSession(store types.Store, opts ...SessionOption) *Session {
	s := &Session{
		store: store,
		log:   zap.NewNop().Sugar(),
		subs:  make(map[int]func(Snapshot)),
		snap:  Snapshot{Items: []types.MenuItem{}, Totals: Derive(nil)},
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.refreshLocked(); err != nil {
		s.log.Warnw("initial snapshot failed", "error", err)
	}
	return s
}

// Add appends item to the menu.
func (s *Session) Add(item types.MenuItem) error {
	s.mu.Lock()
	if err := s.store.Add(item); err != nil {
		s.mu.Unlock()
		s.log.Warnw("add rejected", "id", item.ID, "error", err)
		return err
	}
	snap, err := s.refreshLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.log.Infow("item added",
		"id", item.ID,
		"name", item.Name,
		"course", item.Course.String(),
		"price", item.Price,
		"total_items", snap.Totals.TotalItems,
	)
	s.notify(snap)
	return nil
}

// Remove deletes the item with id. Unknown ids are a no-op and do not
// notify subscribers.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	before := len(s.snap.Items)
	if err := s.store.Remove(id); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("remove %q: %w", id, err)
	}
	snap, err := s.refreshLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if len(snap.Items) == before {
		s.log.Debugw("remove ignored unknown item", "id", id)
		return nil
	}

	s.log.Infow("item removed", "id", id, "total_items", snap.Totals.TotalItems)
	s.notify(snap)
	return nil
}

// Items returns the current menu in insertion order.
func (s *Session) Items() []types.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.MenuItem, len(s.snap.Items))
	copy(out, s.snap.Items)
	return out
}

// Totals returns the statistics for the current menu.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Totals
}

// ItemsByCourse returns the items of one course, or every item for
// CourseNone. Stores that filter natively are asked directly.
func (s *Session) ItemsByCourse(course types.Course) ([]types.MenuItem, error) {
	if cl, ok := s.store.(courseLister); ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		items, err := cl.ListByCourse(course)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", course, err)
		}
		return items, nil
	}
	return FilterByCourse(s.Items(), course), nil
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Close detaches the store. The session must not be used afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Detach()
}

// refreshLocked re-reads the store and recomputes totals. Caller holds s.mu.
func (s *Session) refreshLocked() (Snapshot, error) {
	items, err := s.store.List()
	if err != nil {
		return Snapshot{}, fmt.Errorf("list items: %w", err)
	}
	s.snap = Snapshot{Items: items, Totals: Derive(items)}
	return s.snapshotLocked(), nil
}

func (s *Session) snapshotLocked() Snapshot {
	items := make([]types.MenuItem, len(s.snap.Items))
	copy(items, s.snap.Items)
	return Snapshot{Items: items, Totals: s.snap.Totals}
}

// notify runs subscribers outside the lock so they may read the session.
func (s *Session) notify(snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
