// Package store holds the canonical in-memory state for the console: one
// collection per entity, mutated only through the transition methods below.
// Every mutation is atomic under the store lock and notifies subscribers
// with a deep copy of the resulting state, which is how the persistence
// bridge mirrors items to durable storage.
package store

import (
	"sync"
	"time"

	"github.com/ttran/storeadmin/internal/core/domain"
)

// Collection is the per-entity state triple. Err is empty when no fetch has
// failed; Items is the canonical record list.
type Collection[T any] struct {
	Items   []T
	Loading bool
	Err     string
}

type State struct {
	Products Collection[domain.Product]
	Orders   Collection[domain.Order]
}

func (st State) clone() State {
	st.Products.Items = domain.CloneProducts(st.Products.Items)
	st.Orders.Items = domain.CloneOrders(st.Orders.Items)
	return st
}

type Listener func(State)

type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]Listener
	nextSub int
	now     func() time.Time
}

func New() *Store {
	return &Store{
		subs: make(map[int]Listener),
		now:  time.Now,
	}
}

// NewFromSnapshot builds a store rehydrated from persisted items. Loading
// and error are always reset regardless of what they held at save time.
func NewFromSnapshot(snap domain.Snapshot) *Store {
	s := New()
	s.state.Products.Items = domain.CloneProducts(snap.Products.Items)
	s.state.Orders.Items = domain.CloneOrders(snap.Orders.Items)
	return s
}

// SetClock overrides the store's notion of now. Tests use it to make
// UpdatedAt deterministic.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Snapshot returns the persistable portion of the state: items only.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Snapshot{
		Products: domain.ProductItems{Items: domain.CloneProducts(s.state.Products.Items)},
		Orders:   domain.OrderItems{Items: domain.CloneOrders(s.state.Orders.Items)},
	}
}

// Subscribe registers a listener called after every mutation with a copy of
// the new state. The returned function cancels the subscription.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// mutate applies fn under the lock, then notifies subscribers outside it so
// listeners may call back into the store.
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.clone()
	listeners := make([]Listener, 0, len(s.subs))
	for _, l := range s.subs {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
