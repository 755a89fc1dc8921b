package store

import "github.com/ttran/storeadmin/internal/core/domain"

// Order fetch lifecycle.

func (s *Store) SetOrdersLoading() {
	s.mutate(func(st *State) {
		st.Orders.Loading = true
		st.Orders.Err = ""
	})
}

func (s *Store) SetOrders(items []domain.Order) {
	s.mutate(func(st *State) {
		st.Orders.Loading = false
		st.Orders.Err = ""
		st.Orders.Items = domain.CloneOrders(items)
	})
}

func (s *Store) SetOrdersError(msg string) {
	s.mutate(func(st *State) {
		st.Orders.Loading = false
		st.Orders.Err = msg
	})
}

func (s *Store) AppendOrder(o domain.Order) {
	s.mutate(func(st *State) {
		st.Orders.Items = append(st.Orders.Items, o.Clone())
	})
}

// ReplaceOrder swaps the record with a matching id in place. Unknown ids
// are a no-op.
func (s *Store) ReplaceOrder(o domain.Order) {
	s.mutate(func(st *State) {
		for i := range st.Orders.Items {
			if st.Orders.Items[i].ID == o.ID {
				st.Orders.Items[i] = o.Clone()
				return
			}
		}
	})
}

// OrderByID returns a copy of the in-memory order, used as the session-local
// overlay when the origin does not know the record.
func (s *Store) OrderByID(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.state.Orders.Items {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return domain.Order{}, false
}
