package store

import "github.com/ttran/storeadmin/internal/core/domain"

// Product fetch lifecycle.

func (s *Store) SetProductsLoading() {
	s.mutate(func(st *State) {
		st.Products.Loading = true
		st.Products.Err = ""
	})
}

func (s *Store) SetProducts(items []domain.Product) {
	s.mutate(func(st *State) {
		st.Products.Loading = false
		st.Products.Err = ""
		st.Products.Items = domain.CloneProducts(items)
	})
}

func (s *Store) SetProductsError(msg string) {
	s.mutate(func(st *State) {
		st.Products.Loading = false
		st.Products.Err = msg
	})
}

func (s *Store) AppendProduct(p domain.Product) {
	s.mutate(func(st *State) {
		st.Products.Items = append(st.Products.Items, p)
	})
}

// ReplaceProduct swaps the record with a matching id in place. Unknown ids
// are a no-op.
func (s *Store) ReplaceProduct(p domain.Product) {
	s.mutate(func(st *State) {
		for i := range st.Products.Items {
			if st.Products.Items[i].ID == p.ID {
				st.Products.Items[i] = p
				return
			}
		}
	})
}

// ToggleProductStatus flips active/inactive and refreshes UpdatedAt. This
// transition is synchronous: it never touches the origin.
func (s *Store) ToggleProductStatus(id string) bool {
	var ok bool
	s.mutate(func(st *State) {
		for i := range st.Products.Items {
			if st.Products.Items[i].ID == id {
				st.Products.Items[i].ToggleStatus(s.now())
				ok = true
				return
			}
		}
	})
	return ok
}

// ProductStatus reports the current status of a product, used by the delete
// command to snapshot pre-request state at dispatch time.
func (s *Store) ProductStatus(id string) (domain.ProductStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Products.Items {
		if p.ID == id {
			return p.Status, true
		}
	}
	return "", false
}

// CompleteProductDelete applies the delete policy once the origin call has
// resolved: products that were active at dispatch are soft-deleted (marked
// inactive, kept in the collection); products already inactive are removed
// for good.
func (s *Store) CompleteProductDelete(id string, wasActive bool) {
	s.mutate(func(st *State) {
		for i := range st.Products.Items {
			if st.Products.Items[i].ID != id {
				continue
			}
			if wasActive {
				st.Products.Items[i].Status = domain.ProductStatusInactive
				st.Products.Items[i].UpdatedAt = s.now()
			} else {
				st.Products.Items = append(st.Products.Items[:i], st.Products.Items[i+1:]...)
			}
			return
		}
	})
}
