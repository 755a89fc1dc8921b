package service

import (
	"context"
	"fmt"

	"github.com/ttran/storeadmin/internal/core/domain"
	"github.com/ttran/storeadmin/internal/core/store"
	"github.com/ttran/storeadmin/internal/port"
)

// CatalogService orchestrates product operations: it talks to the origin,
// then dispatches the resulting transition to the store. Validation runs
// before any origin call, so a failing request changes no state.
type CatalogService struct {
	origin port.ProductOrigin
	store  *store.Store
}

func NewCatalogService(origin port.ProductOrigin, st *store.Store) *CatalogService {
	return &CatalogService{origin: origin, store: st}
}

// Load runs the fetch lifecycle: loading flag up, full item replace on
// success, error string on failure.
func (s *CatalogService) Load(ctx context.Context) error {
	s.store.SetProductsLoading()
	items, err := s.origin.FetchAll(ctx)
	if err != nil {
		s.store.SetProductsError(err.Error())
		return fmt.Errorf("fetch products: %w", err)
	}
	s.store.SetProducts(items)
	return nil
}

func (s *CatalogService) Create(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	if ve := in.Validate(); ve != nil {
		return domain.Product{}, ve
	}
	p, err := s.origin.Create(ctx, in)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	s.store.AppendProduct(p)
	return p, nil
}

// Update edits a seed-known product. A NotFound here is a contract
// violation (the console only edits records it fetched), so the error is
// propagated rather than masked.
func (s *CatalogService) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if ve := patch.Validate(); ve != nil {
		return domain.Product{}, ve
	}
	p, err := s.origin.Update(ctx, id, patch)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	s.store.ReplaceProduct(p)
	return p, nil
}

// ToggleStatus flips active/inactive synchronously in the store.
func (s *CatalogService) ToggleStatus(id string) error {
	if !s.store.ToggleProductStatus(id) {
		return domain.ErrNotFound
	}
	return nil
}

// deleteCommand snapshots the pre-request status at dispatch time. The
// origin's delete knows nothing about status, and other mutations may land
// while the call is in flight, so the branch taken on fulfillment must not
// re-read store state.
type deleteCommand struct {
	id        string
	wasActive bool
}

// Delete soft-deletes an active product (marks it inactive) and
// hard-deletes one that is already inactive.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	status, ok := s.store.ProductStatus(id)
	if !ok {
		return domain.ErrNotFound
	}
	cmd := deleteCommand{id: id, wasActive: status == domain.ProductStatusActive}

	if err := s.origin.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	s.store.CompleteProductDelete(cmd.id, cmd.wasActive)
	return nil
}
