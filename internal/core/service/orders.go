package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ttran/storeadmin/internal/core/domain"
	"github.com/ttran/storeadmin/internal/core/store"
	"github.com/ttran/storeadmin/internal/port"
)

// OrderService orchestrates order placement and status tracking. Orders are
// never deleted; the only mutation after creation is a status change.
type OrderService struct {
	origin port.OrderOrigin
	store  *store.Store
}

func NewOrderService(origin port.OrderOrigin, st *store.Store) *OrderService {
	return &OrderService{origin: origin, store: st}
}

func (s *OrderService) Load(ctx context.Context) error {
	s.store.SetOrdersLoading()
	items, err := s.origin.FetchAll(ctx)
	if err != nil {
		s.store.SetOrdersError(err.Error())
		return fmt.Errorf("fetch orders: %w", err)
	}
	s.store.SetOrders(items)
	return nil
}

// Place creates an order from a cart snapshot. The total is computed once
// by the origin from the item snapshots and never recomputed afterwards.
func (s *OrderService) Place(ctx context.Context, in domain.OrderInput) (domain.Order, error) {
	if ve := in.Validate(); ve != nil {
		return domain.Order{}, ve
	}
	o, err := s.origin.Create(ctx, in)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	s.store.AppendOrder(o)
	return o, nil
}

// UpdateStatus moves a pending order to completed or cancelled. Terminal
// orders are rejected before the origin is consulted.
//
// The origin only knows seed records, so for orders created during this
// session it reports NotFound; the in-memory copy is then the overlay of
// record: the update is applied to it locally and treated as the fulfilled
// payload. Only when the order is absent from memory as well does the
// operation fail, recording the error on the store without touching items.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if current, ok := s.store.OrderByID(id); ok && !current.CanTransition(status) {
		return domain.Order{}, fmt.Errorf("order %s is %s: %w", id, current.Status, domain.ErrInvalidTransition)
	}

	merged, err := s.origin.UpdateStatus(ctx, id, status)
	if errors.Is(err, domain.ErrNotFound) {
		local, found := s.store.OrderByID(id)
		if !found {
			s.store.SetOrdersError(fmt.Sprintf("order %s not found", id))
			return domain.Order{}, fmt.Errorf("update order %s: %w", id, domain.ErrNotFound)
		}
		merged = local
		merged.Status = status
	} else if err != nil {
		return domain.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}

	s.store.ReplaceOrder(merged)
	return merged, nil
}
