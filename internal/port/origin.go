package port

import (
	"context"

	"github.com/ttran/storeadmin/internal/core/domain"
)

type ProductOrigin interface {
	// FetchAll returns a deep copy of every product known to the origin
	FetchAll(ctx context.Context) ([]domain.Product, error)

	// FetchByID returns nil (not an error) when the id is unknown
	FetchByID(ctx context.Context, id string) (*domain.Product, error)

	// Create assigns id and timestamps and returns the full record
	Create(ctx context.Context, in domain.ProductInput) (domain.Product, error)

	// Update merges a patch into the origin's copy, returns domain.ErrNotFound
	// for records the origin has never seen (session-local creations)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error)

	// Delete succeeds unconditionally; existence is not enforced
	Delete(ctx context.Context, id string) error
}

type OrderOrigin interface {
	// FetchAll returns a deep copy of every order known to the origin
	FetchAll(ctx context.Context) ([]domain.Order, error)

	// FetchByID returns nil (not an error) when the id is unknown
	FetchByID(ctx context.Context, id string) (*domain.Order, error)

	// Create assigns id, timestamp and pending status, computes the total
	// from the item snapshots, and returns the full record
	Create(ctx context.Context, in domain.OrderInput) (domain.Order, error)

	// UpdateStatus merges a status change into the origin's copy, returns
	// domain.ErrNotFound for session-local orders
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)
}
