package origin

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ttran/storeadmin/internal/core/domain"
)

// OrderSimulator implements port.OrderOrigin over an in-memory seed order
// book, with the same copy and latency semantics as ProductSimulator.
type OrderSimulator struct {
	Latency Latency

	mu   sync.Mutex
	seed []domain.Order
}

func NewOrderSimulator(seed []domain.Order) *OrderSimulator {
	return &OrderSimulator{
		Latency: defaultLatency(),
		seed:    domain.CloneOrders(seed),
	}
}

func (s *OrderSimulator) FetchAll(ctx context.Context) ([]domain.Order, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneOrders(s.seed), nil
}

func (s *OrderSimulator) FetchByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.seed {
		if o.ID == id {
			cp := o.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *OrderSimulator) Create(ctx context.Context, in domain.OrderInput) (domain.Order, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return domain.Order{}, err
	}
	items := make([]domain.OrderItem, len(in.Items))
	copy(items, in.Items)
	return domain.Order{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Items:        items,
		Total:        domain.ItemsTotal(items),
		Status:       domain.OrderStatusPending,
		CreatedAt:    time.Now(),
	}, nil
}

func (s *OrderSimulator) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return domain.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seed {
		if s.seed[i].ID == id {
			s.seed[i].Status = status
			return s.seed[i].Clone(), nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}
