package origin

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ttran/storeadmin/internal/core/domain"
)

// ProductSimulator implements port.ProductOrigin over an in-memory seed
// catalog. Reads hand out deep copies after a randomized delay. Created
// records are returned but never added to the seed set, which forces the
// store layer to handle records the origin does not know about.
type ProductSimulator struct {
	Latency Latency

	mu   sync.Mutex
	seed []domain.Product
}

func NewProductSimulator(seed []domain.Product) *ProductSimulator {
	return &ProductSimulator{
		Latency: defaultLatency(),
		seed:    domain.CloneProducts(seed),
	}
}

func (s *ProductSimulator) FetchAll(ctx context.Context) ([]domain.Product, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneProducts(s.seed), nil
}

func (s *ProductSimulator) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.seed {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *ProductSimulator) Create(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return domain.Product{}, err
	}
	now := time.Now()
	return domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Status:      domain.ProductStatusActive,
		Rating:      in.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *ProductSimulator) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := s.Latency.sleep(ctx); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seed {
		if s.seed[i].ID == id {
			patch.Apply(&s.seed[i])
			s.seed[i].UpdatedAt = time.Now()
			return s.seed[i], nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (s *ProductSimulator) Delete(ctx context.Context, id string) error {
	// Existence is deliberately not enforced.
	return s.Latency.sleep(ctx)
}
