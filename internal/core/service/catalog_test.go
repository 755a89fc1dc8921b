package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ttran/storeadmin/internal/core/domain"
	"github.com/ttran/storeadmin/internal/core/store"
)

// Fake ProductOrigin
type fakeProductOrigin struct {
	seed      []domain.Product
	fetchErr  error
	createdID string
	calls     map[string]int
}

func newFakeProductOrigin(seed ...domain.Product) *fakeProductOrigin {
	return &fakeProductOrigin{seed: seed, createdID: "created-1", calls: map[string]int{}}
}

func (f *fakeProductOrigin) FetchAll(ctx context.Context) ([]domain.Product, error) {
	f.calls["FetchAll"]++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return domain.CloneProducts(f.seed), nil
}

func (f *fakeProductOrigin) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	f.calls["FetchByID"]++
	for _, p := range f.seed {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductOrigin) Create(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	f.calls["Create"]++
	now := time.Now()
	return domain.Product{
		ID: f.createdID, Name: in.Name, Description: in.Description,
		Price: in.Price, Stock: in.Stock, Category: in.Category,
		Status: domain.ProductStatusActive, Rating: in.Rating,
		CreatedAt: now, UpdatedAt: now,
	}, nil
}

func (f *fakeProductOrigin) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	f.calls["Update"]++
	for i := range f.seed {
		if f.seed[i].ID == id {
			patch.Apply(&f.seed[i])
			f.seed[i].UpdatedAt = time.Now()
			return f.seed[i], nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (f *fakeProductOrigin) Delete(ctx context.Context, id string) error {
	f.calls["Delete"]++
	return nil
}

func validInput() domain.ProductInput {
	return domain.ProductInput{Name: "Desk Mat", Price: 19.99, Stock: 5, Category: "Accessories", Rating: 4.2}
}

func TestCatalogLoad_Success(t *testing.T) {
	origin := newFakeProductOrigin(domain.Product{ID: "p1"}, domain.Product{ID: "p2"})
	st := store.New()
	svc := NewCatalogService(origin, st)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	state := st.State()
	if state.Products.Loading || state.Products.Err != "" {
		t.Errorf("expected idle state, got %+v", state.Products)
	}
	if len(state.Products.Items) != 2 {
		t.Errorf("expected 2 products, got %d", len(state.Products.Items))
	}
}

func TestCatalogLoad_FailureSetsStoreError(t *testing.T) {
	origin := newFakeProductOrigin()
	origin.fetchErr = errors.New("origin down")
	st := store.New()
	svc := NewCatalogService(origin, st)

	if err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	state := st.State()
	if state.Products.Loading {
		t.Error("loading flag must drop on failure")
	}
	if state.Products.Err != "origin down" {
		t.Errorf("expected store error, got %q", state.Products.Err)
	}
}

func TestCatalogCreate_AppendsReturnedRecord(t *testing.T) {
	origin := newFakeProductOrigin()
	st := store.New()
	svc := NewCatalogService(origin, st)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ID != "created-1" || p.Status != domain.ProductStatusActive {
		t.Errorf("unexpected record: %+v", p)
	}

	items := st.State().Products.Items
	if len(items) != 1 || items[0].ID != "created-1" {
		t.Errorf("expected appended record, got %+v", items)
	}
}

func TestCatalogCreate_ValidationBlocksRequest(t *testing.T) {
	origin := newFakeProductOrigin()
	st := store.New()
	svc := NewCatalogService(origin, st)

	_, err := svc.Create(context.Background(), domain.ProductInput{Name: "x"})
	if _, ok := domain.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if origin.calls["Create"] != 0 {
		t.Error("origin must not be called for invalid input")
	}
	if len(st.State().Products.Items) != 0 {
		t.Error("invalid request must not change state")
	}
}

func TestCatalogUpdate_ReplacesInPlace(t *testing.T) {
	origin := newFakeProductOrigin(domain.Product{ID: "p1", Name: "Old Name", Price: 10, Category: "A", Rating: 3})
	st := store.New()
	svc := NewCatalogService(origin, st)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	name := "New Name"
	if _, err := svc.Update(context.Background(), "p1", domain.ProductPatch{Name: &name}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	items := st.State().Products.Items
	if len(items) != 1 || items[0].Name != "New Name" {
		t.Errorf("expected in-place replacement, got %+v", items)
	}
}

func TestCatalogUpdate_NotFoundPropagates(t *testing.T) {
	origin := newFakeProductOrigin()
	st := store.New()
	svc := NewCatalogService(origin, st)

	_, err := svc.Update(context.Background(), "ghost", domain.ProductPatch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogDelete_SoftThenHard(t *testing.T) {
	origin := newFakeProductOrigin(domain.Product{ID: "p1", Status: domain.ProductStatusActive})
	st := store.New()
	svc := NewCatalogService(origin, st)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	items := st.State().Products.Items
	if len(items) != 1 || items[0].Status != domain.ProductStatusInactive {
		t.Fatalf("expected soft delete, got %+v", items)
	}

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if n := len(st.State().Products.Items); n != 0 {
		t.Errorf("expected hard delete, %d items remain", n)
	}
	if origin.calls["Delete"] != 2 {
		t.Errorf("expected 2 origin deletes, got %d", origin.calls["Delete"])
	}
}

func TestCatalogDelete_UnknownID(t *testing.T) {
	origin := newFakeProductOrigin()
	st := store.New()
	svc := NewCatalogService(origin, st)

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if origin.calls["Delete"] != 0 {
		t.Error("origin must not be called for unknown id")
	}
}

func TestCatalogToggleStatus(t *testing.T) {
	origin := newFakeProductOrigin(domain.Product{ID: "p1", Status: domain.ProductStatusActive})
	st := store.New()
	svc := NewCatalogService(origin, st)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := svc.ToggleStatus("p1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if got := st.State().Products.Items[0].Status; got != domain.ProductStatusInactive {
		t.Errorf("expected inactive, got %s", got)
	}

	if err := svc.ToggleStatus("ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
