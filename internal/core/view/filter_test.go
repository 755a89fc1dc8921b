package view

import (
	"reflect"
	"testing"

	"github.com/ttran/storeadmin/internal/core/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Wireless Headphones", Category: "Electronics", Status: domain.ProductStatusActive},
		{ID: "p2", Name: "Desk Lamp", Category: "Accessories", Status: domain.ProductStatusInactive},
		{ID: "p3", Name: "Wireless Mouse", Category: "Electronics", Status: domain.ProductStatusInactive},
	}
}

func TestFilterProducts_IdentityWithSentinels(t *testing.T) {
	items := sampleProducts()
	got := FilterProducts(items, ProductFilter{Search: "", Category: All, Status: All})
	if !reflect.DeepEqual(got, items) {
		t.Errorf("sentinel filter must return items unchanged, got %+v", got)
	}
}

func TestFilterProducts_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterProducts(sampleProducts(), ProductFilter{Search: "wIrElEsS"})
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Errorf("unexpected match set: %+v", got)
	}
}

func TestFilterProducts_CriteriaCompose(t *testing.T) {
	f := ProductFilter{Search: "wireless", Category: "Electronics", Status: string(domain.ProductStatusInactive)}
	got := FilterProducts(sampleProducts(), f)
	if len(got) != 1 || got[0].ID != "p3" {
		t.Errorf("expected only p3, got %+v", got)
	}
}

func TestFilterProducts_CategoryExactMatch(t *testing.T) {
	got := FilterProducts(sampleProducts(), ProductFilter{Category: "Electro"})
	if len(got) != 0 {
		t.Errorf("category must match exactly, got %+v", got)
	}
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := []domain.Order{
		{ID: "o1", Status: domain.OrderStatusPending},
		{ID: "o2", Status: domain.OrderStatusCompleted},
		{ID: "o3", Status: domain.OrderStatusPending},
	}

	if got := FilterOrdersByStatus(orders, All); len(got) != 3 {
		t.Errorf("sentinel must keep all orders, got %d", len(got))
	}
	got := FilterOrdersByStatus(orders, string(domain.OrderStatusPending))
	if len(got) != 2 || got[0].ID != "o1" || got[1].ID != "o3" {
		t.Errorf("unexpected pending set: %+v", got)
	}
}
