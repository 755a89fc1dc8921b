// Package view holds the pure derived-view operators and the assemblers
// that turn store state into the view-models the renderer consumes. Nothing
// here mutates the store; every function recomputes from its inputs.
package view

import (
	"strings"

	"github.com/ttran/storeadmin/internal/core/domain"
)

// All is the sentinel that disables a criterion.
const All = "All"

// ProductFilter combines the three product list criteria; they AND
// together. Empty strings behave like the All sentinel.
type ProductFilter struct {
	Search   string
	Category string
	Status   string
}

func FilterProducts(items []domain.Product, f ProductFilter) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Category != "" && f.Category != All && p.Category != f.Category {
			continue
		}
		if f.Status != "" && f.Status != All && string(p.Status) != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterOrdersByStatus keeps orders matching the status, or all of them for
// the sentinel.
func FilterOrdersByStatus(items []domain.Order, status string) []domain.Order {
	out := make([]domain.Order, 0, len(items))
	for _, o := range items {
		if status != "" && status != All && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out
}
