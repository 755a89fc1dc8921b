package view

import (
	"sort"

	"github.com/ttran/storeadmin/internal/core/domain"
)

// ProductsQuery is the product screen's derived-view input: filter, sort
// and pagination settings.
type ProductsQuery struct {
	Filter   ProductFilter
	Sort     SortSpec
	Page     int
	PageSize int
}

type ProductsView struct {
	Page       Page[domain.Product]
	Categories []string
}

// BuildProductsView runs filter, sort and pagination over the catalog and
// collects the distinct sorted category labels. Categories come from the
// unfiltered catalog so the category selector stays stable while filtering.
func BuildProductsView(items []domain.Product, q ProductsQuery) ProductsView {
	filtered := FilterProducts(items, q.Filter)
	sorted := SortByField(filtered, q.Sort)

	return ProductsView{
		Page:       Paginate(sorted, q.Page, q.PageSize),
		Categories: Categories(items),
	}
}

// Categories returns the distinct category labels in lexical order.
func Categories(items []domain.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range items {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}
