package view

// Page is one slice of a collection, 1-indexed. Number is clamped, so the
// requested page may differ from the page returned after the underlying
// collection shrinks.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate slices items into the requested page. TotalPages is
// ceil(len/size); the page number clamps into [1, TotalPages] (1 for an
// empty collection).
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := (len(items) + size - 1) / size

	switch {
	case page < 1:
		page = 1
	case total > 0 && page > total:
		page = total
	case total == 0:
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: total,
		HasNext:    page < total,
		HasPrev:    page > 1,
	}
}
