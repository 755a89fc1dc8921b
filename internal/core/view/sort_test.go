package view

import (
	"testing"
	"time"

	"github.com/ttran/storeadmin/internal/core/domain"
)

func TestSortByField_NumericAndDirection(t *testing.T) {
	items := []domain.Product{
		{ID: "a", Price: 20},
		{ID: "b", Price: 5},
		{ID: "c", Price: 12.5},
	}

	asc := SortByField(items, SortSpec{Field: "price"})
	if asc[0].ID != "b" || asc[1].ID != "c" || asc[2].ID != "a" {
		t.Errorf("ascending order wrong: %+v", asc)
	}

	desc := SortByField(items, SortSpec{Field: "price", Desc: true})
	if desc[0].ID != "a" || desc[2].ID != "b" {
		t.Errorf("descending order wrong: %+v", desc)
	}

	// Input must stay untouched.
	if items[0].ID != "a" {
		t.Error("SortByField mutated its input")
	}
}

func TestSortByField_EmptyAndUnknownFieldKeepOrder(t *testing.T) {
	items := []domain.Product{{ID: "z"}, {ID: "a"}, {ID: "m"}}

	for _, field := range []string{"", "nonexistent"} {
		got := SortByField(items, SortSpec{Field: field})
		if got[0].ID != "z" || got[1].ID != "a" || got[2].ID != "m" {
			t.Errorf("field %q: expected identity order, got %+v", field, got)
		}
	}
}

func TestSortByField_TimeFields(t *testing.T) {
	items := []domain.Product{
		{ID: "new", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "old", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := SortByField(items, SortSpec{Field: "createdAt"})
	if got[0].ID != "old" {
		t.Errorf("expected chronological order, got %+v", got)
	}
}

type stringDated struct {
	ID   string
	When string
}

func TestSortByField_DateParsableStringsCompareAsInstants(t *testing.T) {
	// Lexicographic comparison would order these the other way round; only
	// instant comparison accounts for the zone offsets.
	items := []stringDated{
		{ID: "later", When: "2025-02-01T05:00:00Z"},
		{ID: "earlier", When: "2025-02-01T10:00:00+09:00"},
	}

	got := SortByField(items, SortSpec{Field: "when"})
	if got[0].ID != "earlier" {
		t.Errorf("expected instant comparison across zones, got %+v", got)
	}
}

type withOptional struct {
	ID    string
	Score *int
}

func TestSortByField_NilsSortLastRegardlessOfDirection(t *testing.T) {
	one, two := 1, 2
	items := []withOptional{
		{ID: "none", Score: nil},
		{ID: "two", Score: &two},
		{ID: "one", Score: &one},
	}

	asc := SortByField(items, SortSpec{Field: "score"})
	if asc[0].ID != "one" || asc[1].ID != "two" || asc[2].ID != "none" {
		t.Errorf("ascending: %+v", asc)
	}

	desc := SortByField(items, SortSpec{Field: "score", Desc: true})
	if desc[0].ID != "two" || desc[1].ID != "one" || desc[2].ID != "none" {
		t.Errorf("descending nulls must stay last: %+v", desc)
	}
}

func TestSortByField_Stable(t *testing.T) {
	items := []domain.Product{
		{ID: "first", Price: 10},
		{ID: "second", Price: 10},
		{ID: "third", Price: 10},
	}

	got := SortByField(items, SortSpec{Field: "price"})
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Errorf("equal keys must keep input order: %+v", got)
	}
}
