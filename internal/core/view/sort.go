package view

import (
	"reflect"
	"sort"
	"strings"
	"time"
)

// SortSpec names a record field (by json tag or field name, case
// insensitive) and a direction. An empty field leaves the input order
// untouched.
type SortSpec struct {
	Field string
	Desc  bool
}

// SortByField returns a stably sorted copy. Numeric fields compare
// numerically, time.Time fields and strings that parse as instants compare
// chronologically, other strings lexicographically. Nil pointer and absent
// fields sort last regardless of direction.
func SortByField[T any](items []T, spec SortSpec) []T {
	out := make([]T, len(items))
	copy(out, items)
	if spec.Field == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		av, aok := fieldByName(reflect.ValueOf(out[i]), spec.Field)
		bv, bok := fieldByName(reflect.ValueOf(out[j]), spec.Field)
		aNull := !aok || isNull(av)
		bNull := !bok || isNull(bv)
		if aNull || bNull {
			// Nulls last, independent of direction.
			return !aNull && bNull
		}
		c := compareValues(deref(av), deref(bv))
		if spec.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func fieldByName(v reflect.Value, name string) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name || strings.EqualFold(f.Name, name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func isNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

func compareValues(a, b reflect.Value) int {
	if at, ok := a.Interface().(time.Time); ok {
		if bt, ok := b.Interface().(time.Time); ok {
			return at.Compare(bt)
		}
	}

	switch a.Kind() {
	case reflect.String:
		as, bs := a.String(), b.String()
		if ai, ok := parseInstant(as); ok {
			if bi, ok := parseInstant(bs); ok {
				return ai.Compare(bi)
			}
		}
		return strings.Compare(as, bs)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpOrdered(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmpOrdered(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmpOrdered(a.Float(), b.Float())
	case reflect.Bool:
		if a.Bool() == b.Bool() {
			return 0
		}
		if !a.Bool() {
			return -1
		}
		return 1
	}
	return 0
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func parseInstant(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
