package domain

import "strings"

// ProductInput is the typed payload for creating a product. The origin
// assigns id and timestamps; status defaults to active.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Rating      float64
}

// Validate checks caller-side field constraints. Nil means valid.
func (in ProductInput) Validate() *ValidationError {
	var fields []FieldError
	if len(strings.TrimSpace(in.Name)) < 3 {
		fields = append(fields, FieldError{"name", "must be at least 3 characters"})
	}
	if in.Price <= 0 {
		fields = append(fields, FieldError{"price", "must be greater than zero"})
	}
	if in.Stock < 0 {
		fields = append(fields, FieldError{"stock", "must not be negative"})
	}
	if strings.TrimSpace(in.Category) == "" {
		fields = append(fields, FieldError{"category", "must not be empty"})
	}
	if in.Rating < 1 || in.Rating > 5 {
		fields = append(fields, FieldError{"rating", "must be between 1 and 5"})
	}
	if fields == nil {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
	Status      *ProductStatus
	Rating      *float64
}

// Validate checks only the fields the patch actually carries.
func (p ProductPatch) Validate() *ValidationError {
	var fields []FieldError
	if p.Name != nil && len(strings.TrimSpace(*p.Name)) < 3 {
		fields = append(fields, FieldError{"name", "must be at least 3 characters"})
	}
	if p.Price != nil && *p.Price <= 0 {
		fields = append(fields, FieldError{"price", "must be greater than zero"})
	}
	if p.Stock != nil && *p.Stock < 0 {
		fields = append(fields, FieldError{"stock", "must not be negative"})
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		fields = append(fields, FieldError{"category", "must not be empty"})
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		fields = append(fields, FieldError{"rating", "must be between 1 and 5"})
	}
	if fields == nil {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Apply merges the patch into a product. Timestamps are the caller's concern.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Status != nil {
		prod.Status = *p.Status
	}
	if p.Rating != nil {
		prod.Rating = *p.Rating
	}
}

// OrderInput is the typed payload for placing an order. Items are product
// snapshots taken from the cart; the origin computes the total.
type OrderInput struct {
	CustomerName string
	Items        []OrderItem
}

// Validate checks caller-side constraints. Nil means valid.
func (in OrderInput) Validate() *ValidationError {
	var fields []FieldError
	if strings.TrimSpace(in.CustomerName) == "" {
		fields = append(fields, FieldError{"customerName", "must not be empty"})
	}
	if len(in.Items) == 0 {
		fields = append(fields, FieldError{"items", "cart must not be empty"})
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			fields = append(fields, FieldError{"items", "quantities must be positive"})
			break
		}
	}
	if fields == nil {
		return nil
	}
	return &ValidationError{Fields: fields}
}
