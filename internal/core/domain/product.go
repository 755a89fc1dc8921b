package domain

import (
	"math"
	"time"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Category    string        `json:"category"`
	Status      ProductStatus `json:"status"`
	Rating      float64       `json:"rating"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ToggleStatus flips active/inactive and refreshes UpdatedAt.
func (p *Product) ToggleStatus(now time.Time) {
	if p.Status == ProductStatusActive {
		p.Status = ProductStatusInactive
	} else {
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = now
}

// Round2 rounds a money amount to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
