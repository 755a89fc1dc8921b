package origin

import (
	"time"

	"github.com/ttran/storeadmin/internal/core/domain"
)

// SeedProducts returns the static initial catalog. Timestamps are anchored
// relative to startup so seeded records look recently maintained.
func SeedProducts() []domain.Product {
	now := time.Now()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	return []domain.Product{
		{ID: "prod-001", Name: "Wireless Headphones", Description: "Over-ear, noise cancelling, 30h battery", Price: 129.99, Stock: 45, Category: "Electronics", Status: domain.ProductStatusActive, Rating: 4.5, CreatedAt: at(90), UpdatedAt: at(12)},
		{ID: "prod-002", Name: "Mechanical Keyboard", Description: "Tenkeyless, hot-swappable switches", Price: 89.50, Stock: 23, Category: "Electronics", Status: domain.ProductStatusActive, Rating: 4.7, CreatedAt: at(85), UpdatedAt: at(30)},
		{ID: "prod-003", Name: "Standing Desk", Description: "Dual-motor, 120x70cm bamboo top", Price: 449.00, Stock: 8, Category: "Furniture", Status: domain.ProductStatusActive, Rating: 4.2, CreatedAt: at(80), UpdatedAt: at(80)},
		{ID: "prod-004", Name: "Ergonomic Chair", Description: "Mesh back, adjustable lumbar support", Price: 319.00, Stock: 12, Category: "Furniture", Status: domain.ProductStatusActive, Rating: 4.1, CreatedAt: at(77), UpdatedAt: at(20)},
		{ID: "prod-005", Name: "USB-C Dock", Description: "Dual 4K output, 100W passthrough", Price: 64.99, Stock: 60, Category: "Accessories", Status: domain.ProductStatusActive, Rating: 3.9, CreatedAt: at(60), UpdatedAt: at(60)},
		{ID: "prod-006", Name: "Desk Lamp", Description: "LED, wireless charging base", Price: 39.95, Stock: 0, Category: "Accessories", Status: domain.ProductStatusInactive, Rating: 3.6, CreatedAt: at(55), UpdatedAt: at(7)},
		{ID: "prod-007", Name: "Laptop Stand", Description: "Aluminium, foldable", Price: 27.50, Stock: 110, Category: "Accessories", Status: domain.ProductStatusActive, Rating: 4.4, CreatedAt: at(50), UpdatedAt: at(50)},
		{ID: "prod-008", Name: "Webcam", Description: "1080p60, auto light correction", Price: 79.00, Stock: 34, Category: "Electronics", Status: domain.ProductStatusActive, Rating: 4.0, CreatedAt: at(40), UpdatedAt: at(18)},
		{ID: "prod-009", Name: "Notebook Set", Description: "Dotted, A5, pack of three", Price: 14.25, Stock: 200, Category: "Stationery", Status: domain.ProductStatusActive, Rating: 4.8, CreatedAt: at(35), UpdatedAt: at(35)},
		{ID: "prod-010", Name: "Fountain Pen", Description: "Fine nib, converter included", Price: 42.00, Stock: 18, Category: "Stationery", Status: domain.ProductStatusInactive, Rating: 4.3, CreatedAt: at(25), UpdatedAt: at(3)},
	}
}

// SeedOrders returns the static initial order book. Creation dates are
// spread over the trailing two weeks so the dashboard's daily series has
// non-zero points.
func SeedOrders() []domain.Order {
	now := time.Now()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	return []domain.Order{
		{
			ID: "order-001", CustomerName: "Grace Hopper", Status: domain.OrderStatusCompleted, CreatedAt: at(12),
			Items: []domain.OrderItem{
				{ProductID: "prod-001", Name: "Wireless Headphones", Price: 129.99, Quantity: 1},
				{ProductID: "prod-007", Name: "Laptop Stand", Price: 27.50, Quantity: 2},
			},
			Total: 184.99,
		},
		{
			ID: "order-002", CustomerName: "Alan Kay", Status: domain.OrderStatusCompleted, CreatedAt: at(9),
			Items: []domain.OrderItem{
				{ProductID: "prod-003", Name: "Standing Desk", Price: 449.00, Quantity: 1},
			},
			Total: 449.00,
		},
		{
			ID: "order-003", CustomerName: "Barbara Liskov", Status: domain.OrderStatusPending, CreatedAt: at(6),
			Items: []domain.OrderItem{
				{ProductID: "prod-002", Name: "Mechanical Keyboard", Price: 89.50, Quantity: 1},
				{ProductID: "prod-005", Name: "USB-C Dock", Price: 64.99, Quantity: 1},
			},
			Total: 154.49,
		},
		{
			ID: "order-004", CustomerName: "Edsger Dijkstra", Status: domain.OrderStatusCancelled, CreatedAt: at(5),
			Items: []domain.OrderItem{
				{ProductID: "prod-006", Name: "Desk Lamp", Price: 39.95, Quantity: 1},
			},
			Total: 39.95,
		},
		{
			ID: "order-005", CustomerName: "Katherine Johnson", Status: domain.OrderStatusCompleted, CreatedAt: at(3),
			Items: []domain.OrderItem{
				{ProductID: "prod-009", Name: "Notebook Set", Price: 14.25, Quantity: 4},
				{ProductID: "prod-010", Name: "Fountain Pen", Price: 42.00, Quantity: 1},
			},
			Total: 99.00,
		},
		{
			ID: "order-006", CustomerName: "Donald Knuth", Status: domain.OrderStatusPending, CreatedAt: at(1),
			Items: []domain.OrderItem{
				{ProductID: "prod-008", Name: "Webcam", Price: 79.00, Quantity: 1},
			},
			Total: 79.00,
		},
	}
}
