package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderItem is a snapshot of a product at order time. It is deliberately
// decoupled from the live Product record so historical orders are unaffected
// by later price or name edits.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// ItemsTotal sums item subtotals rounded to two decimals.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return Round2(total)
}

// CanTransition reports whether an order may move to the given status.
// Pending orders may complete or cancel; completed and cancelled are terminal.
func (o Order) CanTransition(to OrderStatus) bool {
	if o.Status != OrderStatusPending {
		return false
	}
	return to == OrderStatusCompleted || to == OrderStatusCancelled
}

// Clone deep-copies the order including its item slice.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}

// CloneOrders deep-copies an order slice.
func CloneOrders(orders []Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}

// CloneProducts copies a product slice. Products hold no reference fields,
// so a shallow element copy is a full copy.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}
