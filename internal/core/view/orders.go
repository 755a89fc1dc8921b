package view

import (
	"context"

	"github.com/ttran/storeadmin/internal/core/domain"
)

type OrdersView struct {
	Orders    []domain.Order
	Cart      []domain.CartItem
	CartTotal float64
}

// BuildOrdersView pairs the status-filtered order list with the live cart
// contents and running total.
func BuildOrdersView(orders []domain.Order, status string, composer *Composer) OrdersView {
	return OrdersView{
		Orders:    FilterOrdersByStatus(orders, status),
		Cart:      composer.Lines(),
		CartTotal: composer.Total(),
	}
}

// DetailLine is one row of a selected order's item breakdown.
type DetailLine struct {
	domain.OrderItem
	Subtotal float64
}

func OrderDetail(o domain.Order) []DetailLine {
	lines := make([]DetailLine, len(o.Items))
	for i, it := range o.Items {
		lines[i] = DetailLine{OrderItem: it, Subtotal: domain.Round2(it.Subtotal())}
	}
	return lines
}

// OrderPlacer is what the composer needs from the order service.
type OrderPlacer interface {
	Place(ctx context.Context, in domain.OrderInput) (domain.Order, error)
}

// Composer owns the ephemeral order-composition state: the cart and the
// customer name field. It is view-local and never persisted; successful
// placement clears it.
type Composer struct {
	CustomerName string
	lines        []domain.CartItem
}

// Add puts a product in the cart, merging quantities for a product already
// present. Non-positive quantities are ignored.
func (c *Composer) Add(p domain.Product, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, domain.CartItem{Product: p, Quantity: qty})
}

// Remove drops a product from the cart entirely.
func (c *Composer) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart contents.
func (c *Composer) Lines() []domain.CartItem {
	out := make([]domain.CartItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Composer) Total() float64 {
	return domain.CartTotal(c.lines)
}

// Input builds the typed order payload from the current composition state.
func (c *Composer) Input() domain.OrderInput {
	return domain.OrderInput{
		CustomerName: c.CustomerName,
		Items:        domain.CartItems(c.lines),
	}
}

// Place submits the composition through the placer. On success the cart and
// customer name are cleared; on failure they are kept so the operator can
// correct and retry.
func (c *Composer) Place(ctx context.Context, placer OrderPlacer) (domain.Order, error) {
	o, err := placer.Place(ctx, c.Input())
	if err != nil {
		return domain.Order{}, err
	}
	c.Reset()
	return o, nil
}

func (c *Composer) Reset() {
	c.CustomerName = ""
	c.lines = nil
}
