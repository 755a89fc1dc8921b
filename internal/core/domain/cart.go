package domain

// CartItem pairs a full product snapshot with a quantity while an order is
// being composed. Carts are view-local and never persisted.
type CartItem struct {
	Product  Product
	Quantity int
}

func (c CartItem) Subtotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}

// CartItems converts cart lines to order-item snapshots.
func CartItems(lines []CartItem) []OrderItem {
	items := make([]OrderItem, len(lines))
	for i, l := range lines {
		items[i] = OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		}
	}
	return items
}

// CartTotal is the running total of a cart, rounded to two decimals.
func CartTotal(lines []CartItem) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return Round2(total)
}
