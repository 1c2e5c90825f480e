package models

// CartLine is one product in the active cart. Quantity is always >= 1; a
// line dropping to zero is removed from the cart, never kept.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
