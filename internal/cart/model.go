package cart

// Line is one product entry in the cart. JSON tags match the shape the
// storefront has always persisted under the "cart" key, so existing
// stored carts keep loading.
type Line struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Total is the line's price contribution.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Totals is the derived cart summary. It is always recomputed from the
// current lines, never cached.
type Totals struct {
	Items int
	Price int64
}
