package catalog

// Product is a catalog entry, either from the static storefront catalog
// or added locally by an admin. JSON tags match the stored
// "productsOverlay" shape.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// static is the fixed storefront catalog. Admin-added products layer on
// top of it, they never replace it.
var static = []Product{
	{ID: "zaatar-1", Name: "Zaatar Mix", Price: 15000, Image: "images/zaatar-mix.png"},
	{ID: "zaatar-2", Name: "Premium Zaatar", Price: 25000, Image: "images/zaatar-premium.png"},
	{ID: "oil-1", Name: "Olive Oil", Price: 30000, Image: "images/olive-oil.png"},
	{ID: "spices-1", Name: "Sumac", Price: 12000, Image: "images/sumac.png"},
}
