package models

// ═══════════════════════════════════════════════════════════
// Catalog Product
// ═══════════════════════════════════════════════════════════

// Product is a read-only catalog entry. Prices stay display strings
// ("₦1,000.00"); numeric values are derived through the pricing package.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
	InStock       bool   `json:"inStock,omitempty"`
}

// HasOriginalPrice reports whether the product carries a pre-discount price.
func (p Product) HasOriginalPrice() bool {
	return p.OriginalPrice != ""
}

// OnSale reports whether the product is discounted.
func (p Product) OnSale() bool {
	return p.OriginalPrice != "" && p.OriginalPrice != p.Price
}

// CatalogEntry is the raw shape of one product in products.json. Sale
// entries carry currentPrice/originalPrice, regular ones carry price;
// older files use oldPrice for the original price.
type CatalogEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Price         string `json:"price"`
	CurrentPrice  string `json:"currentPrice"`
	OriginalPrice string `json:"originalPrice"`
	OldPrice      string `json:"oldPrice"`
	Discount      string `json:"discount"`
	InStock       bool   `json:"inStock"`
}

// CatalogDocument is the products.json resource.
type CatalogDocument struct {
	SaleProducts []CatalogEntry `json:"saleProducts"`
	NewProducts  []CatalogEntry `json:"newProducts"`
}

// Catalog is the normalized catalog handed to the filter engine and views.
type Catalog struct {
	SaleProducts []Product `json:"saleProducts"`
	NewProducts  []Product `json:"newProducts"`
	// Available is false when the resource could not be loaded and both
	// lists were degraded to empty.
	Available bool `json:"-"`
}

// All returns sale products followed by new arrivals, the order the
// storefront grids and search use.
func (c Catalog) All() []Product {
	all := make([]Product, 0, len(c.SaleProducts)+len(c.NewProducts))
	all = append(all, c.SaleProducts...)
	return append(all, c.NewProducts...)
}

// Find looks a product up by id across both lists.
func (c Catalog) Find(id string) (Product, bool) {
	for _, p := range c.SaleProducts {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range c.NewProducts {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// StorefrontProductResponse is the thin product card projection.
type StorefrontProductResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Price         string  `json:"price"`
	Amount        float64 `json:"amount"`
	OriginalPrice string  `json:"originalPrice,omitempty"`
	Discount      string  `json:"discount,omitempty"`
	InStock       bool    `json:"inStock"`
	OnSale        bool    `json:"onSale"`
	InWishlist    bool    `json:"inWishlist"`
}
