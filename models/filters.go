// models/filters.go
package models

// SortKey orders a product listing.
type SortKey string

const (
	// SortPopularity keeps catalog order.
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price-low-high"
	SortPriceDesc  SortKey = "price-high-low"
)

// FilterConfig is the storefront filter panel. Price bounds are inclusive.
type FilterConfig struct {
	MinPrice    float64 `json:"minPrice" form:"minPrice"`
	MaxPrice    float64 `json:"maxPrice" form:"maxPrice"`
	InStockOnly bool    `json:"inStock" form:"inStock"`
	OnSaleOnly  bool    `json:"onSale" form:"onSale"`
}

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata feeds the filter panel counters.
type FilterMetadata struct {
	PriceRange   *PriceRange `json:"priceRange"`
	InStockCount int         `json:"inStockCount"`
	DealsCount   int         `json:"dealsCount"`
	TotalCount   int         `json:"totalCount"`
}

// ProductListResponse is a filtered, sorted listing.
type ProductListResponse struct {
	Products []StorefrontProductResponse `json:"products"`
	Filters  FilterConfig                `json:"filters"`
	Sort     SortKey                     `json:"sort"`
	Count    int                         `json:"count"`
}
