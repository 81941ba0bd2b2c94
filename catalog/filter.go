package catalog

import (
	"sort"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
)

// ─────────────────────────────────────────────────────────────
// Filters
// ─────────────────────────────────────────────────────────────

// PriceOf is the numeric current price of p (0 when unparseable).
func PriceOf(p models.Product) float64 {
	return pricing.Value(p.Price)
}

// Matches reports whether p passes every predicate of cfg.
func Matches(p models.Product, cfg models.FilterConfig) bool {
	price := PriceOf(p)
	priceMatch := price >= cfg.MinPrice && price <= cfg.MaxPrice
	stockMatch := !cfg.InStockOnly || p.InStock
	saleMatch := !cfg.OnSaleOnly || p.HasOriginalPrice()
	return priceMatch && stockMatch && saleMatch
}

// ApplyFilters returns the products that pass cfg, in their original order.
func ApplyFilters(products []models.Product, cfg models.FilterConfig) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, cfg) {
			out = append(out, p)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────

// ParseSortKey maps a query value onto a SortKey; anything unknown means
// popularity.
func ParseSortKey(s string) models.SortKey {
	switch models.SortKey(s) {
	case models.SortPriceAsc:
		return models.SortPriceAsc
	case models.SortPriceDesc:
		return models.SortPriceDesc
	default:
		return models.SortPopularity
	}
}

// SortProducts returns a sorted copy. Price sorts are stable: equal prices
// keep their relative order.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	out := append([]models.Product(nil), products...)
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return PriceOf(out[i]) < PriceOf(out[j]) })
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return PriceOf(out[i]) > PriceOf(out[j]) })
	}
	return out
}

// ─────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────

// PriceRangeOf returns the lowest and highest price. ok is false for an
// empty list, which has no range.
func PriceRangeOf(products []models.Product) (r models.PriceRange, ok bool) {
	if len(products) == 0 {
		return models.PriceRange{}, false
	}
	r.Min, r.Max = PriceOf(products[0]), PriceOf(products[0])
	for _, p := range products[1:] {
		price := PriceOf(p)
		if price < r.Min {
			r.Min = price
		}
		if price > r.Max {
			r.Max = price
		}
	}
	return r, true
}

func InStockCount(products []models.Product) int {
	n := 0
	for _, p := range products {
		if p.InStock {
			n++
		}
	}
	return n
}

// DealsCount counts products carrying an original price.
func DealsCount(products []models.Product) int {
	n := 0
	for _, p := range products {
		if p.HasOriginalPrice() {
			n++
		}
	}
	return n
}

// DefaultFilter spans the whole catalog with both flags off, the state
// the filter panel starts in.
func DefaultFilter(products []models.Product) models.FilterConfig {
	r, _ := PriceRangeOf(products)
	return models.FilterConfig{MinPrice: r.Min, MaxPrice: r.Max}
}

// Metadata summarizes products for the filter panel.
func Metadata(products []models.Product) models.FilterMetadata {
	meta := models.FilterMetadata{
		InStockCount: InStockCount(products),
		DealsCount:   DealsCount(products),
		TotalCount:   len(products),
	}
	if r, ok := PriceRangeOf(products); ok {
		meta.PriceRange = &r
	}
	return meta
}

// ─────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────

// Search returns the products whose name contains term, ignoring case.
// The term is trimmed; an empty term matches nothing.
func Search(products []models.Product, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []models.Product{}
	if term == "" {
		return out
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}
