package models

// CartItem is a line item: the product as it was added, its quantity and
// the unit price locked in at first add.
type CartItem struct {
	Product
	Quantity     int     `json:"quantity"`
	CurrentPrice float64 `json:"currentPrice"`
}

// WishlistItem is a saved product. It carries no quantity.
type WishlistItem = Product

// AddToCartRequest identifies a catalog product to add or toggle.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateQuantityRequest sets a line item's quantity. Negative values are
// clamped to 0, which removes the item.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse is the cart page projection.
type CartResponse struct {
	Items          []CartItem `json:"items"`
	Total          float64    `json:"total"`
	FormattedTotal string     `json:"formatted_total"`
	ItemCount      int        `json:"item_count"`
}

// WishlistResponse is the wishlist page projection.
type WishlistResponse struct {
	Items     []WishlistItem `json:"items"`
	ItemCount int            `json:"item_count"`
}

// Badges are the header counters shown on every page.
type Badges struct {
	CartCount     int `json:"cart_count"`
	WishlistCount int `json:"wishlist_count"`
}
