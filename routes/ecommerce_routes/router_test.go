package ecommerce_routes

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookieIsIssuedOnce(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	rec, _, err := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, err)
	require.NotNil(t, c.cookie)
	assert.NotEmpty(t, rec.Header().Get(middleware.SessionTokenHeader))
	first := c.cookie.Value

	rec, _, err = c.do(http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, err)
	assert.Empty(t, rec.Header().Get(middleware.SessionTokenHeader))
	assert.Equal(t, first, c.cookie.Value)
}

func TestListProductsWithFiltersAndSort(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	_, resp, err := c.do(http.MethodGet, "/api/v1/store/products?sort=price-low-high&inStock=true", nil)
	require.NoError(t, err)
	assert.False(t, resp.Error)

	var listing models.ProductListResponse
	require.NoError(t, decodeData(resp, &listing))
	require.Equal(t, 3, listing.Count)
	assert.Equal(t, "black", listing.Products[0].ID)
	assert.Equal(t, "turmeric", listing.Products[1].ID)
	assert.Equal(t, "shea", listing.Products[2].ID)
	// the filter panel starts at the catalog's full price range
	assert.Equal(t, 1000.0, listing.Filters.MinPrice)
	assert.Equal(t, 2500.0, listing.Filters.MaxPrice)

	_, resp, err = c.do(http.MethodGet, "/api/v1/store/products?onSale=true&maxPrice=1200", nil)
	require.NoError(t, err)
	require.NoError(t, decodeData(resp, &listing))
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "charcoal", listing.Products[0].ID)
	assert.True(t, listing.Products[0].OnSale)

	_, resp, err = c.do(http.MethodGet, "/api/v1/store/products/sale", nil)
	require.NoError(t, err)
	require.NoError(t, decodeData(resp, &listing))
	assert.Equal(t, 2, listing.Count)
}

func TestFilterMetadata(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	_, resp, err := c.do(http.MethodGet, "/api/v1/store/filters/metadata", nil)
	require.NoError(t, err)

	var meta models.FilterMetadata
	require.NoError(t, decodeData(resp, &meta))
	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, models.PriceRange{Min: 1000, Max: 2500}, *meta.PriceRange)
	assert.Equal(t, 3, meta.InStockCount)
	assert.Equal(t, 2, meta.DealsCount)
	assert.Equal(t, 4, meta.TotalCount)
}

func TestCatalogFailureDegrades(t *testing.T) {
	h := newHarness(t, harnessOptions{source: staticSource{err: errors.New("network down")}})
	c := h.newClient()

	rec, resp, err := c.do(http.MethodGet, "/api/v1/store/products", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Error)
	assert.Equal(t, "Error loading products. Please try again later.", resp.Message)

	var listing models.ProductListResponse
	require.NoError(t, decodeData(resp, &listing))
	assert.Empty(t, listing.Products)

	rec, _, err = c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "shea"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartEndpointsAndBadges(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	rec, resp, err := c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "black"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(middleware.CartCountHeader))

	var cart models.CartResponse
	require.NoError(t, decodeData(resp, &cart))
	assert.Equal(t, 1000.0, cart.Total)
	assert.Equal(t, "₦1000.00", cart.FormattedTotal)

	rec, resp, err = c.do(http.MethodPatch, "/api/v1/cart/items/black", map[string]int{"quantity": 4})
	require.NoError(t, err)
	assert.Equal(t, "4", rec.Header().Get(middleware.CartCountHeader))
	require.NoError(t, decodeData(resp, &cart))
	assert.Equal(t, 4000.0, cart.Total)

	// unknown ids are ignored
	rec, _, err = c.do(http.MethodPatch, "/api/v1/cart/items/nope", map[string]int{"quantity": 2})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _, err = c.do(http.MethodPatch, "/api/v1/cart/items/black", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp, err = c.do(http.MethodPatch, "/api/v1/cart/items/black", map[string]int{"quantity": 0})
	require.NoError(t, err)
	assert.Equal(t, "0", rec.Header().Get(middleware.CartCountHeader))
	require.NoError(t, decodeData(resp, &cart))
	assert.Empty(t, cart.Items)

	rec, _, err = c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _, err = c.do(http.MethodPost, "/api/v1/cart/items", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	h := newHarness(t, harnessOptions{})
	alice, bob := h.newClient(), h.newClient()

	_, _, err := alice.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "shea"})
	require.NoError(t, err)

	rec, _, err := bob.do(http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, err)
	assert.Equal(t, "0", rec.Header().Get(middleware.CartCountHeader))
}

func TestWishlistEndpoints(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	rec, _, err := c.do(http.MethodPost, "/api/v1/wishlist/toggle", models.AddToCartRequest{ProductID: "shea"})
	require.NoError(t, err)
	assert.Equal(t, "1", rec.Header().Get(middleware.WishlistHeader))

	_, resp, err := c.do(http.MethodGet, "/api/v1/store/products/shea", nil)
	require.NoError(t, err)
	var card models.StorefrontProductResponse
	require.NoError(t, decodeData(resp, &card))
	assert.True(t, card.InWishlist)

	rec, _, err = c.do(http.MethodPost, "/api/v1/wishlist/items/shea/move-to-cart", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(middleware.WishlistHeader))
	assert.Equal(t, "1", rec.Header().Get(middleware.CartCountHeader))

	rec, _, err = c.do(http.MethodPost, "/api/v1/wishlist/items/shea/move-to-cart", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, resp, err = c.do(http.MethodGet, "/api/v1/wishlist/items/shea", nil)
	require.NoError(t, err)
	var membership struct {
		InWishlist bool `json:"in_wishlist"`
	}
	require.NoError(t, decodeData(resp, &membership))
	assert.False(t, membership.InWishlist)

	rec, _, err = c.do(http.MethodPost, "/api/v1/wishlist/toggle", models.AddToCartRequest{ProductID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoints(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	_, resp, err := c.do(http.MethodGet, "/api/v1/store/search?q=BAR", nil)
	require.NoError(t, err)
	var found struct {
		Count int `json:"count"`
	}
	require.NoError(t, decodeData(resp, &found))
	assert.Equal(t, 2, found.Count)

	_, resp, err = c.do(http.MethodGet, "/api/v1/store/search/results", nil)
	require.NoError(t, err)
	require.NoError(t, decodeData(resp, &found))
	assert.Equal(t, 2, found.Count)
}

func TestAuthEndpoints(t *testing.T) {
	h := newHarness(t, harnessOptions{})
	c := h.newClient()

	signup := models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"}
	rec, _, err := c.do(http.MethodPost, "/api/v1/auth/signup", signup)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	_, resp, err := c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.NoError(t, err)
	var me models.UserResponse
	require.NoError(t, decodeData(resp, &me))
	assert.Equal(t, "Ada", me.Name)

	rec, _, err = h.newClient().do(http.MethodPost, "/api/v1/auth/signup", signup)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _, err = c.do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _, err = c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _, err = c.do(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "nope"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := h.newClient()
	rec, _, err = other.do(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutEndpoints(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	rec, _, err := c.do(http.MethodPost, "/api/v1/checkout", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, _, err = c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "shea"})
	require.NoError(t, err)

	rec, _, err = c.do(http.MethodPost, "/api/v1/checkout", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _, err = c.do(http.MethodPost, "/api/v1/checkout/email", models.CheckoutEmailRequest{Email: "nope"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, resp, err := c.do(http.MethodPost, "/api/v1/checkout/email", models.CheckoutEmailRequest{Email: "buyer@example.com"})
	require.NoError(t, err)
	var checkout models.CheckoutResponse
	require.NoError(t, decodeData(resp, &checkout))
	require.NotNil(t, checkout.Payment)
	assert.Equal(t, int64(250000), checkout.Payment.Amount)

	rec, _, err = c.do(http.MethodPost, "/api/v1/checkout/callback", map[string]any{"reference": "ORDER_forged_1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _, err = c.do(http.MethodPost, "/api/v1/checkout/callback", map[string]any{
		"reference": checkout.Payment.Reference,
		"response":  map[string]string{"status": "success"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(middleware.CartCountHeader))

	_, resp, err = c.do(http.MethodGet, "/api/v1/orders", nil)
	require.NoError(t, err)
	var orders []models.Order
	require.NoError(t, decodeData(resp, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPaid, orders[0].Status)

	rec, _, err = c.do(http.MethodGet, "/api/v1/orders/"+orders[0].Reference+"/receipt", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	rec, _, err = c.do(http.MethodGet, "/api/v1/orders/ORDER_missing", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := newHarness(t, harnessOptions{redis: client, rateLimit: 2}).newClient()

	for i := 0; i < 2; i++ {
		rec, _, err := c.do(http.MethodGet, "/api/v1/cart", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, strconv.Itoa(1-i), rec.Header().Get(middleware.RateRemainingHeader))
	}

	rec, resp, err := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, resp.Error)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// other routes have their own budget
	rec, _, err = c.do(http.MethodGet, "/api/v1/wishlist", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyCollectionsRenderAsArrays(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	rec, _, err := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"items":[]`)

	rec, _, err = c.do(http.MethodGet, "/api/v1/wishlist", nil)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"items":[]`)

	_, _, err = c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "black"})
	require.NoError(t, err)
	rec, _, err = c.do(http.MethodDelete, "/api/v1/cart/items/black", nil)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestCartLockedWhilePaymentPending(t *testing.T) {
	c := newHarness(t, harnessOptions{}).newClient()

	_, _, err := c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "shea"})
	require.NoError(t, err)
	rec, _, err := c.do(http.MethodPost, "/api/v1/wishlist/toggle", models.AddToCartRequest{ProductID: "black"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	_, _, err = c.do(http.MethodPost, "/api/v1/checkout", nil)
	require.NoError(t, err)
	_, resp, err := c.do(http.MethodPost, "/api/v1/checkout/email", models.CheckoutEmailRequest{Email: "buyer@example.com"})
	require.NoError(t, err)
	var checkout models.CheckoutResponse
	require.NoError(t, decodeData(resp, &checkout))
	require.NotNil(t, checkout.Payment)

	for _, r := range []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "black"}},
		{http.MethodPatch, "/api/v1/cart/items/shea", map[string]int{"quantity": 5}},
		{http.MethodDelete, "/api/v1/cart/items/shea", nil},
		{http.MethodPost, "/api/v1/wishlist/items/black/move-to-cart", nil},
	} {
		rec, _, err := c.do(r.method, r.path, r.body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code, r.method+" "+r.path)
	}

	_, resp, err = c.do(http.MethodPost, "/api/v1/checkout/callback", map[string]any{"reference": checkout.Payment.Reference})
	require.NoError(t, err)
	var settled models.CheckoutResponse
	require.NoError(t, decodeData(resp, &settled))
	require.NotNil(t, settled.Order)
	assert.Equal(t, 2500.0, settled.Order.Total)
	assert.Len(t, settled.Order.Items, 1)

	// settled checkouts unlock the cart
	rec, _, err = c.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "black"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
