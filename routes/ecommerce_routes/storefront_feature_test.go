package ecommerce_routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/cucumber/godog"
)

type storefrontTestContext struct {
	shopper  *client
	rec      *httptest.ResponseRecorder
	resp     apiResponse
	checkout models.CheckoutResponse
}

func (s *storefrontTestContext) reset() {
	s.shopper = nil
	s.rec = nil
	s.resp = apiResponse{}
	s.checkout = models.CheckoutResponse{}
}

func (s *storefrontTestContext) start(source staticSource) error {
	h, err := buildHarness(harnessOptions{source: source})
	if err != nil {
		return err
	}
	s.shopper = h.newClient()
	return nil
}

func (s *storefrontTestContext) request(method, path string, body any, want int) error {
	rec, resp, err := s.shopper.do(method, path, body)
	if err != nil {
		return err
	}
	s.rec, s.resp = rec, resp
	if rec.Code != want {
		return fmt.Errorf("%s %s: expected status %d, got %d (%s)", method, path, want, rec.Code, resp.Message)
	}
	return nil
}

func (s *storefrontTestContext) theCatalogIsAvailable() error {
	return s.start(staticSource{body: productsJSON})
}

func (s *storefrontTestContext) theCatalogCannotBeFetched() error {
	return s.start(staticSource{err: errors.New("network down")})
}

func (s *storefrontTestContext) iAddToTheCart(id string) error {
	return s.request(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: id}, http.StatusOK)
}

func (s *storefrontTestContext) iToggleInTheWishlist(id string) error {
	return s.request(http.MethodPost, "/api/v1/wishlist/toggle", models.AddToCartRequest{ProductID: id}, http.StatusOK)
}

func (s *storefrontTestContext) iBeginCheckout() error {
	return s.request(http.MethodPost, "/api/v1/checkout", nil, http.StatusOK)
}

func (s *storefrontTestContext) iSubmitTheCheckoutEmail(email string) error {
	if err := s.request(http.MethodPost, "/api/v1/checkout/email", models.CheckoutEmailRequest{Email: email}, http.StatusOK); err != nil {
		return err
	}
	return decodeData(s.resp, &s.checkout)
}

func (s *storefrontTestContext) thePaymentSucceeds() error {
	if s.checkout.Payment == nil {
		return errors.New("no payment was initialized")
	}
	return s.request(http.MethodPost, "/api/v1/checkout/callback", map[string]any{
		"reference": s.checkout.Payment.Reference,
		"response":  map[string]string{"status": "success"},
	}, http.StatusOK)
}

func (s *storefrontTestContext) iListTheProducts() error {
	return s.request(http.MethodGet, "/api/v1/store/products", nil, http.StatusOK)
}

func (s *storefrontTestContext) badge(header string, want int) error {
	if got := s.rec.Header().Get(header); got != fmt.Sprint(want) {
		return fmt.Errorf("expected %s %d, got %q", header, want, got)
	}
	return nil
}

func (s *storefrontTestContext) theCartBadgeShows(n int) error {
	return s.badge(middleware.CartCountHeader, n)
}

func (s *storefrontTestContext) theWishlistBadgeShows(n int) error {
	return s.badge(middleware.WishlistHeader, n)
}

func (s *storefrontTestContext) theCartTotalIs(want string) error {
	var cart models.CartResponse
	if err := decodeData(s.resp, &cart); err != nil {
		return err
	}
	if cart.FormattedTotal != want {
		return fmt.Errorf("expected total %s, got %s", want, cart.FormattedTotal)
	}
	return nil
}

func (s *storefrontTestContext) theCartHasLineWithQuantity(lines, quantity int) error {
	var cart models.CartResponse
	if err := decodeData(s.resp, &cart); err != nil {
		return err
	}
	if len(cart.Items) != lines {
		return fmt.Errorf("expected %d lines, got %d", lines, len(cart.Items))
	}
	if cart.Items[0].Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, cart.Items[0].Quantity)
	}
	return nil
}

func (s *storefrontTestContext) thePaymentAmountIsKobo(amount int) error {
	if s.checkout.Payment == nil {
		return errors.New("no payment was initialized")
	}
	if s.checkout.Payment.Amount != int64(amount) {
		return fmt.Errorf("expected amount %d, got %d", amount, s.checkout.Payment.Amount)
	}
	return nil
}

func (s *storefrontTestContext) iHavePaidOrder(n int) error {
	if err := s.request(http.MethodGet, "/api/v1/orders", nil, http.StatusOK); err != nil {
		return err
	}
	var orders []models.Order
	if err := decodeData(s.resp, &orders); err != nil {
		return err
	}
	if len(orders) != n {
		return fmt.Errorf("expected %d orders, got %d", n, len(orders))
	}
	for _, o := range orders {
		if o.Status != models.OrderStatusPaid {
			return fmt.Errorf("order %s has status %s", o.Reference, o.Status)
		}
	}
	return nil
}

func (s *storefrontTestContext) theListingIsEmpty() error {
	var listing models.ProductListResponse
	if err := decodeData(s.resp, &listing); err != nil {
		return err
	}
	if len(listing.Products) != 0 {
		return fmt.Errorf("expected no products, got %d", len(listing.Products))
	}
	return nil
}

func (s *storefrontTestContext) theResponseReportsAnError() error {
	if !s.resp.Error {
		return errors.New("expected the response to report an error")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the catalog is available$`, tc.theCatalogIsAvailable)
	ctx.Step(`^the catalog cannot be fetched$`, tc.theCatalogCannotBeFetched)
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I toggle "([^"]*)" in the wishlist$`, tc.iToggleInTheWishlist)
	ctx.Step(`^I begin checkout$`, tc.iBeginCheckout)
	ctx.Step(`^I submit the checkout email "([^"]*)"$`, tc.iSubmitTheCheckoutEmail)
	ctx.Step(`^the payment succeeds$`, tc.thePaymentSucceeds)
	ctx.Step(`^I list the products$`, tc.iListTheProducts)
	ctx.Step(`^the cart badge shows (\d+)$`, tc.theCartBadgeShows)
	ctx.Step(`^the wishlist badge shows (\d+)$`, tc.theWishlistBadgeShows)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the cart has (\d+) line with quantity (\d+)$`, tc.theCartHasLineWithQuantity)
	ctx.Step(`^the payment amount is (\d+) kobo$`, tc.thePaymentAmountIsKobo)
	ctx.Step(`^I have (\d+) paid order$`, tc.iHavePaidOrder)
	ctx.Step(`^the listing is empty$`, tc.theListingIsEmpty)
	ctx.Step(`^the response reports an error$`, tc.theResponseReportsAnError)
}

func TestFeatures(t *testing.T) {
	t.Cleanup(catalog_cache.Invalidate)

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
