package ecommerce_routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const productsJSON = `{
  "saleProducts": [
    {"id": "turmeric", "name": "Turmeric Bar Soap", "image": "img/turmeric.png", "currentPrice": "₦1,500.00", "originalPrice": "₦2,000.00", "discount": "25%", "inStock": true},
    {"id": "charcoal", "name": "Charcoal Bar Soap", "image": "img/charcoal.png", "currentPrice": "₦1,000.00", "originalPrice": "₦1,200.00"}
  ],
  "newProducts": [
    {"id": "shea", "name": "Shea Butter Soap", "image": "img/shea.png", "price": "₦2,500.00", "inStock": true},
    {"id": "black", "name": "Black Soap", "image": "img/black.png", "price": "₦1,000.00", "inStock": true}
  ]
}`

type staticSource struct {
	body string
	err  error
}

func (s staticSource) Fetch(context.Context) ([]byte, error) {
	return []byte(s.body), s.err
}

type harness struct {
	engine *gin.Engine
}

type harnessOptions struct {
	source    catalog.Source
	redis     *redis.Client
	rateLimit int
}

func newHarness(t testing.TB, opts harnessOptions) *harness {
	t.Helper()
	h, err := buildHarness(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(catalog_cache.Invalidate)
	return h
}

func buildHarness(opts harnessOptions) (*harness, error) {
	gin.SetMode(gin.TestMode)
	catalog_cache.Invalidate()

	if opts.source == nil {
		opts.source = staticSource{body: productsJSON}
	}

	base := storage.NewMemoryStore()
	sessions := services.NewSessionManager(base)
	services.InitStorefront(sessions,
		services.NewCatalogService(catalog.NewLoader(opts.source)),
		services.NewCheckoutService("pk_test_key", "NGN"),
	)
	jwt, err := services.NewJWTService("test-secret", time.Hour)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	SetupRoutes(engine.Group("/api/v1"), RouterOptions{
		Sessions:  sessions,
		JWT:       jwt,
		Redis:     opts.redis,
		RateLimit: opts.rateLimit,
	})
	return &harness{engine: engine}, nil
}

// client is one browser: it keeps the session cookie between requests.
type client struct {
	h      *harness
	cookie *http.Cookie
}

func (h *harness) newClient() *client {
	return &client{h: h}
}

type apiResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error"`
}

func (c *client) do(method, path string, body any) (*httptest.ResponseRecorder, apiResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, apiResponse{}, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.h.engine.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			c.cookie = ck
		}
	}

	var resp apiResponse
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			return rec, resp, err
		}
	}
	return rec, resp, nil
}

func decodeData(resp apiResponse, dst any) error {
	if len(resp.Data) == 0 {
		return errors.New("response carries no data")
	}
	return json.Unmarshal(resp.Data, dst)
}
