package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile("testdata/products.json")
	require.NoError(t, err)
	return raw
}

func TestLoadFromHTTP(t *testing.T) {
	raw := fixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	cat := NewLoader(NewSource(srv.URL + "/products.json")).Load(context.Background())

	require.True(t, cat.Available)
	require.Len(t, cat.SaleProducts, 2)
	require.Len(t, cat.NewProducts, 3)

	sale := cat.SaleProducts[0]
	assert.Equal(t, "₦1,500.00", sale.Price)
	assert.Equal(t, "₦2,000.00", sale.OriginalPrice)
	assert.True(t, sale.OnSale())

	goat := cat.NewProducts[1]
	assert.NotEmpty(t, goat.ID)
	assert.Equal(t, "₦1,400.00", goat.OriginalPrice)
}

func TestLoadFromFile(t *testing.T) {
	cat := NewLoader(NewSource("testdata/products.json")).Load(context.Background())
	assert.True(t, cat.Available)
	assert.Len(t, cat.All(), 5)
}

func TestLoadFailureDegradesToEmptyLists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	for name, src := range map[string]Source{
		"http status":  NewSource(srv.URL),
		"missing file": NewSource("testdata/nope.json"),
		"bad json":     staticSource(`{"saleProducts": [`),
	} {
		t.Run(name, func(t *testing.T) {
			cat := NewLoader(src).Load(context.Background())
			assert.False(t, cat.Available)
			assert.NotNil(t, cat.SaleProducts)
			assert.NotNil(t, cat.NewProducts)
			assert.Empty(t, cat.SaleProducts)
			assert.Empty(t, cat.NewProducts)
		})
	}
}

type staticSource string

func (s staticSource) Fetch(context.Context) ([]byte, error) { return []byte(s), nil }

func TestNormalizeGeneratesStableIDs(t *testing.T) {
	e := models.CatalogEntry{Name: "Goat Milk Soap", Image: "img/goat.png", Price: "₦1,200.00"}
	a := Normalize(e, false)
	b := Normalize(e, false)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, a.ID, b.ID)

	other := Normalize(models.CatalogEntry{Name: "Other", Image: "img/goat.png"}, false)
	assert.NotEqual(t, a.ID, other.ID)
}

func TestNormalizeKeepsExplicitID(t *testing.T) {
	p := Normalize(models.CatalogEntry{ID: "x", Name: "n", CurrentPrice: "₦5"}, true)
	assert.Equal(t, "x", p.ID)
	assert.Equal(t, "₦5", p.Price)
	assert.False(t, p.OnSale())
}

func TestCatalogFind(t *testing.T) {
	cat := NewLoader(NewSource("testdata/products.json")).Load(context.Background())

	p, ok := cat.Find("n3")
	require.True(t, ok)
	assert.Equal(t, "Black Soap", p.Name)

	_, ok = cat.Find("zzz")
	assert.False(t, ok)
}

func TestHTTPSourceRespectsDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	cat := NewLoader(NewSource(srv.URL)).Load(ctx)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.False(t, cat.Available)
	assert.Empty(t, cat.All())

	assert.Equal(t, DefaultFetchTimeout, defaultClient.Timeout)
}
