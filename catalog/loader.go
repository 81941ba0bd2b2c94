// Package catalog loads the static product catalog and implements the
// storefront's filter, sort and search engine over it.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/google/uuid"
)

// idNamespace seeds deterministic ids for catalog entries that have none.
var idNamespace = uuid.MustParse("6f1c2a0e-5b8d-4c1e-9a57-3d2f0b7e8c41")

// Source fetches the raw catalog document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// DefaultFetchTimeout bounds a catalog fetch when HTTPSource has no client
// of its own.
const DefaultFetchTimeout = 10 * time.Second

var defaultClient = &http.Client{Timeout: DefaultFetchTimeout}

// HTTPSource reads the catalog from a URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = defaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// FileSource reads the catalog from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource
// for everything else.
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPSource{URL: location}
	}
	return FileSource{Path: location}
}

// Loader fetches and normalizes the catalog.
type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load never fails: a fetch or decode error is logged and degrades to two
// empty lists with Available unset.
func (l *Loader) Load(ctx context.Context) models.Catalog {
	raw, err := l.source.Fetch(ctx)
	if err != nil {
		log.Printf("❌ [catalog.load] could not fetch product data: %v", err)
		return emptyCatalog()
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("❌ [catalog.load] could not decode product data: %v", err)
		return emptyCatalog()
	}

	return models.Catalog{
		SaleProducts: normalizeAll(doc.SaleProducts, true),
		NewProducts:  normalizeAll(doc.NewProducts, false),
		Available:    true,
	}
}

func emptyCatalog() models.Catalog {
	return models.Catalog{
		SaleProducts: []models.Product{},
		NewProducts:  []models.Product{},
	}
}

func normalizeAll(entries []models.CatalogEntry, sale bool) []models.Product {
	out := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		out = append(out, Normalize(e, sale))
	}
	return out
}

// Normalize maps a raw entry onto a Product. Sale entries take their
// display price from currentPrice; entries without an id get one derived
// from name and image, so the id is stable across reloads.
func Normalize(e models.CatalogEntry, sale bool) models.Product {
	p := models.Product{
		ID:            e.ID,
		Name:          e.Name,
		Image:         e.Image,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Discount:      e.Discount,
		InStock:       e.InStock,
	}
	if p.OriginalPrice == "" {
		p.OriginalPrice = e.OldPrice
	}
	if (sale || p.Price == "") && e.CurrentPrice != "" {
		p.Price = e.CurrentPrice
	}
	if p.ID == "" {
		p.ID = uuid.NewSHA1(idNamespace, []byte(e.Name+"\x00"+e.Image)).String()
	}
	if _, err := pricing.Parse(p.Price); err != nil {
		log.Printf("⚠️ [catalog.normalize] product %q has no numeric price %q", p.Name, p.Price)
	}
	return p
}
