package services

import (
	"context"
	"log"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// CatalogService serves the product catalog, reloading it from its source
// once the cached copy expires.
type CatalogService struct {
	loader *catalog.Loader
}

func NewCatalogService(loader *catalog.Loader) *CatalogService {
	return &CatalogService{loader: loader}
}

// Catalog returns the cached catalog or loads it. A failed load yields
// two empty lists with Available=false and is retried on the next call.
func (s *CatalogService) Catalog(ctx context.Context) models.Catalog {
	if cat, ok := catalog_cache.Get(); ok {
		return cat
	}
	cat := s.loader.Load(ctx)
	if cat.Available {
		catalog_cache.Set(cat)
		log.Printf("[catalog.load] loaded %d sale and %d new products", len(cat.SaleProducts), len(cat.NewProducts))
	}
	return cat
}

// Product finds a product by id in the current catalog.
func (s *CatalogService) Product(ctx context.Context, id string) (models.Product, bool) {
	return s.Catalog(ctx).Find(id)
}

// Reload drops the cached catalog and loads it again.
func (s *CatalogService) Reload(ctx context.Context) models.Catalog {
	catalog_cache.Invalidate()
	return s.Catalog(ctx)
}
