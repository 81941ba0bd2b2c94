package services

import (
	"context"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
)

type SearchService struct {
	catalog *CatalogService
}

func NewSearchService(catalog *CatalogService) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search matches term against product names across sale and new products
// and remembers the matches for the session's results page. A blank term
// is a no-op and reports false.
func (s *SearchService) Search(ctx context.Context, session storage.Store, term string) ([]models.Product, bool, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Product{}, false, nil
	}

	found := catalog.Search(s.catalog.Catalog(ctx).All(), term)
	if err := storage.SaveJSON(ctx, session, storage.KeySearchResults, found); err != nil {
		return found, true, err
	}
	return found, true, nil
}

// Last returns the session's stored matches, empty when nothing was searched.
func (s *SearchService) Last(ctx context.Context, session storage.Store) ([]models.Product, error) {
	found := []models.Product{}
	if _, err := storage.LoadJSON(ctx, session, storage.KeySearchResults, &found); err != nil {
		return found, err
	}
	if found == nil {
		found = []models.Product{}
	}
	return found, nil
}
