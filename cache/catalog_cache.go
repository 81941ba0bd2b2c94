package catalog_cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const DefaultTTL = 5 * time.Minute

// ── Catalog cache ────────────────────────────────────────────────────────────
// Holds the last successfully loaded catalog. A degraded (unavailable)
// catalog is never stored so the next request retries the fetch.

type entry struct {
	catalog   models.Catalog
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	ttl    = DefaultTTL
	cached *entry
)

// SetTTL changes how long a loaded catalog is served before refetching.
func SetTTL(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if d > 0 {
		ttl = d
	}
}

func Get() (models.Catalog, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < ttl {
		return cached.catalog, true
	}
	return models.Catalog{}, false
}

func Set(c models.Catalog) {
	if !c.Available {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{catalog: c, fetchedAt: time.Now()}
}

// ── Invalidate (call after replacing products.json) ──────────────────────────

func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
