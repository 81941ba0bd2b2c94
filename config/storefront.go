package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// StorefrontConfig is the runtime configuration read from the environment.
type StorefrontConfig struct {
	Port            string
	Env             string
	StorageDriver   string
	CatalogURL      string
	CatalogTTL      time.Duration
	PaymentKey      string
	PaymentCurrency string
	SessionSecret   string
	SessionTTL      time.Duration
	CORSOrigins     []string
	RateLimit       int
}

var Storefront StorefrontConfig

// LoadStorefront reads every storefront setting, applying defaults for
// anything unset or unparseable.
func LoadStorefront() StorefrontConfig {
	cfg := StorefrontConfig{
		Port:            getEnv("PORT", "8081"),
		Env:             getEnv("APP_ENV", "development"),
		StorageDriver:   strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		CatalogURL:      getEnv("CATALOG_URL", "products.json"),
		CatalogTTL:      getDuration("CATALOG_TTL", 5*time.Minute),
		PaymentKey:      getEnv("PAYSTACK_PUBLIC_KEY", ""),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", pricing.Currency),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTL:      getDuration("SESSION_TTL", 30*24*time.Hour),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		RateLimit:       getInt("RATE_LIMIT", 100),
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		log.Printf("⚠️ Unknown STORAGE_DRIVER %q, falling back to memory", cfg.StorageDriver)
		cfg.StorageDriver = StorageMemory
	}
	if cfg.PaymentKey == "" {
		log.Println("⚠️ PAYSTACK_PUBLIC_KEY not set, checkout payloads will carry an empty key")
	}

	Storefront = cfg
	return cfg
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
