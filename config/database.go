package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	EcommerceDB   *pgxpool.Pool
	EcommerceGorm *gorm.DB
)

// InitDB connects the storefront database through both pgx (sign-in
// events) and GORM (the postgres storage backend).
func InitDB() {
	dsn := ecommerceURL()
	initPgx(dsn)
	initGORM(dsn)
}

func ecommerceURL() string {
	if url := os.Getenv("ECOMMERCE_DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ ECOMMERCE_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/modeva_storefront?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
}

func initPgx(dsn string) {
	var err error
	EcommerceDB, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("❌ Unable to connect to storefront database: %v", err)
	}

	if err = EcommerceDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Storefront database ping failed: %v", err)
	}

	log.Println("✅ Storefront database connected (pgx)")
}

func initGORM(dsn string) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	EcommerceGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to storefront database with GORM: %v", err)
	}
	if sqlDB, err := EcommerceGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Storefront database connected (GORM)")
}

func CloseDB() {
	if EcommerceDB != nil {
		EcommerceDB.Close()
		log.Println("✅ Storefront database connection closed (pgx)")
	}
	if EcommerceGorm != nil {
		sqlDB, _ := EcommerceGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Storefront database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithRequestTimeout bounds ctx (usually the request context) the same way.
func WithRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
