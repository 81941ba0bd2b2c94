package services

import "log"

// Process-wide storefront services, initialized once from main.
var (
	catalogService  *CatalogService
	checkoutService *CheckoutService
	authService     *AuthService
	searchService   *SearchService
	sessionManager  *SessionManager
)

// InitStorefront wires every storefront service over one session manager.
func InitStorefront(mgr *SessionManager, catalog *CatalogService, checkout *CheckoutService) {
	sessionManager = mgr
	catalogService = catalog
	checkoutService = checkout
	authService = NewAuthService(mgr.Shared())
	searchService = NewSearchService(catalog)
	log.Println("✅ Storefront services initialized")
}

func GetSessionManager() *SessionManager   { return sessionManager }
func GetCatalogService() *CatalogService   { return catalogService }
func GetCheckoutService() *CheckoutService { return checkoutService }
func GetAuthService() *AuthService         { return authService }
func GetSearchService() *SearchService     { return searchService }
