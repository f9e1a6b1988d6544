package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteLogin        = "/login"
	RouteAuthLogin    = "/auth/login"
	RouteAuthLogout   = "/auth/logout"
	RouteUnauthorized = "/unauthorized"

	// Console Routes
	RouteDashboard = "/dashboard"

	// Catalog proxy routes
	RouteProducts        = "/console/products"
	RouteProduct         = "/console/products/{id}"
	RouteProductImages   = "/console/products/{id}/images"
	RouteProductVariants = "/console/products/{id}/variants"
	RouteImage           = "/console/images/{id}"
	RouteVariant         = "/console/variants/{id}"
	RouteCategories      = "/console/categories"
	RouteCategory        = "/console/categories/{id}"
	RouteCategoryImage   = "/console/categories/{id}/image"

	// Operational routes
	RouteMetrics = "/metrics"
	RouteHealth  = "/healthz"
)

// RoleAdmin gates catalog mutations; the backend issues it in token claims.
const RoleAdmin = "ROLE_ADMIN"

// returnToParam carries the originally requested path through a login
// redirect so the user lands back where they started.
const returnToParam = "return_to"
