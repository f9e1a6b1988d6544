package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.ConsoleMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.ConsoleMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.ConsoleMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteUnauthorized, s.UnauthorizedHandler())

	// Console routes (any authenticated user)
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.ConsoleMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteProducts, ChainMiddleware(s.ProductsListHandler(), s.ConsoleMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteProduct, ChainMiddleware(s.ProductGetHandler(), s.ConsoleMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteCategories, ChainMiddleware(s.CategoriesListHandler(), s.ConsoleMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteCategory, ChainMiddleware(s.CategoryGetHandler(), s.ConsoleMiddleware(s.RequireSession())...))

	// Catalog mutations (admin role required)
	s.RegisterRouteHandler("POST "+RouteProducts, ChainMiddleware(s.ProductCreateHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("PUT "+RouteProduct, ChainMiddleware(s.ProductUpdateHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("DELETE "+RouteProduct, ChainMiddleware(s.ProductDeleteHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteProductImages, ChainMiddleware(s.ProductImageUploadHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("DELETE "+RouteImage, ChainMiddleware(s.ImageDeleteHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteProductVariants, ChainMiddleware(s.VariantAddHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("PUT "+RouteVariant, ChainMiddleware(s.VariantUpdateHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("DELETE "+RouteVariant, ChainMiddleware(s.VariantDeleteHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteCategories, ChainMiddleware(s.CategoryCreateHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("PUT "+RouteCategory, ChainMiddleware(s.CategoryUpdateHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("DELETE "+RouteCategory, ChainMiddleware(s.CategoryDeleteHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteCategoryImage, ChainMiddleware(s.CategoryImageUploadHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))
	s.RegisterRouteHandler("DELETE "+RouteCategoryImage, ChainMiddleware(s.CategoryImageDeleteHandler(), s.ConsoleMiddleware(s.RequireSession(RoleAdmin))...))

	// Operational routes
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
}
