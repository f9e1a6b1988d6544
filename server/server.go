package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shopfront/admin-console/internal/config"
)

// Server is the admin console's HTTP surface: login and logout, the
// guarded console routes, and the catalog proxy endpoints.
type Server struct {
	env      string
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	registry *Registry
	log      zerolog.Logger
}

// New creates the console server and registers its routes.
func New(cfg config.Config, registry *Registry, log zerolog.Logger) *Server {
	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		registry: registry,
		log:      log,
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			s.log.Debug().Str("method", parts[0]).Str("path", parts[1]).Msg("route")
		} else {
			s.log.Debug().Str("path", parts[0]).Msg("route")
		}
	}
}
