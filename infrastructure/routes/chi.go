// ABOUTME: Route registry adapter over a live chi router
// ABOUTME: Walks the routing tree and exposes GET route patterns to strategies

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitemap-app-api/core/interfaces"
)

// ChiRegistry exposes the GET routes of a chi router.
type ChiRegistry struct {
	router chi.Routes
}

// NewChiRegistry creates a registry over the given router.
func NewChiRegistry(router chi.Routes) *ChiRegistry {
	return &ChiRegistry{router: router}
}

// Routes walks the routing tree and returns each GET pattern once.
// Walk errors leave a partial (possibly empty) route list, which a
// strategy treats the same as an empty registry.
func (r *ChiRegistry) Routes() []interfaces.Route {
	seen := make(map[string]bool)
	var collected []interfaces.Route

	_ = chi.Walk(r.router, func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		if method != http.MethodGet || seen[route] {
			return nil
		}
		seen[route] = true
		collected = append(collected, interfaces.Route{Path: route})
		return nil
	})

	return collected
}
