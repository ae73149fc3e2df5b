// ABOUTME: Fixed-list route registry for configurations without a live router
// ABOUTME: Useful in tests and for sites whose routes are known up front

package routes

import (
	"sitemap-app-api/core/interfaces"
)

// StaticRegistry serves a fixed route list.
type StaticRegistry struct {
	routes []interfaces.Route
}

// NewStaticRegistry creates a registry over the given paths.
func NewStaticRegistry(paths []string) *StaticRegistry {
	rts := make([]interfaces.Route, 0, len(paths))
	for _, p := range paths {
		rts = append(rts, interfaces.Route{Path: p})
	}
	return &StaticRegistry{routes: rts}
}

// Routes returns the registered routes.
func (r *StaticRegistry) Routes() []interfaces.Route {
	return r.routes
}
