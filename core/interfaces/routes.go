// ABOUTME: Route registry contract consumed by route-backed sitemap strategies
// ABOUTME: Abstracts over the application's router so strategies stay framework-free

package interfaces

// Route describes a single registered route.
type Route struct {
	// Path is the route pattern, e.g. "/blog/{slug}"
	Path string
}

// RouteRegistry exposes the application's registered routes.
// Implementations may wrap a live router or a fixed path list.
type RouteRegistry interface {
	// Routes returns the currently registered routes.
	// The returned slice must not be mutated by callers.
	Routes() []Route
}
