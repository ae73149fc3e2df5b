package routes

import (
	"net/http"
	"reflect"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestStaticRegistry(t *testing.T) {
	registry := NewStaticRegistry([]string{"/", "/about"})

	routes := registry.Routes()
	if len(routes) != 2 {
		t.Fatalf("Routes returned %d routes, want 2", len(routes))
	}
	if routes[0].Path != "/" || routes[1].Path != "/about" {
		t.Errorf("Routes = %v, want / and /about in order", routes)
	}
}

func TestStaticRegistry_Empty(t *testing.T) {
	registry := NewStaticRegistry(nil)

	if got := registry.Routes(); len(got) != 0 {
		t.Errorf("Routes = %v, want none", got)
	}
}

func TestChiRegistry_CollectsGETRoutes(t *testing.T) {
	router := chi.NewRouter()
	noop := func(w http.ResponseWriter, r *http.Request) {}
	router.Get("/", noop)
	router.Get("/blog", noop)
	router.Post("/blog", noop)
	router.Delete("/admin/posts", noop)

	registry := NewChiRegistry(router)

	var paths []string
	for _, route := range registry.Routes() {
		paths = append(paths, route.Path)
	}
	sort.Strings(paths)

	want := []string{"/", "/blog"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Routes = %v, want %v", paths, want)
	}
}

func TestChiRegistry_DeduplicatesPatterns(t *testing.T) {
	router := chi.NewRouter()
	noop := func(w http.ResponseWriter, r *http.Request) {}
	router.Get("/items/{id}", noop)

	registry := NewChiRegistry(router)

	routes := registry.Routes()
	if len(routes) != 1 {
		t.Fatalf("Routes returned %d routes, want 1", len(routes))
	}
	if routes[0].Path != "/items/{id}" {
		t.Errorf("route = %q, want /items/{id}", routes[0].Path)
	}
}
