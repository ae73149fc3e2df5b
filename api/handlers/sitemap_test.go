package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSitemapHandler_ServesXML(t *testing.T) {
	service := newTestService(10*time.Minute, "/", "/about")
	handler := NewSitemapHandler(service, noopLogger{}, "example.com", "https")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, strconv.Itoa(rec.Body.Len()), rec.Header().Get("Content-Length"))

	body := rec.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<loc>https://example.com/</loc>")
	assert.Contains(t, body, "<loc>https://example.com/about</loc>")
}

func TestSitemapHandler_HeadAllowed(t *testing.T) {
	service := newTestService(time.Hour, "/")
	handler := NewSitemapHandler(service, noopLogger{}, "example.com", "https")

	req := httptest.NewRequest(http.MethodHead, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSitemapHandler_WrongMethod(t *testing.T) {
	service := newTestService(time.Hour, "/")
	handler := NewSitemapHandler(service, noopLogger{}, "example.com", "https")

	req := httptest.NewRequest(http.MethodPost, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Method Not Allowed", rec.Body.String())
}

func TestSitemapHandler_AutoProtocolFromForwardedHeader(t *testing.T) {
	service := newTestService(time.Hour, "/")
	handler := NewSitemapHandler(service, noopLogger{}, "example.com", "auto")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Header.Set("X-Forwarded-Proto", "https, http")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>https://example.com/</loc>")
}

func TestSitemapHandler_AutoProtocolDefaultsToHTTP(t *testing.T) {
	service := newTestService(time.Hour, "/")
	handler := NewSitemapHandler(service, noopLogger{}, "example.com", "auto")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>http://example.com/</loc>")
}

func TestSitemapHandler_GenerationErrorIsPlainText500(t *testing.T) {
	service := newTestService(time.Hour, "/")
	// Empty domain makes generation fail with a configuration error
	handler := NewSitemapHandler(service, noopLogger{}, "", "https")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}

func TestSitemapHandler_PanicBecomesPlainText500(t *testing.T) {
	// A nil service panics on use; the handler must absorb it
	handler := NewSitemapHandler(nil, noopLogger{}, "example.com", "https")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}

func TestSitemapHandler_RegisterRoutes(t *testing.T) {
	service := newTestService(time.Hour, "/")
	handler := NewSitemapHandler(service, noopLogger{}, "example.com", "https")

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
