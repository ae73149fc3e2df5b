// ABOUTME: HTTP responder serving the generated sitemap document
// ABOUTME: Rejects bad requests before doing work and converts all failures to plain-text errors

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sitemap-app-api/core/interfaces"
	"sitemap-app-api/core/sitemap"
)

// SitemapHandler serves the sitemap XML for one configured domain.
// No generation-path failure ever propagates to the HTTP server: errors
// and panics become plain-text 500 responses.
type SitemapHandler struct {
	service  *sitemap.Service
	logger   interfaces.Logger
	domain   string
	protocol string
}

// NewSitemapHandler creates a sitemap handler. protocol is "http",
// "https", or "auto"; auto resolves the scheme per request.
func NewSitemapHandler(service *sitemap.Service, logger interfaces.Logger, domain, protocol string) *SitemapHandler {
	return &SitemapHandler{
		service:  service,
		logger:   logger,
		domain:   domain,
		protocol: protocol,
	}
}

// RegisterRoutes mounts the handler on the conventional path.
func (h *SitemapHandler) RegisterRoutes(router interface {
	Method(method, pattern string, handler http.Handler)
}) {
	router.Method(http.MethodGet, "/sitemap.xml", h)
	router.Method(http.MethodHead, "/sitemap.xml", h)
}

// ServeHTTP implements http.Handler
func (h *SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("Sitemap generation panicked", map[string]interface{}{
				"panic": fmt.Sprintf("%v", rec),
			})
			writePlainError(w, http.StatusInternalServerError, "Internal Server Error")
		}
	}()

	// Contract check before any generation work
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writePlainError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	protocol := h.protocol
	if protocol == "auto" {
		protocol = resolveProtocol(r)
	}

	data, err := h.service.Generate(r.Context(), h.domain, protocol)
	if err != nil {
		h.logger.Error("Sitemap generation failed", map[string]interface{}{
			"domain": h.domain,
			"error":  err.Error(),
		})
		writePlainError(w, toStatus(err), "Internal Server Error")
		return
	}

	maxAge := int(h.service.TTL().Seconds())

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// resolveProtocol derives the scheme of the incoming request.
func resolveProtocol(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		// Take the first scheme in a proxy chain
		if idx := strings.IndexByte(proto, ','); idx >= 0 {
			proto = proto[:idx]
		}
		return strings.TrimSpace(proto)
	}

	return "http"
}

// writePlainError emits a plain-text error body
func writePlainError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(msg)))
	w.WriteHeader(status)
	w.Write([]byte(msg))
}
