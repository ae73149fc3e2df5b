// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP status codes

package handlers

import (
	"net/http"

	"sitemap-app-api/core/errors"
)

// toStatus maps domain errors to HTTP status codes.
// Generation-path errors default to 500: the responder never exposes
// internals beyond a plain-text status line.
func toStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.IsValidation(err) {
		return http.StatusBadRequest
	}

	// Configuration errors are operator mistakes; to a client the
	// service is simply broken.
	return http.StatusInternalServerError
}
