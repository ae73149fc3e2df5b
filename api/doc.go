// Package api provides the HTTP layer of the sitemap service.
//
// It assembles a chi router with CORS, request logging, and rate
// limiting middleware, and exposes the sitemap responder at
// /sitemap.xml. The handlers translate core errors into plain-text
// HTTP responses and never let a generation failure propagate to the
// server.
package api
