// Package router wires the public HTTP routes onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/handler"
)

// RegisterRoutes registers the health check.  It lives outside /v1 so
// probes keep working across API versions.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the listing pipeline and report endpoints
// under /v1.  Everything here is unauthenticated and read-only; the
// optional middleware (response cache, rate limiter) applies to the
// whole group.
func RegisterCatalog(e *echo.Echo, cat *handler.CatalogHandler, rep *handler.ReportHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	// The core pipeline: filter, sort, paginate via query params.
	g.GET("/listings", cat.SearchListings)
	// "facets" is a reserved path segment, never a cruise id.
	g.GET("/listings/facets", cat.GetFacets)
	g.GET("/listings/:id", cat.GetListing)
	g.GET("/stats", cat.GetStats)

	// The five lazily cached aggregate reports.
	g.GET("/reports/:name", rep.GetReport)
}
