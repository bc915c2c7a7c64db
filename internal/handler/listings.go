// Package handler exposes the public HTTP endpoints: catalog search,
// detail lookup, filter facets, the stats bar and the aggregate
// reports.  All routes are unauthenticated and read-only.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/pipeline"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/report"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/store"
)

// CatalogHandler serves the listing pipeline endpoints.
type CatalogHandler struct {
	Store   *store.Store
	Reports *report.Cache
}

// SearchListings runs the full pipeline: decode filter and sort state
// from the query string, filter the catalog, sort, paginate, and return
// the page with its pagination controls plus the canonical re-encoded
// query string for sharing.
func (h *CatalogHandler) SearchListings(c echo.Context) error {
	snap := h.Store.Snapshot()
	if snap == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":   "catalog_unavailable",
			"message": "listing data is not loaded",
		})
	}

	params := c.QueryParams()
	filters := pipeline.DecodeFilters(params)
	sortState := pipeline.DecodeSort(params)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	result := pipeline.Filter(snap.Listings(), filters)
	pipeline.Sort(result, sortState)
	slice := pipeline.Paginate(result, page)

	return c.JSON(http.StatusOK, echo.Map{
		"data":        slice,
		"total":       len(result),
		"page":        page,
		"page_size":   pipeline.PageSize,
		"total_pages": pipeline.TotalPages(len(result)),
		"controls":    pipeline.Controls(len(result), page),
		"query":       pipeline.EncodeQuery(filters, sortState),
	})
}

// GetListing resolves a cruise id to its full record, with the derived
// price-position when the listing carries a complete price history.
func (h *CatalogHandler) GetListing(c echo.Context) error {
	snap := h.Store.Snapshot()
	if snap == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog_unavailable"})
	}
	l, err := snap.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing_not_found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup_failed"})
	}
	resp := echo.Map{"data": l}
	if pos := pipeline.PositionFor(l); pos != nil {
		resp["price_position"] = pos
	}
	return c.JSON(http.StatusOK, resp)
}

// GetFacets returns the distinct dropdown values derived from the
// loaded catalog.
func (h *CatalogHandler) GetFacets(c echo.Context) error {
	snap := h.Store.Snapshot()
	if snap == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog_unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": snap.Facets()})
}

// GetStats serves the stats bar: catalog size, cheapest price per
// night, scrape timestamp and the count of tracked price drops.  The
// drops count rides on the price-drops report; if that report cannot be
// fetched the count is null and everything else still renders.
func (h *CatalogHandler) GetStats(c echo.Context) error {
	snap := h.Store.Snapshot()
	if snap == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog_unavailable"})
	}
	var dropsCount *int
	if drops, err := h.Reports.PriceDrops(c.Request().Context()); err == nil {
		n := len(drops.Drops)
		dropsCount = &n
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total":         snap.Count(),
		"cheapest_ppn":  snap.CheapestPPN(),
		"latest_scrape": snap.LatestScrape(),
		"drops_count":   dropsCount,
	})
}
