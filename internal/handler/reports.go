package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/report"
)

// ReportHandler serves the five aggregate reports through the lazy
// report cache.  Each report fails independently: an upstream error
// surfaces as a 502 for that report only and the cache stays empty so
// the next request retries.
type ReportHandler struct {
	Cache *report.Cache
}

// GetReport dispatches on the report name.  The top-deals report takes
// an optional ?view= sub-view key; the bar-chart reports return
// normalized, banded rows in their fixed bucket order.
func (h *ReportHandler) GetReport(c echo.Context) error {
	ctx := c.Request().Context()
	name := report.Name(c.Param("name"))

	switch name {
	case report.TopDeals:
		deals, err := h.Cache.TopDeals(ctx)
		if err != nil {
			return reportError(c, err)
		}
		view := c.QueryParam("view")
		if view == "" {
			view = "cheapest_overall"
		}
		cards, err := report.DealView(deals, view)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "unknown_view",
				"message": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"report": name,
			"view":   view,
			"views":  report.DealViews(),
			"data":   cards,
		})

	case report.PriceDrops:
		drops, err := h.Cache.PriceDrops(ctx)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"report": name,
			"data":   report.TrimDrops(drops),
		})

	case report.BookingWindow:
		bw, err := h.Cache.BookingWindow(ctx)
		if err != nil {
			return reportError(c, err)
		}
		return chartResponse(c, name, report.BuildChart(model.BookingWindowOrder, bw.Windows))

	case report.Seasonal:
		sp, err := h.Cache.Seasonal(ctx)
		if err != nil {
			return reportError(c, err)
		}
		return chartResponse(c, name, report.BuildChart(model.MonthOrder, sp.Months))

	case report.CategoryAverages:
		ca, err := h.Cache.CategoryAverages(ctx)
		if err != nil {
			return reportError(c, err)
		}
		order := make([]string, len(model.CategoryOrder))
		for i, cat := range model.CategoryOrder {
			order[i] = string(cat)
		}
		return chartResponse(c, name, report.BuildChart(order, ca.Categories))
	}

	return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown_report"})
}

func chartResponse(c echo.Context, name report.Name, rows []report.ChartRow) error {
	return c.JSON(http.StatusOK, echo.Map{"report": name, "data": rows})
}

func reportError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, echo.Map{
		"error":   "report_unavailable",
		"message": err.Error(),
	})
}
