package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topDealsDoc = `{
  "cheapest_overall": [{"cruise_id": "c1", "cruise_name": "Baltic Explorer", "ppn_numeric": 99}],
  "best_luxury_value": [{"cruise_id": "c2", "cruise_name": "Fjord Voyager", "ppn_numeric": 180}]
}`

func TestGetReportTopDealsDefaultView(t *testing.T) {
	_, rep := testHandlers(t, map[string]string{"top_deals": topDealsDoc})

	rec, body := doGet(t, rep.GetReport, "/v1/reports/top-deals", "/v1/reports/:name", "name", "top-deals")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cheapest_overall", body["view"])
	assert.Len(t, body["views"].([]any), 6)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "c1", data[0].(map[string]any)["cruise_id"])
}

func TestGetReportTopDealsViewSwitch(t *testing.T) {
	_, rep := testHandlers(t, map[string]string{"top_deals": topDealsDoc})

	_, body := doGet(t, rep.GetReport, "/v1/reports/top-deals?view=best_luxury_value",
		"/v1/reports/:name", "name", "top-deals")
	assert.Equal(t, "best_luxury_value", body["view"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "c2", data[0].(map[string]any)["cruise_id"])

	rec, body := doGet(t, rep.GetReport, "/v1/reports/top-deals?view=imaginary",
		"/v1/reports/:name", "name", "top-deals")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown_view", body["error"])
}

func TestGetReportPriceDrops(t *testing.T) {
	_, rep := testHandlers(t, map[string]string{
		"price_drops": `{"drops": [
      {"cruise_id": "c1", "previous_ppn": 200, "current_ppn": 150, "drop_percent": 25},
      {"cruise_id": "c2", "previous_ppn": 100, "current_ppn": 90, "drop_percent": 10}
    ]}`,
	})

	rec, body := doGet(t, rep.GetReport, "/v1/reports/price-drops", "/v1/reports/:name", "name", "price-drops")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, 25.0, data[0].(map[string]any)["drop_percent"])
}

func TestGetReportBookingWindowChart(t *testing.T) {
	_, rep := testHandlers(t, map[string]string{
		"booking_window": `{"windows": {
      "0-30":  {"label": "Last minute", "avg_ppn": 80, "sample_size": 12},
      "366+":  {"label": "Over a year out", "avg_ppn": 160, "sample_size": 40}
    }}`,
	})

	rec, body := doGet(t, rep.GetReport, "/v1/reports/booking-window", "/v1/reports/:name", "name", "booking-window")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, "0-30", first["key"])
	assert.InDelta(t, 50.0, first["percent_of_max"].(float64), 0.01)
	assert.Equal(t, "middling", first["band"])

	last := data[1].(map[string]any)
	assert.Equal(t, "366+", last["key"])
	assert.InDelta(t, 100.0, last["percent_of_max"].(float64), 0.01)
	assert.Equal(t, "unfavorable", last["band"])
}

func TestGetReportSeasonalFixedOrder(t *testing.T) {
	_, rep := testHandlers(t, map[string]string{
		"seasonal_pricing": `{"months": {
      "December": {"avg_ppn": 90, "sample_size": 5},
      "January":  {"avg_ppn": 120, "sample_size": 8},
      "July":     {"avg_ppn": 180, "sample_size": 20}
    }}`,
	})

	_, body := doGet(t, rep.GetReport, "/v1/reports/seasonal", "/v1/reports/:name", "name", "seasonal")
	data := body["data"].([]any)
	require.Len(t, data, 3)
	// calendar order, not document order
	assert.Equal(t, "January", data[0].(map[string]any)["key"])
	assert.Equal(t, "July", data[1].(map[string]any)["key"])
	assert.Equal(t, "December", data[2].(map[string]any)["key"])
}

func TestGetReportCategoryAverages(t *testing.T) {
	_, rep := testHandlers(t, map[string]string{
		"category_averages": `{"categories": {
      "Ultra luxury": {"avg_ppn": 600, "sample_size": 4},
      "Budget":       {"avg_ppn": 100, "sample_size": 50}
    }}`,
	})

	_, body := doGet(t, rep.GetReport, "/v1/reports/category-averages", "/v1/reports/:name", "name", "category-averages")
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "Budget", data[0].(map[string]any)["key"])
	assert.Equal(t, "favorable", data[0].(map[string]any)["band"])
	assert.Equal(t, "Ultra luxury", data[1].(map[string]any)["key"])
}

func TestGetReportFailureIsIsolatedAndRetryable(t *testing.T) {
	cat, rep := testHandlers(t, nil) // no report documents at all

	rec, body := doGet(t, rep.GetReport, "/v1/reports/seasonal", "/v1/reports/:name", "name", "seasonal")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "report_unavailable", body["error"])

	// the listing pipeline is untouched by a report failure
	rec, _ = doGet(t, cat.SearchListings, "/v1/listings", "/v1/listings")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetReportUnknownName(t *testing.T) {
	_, rep := testHandlers(t, nil)

	rec, body := doGet(t, rep.GetReport, "/v1/reports/gossip", "/v1/reports/:name", "name", "gossip")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_report", body["error"])
}
