// Package report serves the precomputed aggregate reports: top deals,
// price drops and the three bar-chart averages.  Payloads are fetched
// lazily from the data source on first request and memoized for the
// process lifetime; a failed fetch leaves the slot empty so the next
// request retries.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/pipeline"
)

// Name identifies one report as exposed by the API.
type Name string

const (
	TopDeals         Name = "top-deals"
	PriceDrops       Name = "price-drops"
	BookingWindow    Name = "booking-window"
	Seasonal         Name = "seasonal"
	CategoryAverages Name = "category-averages"
)

// docNames maps report names to their source document names.
var docNames = map[Name]string{
	TopDeals:         "top_deals",
	PriceDrops:       "price_drops",
	BookingWindow:    "booking_window",
	Seasonal:         "seasonal_pricing",
	CategoryAverages: "category_averages",
}

// dealViews are the six sub-views multiplexed over the top-deals
// payload.  Switching views never refetches.
var dealViews = []string{
	"cheapest_overall",
	"cheapest_uk_circular",
	"cheapest_one_way",
	"cheapest_fly_cruise",
	"best_luxury_value",
	"biggest_savings",
}

// DealViews returns the valid top-deals view keys in display order.
func DealViews() []string {
	out := make([]string, len(dealViews))
	copy(out, dealViews)
	return out
}

// DealView selects one named sub-view from a top-deals payload.
func DealView(d *model.TopDeals, view string) ([]model.DealCard, error) {
	var cards []model.DealCard
	switch view {
	case "cheapest_overall":
		cards = d.CheapestOverall
	case "cheapest_uk_circular":
		cards = d.CheapestUKCircular
	case "cheapest_one_way":
		cards = d.CheapestOneWay
	case "cheapest_fly_cruise":
		cards = d.CheapestFlyCruise
	case "best_luxury_value":
		cards = d.BestLuxuryValue
	case "biggest_savings":
		cards = d.BiggestSavings
	default:
		return nil, fmt.Errorf("unknown deal view %q", view)
	}
	if cards == nil {
		cards = []model.DealCard{}
	}
	return cards, nil
}

// maxDrops caps the price-drops report at the 50 largest drops as
// delivered by the feed.
const maxDrops = 50

// TrimDrops returns at most the first maxDrops rows.
func TrimDrops(d *model.PriceDrops) []model.PriceDrop {
	drops := d.Drops
	if drops == nil {
		drops = []model.PriceDrop{}
	}
	if len(drops) > maxDrops {
		drops = drops[:maxDrops]
	}
	return drops
}

// Chart band thresholds: each bucket's average is normalized against
// the report's maximum average, then banded.  Fixed design policy, not
// data-derived.
const (
	chartFavorableCut = 50.0
	chartMiddlingCut  = 75.0
)

// ChartRow is one normalized bucket of a bar-chart report.
type ChartRow struct {
	Key          string        `json:"key"`
	Label        string        `json:"label"`
	AvgPPN       float64       `json:"avg_ppn"`
	SampleSize   int           `json:"sample_size"`
	PercentOfMax float64       `json:"percent_of_max"`
	Band         pipeline.Band `json:"band"`
}

// BuildChart projects bucket data into rows following the fixed key
// order, skipping keys the document does not carry.  Percentages are
// relative to the largest average in the report; an all-zero report
// yields zero-percent favorable rows.
func BuildChart(order []string, buckets map[string]model.Bucket) []ChartRow {
	maxAvg := 0.0
	for _, k := range order {
		if b, ok := buckets[k]; ok && b.AvgPPN > maxAvg {
			maxAvg = b.AvgPPN
		}
	}
	rows := make([]ChartRow, 0, len(order))
	for _, k := range order {
		b, ok := buckets[k]
		if !ok {
			continue
		}
		pct := 0.0
		if maxAvg > 0 {
			pct = b.AvgPPN / maxAvg * 100
		}
		label := b.Label
		if label == "" {
			label = k
		}
		row := ChartRow{Key: k, Label: label, AvgPPN: b.AvgPPN, SampleSize: b.SampleSize, PercentOfMax: pct}
		switch {
		case pct < chartFavorableCut:
			row.Band = pipeline.BandFavorable
		case pct < chartMiddlingCut:
			row.Band = pipeline.BandMiddling
		default:
			row.Band = pipeline.BandUnfavorable
		}
		rows = append(rows, row)
	}
	return rows
}

func decodeTopDeals(b []byte) (any, error) {
	var d model.TopDeals
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodePriceDrops(b []byte) (any, error) {
	var d model.PriceDrops
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeBookingWindow(b []byte) (any, error) {
	var d model.BookingWindow
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeSeasonal(b []byte) (any, error) {
	var d model.SeasonalPricing
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeCategories(b []byte) (any, error) {
	var d model.CategoryAverages
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
