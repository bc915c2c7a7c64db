package model

// PriceIndicator is the precomputed judgment of how a listing's current
// price compares to its own tracked history.  Values are produced
// upstream by the scraper; anything unrecognised is treated as Fair.
type PriceIndicator string

const (
	IndicatorLowest PriceIndicator = "lowest"
	IndicatorGood   PriceIndicator = "good"
	IndicatorFair   PriceIndicator = "fair"
	IndicatorHigh   PriceIndicator = "high"
)

// Normalize maps an unknown or empty indicator to the Fair default.
func (p PriceIndicator) Normalize() PriceIndicator {
	switch p {
	case IndicatorLowest, IndicatorGood, IndicatorFair, IndicatorHigh:
		return p
	}
	return IndicatorFair
}

// CruiseLineCategory is the market tier of a cruise line.
type CruiseLineCategory string

const (
	CategoryBudget      CruiseLineCategory = "Budget"
	CategoryMidRange    CruiseLineCategory = "Mid range"
	CategoryPremium     CruiseLineCategory = "Premium"
	CategoryLuxury      CruiseLineCategory = "Luxury"
	CategoryUltraLuxury CruiseLineCategory = "Ultra luxury"
)

// CategoryOrder is the fixed display order for category reports.
var CategoryOrder = []CruiseLineCategory{
	CategoryBudget,
	CategoryMidRange,
	CategoryPremium,
	CategoryLuxury,
	CategoryUltraLuxury,
}

// RouteType constrains listings by itinerary shape.  The empty value
// imposes no constraint.
type RouteType string

const (
	RouteAny      RouteType = ""
	RouteCircular RouteType = "circular"
	RouteOneWay   RouteType = "one-way"
)

// Valid reports whether r is one of the three accepted route filters.
func (r RouteType) Valid() bool {
	return r == RouteAny || r == RouteCircular || r == RouteOneWay
}

// Listing is one cruise sailing as delivered by the scraper feed.  It is
// immutable once loaded.  Optional numeric fields are pointers: a nil
// PPN means the price per night is unknown, never zero.
//
// Fields:
//  CruiseID       – unique identifier; the sole join key between the
//                   catalog and the lighter records in report payloads.
//  PPNNumeric     – price per night, the primary sort/filter key.
//  Circular       – round trip returning to StartPort.
//  DepartureDate  – calendar date in "D Month YYYY" textual form.
type Listing struct {
	CruiseID           string             `json:"cruise_id"`
	CruiseName         string             `json:"cruise_name"`
	Ship               string             `json:"ship"`
	CruiseLine         string             `json:"cruise_line"`
	CruiseLineCategory CruiseLineCategory `json:"cruise_line_category"`
	CruiseType         string             `json:"cruise_type"`
	Region             string             `json:"region"`
	DestinationString1 string             `json:"destination_string_1"`
	DestinationString2 string             `json:"destination_string_2"`

	StartPort      string `json:"start_port"`
	EndPort        string `json:"end_port"`
	Circular       bool   `json:"circular"`
	DurationNights int    `json:"duration_nights"`
	DepartureDate  string `json:"departure_date"`
	EndDate        string `json:"end_date"`

	PriceNumeric   *float64       `json:"price_numeric"`
	PPNNumeric     *float64       `json:"ppn_numeric"`
	PriceIndicator PriceIndicator `json:"price_indicator"`
	MinPriceEver   *float64       `json:"min_price_ever"`
	MaxPriceEver   *float64       `json:"max_price_ever"`
	PercentVsMin   *float64       `json:"percent_vs_min"`
	TimesTracked   int            `json:"times_tracked"`

	DetailsURL string `json:"details_url"`
}

// Catalog is the shape of the current_listings document.
type Catalog struct {
	Count        int       `json:"count"`
	LatestScrape string    `json:"latest_scrape"`
	Listings     []Listing `json:"listings"`
}
