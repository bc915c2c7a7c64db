package model

// DealCard is the lightweight record embedded in the top-deals payload.
// It carries a display subset only; opening a card resolves the full
// record through the catalog by CruiseID.
type DealCard struct {
	CruiseID       string         `json:"cruise_id"`
	CruiseName     string         `json:"cruise_name"`
	Ship           string         `json:"ship"`
	CruiseLine     string         `json:"cruise_line"`
	DurationNights int            `json:"duration_nights"`
	DepartureDate  string         `json:"departure_date"`
	PPNNumeric     float64        `json:"ppn_numeric"`
	PriceIndicator PriceIndicator `json:"price_indicator"`
	DetailsURL     string         `json:"details_url"`
}

// TopDeals is the top_deals document: six independently ranked views
// over one payload.
type TopDeals struct {
	CheapestOverall   []DealCard `json:"cheapest_overall"`
	CheapestUKCircular []DealCard `json:"cheapest_uk_circular"`
	CheapestOneWay    []DealCard `json:"cheapest_one_way"`
	CheapestFlyCruise []DealCard `json:"cheapest_fly_cruise"`
	BestLuxuryValue   []DealCard `json:"best_luxury_value"`
	BiggestSavings    []DealCard `json:"biggest_savings"`
}

// PriceDrop is one row of the price_drops document.
type PriceDrop struct {
	CruiseID       string  `json:"cruise_id"`
	CruiseName     string  `json:"cruise_name"`
	Ship           string  `json:"ship"`
	CruiseLine     string  `json:"cruise_line"`
	DurationNights int     `json:"duration_nights"`
	DepartureDate  string  `json:"departure_date"`
	PreviousPPN    float64 `json:"previous_ppn"`
	CurrentPPN     float64 `json:"current_ppn"`
	DropPercent    float64 `json:"drop_percent"`
	DetailsURL     string  `json:"details_url"`
}

// PriceDrops is the price_drops document.
type PriceDrops struct {
	Drops []PriceDrop `json:"drops"`
}

// Bucket is one aggregate entry of a bar-chart report (booking window,
// month or category).  Label is optional in the source documents.
type Bucket struct {
	Label      string  `json:"label"`
	AvgPPN     float64 `json:"avg_ppn"`
	SampleSize int     `json:"sample_size"`
}

// BookingWindow is the booking_window document, keyed by days-to-departure
// window ("0-30" ... "366+").
type BookingWindow struct {
	Windows map[string]Bucket `json:"windows"`
}

// BookingWindowOrder is the fixed display order of the six windows.
var BookingWindowOrder = []string{"0-30", "31-60", "61-90", "91-180", "181-365", "366+"}

// SeasonalPricing is the seasonal_pricing document, keyed by month name.
type SeasonalPricing struct {
	Months map[string]Bucket `json:"months"`
}

// MonthOrder is calendar order for the seasonal report.
var MonthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CategoryAverages is the category_averages document, keyed by cruise
// line category name.
type CategoryAverages struct {
	Categories map[string]Bucket `json:"categories"`
}
