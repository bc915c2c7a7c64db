package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
)

// SortColumn names a sortable listing column.  Only the table columns
// are accepted; anything else falls back to the default sort.
type SortColumn string

const (
	ColCruiseName     SortColumn = "cruise_name"
	ColCruiseLine     SortColumn = "cruise_line"
	ColShip           SortColumn = "ship"
	ColDepartureDate  SortColumn = "departure_date"
	ColDurationNights SortColumn = "duration_nights"
	ColPPN            SortColumn = "ppn_numeric"
	ColPrice          SortColumn = "price_numeric"
	ColIndicator      SortColumn = "price_indicator"
)

// SortState is the current ordering: a column and a direction.
type SortState struct {
	Column    SortColumn
	Ascending bool
}

// DefaultSort orders by price per night, cheapest first.
func DefaultSort() SortState {
	return SortState{Column: ColPPN, Ascending: true}
}

// Valid reports whether c is one of the sortable columns.
func (c SortColumn) Valid() bool {
	switch c {
	case ColCruiseName, ColCruiseLine, ColShip, ColDepartureDate,
		ColDurationNights, ColPPN, ColPrice, ColIndicator:
		return true
	}
	return false
}

var monthsByName = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

// ParseListingDate parses the feed's "D Month YYYY" date form into a
// sortable instant.  An unknown month name falls back to January, other
// shapes fall back to generic calendar layouts, and anything
// unparseable resolves to the zero instant so it sorts as smallest.
func ParseListingDate(s string) time.Time {
	parts := strings.Fields(s)
	if len(parts) == 3 {
		day := atoiSafe(parts[0])
		month, ok := monthsByName[parts[1]]
		if !ok {
			month = time.January
		}
		year := atoiSafe(parts[2])
		if day > 0 && year > 0 {
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// sortKey extracts the comparable value of a column.  present=false
// means the record has no value there and must order after every record
// that does, regardless of direction.
func sortKey(l *model.Listing, col SortColumn) (num float64, str string, isStr, present bool) {
	switch col {
	case ColCruiseName:
		return 0, l.CruiseName, true, true
	case ColCruiseLine:
		return 0, l.CruiseLine, true, true
	case ColShip:
		return 0, l.Ship, true, true
	case ColIndicator:
		return 0, string(l.PriceIndicator), true, true
	case ColDepartureDate:
		return float64(ParseListingDate(l.DepartureDate).UnixMilli()), "", false, true
	case ColDurationNights:
		return float64(l.DurationNights), "", false, true
	case ColPPN:
		if l.PPNNumeric == nil {
			return 0, "", false, false
		}
		return *l.PPNNumeric, "", false, true
	case ColPrice:
		if l.PriceNumeric == nil {
			return 0, "", false, false
		}
		return *l.PriceNumeric, "", false, true
	}
	return 0, "", false, false
}

// Sort stably orders listings in place by s.  Records missing the sort
// column always land at the end; direction flips the comparison of
// present values only.
func Sort(listings []model.Listing, s SortState) {
	if !s.Column.Valid() {
		s = DefaultSort()
	}
	sort.SliceStable(listings, func(i, j int) bool {
		an, as, aIsStr, aOK := sortKey(&listings[i], s.Column)
		bn, bs, _, bOK := sortKey(&listings[j], s.Column)
		if !aOK || !bOK {
			// nil-last in both directions
			return aOK && !bOK
		}
		var cmp int
		if aIsStr {
			cmp = strings.Compare(strings.ToLower(as), strings.ToLower(bs))
		} else {
			switch {
			case an < bn:
				cmp = -1
			case an > bn:
				cmp = 1
			}
		}
		if !s.Ascending {
			cmp = -cmp
		}
		return cmp < 0
	})
}
