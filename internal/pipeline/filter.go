// Package pipeline implements the in-memory query pipeline over the
// listing catalog: filtering, sorting, pagination and the query-string
// codec for shareable filter state.  Everything here is pure; the
// handlers own I/O.
package pipeline

import (
	"strings"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
)

// FilterState is the complete description of a catalog query.  Zero
// values mean "no constraint" throughout: an empty string places no
// categorical constraint and a zero numeric threshold is unset, never a
// literal bound of zero.
type FilterState struct {
	Search        string
	CruiseLine    string
	Category      string
	Type          string
	RouteType     model.RouteType
	DeparturePort string
	Region        string
	MinNights     int
	MaxNights     int
	MaxPPN        float64
	Indicator     string
}

// Match reports whether a listing satisfies every active predicate.
//
// The search haystack concatenates name, ship, line, ports, destination
// strings and region, lower-cased.  Categorical fields compare with
// exact case-sensitive equality.  MaxPPN only excludes listings whose
// price per night is known: an unknown PPN always passes, which keeps
// un-priced sailings visible under a price cap.
func (f FilterState) Match(l *model.Listing) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hay := strings.ToLower(strings.Join([]string{
			l.CruiseName, l.Ship, l.CruiseLine, l.StartPort, l.EndPort,
			l.DestinationString1, l.DestinationString2, l.Region,
		}, " "))
		if !strings.Contains(hay, q) {
			return false
		}
	}
	if f.CruiseLine != "" && l.CruiseLine != f.CruiseLine {
		return false
	}
	if f.Category != "" && string(l.CruiseLineCategory) != f.Category {
		return false
	}
	if f.Type != "" && l.CruiseType != f.Type {
		return false
	}
	if f.RouteType == model.RouteCircular && !l.Circular {
		return false
	}
	if f.RouteType == model.RouteOneWay && l.Circular {
		return false
	}
	if f.DeparturePort != "" && l.StartPort != f.DeparturePort {
		return false
	}
	if f.Region != "" && l.Region != f.Region {
		return false
	}
	if f.MinNights > 0 && l.DurationNights < f.MinNights {
		return false
	}
	if f.MaxNights > 0 && l.DurationNights > f.MaxNights {
		return false
	}
	if f.MaxPPN > 0 && l.PPNNumeric != nil && *l.PPNNumeric > f.MaxPPN {
		return false
	}
	if f.Indicator != "" && string(l.PriceIndicator) != f.Indicator {
		return false
	}
	return true
}

// Filter returns the listings matching f, preserving catalog order.
// Sorting happens afterwards on the returned slice.
func Filter(listings []model.Listing, f FilterState) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for i := range listings {
		if f.Match(&listings[i]) {
			out = append(out, listings[i])
		}
	}
	return out
}
