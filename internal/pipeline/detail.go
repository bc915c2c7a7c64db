package pipeline

import "github.com/sosarder/savvysailorcruises.co.uk/internal/model"

// Price-position band thresholds.  A position in the bottom 30% of the
// listing's own historical range is favorable, the top 30% unfavorable.
// These differ from the 50/75 chart bands on purpose; both are fixed
// policy, not derived from the data.
const (
	positionLowCut  = 30.0
	positionHighCut = 70.0
)

// Band is the three-tier color classification shared by the price
// position bar and the report charts.
type Band string

const (
	BandFavorable   Band = "favorable"
	BandMiddling    Band = "middling"
	BandUnfavorable Band = "unfavorable"
)

// PricePosition locates the current price per night inside the
// listing's historical min/max range, as a clamped 0-100 percentage.
type PricePosition struct {
	Percent float64 `json:"percent"`
	Band    Band    `json:"band"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// PositionFor computes the price position for a listing, or nil when
// any of the three inputs is unknown — an absent history suppresses the
// visualization, it is not an error.  A zero-width range defaults to
// the mid-band 50.
func PositionFor(l *model.Listing) *PricePosition {
	if l.MinPriceEver == nil || l.MaxPriceEver == nil || l.PPNNumeric == nil {
		return nil
	}
	lo, hi := *l.MinPriceEver, *l.MaxPriceEver
	pct := 50.0
	if r := hi - lo; r > 0 {
		pct = (*l.PPNNumeric - lo) / r * 100
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p := &PricePosition{Percent: pct, Min: lo, Max: hi}
	switch {
	case pct < positionLowCut:
		p.Band = BandFavorable
	case pct < positionHighCut:
		p.Band = BandMiddling
	default:
		p.Band = BandUnfavorable
	}
	return p
}
