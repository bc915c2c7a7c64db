package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
)

func TestPositionForBands(t *testing.T) {
	tests := []struct {
		name    string
		min     float64
		max     float64
		current float64
		wantPct float64
		want    Band
	}{
		{"at historic minimum", 100, 200, 100, 0, BandFavorable},
		{"just under low cut", 100, 200, 159, 59, BandMiddling},
		{"low cut boundary middling", 100, 200, 130, 30, BandMiddling},
		{"high cut boundary unfavorable", 100, 200, 170, 70, BandUnfavorable},
		{"at historic maximum", 100, 200, 200, 100, BandUnfavorable},
		{"below range clamps to zero", 100, 200, 50, 0, BandFavorable},
		{"above range clamps to hundred", 100, 200, 260, 100, BandUnfavorable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &model.Listing{
				MinPriceEver: fp(tt.min),
				MaxPriceEver: fp(tt.max),
				PPNNumeric:   fp(tt.current),
			}
			pos := PositionFor(l)
			require.NotNil(t, pos)
			assert.InDelta(t, tt.wantPct, pos.Percent, 0.01)
			assert.Equal(t, tt.want, pos.Band)
		})
	}
}

func TestPositionForZeroWidthRange(t *testing.T) {
	l := &model.Listing{MinPriceEver: fp(100), MaxPriceEver: fp(100), PPNNumeric: fp(100)}
	pos := PositionFor(l)
	require.NotNil(t, pos)
	assert.Equal(t, 50.0, pos.Percent)
	assert.Equal(t, BandMiddling, pos.Band)
}

func TestPositionForMissingInputs(t *testing.T) {
	full := model.Listing{MinPriceEver: fp(100), MaxPriceEver: fp(200), PPNNumeric: fp(150)}

	noMin := full
	noMin.MinPriceEver = nil
	noMax := full
	noMax.MaxPriceEver = nil
	noPPN := full
	noPPN.PPNNumeric = nil

	assert.Nil(t, PositionFor(&noMin))
	assert.Nil(t, PositionFor(&noMax))
	assert.Nil(t, PositionFor(&noPPN))
	assert.NotNil(t, PositionFor(&full))
}
