package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	docs    map[string]string
	fetches map[string]int
	err     error
}

func (f *fakeSource) Fetch(_ context.Context, name string) ([]byte, error) {
	if f.fetches == nil {
		f.fetches = map[string]int{}
	}
	f.fetches[name]++
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[name]
	if !ok {
		return nil, errors.New("no such document")
	}
	return []byte(doc), nil
}

const catalogDoc = `{
  "count": 3,
  "latest_scrape": "2 June 2025",
  "listings": [
    {"cruise_id": "c1", "cruise_name": "Baltic Explorer", "cruise_line": "Nordic Line",
     "cruise_line_category": "Premium", "cruise_type": "Ocean", "region": "Baltic",
     "start_port": "Southampton", "circular": true, "duration_nights": 7,
     "ppn_numeric": 120.5, "price_indicator": "good"},
    {"cruise_id": "c2", "cruise_name": "Fjord Voyager", "cruise_line": "Nordic Line",
     "cruise_line_category": "Luxury", "cruise_type": "Ocean", "region": "Norway",
     "start_port": "Bergen", "duration_nights": 10,
     "ppn_numeric": 250, "price_indicator": "high"},
    {"cruise_id": "c3", "cruise_name": "Mystery Sailing", "cruise_line": "Budget Boats",
     "cruise_line_category": "Budget", "cruise_type": "River", "region": "Baltic",
     "start_port": "Copenhagen", "circular": true, "duration_nights": 3,
     "price_indicator": "definitely-not-an-indicator"}
  ]
}`

func loadedStore(t *testing.T) *Store {
	t.Helper()
	s := New(&fakeSource{docs: map[string]string{"current_listings": catalogDoc}})
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoadBuildsSnapshot(t *testing.T) {
	snap := loadedStore(t).Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.Count())
	assert.Equal(t, "2 June 2025", snap.LatestScrape())
	assert.Len(t, snap.Listings(), 3)
	require.NotNil(t, snap.CheapestPPN())
	assert.Equal(t, 120.5, *snap.CheapestPPN())
}

func TestLoadNormalizesIndicator(t *testing.T) {
	snap := loadedStore(t).Snapshot()
	l, err := snap.ByID("c3")
	require.NoError(t, err)
	assert.Equal(t, "fair", string(l.PriceIndicator))
	// unknown PPN stays unknown, never zero
	assert.Nil(t, l.PPNNumeric)
}

func TestByID(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	l, err := snap.ByID("c2")
	require.NoError(t, err)
	assert.Equal(t, "Fjord Voyager", l.CruiseName)

	_, err = snap.ByID("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFacetsAreDistinctAndSorted(t *testing.T) {
	f := loadedStore(t).Snapshot().Facets()
	assert.Equal(t, []string{"Budget Boats", "Nordic Line"}, f.CruiseLines)
	assert.Equal(t, []string{"Budget", "Luxury", "Premium"}, f.Categories)
	assert.Equal(t, []string{"Ocean", "River"}, f.Types)
	assert.Equal(t, []string{"Bergen", "Copenhagen", "Southampton"}, f.DeparturePorts)
	assert.Equal(t, []string{"Baltic", "Norway"}, f.Regions)
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	src := &fakeSource{docs: map[string]string{"current_listings": catalogDoc}}
	s := New(src)
	require.NoError(t, s.Load(context.Background()))
	before := s.Snapshot()

	src.err = errors.New("upstream down")
	assert.Error(t, s.Load(context.Background()))
	assert.Same(t, before, s.Snapshot())
}

func TestLoadBadJSON(t *testing.T) {
	s := New(&fakeSource{docs: map[string]string{"current_listings": "{nope"}})
	assert.Error(t, s.Load(context.Background()))
	assert.Nil(t, s.Snapshot())
}

func TestCountFallsBackToListingLength(t *testing.T) {
	doc := `{"listings": [{"cruise_id": "only"}]}`
	s := New(&fakeSource{docs: map[string]string{"current_listings": doc}})
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, 1, s.Snapshot().Count())
}
