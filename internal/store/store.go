// Package store owns the immutable in-memory listing catalog.  The
// catalog is loaded once at startup from the current_listings document
// and exposed as a snapshot; a reload builds a whole new snapshot and
// swaps it atomically, so readers never observe a half-built catalog
// and individual records are never mutated after they are stored.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/source"
)

// ErrNotFound is returned when no listing carries the requested id.
var ErrNotFound = errors.New("listing not found")

// currentListingsDoc is the document name of the primary catalog feed.
const currentListingsDoc = "current_listings"

// Facets are the distinct values available for the dropdown filters,
// each list sorted.
type Facets struct {
	CruiseLines    []string `json:"cruise_lines"`
	Categories     []string `json:"categories"`
	Types          []string `json:"types"`
	DeparturePorts []string `json:"departure_ports"`
	Regions        []string `json:"regions"`
}

// Snapshot is one loaded catalog generation: the listing slice in feed
// order, an id index for detail lookup, and the derived facets and
// cheapest-PPN stat.
type Snapshot struct {
	listings     []model.Listing
	byID         map[string]int
	facets       Facets
	cheapestPPN  *float64
	count        int
	latestScrape string
}

// Listings returns the full catalog in feed order.  Callers must treat
// the slice as read-only.
func (s *Snapshot) Listings() []model.Listing { return s.listings }

// ByID resolves a cruise id to its full record.
func (s *Snapshot) ByID(id string) (*model.Listing, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s.listings[i], nil
}

func (s *Snapshot) Facets() Facets        { return s.facets }
func (s *Snapshot) Count() int            { return s.count }
func (s *Snapshot) LatestScrape() string  { return s.latestScrape }
func (s *Snapshot) CheapestPPN() *float64 { return s.cheapestPPN }

// Store holds the current snapshot.  It is the single writer; Load and
// Reload are the only mutations and both replace the snapshot wholesale.
type Store struct {
	src  source.DataSource
	snap atomic.Pointer[Snapshot]
}

func New(src source.DataSource) *Store {
	return &Store{src: src}
}

// Load fetches and decodes the catalog document and installs it as the
// current snapshot.  On error the previous snapshot, if any, stays in
// place.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.src.Fetch(ctx, currentListingsDoc)
	if err != nil {
		return err
	}
	var cat model.Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return fmt.Errorf("decode %s: %w", currentListingsDoc, err)
	}
	s.snap.Store(buildSnapshot(cat))
	return nil
}

// Snapshot returns the current catalog generation, or nil before the
// first successful Load.
func (s *Store) Snapshot() *Snapshot { return s.snap.Load() }

func buildSnapshot(cat model.Catalog) *Snapshot {
	snap := &Snapshot{
		listings:     cat.Listings,
		byID:         make(map[string]int, len(cat.Listings)),
		count:        cat.Count,
		latestScrape: cat.LatestScrape,
	}
	if snap.listings == nil {
		snap.listings = []model.Listing{}
	}
	if snap.count == 0 {
		snap.count = len(snap.listings)
	}

	lines := map[string]bool{}
	cats := map[string]bool{}
	types := map[string]bool{}
	ports := map[string]bool{}
	regions := map[string]bool{}

	for i := range snap.listings {
		l := &snap.listings[i]
		l.PriceIndicator = l.PriceIndicator.Normalize()
		snap.byID[l.CruiseID] = i
		if l.CruiseLine != "" {
			lines[l.CruiseLine] = true
		}
		if l.CruiseLineCategory != "" {
			cats[string(l.CruiseLineCategory)] = true
		}
		if l.CruiseType != "" {
			types[l.CruiseType] = true
		}
		if l.StartPort != "" {
			ports[l.StartPort] = true
		}
		if l.Region != "" {
			regions[l.Region] = true
		}
		if l.PPNNumeric != nil && (snap.cheapestPPN == nil || *l.PPNNumeric < *snap.cheapestPPN) {
			v := *l.PPNNumeric
			snap.cheapestPPN = &v
		}
	}

	snap.facets = Facets{
		CruiseLines:    sortedKeys(lines),
		Categories:     sortedKeys(cats),
		Types:          sortedKeys(types),
		DeparturePorts: sortedKeys(ports),
		Regions:        sortedKeys(regions),
	}
	return snap
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
