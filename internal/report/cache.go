package report

import (
	"context"
	"sync"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/source"
)

// Cache memoizes each report payload for the process lifetime.  Each
// report fetches at most once on success; a failure leaves the slot
// empty and the error propagates, so only a later request retries.
// Slots lock independently: concurrent first requests for the same
// report share one fetch, and one report's fetch never blocks another's.
type Cache struct {
	src source.DataSource

	mu    sync.Mutex
	slots map[Name]*slot
}

type slot struct {
	mu      sync.Mutex
	payload any
}

func NewCache(src source.DataSource) *Cache {
	return &Cache{src: src, slots: make(map[Name]*slot)}
}

func (c *Cache) slotFor(name Name) *slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[name]
	if !ok {
		s = &slot{}
		c.slots[name] = s
	}
	return s
}

func (c *Cache) get(ctx context.Context, name Name, decode func([]byte) (any, error)) (any, error) {
	s := c.slotFor(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload != nil {
		return s.payload, nil
	}
	raw, err := c.src.Fetch(ctx, docNames[name])
	if err != nil {
		return nil, err
	}
	payload, err := decode(raw)
	if err != nil {
		return nil, err
	}
	s.payload = payload
	return payload, nil
}

func (c *Cache) TopDeals(ctx context.Context) (*model.TopDeals, error) {
	p, err := c.get(ctx, TopDeals, decodeTopDeals)
	if err != nil {
		return nil, err
	}
	return p.(*model.TopDeals), nil
}

func (c *Cache) PriceDrops(ctx context.Context) (*model.PriceDrops, error) {
	p, err := c.get(ctx, PriceDrops, decodePriceDrops)
	if err != nil {
		return nil, err
	}
	return p.(*model.PriceDrops), nil
}

func (c *Cache) BookingWindow(ctx context.Context) (*model.BookingWindow, error) {
	p, err := c.get(ctx, BookingWindow, decodeBookingWindow)
	if err != nil {
		return nil, err
	}
	return p.(*model.BookingWindow), nil
}

func (c *Cache) Seasonal(ctx context.Context) (*model.SeasonalPricing, error) {
	p, err := c.get(ctx, Seasonal, decodeSeasonal)
	if err != nil {
		return nil, err
	}
	return p.(*model.SeasonalPricing), nil
}

func (c *Cache) CategoryAverages(ctx context.Context) (*model.CategoryAverages, error) {
	p, err := c.get(ctx, CategoryAverages, decodeCategories)
	if err != nil {
		return nil, err
	}
	return p.(*model.CategoryAverages), nil
}
