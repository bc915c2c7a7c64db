package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/config"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/handler"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/middleware"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/pipeline"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/report"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/router"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/source"
	"github.com/sosarder/savvysailorcruises.co.uk/internal/store"
)

// reloadDebounce coalesces bursts of SIGHUP into a single catalog
// reload once the signal stream has been quiet this long.
const reloadDebounce = 250 * time.Millisecond

func main() {
	cfg := config.Load() // Load environment config

	// Select the document source: upstream static host or local dir.
	var src source.DataSource
	if cfg.DataBaseURL != "" {
		src = source.NewHTTP(cfg.DataBaseURL)
	} else {
		src = source.NewDir(cfg.DataDir)
	}

	// Load the catalog once before serving.  A service with no
	// catalog has nothing to offer, so a failed initial load is fatal.
	listings := store.New(src)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := listings.Load(ctx); err != nil {
		cancel()
		log.Fatalf("load catalog: %v", err)
	}
	cancel()
	log.Printf("catalog loaded: %d listings (scrape %s)",
		listings.Snapshot().Count(), listings.Snapshot().LatestScrape())

	reports := report.NewCache(src)

	cat := &handler.CatalogHandler{Store: listings, Reports: reports}
	rep := &handler.ReportHandler{Cache: reports}

	// Optional Redis-backed response cache and rate limiter.  A nil
	// client disables both.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache and rate limit disabled")
	}
	respCache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, cat, rep, limiter, respCache)

	// SIGHUP asks for a catalog reload; bursts coalesce through the
	// debouncer and a failed reload keeps the old snapshot serving.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	deb := pipeline.NewDebouncer(reloadDebounce)
	go func() {
		for range hup {
			deb.Trigger(func() {
				rctx, rcancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer rcancel()
				if err := listings.Load(rctx); err != nil {
					log.Printf("reload catalog: %v", err)
					return
				}
				log.Printf("catalog reloaded: %d listings", listings.Snapshot().Count())
			})
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
