// Command ticker polls the upstream provider for the default pool's price on
// a fixed schedule and appends each sample to the bounded tick store. A
// failed poll or append is logged and retried by the next tick, never fatal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"poolwatch-api/internal/cli"
	"poolwatch-api/internal/config"
	"poolwatch-api/internal/model"
	"poolwatch-api/pkg/gecko"
)

const (
	pollInterval    = 30 * time.Second
	apiTimeout      = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

var configFile = flag.String("f", "etc/poolwatch.yaml", "the config file")

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[main] Starting price ticker...")

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("[main] Failed to load config: %v", err)
	}
	for _, line := range cli.ConfigSummaryLines(cfg) {
		log.Printf("  - %s", line)
	}

	if cfg.Postgres.DSN == "" {
		log.Fatal("[main] Postgres DSN is required for tick ingestion")
	}
	ticks := model.NewPriceTicksModel(sqlx.NewSqlConn("pgx", cfg.Postgres.DSN))

	var provider gecko.Provider
	if cfg.Gecko.Value != nil {
		providers, err := cfg.Gecko.Value.BuildProviders()
		if err != nil {
			log.Fatalf("[main] Failed to build market data providers: %v", err)
		}
		provider = providers[cfg.Gecko.Value.Default]
	}
	if provider == nil {
		provider = gecko.NewClient()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runPoller(ctx, provider, ticks, cfg.Defaults.Network, cfg.Defaults.Pool)
	}()

	log.Printf("[main] Polling %s/%s every %s. Press Ctrl+C to stop.",
		cfg.Defaults.Network, cfg.Defaults.Pool, pollInterval)

	<-ctx.Done()
	log.Println("[main] Shutdown signal received, stopping...")

	select {
	case <-done:
		log.Println("[main] Poller stopped cleanly")
	case <-time.After(shutdownTimeout):
		log.Println("[main] Shutdown timeout exceeded, forcing exit")
	}
}

func runPoller(ctx context.Context, provider gecko.Provider, ticks model.PriceTicksModel, network, pool string) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	// Run once immediately on startup
	pollOnce(ctx, provider, ticks, network, pool)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pollOnce(ctx, provider, ticks, network, pool)
		}
	}
}

func pollOnce(parentCtx context.Context, provider gecko.Provider, ticks model.PriceTicksModel, network, pool string) {
	if parentCtx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(parentCtx, apiTimeout)
	defer cancel()

	start := time.Now()
	price, err := provider.CurrentPrice(ctx, network, pool)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("[poll.price] [ERROR] %v, took %dms", err, elapsed.Milliseconds())
		return
	}
	if price <= 0 {
		log.Printf("[poll.price] [WARN] no usable price, took %dms", elapsed.Milliseconds())
		return
	}

	if err := ticks.Insert(ctx, price, time.Now().UnixMilli()); err != nil {
		log.Printf("[poll.append] [ERROR] %v", err)
		return
	}
	log.Printf("[poll.price] [OK] price=%.7f, took %dms", price, elapsed.Milliseconds())
}
