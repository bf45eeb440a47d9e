package svc

import (
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/core/syncx"

	cachekeys "poolwatch-api/internal/cache"
	"poolwatch-api/internal/config"
	"poolwatch-api/internal/model"
	"poolwatch-api/internal/stats"
	"poolwatch-api/pkg/gecko"
)

type ServiceContext struct {
	Config config.Config

	Gecko gecko.Provider
	Stats *stats.Aggregator

	// Nil when no DSN is configured; tick endpoints then report the store
	// as unavailable instead of panicking.
	DBConn          sqlx.SqlConn
	PriceTicksModel model.PriceTicksModel

	// Optional best-effort response cache.
	Cache cache.Cache
	TTL   cachekeys.TTLSet
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config: c,
		TTL:    cachekeys.NewTTLSet(c.TTL),
	}

	if c.Gecko.Value != nil {
		providers, err := c.Gecko.Value.BuildProviders()
		if err != nil {
			log.Fatalf("failed to build market data providers: %v", err)
		}
		if c.Gecko.Value.Default != "" {
			svc.Gecko = providers[c.Gecko.Value.Default]
		}
	}
	if svc.Gecko == nil {
		svc.Gecko = gecko.NewClient()
	}

	svc.Stats = stats.New(svc.Gecko, c.Defaults.Holders)

	if c.Postgres.DSN != "" {
		conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
		svc.DBConn = conn
		svc.PriceTicksModel = model.NewPriceTicksModel(conn)
	}

	if len(c.Cache) > 0 {
		svc.Cache = cache.New(c.Cache, syncx.NewSingleFlight(), cache.NewStat(cachekeys.Namespace), sqlx.ErrNotFound)
	}
	return svc
}
