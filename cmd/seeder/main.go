package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_compare/internal/adapters/observability"
	redisad "hotel_compare/internal/adapters/redis"
	"hotel_compare/internal/app"
	"hotel_compare/internal/catalog"
	"hotel_compare/internal/shared"
	mysqlrepo "hotel_compare/internal/storage/mysql"
)

// seeder writes the generated catalog into MySQL so API instances started
// with CATALOG_SOURCE=mysql all serve the same hotels.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogFile)

	log.Info().
		Uint64("seed", cfg.CatalogSeed).
		Int("generated", cfg.CatalogSize).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	seeder := app.NewSeedService(mysqlrepo.New(db))
	hotels := catalog.Build(cfg.CatalogSize, catalog.NewRand(cfg.CatalogSeed)).All()

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, h := range hotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := seeder.SeedHotel(ctx, h); err != nil {
				failed.Add(1)
				log.Warn().Str("id", h.ID).Err(err).Msg("seed failed")
				return
			}
			log.Debug().Str("id", h.ID).Msg("seed ok")
		}()
	}
	wg.Wait()

	// Cached result sets were computed from the previous snapshot.
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	n, err := cache.DelPrefix(ctx, app.ResultsKeyPrefix)
	if err != nil {
		log.Warn().Err(err).Msg("could not flush cached results")
	}

	log.Info().
		Int("hotels", len(hotels)).
		Int32("failed", failed.Load()).
		Int("flushed", n).
		Msg("seeding completed")
}
