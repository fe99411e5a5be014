package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_compare/internal/adapters/authapi"
	"hotel_compare/internal/adapters/gemini"
	server "hotel_compare/internal/adapters/http_server"
	"hotel_compare/internal/adapters/observability"
	redisad "hotel_compare/internal/adapters/redis"
	"hotel_compare/internal/app"
	"hotel_compare/internal/catalog"
	"hotel_compare/internal/pricing"
	"hotel_compare/internal/search"
	"hotel_compare/internal/shared"
	mysqlrepo "hotel_compare/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogFile)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	cat := loadCatalog(ctx, cfg)
	log.Info().Int("hotels", cat.Len()).Str("source", cfg.CatalogSource).Msg("catalog ready")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		// Reads fall through to the engine, but sessions and login need Redis.
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
	}

	// deps
	q := app.NewQueryService(cat, search.NewEngine(cat),
		pricing.NewSynthesizer(cat, catalog.NewRand(cfg.CatalogSeed+1)),
		cache, cfg.CacheTTL, cfg.SearchLatency)
	sessions := app.NewSessionService(cache, cfg.SessionTTL)
	h := &server.Handlers{
		Q: q,
		S: sessions,
		A: app.NewAuthService(authapi.New(cfg.AuthBase, 5), cache),
	}

	if cfg.GeminiKey != "" {
		gc, err := gemini.New(cfg.GeminiBase, cfg.GeminiKey, cfg.GeminiModel, 2)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Gemini client")
		}
		h.N = app.NewNaturalSearch(gc, sessions, q, search.NewAmenityMatcher(cat.Amenities()))
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set; natural language search disabled")
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// loadCatalog builds the in-memory catalog once at startup, either from the
// seeded generator or from a MySQL snapshot written by cmd/seeder.
func loadCatalog(ctx context.Context, cfg shared.Config) *catalog.Catalog {
	if cfg.CatalogSource != shared.CatalogMySQL {
		return catalog.Build(cfg.CatalogSize, catalog.NewRand(cfg.CatalogSeed))
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	cat, err := app.LoadCatalog(ctx, mysqlrepo.New(db))
	if err != nil {
		log.Fatal().Err(err).Msg("catalog snapshot unavailable; run the seeder first")
	}
	return cat
}
