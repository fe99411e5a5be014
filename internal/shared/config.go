package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	CatalogGenerated = "generated"
	CatalogMySQL     = "mysql"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	LogFile     string

	RedisAddr  string
	RedisDB    int
	RedisPass  string
	CacheTTL   time.Duration
	SessionTTL time.Duration

	CatalogSource string
	CatalogSeed   uint64
	CatalogSize   int
	MySQLDSN      string
	SeedWorkers   int

	AuthBase      string
	GeminiBase    string
	GeminiKey     string
	GeminiModel   string
	SearchLatency time.Duration
}

// Load reads the environment after merging an optional .env file. Variables
// already set in the process win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		LogFile:     env("LOG_FILE", ""),

		RedisAddr:  env("REDIS_ADDR", "localhost:6379"),
		RedisPass:  env("REDIS_PASSWORD", ""),
		RedisDB:    atoi("REDIS_DB", 0),
		CacheTTL:   time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL: time.Duration(atoi("SESSION_TTL_SECONDS", 1800)) * time.Second,

		CatalogSource: env("CATALOG_SOURCE", CatalogGenerated),
		CatalogSeed:   uint64(atoi("CATALOG_SEED", 1)),
		CatalogSize:   atoi("CATALOG_SIZE", 45),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		SeedWorkers:   atoi("SEED_WORKERS", 8),

		AuthBase:      env("AUTH_API_URL", "http://localhost:5000"),
		GeminiBase:    env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiKey:     env("GEMINI_API_KEY", ""),
		GeminiModel:   env("GEMINI_MODEL", "gemini-2.0-flash"),
		SearchLatency: time.Duration(atoi("SEARCH_LATENCY_MS", 0)) * time.Millisecond,
	}
	if c.CatalogSource != CatalogGenerated && c.CatalogSource != CatalogMySQL {
		log.Warn().Str("source", c.CatalogSource).Msg("unknown CATALOG_SOURCE, using generated")
		c.CatalogSource = CatalogGenerated
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty, natural search will fail")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
