package shared_test

import (
	"testing"
	"time"

	"hotel_compare/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("SEARCH_LATENCY_MS", "")
	t.Setenv("SESSION_TTL_SECONDS", "")

	c := shared.Load()
	if c.CatalogSource != shared.CatalogGenerated {
		t.Fatalf("source: %q", c.CatalogSource)
	}
	if c.SessionTTL != 30*time.Minute {
		t.Fatalf("session ttl: %v", c.SessionTTL)
	}
	if c.SearchLatency != 0 {
		t.Fatalf("latency: %v", c.SearchLatency)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mysql")
	t.Setenv("CATALOG_SEED", "77")
	t.Setenv("SEARCH_LATENCY_MS", "250")
	t.Setenv("REDIS_DB", "not-a-number")

	c := shared.Load()
	if c.CatalogSource != shared.CatalogMySQL || c.CatalogSeed != 77 {
		t.Fatalf("unexpected catalog config: %+v", c)
	}
	if c.SearchLatency != 250*time.Millisecond {
		t.Fatalf("latency: %v", c.SearchLatency)
	}
	if c.RedisDB != 0 {
		t.Fatalf("expected default db, got %d", c.RedisDB)
	}
}

func TestLoad_UnknownSourceFallsBack(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "s3")
	if c := shared.Load(); c.CatalogSource != shared.CatalogGenerated {
		t.Fatalf("source: %q", c.CatalogSource)
	}
}
