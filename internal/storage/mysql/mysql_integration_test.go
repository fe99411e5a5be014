//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"hotel_compare/internal/catalog"
	"hotel_compare/internal/domain"
	mysqlrepo "hotel_compare/internal/storage/mysql"
)

// migrationsDir falls back to the repository's migrations folder.
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotels",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotels?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_SnapshotRoundTrip(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	src := catalog.Build(12, catalog.NewRand(21)).All()
	// Insert out of order; listing must still come back as hotel-1..hotel-17.
	for i := len(src) - 1; i >= 0; i-- {
		if err := repo.UpsertHotel(ctx, src[i]); err != nil {
			t.Fatalf("UpsertHotel(%s): %v", src[i].ID, err)
		}
	}

	got, err := repo.ListHotels(ctx)
	if err != nil {
		t.Fatalf("ListHotels: %v", err)
	}
	if len(got) != len(src) {
		t.Fatalf("expected %d hotels, got %d", len(src), len(got))
	}
	for i := range src {
		w, g := src[i], got[i]
		if w.ID != g.ID || w.Name != g.Name || w.Price.Current != g.Price.Current || w.Price.Base != g.Price.Base ||
			!reflect.DeepEqual(w.Price.Discount, g.Price.Discount) {
			t.Fatalf("hotel %d differs:\nwant %+v\ngot  %+v", i, w, g)
		}
		if !reflect.DeepEqual(w.Amenities, g.Amenities) || w.Location.City != g.Location.City || w.Stars != g.Stars {
			t.Fatalf("hotel %s fields differ:\nwant %+v\ngot  %+v", w.ID, w, g)
		}
		if math.Abs(w.Rating.Score-g.Rating.Score) > 1e-9 {
			t.Fatalf("hotel %s rating %v != %v", w.ID, g.Rating.Score, w.Rating.Score)
		}
	}

	h, err := repo.GetHotel(ctx, "hotel-3")
	if err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if h.Name != "Seaside Resort & Spa" {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	// Upsert replaces in place.
	h.Price.Current = 199
	if err := repo.UpsertHotel(ctx, h); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	again, err := repo.GetHotel(ctx, "hotel-3")
	if err != nil {
		t.Fatalf("GetHotel after upsert: %v", err)
	}
	if again.Price.Current != 199 {
		t.Fatalf("price not updated: %d", again.Price.Current)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM hotels").Scan(&n); err != nil || n != len(src) {
		t.Fatalf("row count %d (err %v)", n, err)
	}

	if _, err := repo.GetHotel(ctx, "hotel-999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
