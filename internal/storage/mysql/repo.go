package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hotel_compare/internal/domain"
)

func valStr(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
func valInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// Repo is the MySQL catalog snapshot store.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

var _ domain.CatalogStore = (*Repo)(nil)

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	payload, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode hotel %s: %w", h.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		valStr(h.Location.City),
		valStr(h.Location.Country),
		valInt(h.Stars),
		h.Rating.Score,
		h.Price.Current,
		valStr(h.PropertyType),
		string(payload),
	)
	return err
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var payload []byte
	if err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	var h domain.Hotel
	if err := json.Unmarshal(payload, &h); err != nil {
		return domain.Hotel{}, fmt.Errorf("decode hotel %s: %w", id, err)
	}
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var h domain.Hotel
		if err := json.Unmarshal(payload, &h); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
