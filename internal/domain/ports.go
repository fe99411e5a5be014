package domain

import "context"

// CatalogStore persists a generated catalog snapshot so several API
// instances can serve the same hotels.
type CatalogStore interface {
	UpsertHotel(ctx context.Context, h Hotel) error
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error // ttlSec <= 0 keeps the key forever
	Del(ctx context.Context, key string) error
}

// IntentExtractor turns free text into structured search intent.
// Unparsable model output is reported as ErrIntentUnparsed.
type IntentExtractor interface {
	ExtractIntent(ctx context.Context, text string) (Intent, error)
}

type AuthClient interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, name, email, password string) (User, error)
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
