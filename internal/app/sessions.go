package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hotel_compare/internal/domain"
	"hotel_compare/internal/search"
)

// DefaultSessionTTL bounds how long an idle search session is remembered.
const DefaultSessionTTL = 30 * time.Minute

// SessionService keeps the search form state per browser session in the KV
// store. Concurrent updates to one session are last-write-wins.
type SessionService struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewSessionService(c domain.Cache, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{cache: c, ttl: ttl}
}

func sessionKey(sid string) string { return "search:params:" + sid }

func (s *SessionService) Create(ctx context.Context) (string, domain.SearchParams, error) {
	sid := uuid.NewString()
	p := domain.DefaultParams()
	if err := s.save(ctx, sid, p); err != nil {
		return "", domain.SearchParams{}, err
	}
	return sid, p, nil
}

// Get returns the stored params, or the defaults for an unknown or expired
// session.
func (s *SessionService) Get(ctx context.Context, sid string) (domain.SearchParams, error) {
	var p domain.SearchParams
	ok, err := s.cache.Get(ctx, sessionKey(sid), &p)
	if err != nil {
		return domain.SearchParams{}, fmt.Errorf("load session %s: %w", sid, err)
	}
	if !ok {
		return domain.DefaultParams(), nil
	}
	return p, nil
}

// Update applies patch to the stored params and refreshes the TTL.
func (s *SessionService) Update(ctx context.Context, sid string, patch domain.ParamsPatch) (domain.SearchParams, error) {
	cur, err := s.Get(ctx, sid)
	if err != nil {
		return domain.SearchParams{}, err
	}
	next := search.ApplyParams(cur, patch)
	if err := s.save(ctx, sid, next); err != nil {
		return domain.SearchParams{}, err
	}
	return next, nil
}

// Reset puts the session back to the default form.
func (s *SessionService) Reset(ctx context.Context, sid string) (domain.SearchParams, error) {
	p := domain.DefaultParams()
	if err := s.save(ctx, sid, p); err != nil {
		return domain.SearchParams{}, err
	}
	return p, nil
}

func (s *SessionService) save(ctx context.Context, sid string, p domain.SearchParams) error {
	if err := s.cache.Set(ctx, sessionKey(sid), p, int(s.ttl.Seconds())); err != nil {
		return fmt.Errorf("save session %s: %w", sid, err)
	}
	return nil
}
