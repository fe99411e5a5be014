package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotel_compare/internal/domain"
)

// TokenKey is where the last login token lives in the KV store.
const TokenKey = "token"

// AuthService fronts the remote auth API. Failures are returned verbatim.
type AuthService struct {
	client domain.AuthClient
	store  domain.Cache
}

func NewAuthService(c domain.AuthClient, store domain.Cache) *AuthService {
	return &AuthService{client: c, store: store}
}

// Login authenticates and keeps the token under TokenKey with no expiry.
func (a *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("login failed")
		return domain.User{}, err
	}
	if err := a.store.Set(ctx, TokenKey, sess.Token, 0); err != nil {
		return domain.User{}, err
	}
	return sess.User, nil
}

func (a *AuthService) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	u, err := a.client.Signup(ctx, name, email, password)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("signup failed")
		return domain.User{}, err
	}
	return u, nil
}

func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.Del(ctx, TokenKey)
}

// Token returns the stored token, or "" when nobody is logged in.
func (a *AuthService) Token(ctx context.Context) (string, error) {
	var tok string
	if _, err := a.store.Get(ctx, TokenKey, &tok); err != nil {
		return "", err
	}
	return tok, nil
}
