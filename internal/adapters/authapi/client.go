// Package authapi talks to the remote authentication service.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/domain"
)

const service = "auth"

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Login posts credentials once. On failure the server's message is returned
// as an UpstreamError, falling back to "Login failed".
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	var out struct {
		Data struct {
			Token string         `json:"token"`
			User  map[string]any `json:"user"`
		} `json:"data"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/api/auth/login", in, &out, "Login failed"); err != nil {
		return domain.Session{}, err
	}
	if out.Data.Token == "" {
		return domain.Session{}, &domain.UpstreamError{Service: service, Status: http.StatusOK, Message: "Login failed"}
	}
	return domain.Session{Token: out.Data.Token, User: toUser(out.Data.User)}, nil
}

// Signup accepts either a bare user object or one wrapped in "data".
func (c *Client) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	var out map[string]any
	in := map[string]string{"name": name, "email": email, "password": password}
	if err := c.post(ctx, "/api/auth/signup", in, &out, "Signup failed"); err != nil {
		return domain.User{}, err
	}
	if d, ok := out["data"].(map[string]any); ok {
		if u, ok := d["user"].(map[string]any); ok {
			return toUser(u), nil
		}
		return toUser(d), nil
	}
	if u, ok := out["user"].(map[string]any); ok {
		return toUser(u), nil
	}
	return toUser(out), nil
}

func (c *Client) post(ctx context.Context, path string, in, out any, fallback string) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	body, _ := json.Marshal(in)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, path, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &domain.UpstreamError{Service: service, Message: err.Error()}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, path, resp.StatusCode, time.Since(start))

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(b, &e) == nil && strings.TrimSpace(e.Message) != "" {
			msg = e.Message
		}
		return &domain.UpstreamError{Service: service, Status: resp.StatusCode, Message: msg}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &domain.UpstreamError{Service: service, Status: resp.StatusCode, Message: fmt.Sprintf("%s: invalid response", fallback)}
	}
	return nil
}

func toUser(m map[string]any) domain.User {
	return domain.User{
		ID:    idString(m, "id", "_id"),
		Name:  str(m["name"]),
		Email: str(m["email"]),
	}
}

func idString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
