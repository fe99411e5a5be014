// Package gemini extracts search intent from free text with the Gemini
// generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/domain"
)

const service = "gemini"

type Client struct {
	base  string
	model string
	key   string
	hc    *http.Client
	rl    *rate.Limiter
}

func New(base, key, model string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		model: model,
		key:   key,
		hc:    &http.Client{Timeout: 20 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ExtractIntent makes exactly one generateContent call.
func (c *Client) ExtractIntent(ctx context.Context, text string) (domain.Intent, error) {
	raw, err := c.generate(ctx, buildPrompt(text))
	if err != nil {
		return domain.Intent{}, err
	}
	return ParseIntent(raw)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	body, _ := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.base, url.PathEscape(c.model), url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-compare/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, "generateContent", 0, time.Since(start))
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &domain.UpstreamError{Service: service, Message: err.Error()}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, "generateContent", resp.StatusCode, time.Since(start))

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &domain.UpstreamError{Service: service, Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("bad status %d", resp.StatusCode)
		var ae apiError
		if json.Unmarshal(b, &ae) == nil && ae.Error.Message != "" {
			msg = ae.Error.Message
		}
		return "", &domain.UpstreamError{Service: service, Status: resp.StatusCode, Message: msg}
	}

	var gr generateResponse
	if err := json.Unmarshal(b, &gr); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIntentUnparsed, err)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", domain.ErrIntentUnparsed)
	}
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: empty reply", domain.ErrIntentUnparsed)
	}
	return sb.String(), nil
}
