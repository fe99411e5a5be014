package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotel_compare/internal/domain"
	"hotel_compare/internal/search"
)

// NaturalSearch runs a free-text query: the extractor produces an intent, the
// intent patches the session's params, and the patched params are searched.
type NaturalSearch struct {
	extractor domain.IntentExtractor
	sessions  *SessionService
	queries   *QueryService
	amenities *search.AmenityMatcher
}

func NewNaturalSearch(x domain.IntentExtractor, s *SessionService, q *QueryService, m *search.AmenityMatcher) *NaturalSearch {
	return &NaturalSearch{extractor: x, sessions: s, queries: q, amenities: m}
}

type NaturalResult struct {
	Intent domain.Intent       `json:"intent"`
	Params domain.SearchParams `json:"params"`
	Hotels []domain.Hotel      `json:"hotels"`
}

// Run does not retry. Extractor errors are returned unchanged so callers can
// tell ErrIntentUnparsed from upstream failures; the session is left as is.
func (n *NaturalSearch) Run(ctx context.Context, sid, text string) (NaturalResult, error) {
	in, err := n.extractor.ExtractIntent(ctx, text)
	if err != nil {
		log.Warn().Err(err).Str("session", sid).Msg("intent extraction failed")
		return NaturalResult{}, err
	}

	p, err := n.sessions.Update(ctx, sid, search.IntentPatch(in, n.amenities))
	if err != nil {
		return NaturalResult{}, err
	}

	hotels, err := n.queries.SearchParams(ctx, p)
	if err != nil {
		return NaturalResult{}, err
	}
	return NaturalResult{Intent: in, Params: p, Hotels: hotels}, nil
}
