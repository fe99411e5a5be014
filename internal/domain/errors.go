package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrIntentUnparsed marks a language-model reply that was not the JSON we asked for.
	ErrIntentUnparsed = errors.New("intent: unparsable model output")
)

// UpstreamError carries a failure message from an external service so it can
// be shown to the user verbatim.
type UpstreamError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Service + ": " + e.Message
}
