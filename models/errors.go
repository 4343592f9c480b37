package models

import "fmt"

// ConfigurationError signals missing credentials or provider settings.
// It is recoverable: the turn ends gracefully with an explanation.
type ConfigurationError struct {
	Missing string
}

func (e ConfigurationError) Error() string {
	return e.Missing + " not configured"
}

// TokenFetchError signals that the token endpoint was unreachable or
// rejected the client credentials. It aborts the remainder of the turn.
type TokenFetchError struct {
	Reason string
}

func (e TokenFetchError) Error() string {
	return fmt.Sprintf("failed to fetch search API token: %s", e.Reason)
}

// SearchRequestError signals that the flight-offers endpoint was
// unreachable, rejected the request, or returned a malformed response.
type SearchRequestError struct {
	Reason string
}

func (e SearchRequestError) Error() string {
	return fmt.Sprintf("flight search request failed: %s", e.Reason)
}

// NoResultsError signals a successful search that returned zero offers.
// Informational, not fatal: the turn still completes.
type NoResultsError struct{}

func (e NoResultsError) Error() string {
	return "no flight offers found for your search criteria"
}

// SummarizationError signals a failed language-model call. Always
// recoverable via the fixed fallback analysis text.
type SummarizationError struct {
	Reason string
}

func (e SummarizationError) Error() string {
	return fmt.Sprintf("error analyzing flights with LLM: %s", e.Reason)
}

// DateFormatError signals a departure date that cannot be parsed as
// YYYY-MM-DD when return-date arithmetic requires it.
type DateFormatError struct {
	Value string
}

func (e DateFormatError) Error() string {
	return fmt.Sprintf("departure date %q is not in YYYY-MM-DD format", e.Value)
}
