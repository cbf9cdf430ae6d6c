package entity

import (
	"errors"
	"fmt"
)

// Configuration, input and output errors. All of them abort the run.
var (
	ErrMissingAPIKey       = errors.New("api key is required when enrichment is enabled")
	ErrEnricherUnavailable = errors.New("enrichment client is unavailable")
	ErrUnknownProvider     = errors.New("unknown llm provider")
	ErrSourceNotFound      = errors.New("source not found")
	ErrSourceRead          = errors.New("read source")
	ErrOutputWrite         = errors.New("write output")
)

// EnrichmentErrorKind classifies why a single enrichment call failed.
type EnrichmentErrorKind int

const (
	ConnectivityError EnrichmentErrorKind = iota + 1
	RateLimited
	BadStatus
	MalformedReply
	ParseFailure
)

func (k EnrichmentErrorKind) String() string {
	switch k {
	case ConnectivityError:
		return "connectivity_error"
	case RateLimited:
		return "rate_limited"
	case BadStatus:
		return "bad_status"
	case MalformedReply:
		return "malformed_reply"
	case ParseFailure:
		return "parse_failure"
	default:
		return "unknown"
	}
}

// EnrichmentError is returned for a per-word enrichment failure. These are
// recovered by substituting placeholders and never abort the run.
type EnrichmentError struct {
	Kind       EnrichmentErrorKind
	StatusCode int // set for RateLimited and BadStatus when known
	Err        error
}

func NewEnrichmentError(kind EnrichmentErrorKind, err error) *EnrichmentError {
	return &EnrichmentError{Kind: kind, Err: err}
}

func (e *EnrichmentError) Error() string {
	msg := e.Kind.String()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EnrichmentError) Unwrap() error { return e.Err }

// IsEnrichmentKind reports whether err is an EnrichmentError of the given kind.
func IsEnrichmentKind(err error, kind EnrichmentErrorKind) bool {
	var ee *EnrichmentError
	return errors.As(err, &ee) && ee.Kind == kind
}
