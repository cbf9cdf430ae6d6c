package llm

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/eslsoft/wordlist/internal/entity"
)

// statusError maps a non-2xx HTTP status onto an enrichment error.
func statusError(code int, err error) *entity.EnrichmentError {
	kind := entity.BadStatus
	if code == http.StatusTooManyRequests {
		kind = entity.RateLimited
	}
	return &entity.EnrichmentError{Kind: kind, StatusCode: code, Err: err}
}

// transportError classifies an error that carried no HTTP status.
func transportError(err error) *entity.EnrichmentError {
	var (
		urlErr *url.Error
		netErr net.Error
	)
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return entity.NewEnrichmentError(entity.ConnectivityError, err)
	}
	return entity.NewEnrichmentError(entity.MalformedReply, fmt.Errorf("decode completion: %w", err))
}

var errEmptyCompletion = errors.New("completion has no content")
