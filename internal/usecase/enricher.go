package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/eslsoft/wordlist/internal/entity"
)

const (
	enrichTemperature = 0.5

	enrichSystemPrompt = "You are a helpful assistant that provides dictionary definitions in JSON format."

	enrichUserPrompt = `For the English word "%s", provide its Chinese definition and part(s) of speech.
Return the result as a JSON string with two keys: "definition_zh" and "pos".
Example for "apple": { "definition_zh": "苹果", "pos": "n." }
Example for "watch": { "definition_zh": "观看；手表", "pos": "v./n." }`
)

// Completer sends a chat completion and returns the raw reply text. API
// failures should be reported as *entity.EnrichmentError.
type Completer interface {
	Complete(ctx context.Context, req entity.CompletionRequest) (string, error)
}

// EnricherConfig configures an Enricher. Available is the capability flag:
// false means no completion client could be provided.
type EnricherConfig struct {
	Available bool
	Model     string
}

// Enricher looks up a Chinese gloss and part of speech for a word.
type Enricher struct {
	completer Completer
	cfg       EnricherConfig
}

func NewEnricher(completer Completer, cfg EnricherConfig) *Enricher {
	if completer == nil {
		cfg.Available = false
	}
	return &Enricher{completer: completer, cfg: cfg}
}

// Available reports whether Enrich can reach a completion client.
func (e *Enricher) Available() bool {
	return e != nil && e.cfg.Available
}

// Enrich issues one completion request for word. Apart from
// entity.ErrEnricherUnavailable every error is an *entity.EnrichmentError.
func (e *Enricher) Enrich(ctx context.Context, word string) (entity.WordDetails, error) {
	if !e.Available() {
		return entity.WordDetails{}, entity.ErrEnricherUnavailable
	}

	reply, err := e.completer.Complete(ctx, e.request(word))
	if err != nil {
		var ee *entity.EnrichmentError
		if errors.As(err, &ee) {
			return entity.WordDetails{}, ee
		}
		return entity.WordDetails{}, entity.NewEnrichmentError(entity.ConnectivityError, err)
	}
	return ParseWordDetails(reply)
}

func (e *Enricher) request(word string) entity.CompletionRequest {
	return entity.CompletionRequest{
		Model: e.cfg.Model,
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleSystem, Content: enrichSystemPrompt},
			{Role: entity.ChatRoleUser, Content: fmt.Sprintf(enrichUserPrompt, word)},
		},
		Temperature: enrichTemperature,
	}
}
