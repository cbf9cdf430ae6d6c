package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/eslsoft/wordlist/internal/entity"
)

const (
	keyDefinitionZh = "definition_zh"
	keyPos          = "pos"
)

// ExtractJSONObject returns the span from the first '{' to the last '}' of a
// model reply. Models tend to wrap JSON in prose or code fences.
func ExtractJSONObject(reply string) (string, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return reply[start : end+1], true
}

// ParseWordDetails extracts and decodes the details object from a raw reply.
func ParseWordDetails(reply string) (entity.WordDetails, error) {
	span, ok := ExtractJSONObject(reply)
	if !ok {
		return entity.WordDetails{}, entity.NewEnrichmentError(entity.MalformedReply,
			fmt.Errorf("no JSON object found in reply: %q", reply))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		return entity.WordDetails{}, entity.NewEnrichmentError(entity.ParseFailure,
			fmt.Errorf("parse reply %q: %w", span, err))
	}

	rawDef, hasDef := fields[keyDefinitionZh]
	rawPos, hasPos := fields[keyPos]
	if !hasDef || !hasPos {
		return entity.WordDetails{}, entity.NewEnrichmentError(entity.MalformedReply,
			fmt.Errorf("reply missing required keys: %s", span))
	}

	var details entity.WordDetails
	if err := errors.Join(
		json.Unmarshal(rawDef, &details.DefinitionZh),
		json.Unmarshal(rawPos, &details.Pos),
	); err != nil {
		return entity.WordDetails{}, entity.NewEnrichmentError(entity.MalformedReply,
			fmt.Errorf("reply values must be strings: %s: %w", span, err))
	}
	return details, nil
}
