package repository

import (
	"context"

	"github.com/eslsoft/wordlist/internal/entity"
)

// WordlistWriter persists a finished wordlist.
type WordlistWriter interface {
	Write(ctx context.Context, path string, records []entity.WordRecord) error
}
