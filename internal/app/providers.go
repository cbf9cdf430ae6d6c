package app

import (
	"io"

	"github.com/eslsoft/wordlist/internal/adapter/repository"
	"github.com/eslsoft/wordlist/internal/entity"
	"github.com/eslsoft/wordlist/internal/infrastructure/config"
	"github.com/eslsoft/wordlist/internal/infrastructure/llm"
	"github.com/eslsoft/wordlist/internal/usecase"
)

// Stdout is where the wordlist goes when the output path is "-".
type Stdout io.Writer

// ProvideCompleter builds the completion client for the configured provider.
// It returns nil when enrichment is off or no credential is set, so that no
// network client exists for plain runs.
func ProvideCompleter(cfg *config.Config) (usecase.Completer, error) {
	if !cfg.LLM.Enabled || !cfg.HasCredential() {
		return nil, nil
	}
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIClient(cfg.LLM.APIKey, cfg.LLM.APIBase), nil
	case config.ProviderAnthropic:
		return llm.NewAnthropicClient(cfg.LLM.APIKey, cfg.LLM.APIBase), nil
	default:
		return nil, entity.ErrUnknownProvider
	}
}

func ProvideEnricher(cfg *config.Config, completer usecase.Completer) *usecase.Enricher {
	return usecase.NewEnricher(completer, usecase.EnricherConfig{
		Available: completer != nil,
		Model:     cfg.LLM.Model,
	})
}

func ProvideWordlistWriter(stdout Stdout) *repository.JSONFileWriter {
	return repository.NewJSONFileWriter(stdout)
}
