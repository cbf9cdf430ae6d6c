package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/wordlist/internal/entity"
	"github.com/eslsoft/wordlist/internal/repository"
)

// ProgressReporter receives progress while records are built.
type ProgressReporter interface {
	Start(total int)
	Increment(delta int)
	Finish()
}

type noopProgress struct{}

func (noopProgress) Start(int)     {}
func (noopProgress) Increment(int) {}
func (noopProgress) Finish()       {}

// GenerateRequest names the word source and the wordlist destination.
type GenerateRequest struct {
	InputPath  string
	Stdin      io.Reader
	OutputPath string
}

// Summary describes a finished run.
type Summary struct {
	Total    int
	Enriched int
	Fallback int
}

type generateOptions struct {
	enrich   bool
	delay    time.Duration
	progress ProgressReporter
}

// GenerateOption customises a Generate call.
type GenerateOption func(*generateOptions)

// WithEnrichment turns LLM lookups on or off. Off by default.
func WithEnrichment(enabled bool) GenerateOption {
	return func(o *generateOptions) { o.enrich = enabled }
}

// WithRequestDelay waits d between consecutive enrichment requests.
func WithRequestDelay(d time.Duration) GenerateOption {
	return func(o *generateOptions) {
		if d > 0 {
			o.delay = d
		}
	}
}

func WithProgressReporter(p ProgressReporter) GenerateOption {
	return func(o *generateOptions) {
		if p != nil {
			o.progress = p
		}
	}
}

// WordlistUsecase turns a word source into a wordlist file.
type WordlistUsecase struct {
	enricher *Enricher
	writer   repository.WordlistWriter
	logger   *logrus.Logger
}

func NewWordlistUsecase(enricher *Enricher, writer repository.WordlistWriter, logger *logrus.Logger) *WordlistUsecase {
	return &WordlistUsecase{enricher: enricher, writer: writer, logger: logger}
}

// Generate filters the source, builds one record per word and writes the
// wordlist once at the end. Nothing is written when reading fails.
func (u *WordlistUsecase) Generate(ctx context.Context, req GenerateRequest, opts ...GenerateOption) (*Summary, error) {
	o := buildOptions(opts)
	if o.enrich && !u.enricher.Available() {
		return nil, entity.ErrEnricherUnavailable
	}

	words, err := LoadWords(req.InputPath, req.Stdin)
	if err != nil {
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{
		"input": req.InputPath,
		"words": len(words),
	}).Info("filtered five-letter words")

	records, err := u.buildRecords(ctx, words, o)
	if err != nil {
		return nil, err
	}

	if err := u.writer.Write(ctx, req.OutputPath, records); err != nil {
		return nil, err
	}

	enriched := lo.CountBy(records, func(r entity.WordRecord) bool { return r.Enriched() })
	summary := &Summary{Total: len(records), Enriched: enriched}
	if o.enrich {
		summary.Fallback = summary.Total - enriched
	}
	return summary, nil
}

// BuildRecords returns one record per word, in order.
func (u *WordlistUsecase) BuildRecords(ctx context.Context, words []string, opts ...GenerateOption) ([]entity.WordRecord, error) {
	o := buildOptions(opts)
	if o.enrich && !u.enricher.Available() {
		return nil, entity.ErrEnricherUnavailable
	}
	return u.buildRecords(ctx, words, o)
}

func (u *WordlistUsecase) buildRecords(ctx context.Context, words []string, o generateOptions) ([]entity.WordRecord, error) {
	records := make([]entity.WordRecord, 0, len(words))
	o.progress.Start(len(words))
	defer o.progress.Finish()

	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		details := entity.PlaceholderDetails()
		if o.enrich {
			if i > 0 && o.delay > 0 {
				if err := sleepContext(ctx, o.delay); err != nil {
					return nil, err
				}
			}
			details = u.lookup(ctx, word)
		}
		records = append(records, entity.NewWordRecord(word, details))
		o.progress.Increment(1)
	}
	return records, nil
}

// lookup never fails: enrichment errors are logged and resolved to placeholders.
func (u *WordlistUsecase) lookup(ctx context.Context, word string) entity.WordDetails {
	u.logger.WithField("word", word).Debug("fetching details from llm")

	details, err := u.enricher.Enrich(ctx, word)
	if err == nil {
		return details
	}

	fields := logrus.Fields{"word": word, "error": err.Error()}
	var ee *entity.EnrichmentError
	if errors.As(err, &ee) {
		fields["kind"] = ee.Kind.String()
		if ee.StatusCode != 0 {
			fields["status"] = ee.StatusCode
		}
	}
	u.logger.WithFields(fields).Warn("could not fetch word details, using placeholders")
	return entity.PlaceholderDetails()
}

func buildOptions(opts []GenerateOption) generateOptions {
	o := generateOptions{progress: noopProgress{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
