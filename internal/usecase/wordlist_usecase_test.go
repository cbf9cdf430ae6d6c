package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/wordlist/internal/entity"
)

type memoryWriter struct {
	path    string
	records []entity.WordRecord
	calls   int
	err     error
}

func (m *memoryWriter) Write(ctx context.Context, path string, records []entity.WordRecord) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.path = path
	m.records = records
	return nil
}

type countingProgress struct {
	total, count, finished int
}

func (p *countingProgress) Start(total int)     { p.total = total }
func (p *countingProgress) Increment(delta int) { p.count += delta }
func (p *countingProgress) Finish()             { p.finished++ }

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func placeholderRecord(word string) entity.WordRecord {
	return entity.WordRecord{Word: word, DefinitionZh: entity.Placeholder, Pos: entity.Placeholder}
}

func TestGenerate_WithoutEnrichment(t *testing.T) {
	logger, _ := test.NewNullLogger()
	writer := &memoryWriter{}
	fake := &fakeCompleter{}
	uc := NewWordlistUsecase(NewEnricher(fake, EnricherConfig{Available: true}), writer, logger)

	input := writeInput(t, "apple\nwatch\nbee\nhouse\nHOUSE\n")
	summary, err := uc.Generate(context.Background(), GenerateRequest{InputPath: input, OutputPath: "out.json"})
	require.NoError(t, err)

	assert.Equal(t, "out.json", writer.path)
	assert.Equal(t, []entity.WordRecord{
		placeholderRecord("apple"),
		placeholderRecord("watch"),
		placeholderRecord("house"),
		placeholderRecord("house"),
	}, writer.records)
	assert.Equal(t, &Summary{Total: 4}, summary)
	assert.Empty(t, fake.requests, "no network activity when enrichment is off")
}

func TestGenerate_EnrichmentFallsBackPerWord(t *testing.T) {
	logger, hook := test.NewNullLogger()
	writer := &memoryWriter{}
	fake := &fakeCompleter{replies: map[string]reply{
		"apple": {text: "noise {\"definition_zh\": \"苹果\", \"pos\": \"n.\"} trailing"},
		"watch": {text: "Sorry, I cannot help with that."},
		"house": {text: `{"definition_zh": "房子"}`},
		"smile": {err: &entity.EnrichmentError{Kind: entity.RateLimited, StatusCode: 429}},
		"tiger": {text: "```json\n{\"definition_zh\": \"老虎\", \"pos\": \"n.\"}\n```"},
	}}
	uc := NewWordlistUsecase(NewEnricher(fake, EnricherConfig{Available: true, Model: "m"}), writer, logger)

	input := writeInput(t, "apple\nwatch\nhouse\nsmile\ntiger\n")
	progress := &countingProgress{}
	summary, err := uc.Generate(context.Background(),
		GenerateRequest{InputPath: input, OutputPath: "out.json"},
		WithEnrichment(true), WithProgressReporter(progress))
	require.NoError(t, err)

	assert.Equal(t, []entity.WordRecord{
		{Word: "apple", DefinitionZh: "苹果", Pos: "n."},
		placeholderRecord("watch"),
		placeholderRecord("house"),
		placeholderRecord("smile"),
		{Word: "tiger", DefinitionZh: "老虎", Pos: "n."},
	}, writer.records)
	assert.Equal(t, &Summary{Total: 5, Enriched: 2, Fallback: 3}, summary)
	assert.Equal(t, []string{"apple", "watch", "house", "smile", "tiger"}, fake.words)
	assert.Equal(t, countingProgress{total: 5, count: 5, finished: 1}, *progress)

	var warned []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = append(warned, e.Data["word"].(string))
		}
	}
	assert.Equal(t, []string{"watch", "house", "smile"}, warned)

	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["word"] == "smile" {
			assert.Equal(t, "rate_limited", e.Data["kind"])
			assert.Equal(t, 429, e.Data["status"])
		}
	}
}

func TestGenerate_MissingInputWritesNothing(t *testing.T) {
	logger, _ := test.NewNullLogger()
	writer := &memoryWriter{}
	uc := NewWordlistUsecase(NewEnricher(nil, EnricherConfig{}), writer, logger)

	_, err := uc.Generate(context.Background(), GenerateRequest{
		InputPath:  filepath.Join(t.TempDir(), "missing.txt"),
		OutputPath: "out.json",
	})
	assert.ErrorIs(t, err, entity.ErrSourceNotFound)
	assert.Zero(t, writer.calls)
}

func TestGenerate_EnrichmentUnavailable(t *testing.T) {
	logger, _ := test.NewNullLogger()
	writer := &memoryWriter{}
	uc := NewWordlistUsecase(NewEnricher(nil, EnricherConfig{Available: true}), writer, logger)

	_, err := uc.Generate(context.Background(),
		GenerateRequest{InputPath: writeInput(t, "apple\n"), OutputPath: "out.json"},
		WithEnrichment(true))
	assert.ErrorIs(t, err, entity.ErrEnricherUnavailable)
	assert.Zero(t, writer.calls)
}

func TestGenerate_WriteFailure(t *testing.T) {
	logger, _ := test.NewNullLogger()
	writer := &memoryWriter{err: errors.Join(entity.ErrOutputWrite, errors.New("read-only"))}
	uc := NewWordlistUsecase(nil, writer, logger)

	_, err := uc.Generate(context.Background(), GenerateRequest{InputPath: writeInput(t, "apple\n"), OutputPath: "out.json"})
	assert.ErrorIs(t, err, entity.ErrOutputWrite)
}

func TestBuildRecords_DelayHonoursCancellation(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fake := &fakeCompleter{replies: map[string]reply{
		"apple": {text: `{"definition_zh": "苹果", "pos": "n."}`},
		"watch": {text: `{"definition_zh": "手表", "pos": "n."}`},
	}}
	uc := NewWordlistUsecase(NewEnricher(fake, EnricherConfig{Available: true}), &memoryWriter{}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := uc.BuildRecords(ctx, []string{"apple", "watch"}, WithEnrichment(true), WithRequestDelay(time.Hour))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
	assert.Equal(t, []string{"apple"}, fake.words)
}

func TestBuildRecords_DelayBetweenRequests(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fake := &fakeCompleter{replies: map[string]reply{
		"apple": {text: `{"definition_zh": "苹果", "pos": "n."}`},
		"watch": {text: `{"definition_zh": "手表", "pos": "n."}`},
	}}
	uc := NewWordlistUsecase(NewEnricher(fake, EnricherConfig{Available: true}), &memoryWriter{}, logger)

	start := time.Now()
	records, err := uc.BuildRecords(context.Background(), []string{"apple", "watch"},
		WithEnrichment(true), WithRequestDelay(30*time.Millisecond))
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
