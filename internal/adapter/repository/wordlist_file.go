package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eslsoft/wordlist/internal/entity"
	"github.com/eslsoft/wordlist/internal/repository"
)

// StdoutPath writes the wordlist to the writer's stdout instead of a file.
const StdoutPath = "-"

// JSONFileWriter stores a wordlist as an indented UTF-8 JSON array.
type JSONFileWriter struct {
	stdout io.Writer
}

var _ repository.WordlistWriter = (*JSONFileWriter)(nil)

func NewJSONFileWriter(stdout io.Writer) *JSONFileWriter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &JSONFileWriter{stdout: stdout}
}

// Write replaces the file at path. The array is written to a temporary file in
// the same directory and renamed over the destination, so a failed write never
// leaves a truncated wordlist behind.
func (w *JSONFileWriter) Write(ctx context.Context, path string, records []entity.WordRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := EncodeWordlist(records)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrOutputWrite, err)
	}

	if path == StdoutPath {
		if _, err := w.stdout.Write(payload); err != nil {
			return fmt.Errorf("%w: %w", entity.ErrOutputWrite, err)
		}
		return nil
	}

	if err := writeFileAtomic(path, payload); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrOutputWrite, err)
	}
	return nil
}

// EncodeWordlist renders records with two-space indentation and without
// escaping non-ASCII or HTML characters. An empty list encodes as [].
func EncodeWordlist(records []entity.WordRecord) ([]byte, error) {
	if records == nil {
		records = []entity.WordRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, payload []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), outputMode(path)); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// outputMode keeps the permissions of a file being replaced.
func outputMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o644
}
