package usecase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/eslsoft/wordlist/internal/entity"
)

// StdinPath selects standard input as the word source.
const StdinPath = "-"

// maxLineSize bounds how much of a line is kept; longer lines cannot be a
// word and are skipped.
const maxLineSize = 1 << 20

// FilterWords reads one token per line and keeps the normalized tokens that are
// exactly five ASCII letters. Order and duplicates are preserved; everything
// else is dropped silently.
func FilterWords(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	words := make([]string, 0, 1024)
	first := true
	for {
		line, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrSourceRead, err)
		}
		if tooLong {
			first = false
			continue
		}
		text := string(line)
		if first {
			text = strings.TrimPrefix(text, "\ufeff")
			first = false
		}
		token := entity.NormalizeWordToken(text)
		if entity.IsWordlistToken(token) {
			words = append(words, token)
		}
	}
}

// readLine returns the next line without its terminator. The remainder of a
// line longer than maxLineSize is consumed and reported as tooLong.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, readErr := br.ReadLine()
		if readErr != nil {
			return nil, false, readErr
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// LoadWords filters the file at path, or stdin when path is StdinPath.
func LoadWords(path string, stdin io.Reader) ([]string, error) {
	if path == StdinPath {
		return FilterWords(stdin)
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entity.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrSourceRead, err)
	}
	defer file.Close()

	return FilterWords(file)
}
