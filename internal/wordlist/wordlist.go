// Package wordlist loads vocabulary lists: the CSV format, the list.json
// index and the sources that serve them.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/verte-zerg/vocard/internal/model"
)

// Sentinel errors reported by sources. Check with errors.Is.
var (
	ErrSourceUnavailable = errors.New("wordlist: source unavailable")
	ErrMalformedSource   = errors.New("wordlist: malformed source")
)

// ParsePairs reads a two-column CSV. Leading blank lines are skipped and the
// first non-blank line is the header. Each row is
// split on commas without quoting; the first two fields are the word and the
// meaning. Rows missing either field are dropped.
func ParsePairs(r io.Reader) ([]model.WordPair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var pairs []model.WordPair
	header := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if header {
			if strings.TrimSpace(line) != "" {
				header = false
			}
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		pair := model.WordPair{
			Word:    normalizeField(parts[0]),
			Meaning: normalizeField(parts[1]),
		}
		if !KeepComplete(pair) {
			continue
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// LoadPairs reads a CSV word list from the provided file path.
func LoadPairs(path string) ([]model.WordPair, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
		}
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ParsePairs(file)
}
