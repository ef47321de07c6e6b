package wordlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/vocard/internal/model"
)

// IndexFile is the name of the key index inside a word list location.
const IndexFile = "list.json"

// Source supplies word lists by key.
type Source interface {
	Keys(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, key string) ([]model.WordPair, error)
}

// DirSource serves <dir>/list.json and <dir>/<key>.csv from disk.
type DirSource struct {
	dir string
}

// NewDirSource returns a Source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Keys reads list.json. Without an index, every *.csv file in the directory
// is a key.
func (s *DirSource) Keys(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, IndexFile))
	if err == nil {
		return ParseIndex(data)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", IndexFile, err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory %s does not exist", ErrSourceUnavailable, s.dir)
		}
		return nil, fmt.Errorf("failed to read word list directory: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".csv") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".csv"))
	}
	SortKeys(keys)
	return keys, nil
}

// Fetch loads <dir>/<key>.csv.
func (s *DirSource) Fetch(_ context.Context, key string) ([]model.WordPair, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	return LoadPairs(filepath.Join(s.dir, key+".csv"))
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty list key", ErrMalformedSource)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: invalid list key %q", ErrMalformedSource, key)
	}
	return nil
}
