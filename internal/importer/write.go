package importer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/wordlist"
)

// CSVHeader is written as the first line of every exported list.
const CSVHeader = "word,meaning"

// WriteCSV writes pairs in the two-column format read by wordlist.ParsePairs.
// The reader does not support quoting, so commas inside a field become ';'.
func WriteCSV(w io.Writer, pairs []model.WordPair) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, CSVHeader); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", csvField(p.Word), csvField(p.Meaning)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func csvField(s string) string {
	s = strings.ReplaceAll(s, ",", ";")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// WriteListFile writes <dir>/<key>.csv atomically.
func WriteListFile(dir, key string, pairs []model.WordPair) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid list key %q", key)
	}
	path := filepath.Join(dir, key+".csv")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create words dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "list-*.csv")
	if err != nil {
		return "", fmt.Errorf("failed to create temp list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := WriteCSV(tmpFile, pairs); err != nil {
		return "", fmt.Errorf("failed to write list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to write list: %w", err)
	}
	return path, nil
}

// MergeIndex adds keys to <dir>/list.json, keeping existing keys.
func MergeIndex(dir string, keys []string) error {
	path := filepath.Join(dir, wordlist.IndexFile)
	var existing []string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		existing, err = wordlist.ParseIndex(data)
		if err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read index: %w", err)
	}

	seen := make(map[string]struct{}, len(existing)+len(keys))
	merged := make([]string, 0, len(existing)+len(keys))
	for _, k := range append(existing, keys...) {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, k)
	}
	wordlist.SortKeys(merged)

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create words dir: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}
