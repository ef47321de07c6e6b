package wordlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/vocard/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirSourceKeysFromIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, IndexFile), `["day1", "day2"]`)
	keys, err := NewDirSource(dir).Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"day2", "day1"}, keys)
}

func TestDirSourceKeysWithoutIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "word,meaning\n")
	writeFile(t, filepath.Join(dir, "b.csv"), "word,meaning\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	keys, err := NewDirSource(dir).Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestDirSourceKeysMissingDir(t *testing.T) {
	_, err := NewDirSource(filepath.Join(t.TempDir(), "nope")).Keys(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestDirSourceKeysMalformedIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, IndexFile), `{"keys": []}`)
	_, err := NewDirSource(dir).Keys(context.Background())
	assert.True(t, errors.Is(err, ErrMalformedSource))
}

func TestDirSourceFetch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "animals.csv"), "word,meaning\ndog,개\n")
	src := NewDirSource(dir)

	pairs, err := src.Fetch(context.Background(), "animals")
	require.NoError(t, err)
	assert.Equal(t, []model.WordPair{{Word: "dog", Meaning: "개"}}, pairs)

	_, err = src.Fetch(context.Background(), "plants")
	assert.True(t, errors.Is(err, ErrSourceUnavailable))

	_, err = src.Fetch(context.Background(), "../animals")
	assert.True(t, errors.Is(err, ErrMalformedSource))
}
