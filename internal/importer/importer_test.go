package importer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/wordlist"
)

const sample = `1000 English Words
L1 1 the 그, 저
L1 2 be ~이다
있다
www.1000englishwords.com page 1

L2 3 and 그리고
L2 4 lonely
`

func TestParseLessons(t *testing.T) {
	entries, err := ParseLessons(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, Entry{Lesson: "L1", Rank: 1, English: "the", Korean: "그, 저"}, entries[0])
	assert.Equal(t, Entry{Lesson: "L1", Rank: 2, English: "be", Korean: "~이다 있다"}, entries[1])
	assert.Equal(t, Entry{Lesson: "L2", Rank: 3, English: "and", Korean: "그리고"}, entries[2])
	assert.Equal(t, "", entries[3].Korean)
}

func TestPairsDropsEmptyMeaning(t *testing.T) {
	entries, err := ParseLessons(strings.NewReader(sample))
	require.NoError(t, err)
	pairs := Pairs(entries)
	assert.Len(t, pairs, 3)
	assert.Equal(t, model.WordPair{Word: "the", Meaning: "그, 저"}, pairs[0])
}

func TestGroupByLesson(t *testing.T) {
	entries, err := ParseLessons(strings.NewReader(sample))
	require.NoError(t, err)
	lessons := GroupByLesson(entries)
	require.Len(t, lessons, 2)
	assert.Equal(t, "L1", lessons[0].Name)
	assert.Len(t, lessons[0].Entries, 2)
	assert.Equal(t, "L2", lessons[1].Name)
}

func TestWriteCSVRoundTripsThroughParser(t *testing.T) {
	pairs := []model.WordPair{{Word: "the", Meaning: "그, 저"}, {Word: "be", Meaning: "~이다"}}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, pairs))
	assert.True(t, strings.HasPrefix(buf.String(), CSVHeader+"\n"))

	parsed, err := wordlist.ParsePairs(&buf)
	require.NoError(t, err)
	assert.Equal(t, []model.WordPair{{Word: "the", Meaning: "그; 저"}, {Word: "be", Meaning: "~이다"}}, parsed)
}

func TestWriteListFileAndMergeIndex(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "words")
	path, err := WriteListFile(dir, "L1", []model.WordPair{{Word: "a", Meaning: "1"}})
	require.NoError(t, err)
	assert.FileExists(t, path)

	require.NoError(t, MergeIndex(dir, []string{"L1"}))
	require.NoError(t, MergeIndex(dir, []string{"L2", "L1"}))

	keys, err := wordlist.NewDirSource(dir).Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"L2", "L1"}, keys)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
