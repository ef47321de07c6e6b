package wordlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexSortsDescending(t *testing.T) {
	keys, err := ParseIndex([]byte(`["2024-05-01", "2024-05-03", "2024-05-02"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-03", "2024-05-02", "2024-05-01"}, keys)
}

func TestParseIndexDigitsCompareAsText(t *testing.T) {
	keys, err := ParseIndex([]byte(`["L2", "L10", "L1"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"L2", "L10", "L1"}, keys)
}

func TestSortKeysDescendingText(t *testing.T) {
	keys := []string{"day10", "day9"}
	SortKeys(keys)
	assert.Equal(t, []string{"day9", "day10"}, keys)
}

func TestParseIndexRejectsNonArray(t *testing.T) {
	for _, doc := range []string{`{"a": 1}`, `null`, `[1, 2]`, `not json`} {
		_, err := ParseIndex([]byte(doc))
		require.Error(t, err, doc)
		assert.True(t, errors.Is(err, ErrMalformedSource), doc)
	}
}

func TestParseIndexEmptyArray(t *testing.T) {
	keys, err := ParseIndex([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, keys)
}
