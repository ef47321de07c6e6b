package wordlist

import (
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ParseIndex decodes list.json, a JSON array of list keys, and returns the
// keys in display order.
func ParseIndex(data []byte) ([]string, error) {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: list.json must be an array of strings: %v", ErrMalformedSource, err)
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: list.json must be an array of strings", ErrMalformedSource)
	}
	SortKeys(keys)
	return keys, nil
}

// SortKeys orders keys descending by locale-aware collation, so date-like
// keys such as "2024-05-02" list before "2024-05-01". Digits compare as text:
// "day9" sorts before "day10".
func SortKeys(keys []string) {
	c := collate.New(language.Und)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.CompareString(keys[i], keys[j]) > 0
	})
}
