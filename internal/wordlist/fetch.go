package wordlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/vocard/internal/model"
)

// Notice messages shown to the user when a deck cannot be used.
const (
	NoticeUnavailable = "Could not load word list %q. Check that the words location exists and contains %s.csv."
	NoticeMalformed   = "Word list %q is malformed: %v"
	NoticeFailed      = "Failed to load word list %q: %v"
	NoticeEmpty       = "Word list %q has no words."
)

// FetchDeck loads a deck and never fails: problems are passed to notify and
// an empty deck is returned, which callers treat as "do not start".
func FetchDeck(ctx context.Context, src Source, key string, notify func(string)) []model.WordPair {
	if notify == nil {
		notify = func(string) {}
	}
	pairs, err := src.Fetch(ctx, key)
	if err != nil {
		notify(Notice(key, err))
		return nil
	}
	if len(pairs) == 0 {
		notify(fmt.Sprintf(NoticeEmpty, key))
		return nil
	}
	return pairs
}

// Notice renders a user-facing message for a source error.
func Notice(key string, err error) string {
	switch {
	case errors.Is(err, ErrSourceUnavailable):
		return fmt.Sprintf(NoticeUnavailable, key, key)
	case errors.Is(err, ErrMalformedSource):
		return fmt.Sprintf(NoticeMalformed, key, err)
	default:
		return fmt.Sprintf(NoticeFailed, key, err)
	}
}
