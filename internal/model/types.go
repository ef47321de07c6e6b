// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// WordPair is a single vocabulary entry. Both fields are non-empty once parsed.
type WordPair struct {
	Word    string
	Meaning string
}

// PracticeMode selects which field of a WordPair is shown as the prompt.
type PracticeMode int

const (
	// WordToMeaning shows the word and conceals the meaning.
	WordToMeaning PracticeMode = iota
	// MeaningToWord shows the meaning and conceals the word.
	MeaningToWord
)

// Fields returns the prompt and the concealed answer for a pair.
func (m PracticeMode) Fields(p WordPair) (prompt, answer string) {
	if m == MeaningToWord {
		return p.Meaning, p.Word
	}
	return p.Word, p.Meaning
}

// String returns the CLI name of the mode.
func (m PracticeMode) String() string {
	switch m {
	case WordToMeaning:
		return "word"
	case MeaningToWord:
		return "meaning"
	default:
		return fmt.Sprintf("PracticeMode(%d)", int(m))
	}
}

// Label is the human readable direction, e.g. "word → meaning".
func (m PracticeMode) Label() string {
	if m == MeaningToWord {
		return "meaning → word"
	}
	return "word → meaning"
}

// ParseMode accepts "word" or "meaning" (case-insensitive).
func ParseMode(s string) (PracticeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word", "w":
		return WordToMeaning, nil
	case "meaning", "m":
		return MeaningToWord, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want word or meaning)", s)
	}
}

// Config defines resolved runtime settings.
type Config struct {
	Words    string
	Library  bool
	Mode     PracticeMode
	MockMode PracticeMode
	Seed     int64
	Timeout  time.Duration
	LogFile  string
	LogLevel string
}
