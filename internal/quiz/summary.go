package quiz

import "github.com/verte-zerg/vocard/internal/model"

// Summary is the read-only result of a finished session.
type Summary struct {
	Attempted int
	Total     int
	Correct   int
	EarlyExit bool
	Missed    []model.WordPair
}

// Perfect reports a run with no missed cards.
func (s Summary) Perfect() bool {
	return len(s.Missed) == 0
}

// Summary derives the result view. It returns false until the session is Finished.
func (s Session) Summary() (Summary, bool) {
	if s.state != Finished {
		return Summary{}, false
	}
	return Summary{
		Attempted: s.position,
		Total:     len(s.deck),
		Correct:   s.correct,
		EarlyExit: s.position < len(s.deck),
		Missed:    s.Missed(),
	}, true
}
