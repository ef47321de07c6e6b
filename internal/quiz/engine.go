// Package quiz implements the flashcard practice state machine.
package quiz

import (
	"fmt"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/shuffle"
)

// SubState is the position of a session in the practice state machine.
type SubState int

const (
	// Idle means no session was started (for example, the deck was empty).
	Idle SubState = iota
	// Prompted shows the prompt with the answer hidden.
	Prompted
	// Revealed shows the answer and accepts a grade.
	Revealed
	// Finished is terminal: every card was graded or the user ended early.
	Finished
)

var subStateNames = [...]string{Idle: "Idle", Prompted: "Prompted", Revealed: "Revealed", Finished: "Finished"}

func (s SubState) String() string {
	if s >= Idle && s <= Finished {
		return subStateNames[s]
	}
	return fmt.Sprintf("SubState(%d)", int(s))
}

// Engine starts practice sessions.
type Engine struct {
	shuffler *shuffle.Shuffler
}

// NewEngine returns an Engine that orders decks with the given shuffler.
func NewEngine(s *shuffle.Shuffler) *Engine {
	if s == nil {
		s = shuffle.New()
	}
	return &Engine{shuffler: s}
}

// Start shuffles the deck and returns a session at the first card.
// An empty deck yields an Idle session.
func (e *Engine) Start(deck []model.WordPair, mode model.PracticeMode) Session {
	if len(deck) == 0 {
		return Session{mode: mode}
	}
	return Session{
		deck:  shuffle.Shuffle(e.shuffler, deck),
		mode:  mode,
		state: Prompted,
	}
}

// Session is an immutable snapshot of one practice run. Transitions return a
// new Session and leave the receiver untouched.
//
// Invariant: correct + len(missed) == position <= len(deck).
type Session struct {
	deck     []model.WordPair
	mode     model.PracticeMode
	position int
	correct  int
	missed   []model.WordPair
	state    SubState
}

// Reveal shows the answer of the current card. It is a no-op outside Prompted,
// so calling it twice in a row leaves the session unchanged.
func (s Session) Reveal() Session {
	if s.state != Prompted || s.position >= len(s.deck) {
		return s
	}
	s.state = Revealed
	return s
}

// Grade records the user's verdict on the revealed card and advances.
// It is a no-op outside Revealed.
func (s Session) Grade(isCorrect bool) Session {
	if s.state != Revealed {
		return s
	}
	if isCorrect {
		s.correct++
	} else {
		s.missed = append(s.missed[:len(s.missed):len(s.missed)], s.deck[s.position])
	}
	s.position++
	if s.position == len(s.deck) {
		s.state = Finished
	} else {
		s.state = Prompted
	}
	return s
}

// EndEarly finishes an active session immediately. Confirmation is the
// caller's job.
func (s Session) EndEarly() Session {
	if !s.Active() {
		return s
	}
	s.state = Finished
	return s
}

// CurrentCard returns the card at the current position while active.
func (s Session) CurrentCard() (model.WordPair, bool) {
	if !s.Active() || s.position >= len(s.deck) {
		return model.WordPair{}, false
	}
	return s.deck[s.position], true
}

// Prompt returns the visible field of the current card.
func (s Session) Prompt() string {
	card, ok := s.CurrentCard()
	if !ok {
		return ""
	}
	prompt, _ := s.mode.Fields(card)
	return prompt
}

// Answer returns the concealed field of the current card once revealed.
func (s Session) Answer() string {
	if s.state != Revealed {
		return ""
	}
	card, ok := s.CurrentCard()
	if !ok {
		return ""
	}
	_, answer := s.mode.Fields(card)
	return answer
}

// Active reports whether the session accepts reveal, grade or end-early.
func (s Session) Active() bool {
	return s.state == Prompted || s.state == Revealed
}

// State returns the current sub-state.
func (s Session) State() SubState { return s.state }

// Mode returns the practice direction fixed at Start.
func (s Session) Mode() model.PracticeMode { return s.mode }

// Position is the number of graded cards.
func (s Session) Position() int { return s.position }

// Total is the deck size.
func (s Session) Total() int { return len(s.deck) }

// CorrectCount is the number of cards graded correct.
func (s Session) CorrectCount() int { return s.correct }

// Missed returns a copy of the incorrectly graded cards in encounter order.
func (s Session) Missed() []model.WordPair {
	out := make([]model.WordPair, len(s.missed))
	copy(out, s.missed)
	return out
}

// EndedEarly reports whether the session finished before every card was graded.
func (s Session) EndedEarly() bool {
	return s.state == Finished && s.position < len(s.deck)
}
