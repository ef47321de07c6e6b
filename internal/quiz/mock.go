package quiz

import (
	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/shuffle"
)

// MockItem is one numbered line of a mock test.
type MockItem struct {
	Number int
	Prompt string
	Answer string
}

// MockTest is an ungraded test: every prompt at once and a single one-way
// reveal of all answers.
type MockTest struct {
	items []MockItem
	shown bool
}

// NewMockTest shuffles the deck and numbers the prompts from 1.
func NewMockTest(deck []model.WordPair, mode model.PracticeMode, s *shuffle.Shuffler) MockTest {
	if s == nil {
		s = shuffle.New()
	}
	shuffled := shuffle.Shuffle(s, deck)
	items := make([]MockItem, len(shuffled))
	for i, p := range shuffled {
		prompt, answer := mode.Fields(p)
		items[i] = MockItem{Number: i + 1, Prompt: prompt, Answer: answer}
	}
	return MockTest{items: items}
}

// Reveal shows every answer. Revealing again changes nothing.
func (m MockTest) Reveal() MockTest {
	m.shown = true
	return m
}

// AnswersShown reports whether Reveal was called.
func (m MockTest) AnswersShown() bool { return m.shown }

// Len is the number of prompts.
func (m MockTest) Len() int { return len(m.items) }

// Items returns the numbered prompts. Answers are blank until revealed.
func (m MockTest) Items() []MockItem {
	out := make([]MockItem, len(m.items))
	copy(out, m.items)
	if !m.shown {
		for i := range out {
			out[i].Answer = ""
		}
	}
	return out
}
