package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/shuffle"
)

func TestMockTestHidesAnswersUntilRevealed(t *testing.T) {
	m := NewMockTest([]model.WordPair{dog, cat}, model.MeaningToWord, shuffle.NewSeeded(2))
	require.Equal(t, 2, m.Len())
	assert.False(t, m.AnswersShown())
	for i, item := range m.Items() {
		assert.Equal(t, i+1, item.Number)
		assert.Contains(t, []string{"개", "고양이"}, item.Prompt)
		assert.Empty(t, item.Answer)
	}

	revealed := m.Reveal()
	assert.True(t, revealed.AnswersShown())
	assert.False(t, m.AnswersShown())
	for _, item := range revealed.Items() {
		if item.Prompt == "개" {
			assert.Equal(t, "dog", item.Answer)
		} else {
			assert.Equal(t, "cat", item.Answer)
		}
	}
	assert.Equal(t, revealed, revealed.Reveal())
}

func TestMockTestEmptyDeck(t *testing.T) {
	m := NewMockTest(nil, model.MeaningToWord, nil)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Reveal().Items())
}
