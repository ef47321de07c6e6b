package stats

import (
	"fmt"
	"strconv"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/quiz"
)

// Fixed result messages.
const (
	PerfectMessage = "Perfect score! No missed words."
	MissedTitle    = "Missed words"
)

// ScoreMessage describes a finished session. An early exit reports how many
// cards were attempted out of the whole deck.
func ScoreMessage(sum quiz.Summary) string {
	if sum.EarlyExit {
		return fmt.Sprintf("Ended early. Attempted %d of %d, %d correct.", sum.Attempted, sum.Total, sum.Correct)
	}
	return fmt.Sprintf("%d of %d correct.", sum.Correct, sum.Total)
}

// Accuracy is correct over attempted, 0 when nothing was attempted.
func Accuracy(sum quiz.Summary) float64 {
	if sum.Attempted == 0 {
		return 0
	}
	return float64(sum.Correct) / float64(sum.Attempted)
}

// ResultLines renders the full result: score, accuracy and either the missed
// table or the perfect-score line.
func ResultLines(sum quiz.Summary) []string {
	lines := []string{
		ScoreMessage(sum),
		fmt.Sprintf("Accuracy %.1f%%", Accuracy(sum)*100),
		"",
	}
	if sum.Perfect() {
		return append(lines, PerfectMessage)
	}
	lines = append(lines, fmt.Sprintf("%s (%d)", MissedTitle, len(sum.Missed)))
	return append(lines, PairTable(sum.Missed)...)
}

// PairTable renders numbered word/meaning rows.
func PairTable(pairs []model.WordPair) []string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{strconv.Itoa(i + 1), p.Word, p.Meaning}
	}
	return FormatTable([]string{"#", "Word", "Meaning"}, rows, map[int]bool{0: true})
}
