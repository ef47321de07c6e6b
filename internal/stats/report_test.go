package stats

import (
	"strings"
	"testing"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/quiz"
)

func TestScoreMessage(t *testing.T) {
	full := quiz.Summary{Attempted: 2, Total: 2, Correct: 1}
	if got := ScoreMessage(full); got != "1 of 2 correct." {
		t.Fatalf("unexpected message: %q", got)
	}
	early := quiz.Summary{Attempted: 1, Total: 2, Correct: 1, EarlyExit: true}
	if got := ScoreMessage(early); got != "Ended early. Attempted 1 of 2, 1 correct." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(quiz.Summary{}); got != 0 {
		t.Fatalf("expected 0 accuracy, got %v", got)
	}
	if got := Accuracy(quiz.Summary{Attempted: 4, Correct: 3}); got != 0.75 {
		t.Fatalf("expected 0.75 accuracy, got %v", got)
	}
}

func TestResultLinesPerfect(t *testing.T) {
	lines := ResultLines(quiz.Summary{Attempted: 3, Total: 3, Correct: 3})
	out := strings.Join(lines, "\n")
	if !strings.Contains(out, PerfectMessage) {
		t.Fatalf("expected perfect message, got %q", out)
	}
	if strings.Contains(out, MissedTitle) {
		t.Fatalf("did not expect missed table, got %q", out)
	}
}

func TestResultLinesMissedTable(t *testing.T) {
	sum := quiz.Summary{
		Attempted: 2,
		Total:     2,
		Correct:   0,
		Missed:    []model.WordPair{{Word: "cat", Meaning: "고양이"}, {Word: "dog", Meaning: "개"}},
	}
	lines := ResultLines(sum)
	out := strings.Join(lines, "\n")
	if !strings.Contains(out, "Missed words (2)") {
		t.Fatalf("expected missed title, got %q", out)
	}
	catIdx := strings.Index(out, "cat")
	dogIdx := strings.Index(out, "dog")
	if catIdx < 0 || dogIdx < 0 || catIdx > dogIdx {
		t.Fatalf("expected missed words in encounter order, got %q", out)
	}
}
