// Package importer converts lesson text dumps into vocard word lists.
//
// The input is the text of a ranked word book, one entry per line:
//
//	L1 1 the 그, 저
//	L1 2 be ~이다,
//	있다
//
// An entry starts with a lesson tag and a rank. The first token after the rank
// is the English word and the rest begins the meaning, which may continue on
// the following lines.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/verte-zerg/vocard/internal/model"
)

const promoMarker = "1000englishwords.com"

var entryLine = regexp.MustCompile(`^(L\d+)\s+(\d+)\s+(.+)$`)

// Entry is one ranked word of a lesson.
type Entry struct {
	Lesson  string
	Rank    int
	English string
	Korean  string
}

// Lesson groups entries sharing a lesson tag.
type Lesson struct {
	Name    string
	Entries []Entry
}

// ParseLessons reads lesson text. Lines before the first entry are ignored.
func ParseLessons(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries []Entry
		current *Entry
		meaning []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Korean = strings.Join(meaning, " ")
		entries = append(entries, *current)
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, promoMarker) {
			continue
		}
		m := entryLine.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				meaning = append(meaning, line)
			}
			continue
		}
		flush()
		rank, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rank %q: %w", lineNo, m[2], err)
		}
		fields := strings.Fields(m[3])
		current = &Entry{Lesson: m[1], Rank: rank, English: fields[0]}
		meaning = append([]string(nil), fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return entries, nil
}

// Pairs converts entries into word pairs, dropping entries without a meaning.
func Pairs(entries []Entry) []model.WordPair {
	pairs := make([]model.WordPair, 0, len(entries))
	for _, e := range entries {
		if e.English == "" || e.Korean == "" {
			continue
		}
		pairs = append(pairs, model.WordPair{Word: e.English, Meaning: e.Korean})
	}
	return pairs
}

// GroupByLesson splits entries by lesson tag in order of first appearance.
func GroupByLesson(entries []Entry) []Lesson {
	var lessons []Lesson
	index := map[string]int{}
	for _, e := range entries {
		i, ok := index[e.Lesson]
		if !ok {
			i = len(lessons)
			index[e.Lesson] = i
			lessons = append(lessons, Lesson{Name: e.Lesson})
		}
		lessons[i].Entries = append(lessons[i].Entries, e)
	}
	return lessons
}
