package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/quiz"
	"github.com/verte-zerg/vocard/internal/stats"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB77E"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardStyle    = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

const hiddenAnswer = "? ? ?"

// View implements tea.Model.
func (m *Model) View() string {
	header := titleStyle.Render(m.title())
	var body string
	switch {
	case m.confirming:
		body = renderConfirm()
	case m.loading:
		body = mutedStyle.Render("Loading…")
	default:
		body = m.renderBody()
	}
	footer := footerStyle.Render(m.help())
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice) + "\n" + footer
	}
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer}, "\n\n")
	}
	footerHeight := lipgloss.Height(footer)
	bodyHeight := maxInt(1, m.height-footerHeight-2)
	placed := body
	if m.screen == screenPractice || m.confirming || m.loading {
		placed = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	}
	return header + "\n\n" + placed + "\n" + footer
}

func (m *Model) title() string {
	switch m.screen {
	case screenView:
		return fmt.Sprintf("vocard · %s · %d words", m.activeKey, len(m.pairs))
	case screenPractice:
		return fmt.Sprintf("vocard · %s · %s", m.activeKey, m.session.Mode().Label())
	case screenMock:
		return fmt.Sprintf("vocard · %s · mock test", m.activeKey)
	case screenResult:
		return fmt.Sprintf("vocard · %s · result", m.activeKey)
	default:
		return "vocard · word lists"
	}
}

func (m *Model) renderBody() string {
	switch m.screen {
	case screenView:
		return m.pairTable.View()
	case screenPractice:
		return renderPractice(m.session)
	case screenMock:
		return m.mockView.View()
	case screenResult:
		return m.resultView.View()
	default:
		if len(m.keys) == 0 {
			return mutedStyle.Render("No word lists found.")
		}
		return m.keyTable.View()
	}
}

func (m *Model) help() string {
	if m.confirming {
		return "y: end now  n: keep going"
	}
	switch m.screen {
	case screenView:
		return "Scroll: up/down  Back: esc  Quit: q"
	case screenPractice:
		switch m.session.State() {
		case quiz.Prompted:
			return "Show answer: space  End early: e"
		case quiz.Revealed:
			return "Correct: y  Incorrect: n  End early: e"
		default:
			return "See results: enter"
		}
	case screenMock:
		if m.mock.AnswersShown() {
			return "Scroll: up/down  Back: esc  Quit: q"
		}
		return "Show answers: space  Scroll: up/down  Back: esc  Quit: q"
	case screenResult:
		if m.session.CorrectCount() < m.session.Position() {
			return "Retry: r  Retry missed: x  Back: esc  Quit: q"
		}
		return "Retry: r  Back: esc  Quit: q"
	default:
		return "View: v  Word→meaning: w  Meaning→word: m  Mock test: t  Reload: r  Quit: q"
	}
}

func renderPractice(s quiz.Session) string {
	if s.State() == quiz.Finished {
		done := fmt.Sprintf("All %d cards graded. %d correct.", s.Total(), s.CorrectCount())
		return cardStyle.Render(promptStyle.Render(done))
	}
	progress := mutedStyle.Render(fmt.Sprintf("Card %d / %d", s.Position()+1, s.Total()))
	answer := hiddenStyle.Render(hiddenAnswer)
	if s.State() == quiz.Revealed {
		answer = answerStyle.Render(s.Answer())
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		progress,
		"",
		promptStyle.Render(s.Prompt()),
		"",
		answer,
	)
	return cardStyle.Render(content)
}

func renderConfirm() string {
	text := "End the test now?\nYour score will count only the cards attempted so far.\n\n(y/n)"
	return modalStyle.Render(text)
}

func renderMock(mt quiz.MockTest) string {
	items := mt.Items()
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, fmt.Sprintf("Write the answer for each of the %d prompts.", mt.Len()), "")
	width := len(strconv.Itoa(len(items)))
	for _, item := range items {
		num := fmt.Sprintf("%*d.", width, item.Number)
		if mt.AnswersShown() {
			lines = append(lines, fmt.Sprintf("%s %s → %s", num, item.Prompt, answerStyle.Render(item.Answer)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", num, item.Prompt))
	}
	return strings.Join(lines, "\n")
}

func renderResult(sum quiz.Summary) string {
	return strings.Join(stats.ResultLines(sum), "\n")
}

func newKeyTable(keys []string) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{{Title: "Word list", Width: 40}}),
		table.WithRows(keyRows(keys)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return t
}

func keyRows(keys []string) []table.Row {
	rows := make([]table.Row, len(keys))
	for i, k := range keys {
		rows[i] = table.Row{k}
	}
	return rows
}

func newPairTable(pairs []model.WordPair, width int) table.Model {
	rows := make([]table.Row, len(pairs))
	for i, p := range pairs {
		rows[i] = table.Row{strconv.Itoa(i + 1), p.Word, p.Meaning}
	}
	return table.New(
		table.WithColumns(pairColumns(pairs, width)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)
}

func pairColumns(pairs []model.WordPair, width int) []table.Column {
	if width <= 0 {
		width = 80
	}
	numWidth := maxInt(1, len(strconv.Itoa(len(pairs))))
	wordWidth := runewidth.StringWidth("Word")
	for _, p := range pairs {
		wordWidth = maxInt(wordWidth, runewidth.StringWidth(p.Word))
	}
	wordWidth = minInt(wordWidth, maxInt(8, width/3))
	meaningWidth := maxInt(8, width-numWidth-wordWidth-6)
	return []table.Column{
		{Title: "#", Width: numWidth},
		{Title: "Word", Width: wordWidth},
		{Title: "Meaning", Width: meaningWidth},
	}
}
