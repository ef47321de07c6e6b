// Package tui provides the Bubble Tea flashcard interface.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/quiz"
	"github.com/verte-zerg/vocard/internal/shuffle"
	"github.com/verte-zerg/vocard/internal/wordlist"
)

type screen int

const (
	screenMenu screen = iota
	screenView
	screenPractice
	screenMock
	screenResult
)

// Action is what to do with a word list once it is loaded.
type Action int

const (
	ActionNone Action = iota
	ActionView
	ActionPracticeWord
	ActionPracticeMeaning
	ActionMock
)

const noticeRevealed = "Answers revealed. Grade yourself."

// Options configures a Model.
type Options struct {
	Source   wordlist.Source
	Shuffler *shuffle.Shuffler
	Logger   *zap.Logger
	// Timeout bounds each source request. Zero means no deadline.
	Timeout  time.Duration
	MockMode model.PracticeMode
	// Key and Action open a list directly instead of waiting in the menu.
	Key    string
	Action Action
}

type keysLoadedMsg struct {
	keys []string
	err  error
}

type deckLoadedMsg struct {
	key    string
	action Action
	pairs  []model.WordPair
	notice string
}

// Model implements the Bubble Tea flashcard UI.
type Model struct {
	src      wordlist.Source
	engine   *quiz.Engine
	shuffler *shuffle.Shuffler
	logger   *zap.Logger
	timeout  time.Duration
	mockMode model.PracticeMode

	initialKey    string
	initialAction Action

	width  int
	height int

	screen  screen
	loading bool
	notice  string

	keys     []string
	keyTable table.Model

	activeKey  string
	pairs      []model.WordPair
	pairTable  table.Model
	session    quiz.Session
	confirming bool
	mock       quiz.MockTest
	mockView   viewport.Model
	resultView viewport.Model
}

// NewModel constructs the flashcard TUI model.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sh := opts.Shuffler
	if sh == nil {
		sh = shuffle.New()
	}
	m := &Model{
		src:           opts.Source,
		engine:        quiz.NewEngine(sh),
		shuffler:      sh,
		logger:        logger,
		timeout:       opts.Timeout,
		mockMode:      opts.MockMode,
		initialKey:    opts.Key,
		initialAction: opts.Action,
		loading:       true,
		keyTable:      newKeyTable(nil),
		pairTable:     newPairTable(nil, 80),
		mockView:      viewport.New(80, 20),
		resultView:    viewport.New(80, 20),
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialKey != "" && m.initialAction != ActionNone {
		return tea.Batch(m.loadKeys(), m.loadDeck(m.initialKey, m.initialAction))
	}
	return m.loadKeys()
}

func (m *Model) context() (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m *Model) loadKeys() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.context()
		defer cancel()
		keys, err := m.src.Keys(ctx)
		return keysLoadedMsg{keys: keys, err: err}
	}
}

func (m *Model) loadDeck(key string, action Action) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		ctx, cancel := m.context()
		defer cancel()
		var notice string
		pairs := wordlist.FetchDeck(ctx, m.src, key, func(msg string) { notice = msg })
		return deckLoadedMsg{key: key, action: action, pairs: pairs, notice: notice}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case keysLoadedMsg:
		m.handleKeys(msg)
		return m, nil
	case deckLoadedMsg:
		m.handleDeck(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch m.screen {
		case screenView:
			return m.updateView(msg)
		case screenPractice:
			return m.updatePractice(msg)
		case screenMock:
			return m.updateMock(msg)
		case screenResult:
			return m.updateResult(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m *Model) handleKeys(msg keysLoadedMsg) {
	if m.initialKey == "" {
		m.loading = false
	}
	if msg.err != nil {
		m.logger.Warn("failed to load word list index", zap.Error(msg.err))
		m.notice = fmt.Sprintf("Could not load the word list index: %v", msg.err)
		m.keys = nil
	} else {
		m.keys = msg.keys
	}
	m.keyTable.SetRows(keyRows(m.keys))
}

func (m *Model) handleDeck(msg deckLoadedMsg) {
	m.loading = false
	m.initialKey = ""
	if len(msg.pairs) == 0 {
		m.logger.Warn("deck not started", zap.String("key", msg.key), zap.String("notice", msg.notice))
		m.notice = msg.notice
		m.screen = screenMenu
		return
	}
	m.notice = ""
	m.activeKey = msg.key
	m.pairs = msg.pairs
	switch msg.action {
	case ActionView:
		m.pairTable = newPairTable(m.pairs, m.width)
		m.updateLayout()
		m.screen = screenView
	case ActionPracticeWord:
		m.startPractice(m.pairs, model.WordToMeaning)
	case ActionPracticeMeaning:
		m.startPractice(m.pairs, model.MeaningToWord)
	case ActionMock:
		m.mock = quiz.NewMockTest(m.pairs, m.mockMode, m.shuffler)
		m.mockView.SetContent(renderMock(m.mock))
		m.mockView.GotoTop()
		m.screen = screenMock
		m.logger.Info("mock test started", zap.String("key", msg.key), zap.Int("cards", m.mock.Len()))
	}
}

func (m *Model) startPractice(deck []model.WordPair, mode model.PracticeMode) {
	m.session = m.engine.Start(deck, mode)
	if m.session.State() == quiz.Idle {
		m.screen = screenMenu
		return
	}
	m.confirming = false
	m.screen = screenPractice
	m.logger.Info("practice started",
		zap.String("key", m.activeKey),
		zap.String("mode", mode.String()),
		zap.Int("cards", m.session.Total()),
	)
}

func (m *Model) selectedKey() (string, bool) {
	row := m.keyTable.SelectedRow()
	if len(row) == 0 {
		return "", false
	}
	return row[0], true
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	var action Action
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.notice = ""
		return m, m.loadKeys()
	case "v":
		action = ActionView
	case "w", "enter":
		action = ActionPracticeWord
	case "m":
		action = ActionPracticeMeaning
	case "t":
		action = ActionMock
	default:
		var cmd tea.Cmd
		m.keyTable, cmd = m.keyTable.Update(msg)
		return m, cmd
	}
	key, ok := m.selectedKey()
	if !ok {
		m.notice = "No word lists found."
		return m, nil
	}
	m.notice = ""
	return m, m.loadDeck(key, action)
}

func (m *Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.backToMenu()
		return m, nil
	}
	var cmd tea.Cmd
	m.pairTable, cmd = m.pairTable.Update(msg)
	return m, cmd
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.session.State() {
	case quiz.Prompted:
		switch key {
		case " ", "enter":
			m.session = m.session.Reveal()
		case "e", "esc":
			m.confirming = true
		}
	case quiz.Revealed:
		switch key {
		case "y", "1":
			m.session = m.session.Grade(true)
		case "n", "2":
			m.session = m.session.Grade(false)
		case "e", "esc":
			m.confirming = true
		}
	case quiz.Finished:
		if key == "enter" || key == "esc" {
			m.showResult()
		}
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		m.session = m.session.EndEarly()
		m.showResult()
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m *Model) showResult() {
	sum, ok := m.session.Summary()
	if !ok {
		return
	}
	m.logger.Info("practice finished",
		zap.String("key", m.activeKey),
		zap.Bool("ended_early", m.session.EndedEarly()),
		zap.Int("attempted", m.session.Position()),
		zap.Int("correct", m.session.CorrectCount()),
		zap.Int("total", m.session.Total()),
	)
	m.resultView.SetContent(renderResult(sum))
	m.resultView.GotoTop()
	m.screen = screenResult
}

func (m *Model) updateMock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.backToMenu()
		return m, nil
	case " ", "enter":
		if !m.mock.AnswersShown() {
			m.mock = m.mock.Reveal()
			m.mockView.SetContent(renderMock(m.mock))
			m.notice = noticeRevealed
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.mockView, cmd = m.mockView.Update(msg)
	return m, cmd
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.backToMenu()
		return m, nil
	case "r":
		m.startPractice(m.pairs, m.session.Mode())
		return m, nil
	case "x":
		if missed := m.session.Missed(); len(missed) > 0 {
			m.startPractice(missed, m.session.Mode())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.resultView, cmd = m.resultView.Update(msg)
	return m, cmd
}

func (m *Model) backToMenu() {
	m.screen = screenMenu
	m.session = quiz.Session{}
	m.mock = quiz.MockTest{}
	m.confirming = false
	m.notice = ""
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := maxInt(3, m.height-4)
	m.keyTable.SetHeight(bodyHeight)
	m.keyTable.SetWidth(minInt(m.width, 60))
	m.pairTable.SetColumns(pairColumns(m.pairs, m.width))
	m.pairTable.SetHeight(bodyHeight)
	m.pairTable.SetWidth(m.width)
	m.mockView.Width = m.width
	m.mockView.Height = bodyHeight
	m.resultView.Width = m.width
	m.resultView.Height = bodyHeight
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
