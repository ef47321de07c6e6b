// Package main provides the CLI entrypoint for vocard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/vocard/internal/config"
	"github.com/verte-zerg/vocard/internal/importer"
	"github.com/verte-zerg/vocard/internal/logging"
	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/shuffle"
	"github.com/verte-zerg/vocard/internal/stats"
	"github.com/verte-zerg/vocard/internal/store"
	"github.com/verte-zerg/vocard/internal/tui"
	"github.com/verte-zerg/vocard/internal/wordlist"
)

const (
	defaultMode       = "word"
	defaultMockMode   = "meaning"
	defaultTimeoutSec = 10
	defaultLogLevel   = "info"
)

var (
	flagWords      string
	flagLibrary    bool
	flagSeed       int64
	flagTimeoutSec int
	flagLogFile    string
	flagLogLevel   string

	practiceMode string

	importKey   string
	importSplit bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocard",
		Short:         "Terminal vocabulary flashcards",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runMenuCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagWords, "words", config.DefaultWordsDir(), "word list directory or http(s) URL")
	pf.BoolVar(&flagLibrary, "library", false, "use the imported SQLite library instead of --words")
	pf.Int64Var(&flagSeed, "seed", 0, "shuffle seed (0: random)")
	pf.IntVar(&flagTimeoutSec, "timeout", defaultTimeoutSec, "seconds to wait for a word list")
	pf.StringVar(&flagLogFile, "log-file", "", "write diagnostic logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newMockCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newRemoveCmd())

	return rootCmd
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	return runTUI(cmd, "", tui.ActionNone)
}

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice <list>",
		Short: "Drill flashcards from a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			action := tui.ActionPracticeWord
			if cfg.Mode == model.MeaningToWord {
				action = tui.ActionPracticeMeaning
			}
			return runTUI(cmd, args[0], action)
		},
	}
	cmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "prompt side: word (word→meaning) or meaning (meaning→word)")
	return cmd
}

func newMockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mock <list>",
		Short: "Take an ungraded mock test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args[0], tui.ActionMock)
		},
	}
}

func runTUI(cmd *cobra.Command, key string, action tui.Action) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	logger.Info("starting", zap.String("words", sourceLabel(cfg)), zap.String("list", key))
	m := tui.NewModel(tui.Options{
		Source:   src,
		Shuffler: newShuffler(cfg.Seed),
		Logger:   logger,
		Timeout:  cfg.Timeout,
		MockMode: cfg.MockMode,
		Key:      key,
		Action:   action,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui failed", zap.Error(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List available word lists",
		Args:  cobra.NoArgs,
		RunE:  runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	keys, err := src.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to load word lists from %s: %w", sourceLabel(cfg), err)
	}
	if len(keys) == 0 {
		logErrf("No word lists found in %s. Add one with: vocard import <file>\n", sourceLabel(cfg))
		return fmt.Errorf("no word lists found")
	}
	for _, key := range keys {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <list>",
		Short: "Print every word of a list",
		Args:  cobra.ExactArgs(1),
		RunE:  runViewCmd,
	}
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	pairs := wordlist.FetchDeck(ctx, src, args[0], func(msg string) { logErrln(msg) })
	if len(pairs) == 0 {
		return fmt.Errorf("nothing to show for %q", args[0])
	}

	width := 0
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s (%d words)\n\n", args[0], len(pairs)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, line := range stats.PairTable(pairs) {
		if width > 0 {
			line = stats.Truncate(line, width)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CSV list or a lesson text file",
		Long: `Import a word list.

A .csv file is read as word,meaning rows (first line is a header).
Any other file is read as lesson text: "L<lesson> <rank> <word> <meaning...>"
with meanings allowed to continue on following lines.

Lists are written to the words directory with list.json updated, or into the
SQLite library with --library.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
	cmd.Flags().StringVar(&importKey, "key", "", "list key (default: file name without extension)")
	cmd.Flags().BoolVar(&importSplit, "split-lessons", false, "write one list per lesson tag (lesson text only)")
	return cmd
}

type importedList struct {
	key   string
	pairs []model.WordPair
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	lists, err := readImport(args[0], importKey, importSplit)
	if err != nil {
		return err
	}

	if cfg.Library {
		st, err := store.Open(config.DefaultLibraryPath())
		if err != nil {
			return fmt.Errorf("failed to open library: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close library: %v\n", cerr)
			}
		}()
		for _, l := range lists {
			if err := st.SaveList(context.Background(), l.key, l.pairs); err != nil {
				return fmt.Errorf("failed to save %s: %w", l.key, err)
			}
			logErrf("Imported %s (%d words) into the library\n", l.key, len(l.pairs))
		}
		return nil
	}

	if wordlist.IsURL(cfg.Words) {
		return fmt.Errorf("cannot import into a URL; use a local --words directory or --library")
	}
	keys := make([]string, 0, len(lists))
	for _, l := range lists {
		path, err := importer.WriteListFile(cfg.Words, l.key, l.pairs)
		if err != nil {
			return err
		}
		keys = append(keys, l.key)
		logErrf("Wrote %s (%d words)\n", path, len(l.pairs))
	}
	if err := importer.MergeIndex(cfg.Words, keys); err != nil {
		return fmt.Errorf("failed to update %s: %w", wordlist.IndexFile, err)
	}
	return nil
}

func readImport(path, key string, split bool) ([]importedList, error) {
	if key == "" {
		key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		if split {
			return nil, fmt.Errorf("--split-lessons only applies to lesson text files")
		}
		pairs, err := wordlist.LoadPairs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(pairs) == 0 {
			return nil, fmt.Errorf("no word pairs found in %s", path)
		}
		return []importedList{{key: key, pairs: pairs}}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	entries, err := importer.ParseLessons(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if !split {
		pairs := importer.Pairs(entries)
		if len(pairs) == 0 {
			return nil, fmt.Errorf("no lesson entries found in %s", path)
		}
		return []importedList{{key: key, pairs: pairs}}, nil
	}
	var lists []importedList
	for _, lesson := range importer.GroupByLesson(entries) {
		pairs := importer.Pairs(lesson.Entries)
		if len(pairs) == 0 {
			continue
		}
		lists = append(lists, importedList{key: lesson.Name, pairs: pairs})
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("no lesson entries found in %s", path)
	}
	return lists, nil
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <list>",
		Short: "Remove a list from the SQLite library",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := store.Open(config.DefaultLibraryPath())
			if err != nil {
				return fmt.Errorf("failed to open library: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close library: %v\n", cerr)
				}
			}()
			removed, err := st.DeleteList(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove %s: %w", args[0], err)
			}
			if !removed {
				return fmt.Errorf("list %q is not in the library", args[0])
			}
			logErrf("Removed %s\n", args[0])
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func openSource(cfg model.Config) (wordlist.Source, func(), error) {
	if cfg.Library {
		st, err := store.Open(config.DefaultLibraryPath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open library: %w", err)
		}
		return st, func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close library: %v\n", cerr)
			}
		}, nil
	}
	if wordlist.IsURL(cfg.Words) {
		return wordlist.NewHTTPSource(cfg.Words, cfg.Timeout), func() {}, nil
	}
	return wordlist.NewDirSource(cfg.Words), func() {}, nil
}

func sourceLabel(cfg model.Config) string {
	if cfg.Library {
		return config.DefaultLibraryPath()
	}
	return cfg.Words
}

func newShuffler(seed int64) *shuffle.Shuffler {
	if seed == 0 {
		return shuffle.New()
	}
	return shuffle.NewSeeded(seed)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, err
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, err
	}
	merged := config.Overlay(fileCfg, envCfg)

	words := flagWords
	library := flagLibrary
	seed := flagSeed
	timeoutSec := flagTimeoutSec
	logFile := flagLogFile
	logLevel := flagLogLevel
	mode := practiceMode
	if mode == "" {
		mode = defaultMode
	}
	mockMode := defaultMockMode

	applyStringConfig(cmd, "words", &words, merged.Source.Words)
	applyBoolConfig(cmd, "library", &library, merged.Source.Library)
	applyIntConfig(cmd, "timeout", &timeoutSec, merged.Source.TimeoutSec)
	applyInt64Config(cmd, "seed", &seed, merged.Practice.Seed)
	applyStringConfig(cmd, "mode", &mode, merged.Practice.Mode)
	applyStringConfig(cmd, "log-file", &logFile, merged.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, merged.Log.Level)
	if merged.Practice.MockMode != nil {
		mockMode = *merged.Practice.MockMode
	}

	cfg := model.Config{
		Words:    strings.TrimSpace(words),
		Library:  library,
		Seed:     seed,
		Timeout:  time.Duration(timeoutSec) * time.Second,
		LogFile:  strings.TrimSpace(logFile),
		LogLevel: logLevel,
	}
	if cfg.Mode, err = model.ParseMode(mode); err != nil {
		return model.Config{}, fmt.Errorf("invalid practice mode: %w", err)
	}
	if cfg.MockMode, err = model.ParseMode(mockMode); err != nil {
		return model.Config{}, fmt.Errorf("invalid mock mode: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if !cfg.Library && cfg.Words == "" {
		return fmt.Errorf("words location must not be empty")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 seconds")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# vocard configuration
# Uncomment a value to enable it.
# Precedence: CLI flags > VOCARD_* environment (.env honoured) > this file.

[source]
# words = %q   # Word list directory or http(s) URL
# library = false         # Read lists from %s
# timeout-sec = %d        # Seconds to wait for a word list

[practice]
# mode = %q          # Practice prompt side: word or meaning
# mock-mode = %q  # Mock test prompt side: word or meaning
# seed = 0                # Shuffle seed (0: random)

[log]
# file = ""               # Diagnostic log file (empty: disabled)
# level = %q          # debug, info, warn, error
`, config.DefaultWordsDir(), config.DefaultLibraryPath(), defaultTimeoutSec, defaultMode, defaultMockMode, defaultLogLevel)
}
