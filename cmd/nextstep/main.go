// cmd/nextstep/main.go
//
// This is the entry point for the nextstep CLI.
// Running `nextstep` with no subcommand opens the TUI; the subcommands
// drive the same session from scripts.
//
// Flow:
// 1. Load .env and parse flags
// 2. Prepare .nextstep/ (config, logs, state) and open the session
// 3. Run the TUI or the requested command

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kingrea/nextstep/internal/config"
	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/logbook"
	"github.com/kingrea/nextstep/internal/logging"
	"github.com/kingrea/nextstep/internal/session"
	"github.com/kingrea/nextstep/internal/tui"
)

// skipEnv marks commands that never touch the session.
const skipEnv = "skip-env"

var errNoPlan = errors.New("no roadmap yet; take the quiz with `nextstep` or run `nextstep plan --intake <file>`")

// app is everything a command needs, opened once per invocation.
type app struct {
	projectDir string
	verbose    bool

	cfg     *config.Config
	log     *logging.Logger
	journal *logbook.Logbook
	store   *session.Store
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nextstep",
		Short: "Find your next best money move",
		Long: "nextstep asks six quick questions and builds a ten-step personal finance roadmap. " +
			"Work through it one step at a time: complete, skip, or come back to a step later.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipEnv] == "true" {
				return nil
			}
			return a.open()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
		RunE: func(*cobra.Command, []string) error {
			return a.runTUI()
		},
	}
	root.PersistentFlags().StringVar(&a.projectDir, "dir", "", "project directory holding .nextstep/ (default: current directory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "write debug output to .nextstep/logs/nextstep.log")

	root.AddCommand(
		newPlanCmd(a),
		newStatusCmd(a),
		newCompleteCmd(a),
		newSkipCmd(a),
		newUnskipCmd(a),
		newResetCmd(a),
		newValidateIntakeCmd(),
	)
	return root
}

// open prepares .nextstep/ and restores the session.
func (a *app) open() error {
	dir := a.projectDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve project directory: %w", err)
	}
	a.projectDir = dir

	if err := config.InitAppDir(dir); err != nil {
		return fmt.Errorf("initialize %s: %w", config.AppDir, err)
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(dir, a.verbose)
	if err != nil {
		return err
	}
	a.log = logger

	journal, err := logbook.New(cfg.JourneyLogPath())
	if err != nil {
		a.log.Warnf("journey log unavailable: %v", err)
	}
	a.journal = journal

	opts := []session.Option{session.WithLogger(logger)}
	if path := cfg.RegistryPath(); path != "" {
		program, err := decision.LoadProgramFile(path)
		if err != nil {
			return err
		}
		a.log.Infof("program overlay %s loaded from %s", program.ID, path)
		opts = append(opts, session.WithDefinitions(decision.DefinitionsFor(&program)))
	}

	var repo session.StateStore = session.NewMemoryRepository()
	if cfg.PersistSession() {
		repo = session.NewFileRepository(cfg.SessionPath())
	}
	store, err := session.Open(repo, opts...)
	if err != nil {
		return err
	}
	a.store = store
	return nil
}

func (a *app) close() error {
	if a.log == nil {
		return nil
	}
	// A failed flush is reported but never fails the command.
	if err := a.log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: flush log: %v\n", err)
	}
	return nil
}

func (a *app) runTUI() error {
	model, err := tui.NewApp(a.cfg, a.store,
		tui.WithLogbook(a.journal),
		tui.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
