package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/edusense/internal/app"
	"github.com/abhisek/edusense/internal/config"
	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/resources"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/signals"
)

// ErrNotTerminal is returned when the dashboard is launched without a TTY.
var ErrNotTerminal = errors.New("the dashboard needs an interactive terminal; try `edusense timeline` or `edusense export`")

var (
	cfg     *config.Config
	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "edusense",
	Short: "Confusion analytics dashboard for lecture playback",
	Long: `EduSense replays a simulated 60-minute lecture and shows where learners
got confused, with a student view, an instructor heatmap and a settings panel.

Run without a subcommand to open the dashboard. The subcommands print the
same generated data as tables, export it, or serve it over MCP.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runDashboard()
	},
}

// Execute runs the root command.
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle: setup compares against rootCmd.
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default .edusense.yaml in . or $HOME)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Generator seed; 0 picks a random one")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(peaksCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
}

// setup loads the config, applies flag overrides and starts logging. The
// dashboard owns stdout, so it only logs to a file.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-level") {
		c.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		c.Logging.File, _ = flags.GetString("log-file")
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c

	var w io.Writer = os.Stderr
	if cmd == rootCmd {
		w = io.Discard
	}
	if cfg.Logging.File != "" {
		f, err := tea.LogToFile(cfg.Logging.File, "edusense")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}
	logger.Init(cfg.Logging.Level, w)
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// resolveSeed returns the configured seed, drawing a fresh non-zero one when
// none is set so runs can still be reproduced from the logs.
func resolveSeed() uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

func newGenerator() (*signals.Generator, uint64) {
	seed := resolveSeed()
	logger.Debug("generator seed %d", seed)
	return signals.NewSeeded(seed), seed
}

// runDashboard builds a session and launches the TUI.
func runDashboard() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	content, err := resources.Load(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	g, seed := newGenerator()
	sess := session.New(g, content)
	logger.Info("session %s started (seed %d, demo %v, notifications %v)",
		sess.ID, seed, cfg.Demo.Enabled, cfg.NotificationsOn())

	return app.Run(app.Options{Config: cfg, Session: sess})
}
