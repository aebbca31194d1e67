package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xonecas/panes/internal/config"
	"github.com/xonecas/panes/internal/logging"
	"github.com/xonecas/panes/internal/theme"
	"github.com/xonecas/panes/internal/tui"
)

type flags struct {
	config    string
	direction string
	logLevel  string
	logFile   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running panes: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "panes",
		Short: "A resizable, focus-aware split pane in the terminal",
		Long: `panes splits the terminal into two panes, side by side or stacked.

Keys:
  + / ctrl+right   grow the first pane
  - / ctrl+left    shrink the first pane
  tab              switch focus
  1, 2             focus a pane
  q                quit

Settings are read from ~/.config/panes/config.toml unless --config is given.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "split direction: horizontal or vertical")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("direction") {
		cfg.Layout.Direction = f.direction
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Config{Level: level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Logger = logger

	pane, err := cfg.SplitPane()
	if err != nil {
		return err
	}
	log.Info().
		Stringer("direction", pane.Direction()).
		Stringer("size", pane.SplitSize()).
		Uint16("min_size", pane.MinSize()).
		Msg("starting")

	p := tea.NewProgram(tui.New(pane, cfg.Layout.Step, theme.ThemePalette(cfg.UI.ThemeOrDefault())))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
