package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/config"
	"github.com/grovetools/core/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovetools/pagenav/pkg/keymap"
	"github.com/grovetools/pagenav/pkg/navconfig"
	"github.com/grovetools/pagenav/pkg/pages"
	"github.com/grovetools/pagenav/pkg/tabstrip"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive tab strip",
		Long: `Start the interactive tab strip.

Drag a tab with the mouse, or focus it and press space to pick it up, the
arrow keys to move it and space again to drop it. Double-click a tab or press
r to rename it; the dashed + between two tabs inserts a page after the left
one.

When stdout is not a terminal the pages are printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd)
		},
	}
}

func runStrip(cmd *cobra.Command) error {
	logger := cli.GetLogger(cmd)
	opts := cli.GetOptions(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if opts.JSONOutput || !isInteractive() {
		logger.Debug("Not a terminal, printing pages")
		return printPages(os.Stdout, cfg, opts.JSONOutput)
	}

	watch, _ := cmd.Flags().GetBool("watch")
	path, _ := cmd.Flags().GetString("config")
	if watch && path == "" {
		return fmt.Errorf("--watch requires --config")
	}

	groveCfg, err := config.LoadDefault()
	if err != nil {
		groveCfg = &config.Config{}
	}
	km := keymap.NewPageNavKeyMap(groveCfg)

	log := logging.NewLogger("pagenav")
	strip, err := tabstrip.New(cfg.Pages, km, tabstrip.Options{
		Settings: stripSettings(cfg),
		ActiveID: cfg.Active,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create tab strip: %w", err)
	}
	defer strip.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var reload <-chan *navconfig.Config
	if watch {
		reload, err = navconfig.Watch(ctx, path, log)
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
	}

	p := tea.NewProgram(newHostModel(strip, km, reload),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}

func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printPages writes the configured pages in order, marking the active one.
func printPages(w io.Writer, cfg *navconfig.Config, asJSON bool) error {
	active := cfg.Active
	if active == "" && len(cfg.Pages) > 0 {
		active = cfg.Pages[0].ID
	}

	if asJSON {
		out := struct {
			Pages  []pages.Page `json:"pages"`
			Active string       `json:"active"`
		}{cfg.Pages, active}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, p := range cfg.Pages {
		marker := " "
		if p.ID == active {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %d. %s (%s)\n", marker, i+1, p.Title, p.ID); err != nil {
			return err
		}
	}
	return nil
}
