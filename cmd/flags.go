package cmd

import (
	"fmt"
	"time"

	"github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grovetools/pagenav/pkg/navconfig"
	"github.com/grovetools/pagenav/pkg/tabstrip"
)

// addStripFlags registers the flags shared by every command that loads the
// pagenav config.
func addStripFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	// The standard command may already provide --config.
	if flags.Lookup("config") == nil && cmd.Flags().Lookup("config") == nil {
		flags.String("config", "", "Path to a pagenav config file (.toml, .yml)")
	}
	flags.Float64("threshold", 0, "Pointer travel in logical pixels before a press becomes a drag")
	flags.Bool("watch", false, "Reload tuning settings when the config file changes")
}

// changedFlags returns the flags the user set explicitly, by name.
func changedFlags(cmd *cobra.Command) map[string]*pflag.Flag {
	changed := make(map[string]*pflag.Flag)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f
	})
	return changed
}

// loadConfig resolves the effective config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*navconfig.Config, error) {
	log := logging.NewLogger("pagenav")
	path, _ := cmd.Flags().GetString("config")

	cfg, err := navconfig.Load(path, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f, ok := changedFlags(cmd)["threshold"]; ok {
		threshold, err := cmd.Flags().GetFloat64(f.Name)
		if err != nil {
			return nil, err
		}
		cfg.DragThreshold = threshold
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --threshold: %w", err)
		}
		log.WithField("threshold", threshold).Debug("Drag threshold overridden from flag")
	}
	return cfg, nil
}

// stripSettings maps the config's tuning values onto the tab strip.
func stripSettings(c *navconfig.Config) tabstrip.Settings {
	return tabstrip.Settings{
		Threshold:     c.DragThreshold,
		CellWidth:     c.CellWidth,
		CellHeight:    c.CellHeight,
		DoubleClick:   time.Duration(c.DoubleClickMS) * time.Millisecond,
		MaxTitleWidth: c.MaxTitleWidth,
	}
}
