package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/pagenav/pkg/navconfig"
)

// newConfigCmd creates the `config` command and its subcommands.
func newConfigCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("config", "Inspect the pagenav configuration")
	cmd.Long = `Inspect the pagenav configuration.

Settings are read from --config when given, otherwise from the 'pagenav'
section of the grove config, and fall back to built-in defaults.`

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			data, err := navconfig.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.Infof("Configuration is valid (%d pages, version %s)", len(cfg.Pages), cfg.Version)
			return nil
		},
	}
}
