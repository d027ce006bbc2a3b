package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

var rootCmd = cli.NewStandardCommand("pagenav", "Reorderable page tab strip")

func init() {
	rootCmd.Long = `pagenav shows a row of page tabs that can be reordered by dragging them
with the mouse or moving them from the keyboard, renamed inline and extended
with new pages.

When run without a subcommand it starts the interactive strip.`

	addStripFlags(rootCmd)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runStrip(cmd)
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
