package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/pagenav/pkg/navconfig"
)

// newSchemaCmd creates the `schema` command.
func newSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("schema", "Print the JSON schema of the pagenav config")
	cmd.Long = `Print the JSON schema of the 'pagenav' config section.

The schema enables IDE autocompletion and validation for grove.yml and for
standalone pagenav config files.

Example usage:
  pagenav schema > pagenav.schema.json`
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := navconfig.Schema()
		if err != nil {
			return fmt.Errorf("could not generate schema: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	return cmd
}
