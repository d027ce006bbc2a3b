package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/pagenav/pkg/navconfig"
)

// Version is set at build time with -ldflags "-X github.com/grovetools/pagenav/cmd.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version       string `json:"version"`
				ConfigVersion string `json:"config_version"`
				GoVersion     string `json:"go_version"`
			}{Version, navconfig.VersionConstraint, runtime.Version()}

			if cli.GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Printf("pagenav %s (config %s, %s)\n", info.Version, info.ConfigVersion, info.GoVersion)
			return nil
		},
	}
}
