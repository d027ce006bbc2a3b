package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/config"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/pagenav/pkg/keymap"
	"github.com/grovetools/pagenav/pkg/keys"
)

// newKeysCmd creates the 'pagenav keys' command.
func newKeysCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("keys", "List the tab strip keybindings")

	cmd.Long = `List every keybinding of the tab strip, including overrides from the
[tui.keybindings.pagenav.strip] section of the grove config, and report keys
bound to more than one action in the same section.`

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runKeys(cmd)
	}

	return cmd
}

func runKeys(cmd *cobra.Command) error {
	opts := cli.GetOptions(cmd)

	cfg, err := config.LoadDefault()
	if err != nil {
		cfg = &config.Config{}
	}

	bindings := keys.Collect(keymap.PageNavKeymapInfoFor(cfg))
	conflicts := keys.DetectConflicts(bindings)
	conflicts = append(conflicts, keys.DetectModeConflicts(keymap.NewPageNavKeyMap(cfg).Modes())...)

	if opts.JSONOutput {
		out := struct {
			Bindings  []keys.KeyBinding `json:"bindings"`
			Conflicts []keys.Conflict   `json:"conflicts"`
		}{bindings, conflicts}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	t := theme.DefaultTheme
	re := lipgloss.NewRenderer(os.Stdout)
	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Bold(true).Foreground(lipgloss.Color("255"))

	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, []string{
			b.Section,
			t.Highlight.Render(strings.Join(b.Keys, ", ")),
			b.Description,
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("SECTION", "KEYS", "ACTION").
		Rows(rows...)

	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return baseStyle
	})

	fmt.Println(tbl)

	if len(conflicts) == 0 {
		fmt.Println(t.Success.Render(theme.IconSuccess + " No conflicting keybindings"))
		return nil
	}
	for _, c := range conflicts {
		var actions []string
		for _, b := range c.Bindings {
			actions = append(actions, b.Action)
		}
		fmt.Printf("%s %s in %s: %s\n",
			t.Error.Render(theme.IconError),
			t.Bold.Render(c.Key),
			c.Section,
			strings.Join(actions, ", "),
		)
	}
	return nil
}
