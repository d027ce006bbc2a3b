package keys

import (
	"sort"

	"github.com/grovetools/core/tui/keymap"
)

// Collect extracts the enabled bindings of every given TUI keymap.
func Collect(tuis ...keymap.TUIInfo) []KeyBinding {
	var bindings []KeyBinding

	for _, tui := range tuis {
		for _, section := range tui.Sections {
			for _, b := range section.Bindings {
				if !b.Enabled {
					continue
				}
				bindings = append(bindings, KeyBinding{
					Section:     section.Name,
					Action:      b.Name,
					Keys:        b.Keys,
					Description: b.Description,
					Source:      tui.Name + " (" + tui.Package + ")",
				})
			}
		}
	}
	return bindings
}

// Sections returns the distinct section names in first-seen order.
func Sections(bindings []KeyBinding) []string {
	var names []string
	seen := make(map[string]bool)
	for _, b := range bindings {
		if !seen[b.Section] {
			seen[b.Section] = true
			names = append(names, b.Section)
		}
	}
	return names
}

// SortByAction orders bindings by section, then action name.
func SortByAction(bindings []KeyBinding) {
	sort.SliceStable(bindings, func(i, j int) bool {
		if bindings[i].Section != bindings[j].Section {
			return bindings[i].Section < bindings[j].Section
		}
		return bindings[i].Action < bindings[j].Action
	})
}
