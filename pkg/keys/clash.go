package keys

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
)

// ModeAction is one outcome a mode dispatches. Several bindings may share an
// action, e.g. both left-arrow bindings step a drag left.
type ModeAction struct {
	Action  string
	Binding key.Binding
}

// Mode is the set of actions checked while the strip is in one interaction
// state (normal, dragging, menu, renaming).
type Mode struct {
	Name    string
	Actions []ModeAction
}

// DetectConflicts finds overlapping key combinations within the same section.
func DetectConflicts(bindings []KeyBinding) []Conflict {
	groups := make(map[string][]KeyBinding)
	for _, b := range bindings {
		groups[b.Section] = append(groups[b.Section], b)
	}
	return clashes(groups)
}

// DetectModeConflicts finds keys that lead to two different actions within a
// single mode. Only the first matching binding runs, so the other is
// unreachable. Keys shared across modes are fine.
func DetectModeConflicts(modes []Mode) []Conflict {
	groups := make(map[string][]KeyBinding)
	for _, m := range modes {
		for _, a := range m.Actions {
			if !a.Binding.Enabled() {
				continue
			}
			groups[m.Name] = append(groups[m.Name], KeyBinding{
				Section:     m.Name,
				Action:      a.Action,
				Keys:        a.Binding.Keys(),
				Description: a.Binding.Help().Desc,
			})
		}
	}
	return clashes(groups)
}

// clashes reports, per group, every key used by more than one distinct action.
func clashes(groups map[string][]KeyBinding) []Conflict {
	var conflicts []Conflict

	for group, bindings := range groups {
		keyUsage := make(map[string][]KeyBinding)
		for _, b := range bindings {
			for _, keyCombo := range b.Keys {
				if keyCombo == "" {
					continue
				}
				keyUsage[keyCombo] = append(keyUsage[keyCombo], b)
			}
		}

		for keyCombo, usages := range keyUsage {
			seen := make(map[string]bool)
			var unique []KeyBinding
			for _, u := range usages {
				if !seen[u.Action] {
					seen[u.Action] = true
					unique = append(unique, u)
				}
			}
			if len(unique) > 1 {
				conflicts = append(conflicts, Conflict{Key: keyCombo, Section: group, Bindings: unique})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Section != conflicts[j].Section {
			return conflicts[i].Section < conflicts[j].Section
		}
		return conflicts[i].Key < conflicts[j].Key
	})
	return conflicts
}
