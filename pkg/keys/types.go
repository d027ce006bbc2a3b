// Package keys flattens registered TUI keymaps into a list of bindings and
// detects clashes between them.
package keys

// KeyBinding represents a single key mapping within a keymap section.
type KeyBinding struct {
	Section     string   // e.g., "Navigation", "Reorder"
	Action      string   // e.g., "move_left", "rename"
	Keys        []string // e.g., ["shift+left", "<"]
	Description string   // Human-readable description
	Source      string   // e.g., "pagenav-strip (pagenav)"
}

// Conflict represents a key clash within a single section or mode.
type Conflict struct {
	Key      string       // The conflicting key combination
	Section  string       // The section or mode where the conflict occurs
	Bindings []KeyBinding // All bindings that use this key
}
