// Package keymap contains the tab strip keymap and its registry metadata.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/core/config"
	"github.com/grovetools/core/tui/keymap"
	"github.com/grovetools/core/tui/theme"

	"github.com/grovetools/pagenav/pkg/keys"
)

// PageNavKeyMap defines key bindings for the page tab strip.
type PageNavKeyMap struct {
	keymap.Base
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Grab      key.Binding // Pick up / drop the focused tab
	MoveLeft  key.Binding
	MoveRight key.Binding
	Rename    key.Binding
	AddAfter  key.Binding
	Append    key.Binding
	Menu      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// NewPageNavKeyMap creates a new PageNavKeyMap with user configuration applied.
// Base bindings come from keymap.Load(); only strip bindings are defined here.
func NewPageNavKeyMap(cfg *config.Config) PageNavKeyMap {
	km := PageNavKeyMap{
		Base: keymap.Load(cfg, "pagenav.strip"),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/←", "previous tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/→", "next tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open page"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grab/drop"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("shift+left", "<"),
			key.WithHelp("<", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("shift+right", ">"),
			key.WithHelp(">", "move right"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r", "f2"),
			key.WithHelp("r", "rename"),
		),
		AddAfter: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add page after"),
		),
		Append: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add page at end"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "page menu"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	// Apply TUI-specific overrides from config
	keymap.ApplyTUIOverrides(cfg, "pagenav", "strip", &km)

	return km
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k PageNavKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Grab, k.Rename, k.AddAfter, k.Base.Help, k.Base.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k PageNavKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select},
		// Reordering
		{k.Grab, k.MoveLeft, k.MoveRight},
		{k.Rename, k.AddAfter, k.Append, k.Menu},
		{k.Confirm, k.Cancel},
		{k.Base.Help, k.Base.Quit},
	}
}

// Sections returns grouped sections of key bindings for the full help view.
func (k PageNavKeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.NavigationSection(k.Left, k.Right, k.Select),
		keymap.NewSectionWithIcon("Reorder", theme.IconArrow,
			k.Grab, k.MoveLeft, k.MoveRight,
		),
		keymap.ActionsSection(k.Rename, k.AddAfter, k.Append, k.Menu, k.Confirm, k.Cancel),
		k.Base.SystemSection(),
	}
}

// Modes lists the bindings checked in each interaction state of the strip,
// including the host's help and quit keys where the host intercepts them.
func (k PageNavKeyMap) Modes() []keys.Mode {
	host := []keys.ModeAction{
		{Action: "help", Binding: k.Base.Help},
		{Action: "quit", Binding: k.Base.Quit},
	}
	return []keys.Mode{
		{Name: "normal", Actions: append([]keys.ModeAction{
			{Action: "focus left", Binding: k.Left},
			{Action: "focus right", Binding: k.Right},
			{Action: "select", Binding: k.Select},
			{Action: "grab", Binding: k.Grab},
			{Action: "move left", Binding: k.MoveLeft},
			{Action: "move right", Binding: k.MoveRight},
			{Action: "rename", Binding: k.Rename},
			{Action: "add after", Binding: k.AddAfter},
			{Action: "append", Binding: k.Append},
			{Action: "menu", Binding: k.Menu},
		}, host...)},
		{Name: "dragging", Actions: append([]keys.ModeAction{
			{Action: "cancel", Binding: k.Cancel},
			{Action: "step left", Binding: k.Left},
			{Action: "step left", Binding: k.MoveLeft},
			{Action: "step right", Binding: k.Right},
			{Action: "step right", Binding: k.MoveRight},
			{Action: "drop", Binding: k.Grab},
			{Action: "drop", Binding: k.Select},
		}, host...)},
		{Name: "menu", Actions: append([]keys.ModeAction{
			{Action: "up", Binding: k.Base.Up},
			{Action: "down", Binding: k.Base.Down},
			{Action: "run item", Binding: k.Confirm},
			{Action: "close", Binding: k.Cancel},
			{Action: "close", Binding: k.Menu},
		}, host...)},
		{Name: "renaming", Actions: []keys.ModeAction{
			{Action: "commit", Binding: k.Confirm},
			{Action: "discard", Binding: k.Cancel},
		}},
	}
}

// PageNavKeymapInfo returns the default keymap metadata for the tab strip.
func PageNavKeymapInfo() keymap.TUIInfo {
	return PageNavKeymapInfoFor(nil)
}

// PageNavKeymapInfoFor returns the keymap metadata with cfg's overrides
// applied. Used by `pagenav keys` to list every binding.
func PageNavKeymapInfoFor(cfg *config.Config) keymap.TUIInfo {
	return keymap.MakeTUIInfo(
		"pagenav-strip",
		"pagenav",
		"Reorderable page tab strip",
		NewPageNavKeyMap(cfg),
	)
}
