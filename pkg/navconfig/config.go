// Package navconfig loads the settings of the page navigator: the initial
// pages, the active page and the gesture and layout tuning of the tab strip.
package navconfig

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

import (
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/grovetools/pagenav/pkg/gesture"
	"github.com/grovetools/pagenav/pkg/pages"
)

// CurrentVersion is written by Defaults and accepted by VersionConstraint.
const CurrentVersion = "1.0"

// VersionConstraint is the range of config versions this build understands.
const VersionConstraint = "^1"

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid pagenav config")
	// ErrUnsupportedFormat is returned for config files that are not TOML or YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config defines the structure for the 'pagenav' section in grove.yml and for
// standalone pagenav config files.
type Config struct {
	Version string       `yaml:"version" toml:"version" json:"version" jsonschema:"description=Config format version,default=1.0"`
	Pages   []pages.Page `yaml:"pages" toml:"pages" json:"pages" jsonschema:"description=Initial pages in display order"`
	Active  string       `yaml:"active,omitempty" toml:"active,omitempty" json:"active,omitempty" jsonschema:"description=Id of the initially active page (defaults to the first)"`

	DragThreshold float64 `yaml:"drag_threshold" toml:"drag_threshold" json:"drag_threshold" jsonschema:"description=Pointer travel in logical pixels before a press becomes a drag,default=8"`
	DoubleClickMS int     `yaml:"double_click_ms" toml:"double_click_ms" json:"double_click_ms" jsonschema:"description=Maximum gap between two clicks that start a rename,default=400"`
	CellWidth     int     `yaml:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"description=Logical pixels per terminal column,default=10"`
	CellHeight    int     `yaml:"cell_height" toml:"cell_height" json:"cell_height" jsonschema:"description=Logical pixels per terminal row,default=20"`
	MaxTitleWidth int     `yaml:"max_title_width" toml:"max_title_width" json:"max_title_width" jsonschema:"description=Titles wider than this many cells are truncated,default=16"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Version: CurrentVersion,
		Pages: []pages.Page{
			{ID: "1", Title: "Info"},
			{ID: "2", Title: "Details"},
			{ID: "3", Title: "Other"},
			{ID: "4", Title: "Ending"},
		},
		Active:        "1",
		DragThreshold: gesture.DefaultThreshold,
		DoubleClickMS: 400,
		CellWidth:     10,
		CellHeight:    20,
		MaxTitleWidth: 16,
	}
}

// applyDefaults fills every unset field from Defaults. An explicit page list
// replaces the default pages, and the default active page with it.
func (c *Config) applyDefaults() {
	d := Defaults()
	if c.Version == "" {
		c.Version = d.Version
	}
	if len(c.Pages) == 0 {
		c.Pages = d.Pages
		if c.Active == "" {
			c.Active = d.Active
		}
	}
	if c.DragThreshold == 0 {
		c.DragThreshold = d.DragThreshold
	}
	if c.DoubleClickMS == 0 {
		c.DoubleClickMS = d.DoubleClickMS
	}
	if c.CellWidth == 0 {
		c.CellWidth = d.CellWidth
	}
	if c.CellHeight == 0 {
		c.CellHeight = d.CellHeight
	}
	if c.MaxTitleWidth == 0 {
		c.MaxTitleWidth = d.MaxTitleWidth
	}
}

// Validate checks the version and the page list and that every tuning value
// is positive.
func (c *Config) Validate() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: version %q: %w", ErrInvalid, c.Version, err)
	}
	constraint, err := semver.NewConstraint(VersionConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: version %s does not satisfy %s", ErrInvalid, v, VersionConstraint)
	}

	if _, err := pages.New(c.Pages); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Active != "" && !containsPage(c.Pages, c.Active) {
		return fmt.Errorf("%w: active page %q: %w", ErrInvalid, c.Active, pages.ErrPageNotFound)
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"drag_threshold", c.DragThreshold},
		{"double_click_ms", float64(c.DoubleClickMS)},
		{"cell_width", float64(c.CellWidth)},
		{"cell_height", float64(c.CellHeight)},
		{"max_title_width", float64(c.MaxTitleWidth)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}
	return nil
}

// DoubleClick returns the double click window.
func (c *Config) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMS) * time.Millisecond
}

// WithSettings returns a copy of c carrying the tuning values of other. Pages
// and the active page are kept, since a running navigator owns those.
func (c *Config) WithSettings(other *Config) *Config {
	out := *c
	out.Pages = append([]pages.Page(nil), c.Pages...)
	out.DragThreshold = other.DragThreshold
	out.DoubleClickMS = other.DoubleClickMS
	out.CellWidth = other.CellWidth
	out.CellHeight = other.CellHeight
	out.MaxTitleWidth = other.MaxTitleWidth
	return &out
}

func containsPage(ps []pages.Page, id string) bool {
	for _, p := range ps {
		if p.ID == id {
			return true
		}
	}
	return false
}
