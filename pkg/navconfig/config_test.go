package navconfig

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/pagenav/pkg/pages"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Pages, 4)
	assert.Equal(t, "Info", c.Pages[0].Title)
	assert.Equal(t, 8.0, c.DragThreshold)
	assert.Equal(t, 400*time.Millisecond, c.DoubleClick())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errIs  error
	}{
		{"defaults", func(*Config) {}, nil},
		{"version 1.x", func(c *Config) { c.Version = "1.7.2" }, nil},
		{"version 2", func(c *Config) { c.Version = "2.0" }, ErrInvalid},
		{"bad version", func(c *Config) { c.Version = "one" }, ErrInvalid},
		{"no pages", func(c *Config) { c.Pages = nil }, pages.ErrNoPages},
		{"duplicate ids", func(c *Config) { c.Pages[1].ID = "1" }, pages.ErrDuplicateID},
		{"empty id", func(c *Config) { c.Pages[2].ID = "" }, pages.ErrEmptyID},
		{"unknown active", func(c *Config) { c.Active = "9" }, pages.ErrPageNotFound},
		{"no active", func(c *Config) { c.Active = "" }, nil},
		{"zero threshold", func(c *Config) { c.DragThreshold = 0 }, ErrInvalid},
		{"negative cell", func(c *Config) { c.CellHeight = -1 }, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "pagenav.toml", `
version = "1.0"
active = "b"
drag_threshold = 12.5
colour = "green"

[[pages]]
id = "a"
title = "Intro"

[[pages]]
id = "b"
title = "Body"
`)

	logger, hook := test.NewNullLogger()
	c, err := LoadFile(path, logrus.NewEntry(logger))
	require.NoError(t, err)

	assert.Equal(t, []pages.Page{{ID: "a", Title: "Intro"}, {ID: "b", Title: "Body"}}, c.Pages)
	assert.Equal(t, "b", c.Active)
	assert.Equal(t, 12.5, c.DragThreshold)
	assert.Equal(t, 400, c.DoubleClickMS, "unset fields take defaults")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "colour", hook.LastEntry().Data["key"])
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "pagenav.yml", `
pages:
  - id: x
    title: Only
cell_width: 8
`)

	c, err := LoadFile(path, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []pages.Page{{ID: "x", Title: "Only"}}, c.Pages)
	assert.Equal(t, "", c.Active, "custom pages do not inherit the default active id")
	assert.Equal(t, 8, c.CellWidth)
	assert.Equal(t, CurrentVersion, c.Version)
}

func TestLoadFile_YAMLUnknownKey(t *testing.T) {
	path := writeFile(t, "pagenav.yaml", "colour: green\n")
	_, err := LoadFile(path, quietLogger())
	assert.Error(t, err)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(writeFile(t, "pagenav.json", "{}"), quietLogger())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"), quietLogger())
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.toml", `version = "3.0"`), quietLogger())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	path := writeFile(t, "pagenav.toml", "double_click_ms = 250\n")
	c, err := Load(path, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 250, c.DoubleClickMS)
	assert.Len(t, c.Pages, 4)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Defaults())
	require.NoError(t, err)

	var decoded Config
	_, err = toml.Decode(string(data), &decoded)
	require.NoError(t, err)
	assert.Equal(t, *Defaults(), decoded)
}

func TestWithSettings(t *testing.T) {
	base := Defaults()
	other := Defaults()
	other.Pages = []pages.Page{{ID: "z", Title: "Z"}}
	other.DragThreshold = 20
	other.MaxTitleWidth = 4

	got := base.WithSettings(other)
	assert.Equal(t, base.Pages, got.Pages)
	assert.Equal(t, 20.0, got.DragThreshold)
	assert.Equal(t, 4, got.MaxTitleWidth)
	assert.Equal(t, 8.0, base.DragThreshold, "receiver is not modified")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Pagenav Configuration", doc["title"])
	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "drag_threshold")
	assert.Contains(t, props, "pages")
	assert.NotContains(t, doc, "required")
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "pagenav.toml", "drag_threshold = 8.0\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path, quietLogger())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("drag_threshold = 30.0\n"), 0644))

	select {
	case c := <-updates:
		assert.Equal(t, 30.0, c.DragThreshold)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the file changed")
	}

	cancel()
	for range updates {
	}
}
