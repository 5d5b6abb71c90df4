package gioui_test

import (
	"os"
	"path/filepath"
	"testing"

	"gioui.org/io/key"
	"github.com/spectrumkit/spectrum/control/gioui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userConfig points the user config directory to a temporary directory
// holding the given files.
func userConfig(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	if len(files) == 0 {
		return
	}
	cfg := filepath.Join(dir, gioui.ConfigDirName)
	require.NoError(t, os.MkdirAll(cfg, 0o755))
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(cfg, name), []byte(contents), 0o644))
	}
}

func TestDefaultPreferences(t *testing.T) {
	userConfig(t, nil)
	p, warn := gioui.MakePreferences()
	require.NoError(t, warn)
	w, h := p.WindowSize()
	assert.Positive(t, float32(w))
	assert.Positive(t, float32(h))
	assert.False(t, p.Window.Maximized)
}

func TestUserPreferences(t *testing.T) {
	userConfig(t, map[string]string{"preferences.yml": "window:\n  maximized: true\n"})
	p, warn := gioui.MakePreferences()
	require.NoError(t, warn)
	assert.True(t, p.Window.Maximized)
	assert.Equal(t, 640, p.Window.Width, "unset fields keep the default")
}

func TestBrokenUserPreferences(t *testing.T) {
	userConfig(t, map[string]string{"preferences.yml": "window: [1, 2"})
	p, warn := gioui.MakePreferences()
	assert.Error(t, warn)
	assert.Equal(t, 640, p.Window.Width)
}

func TestBrokenUserConfigFallsBackToDefault(t *testing.T) {
	type config struct {
		Values map[string]int
		Name   string
	}
	userConfig(t, map[string]string{"test.yml": "name: user\nvalues: { b: 2, c: three }\n"})
	var c config
	warn := gioui.ReadConfig([]byte("name: default\nvalues: { a: 1 }\n"), "test.yml", &c)
	assert.Error(t, warn)
	assert.Equal(t, config{Values: map[string]int{"a": 1}, Name: "default"}, c)
}

func TestNewTheme(t *testing.T) {
	userConfig(t, map[string]string{"theme.yml": "slider:\n  width: 500\n"})
	th, warn := gioui.NewTheme()
	require.NoError(t, warn)
	assert.Equal(t, float32(500), float32(th.Slider.Width))
	assert.Positive(t, float32(th.Picker.Width))
	assert.NotNil(t, th.Material.Shaper)
	assert.NotEqual(t, th.Tooltip.Neutral, th.Tooltip.Colors("negative"))
	assert.Equal(t, th.Tooltip.Neutral, th.Tooltip.Colors("bogus"))
}

func TestKeyBindings(t *testing.T) {
	kb := gioui.MakeKeyBindings([]gioui.KeyBinding{
		{Key: "O", Ctrl: true, Action: "OpenGallery"},
		{Key: "Q", Ctrl: true, Action: "Quit"},
		{Key: "R", Ctrl: true, Shift: true, Action: "Reload"},
		{Key: "Q", Ctrl: true},
	})
	a, ok := kb.Action(key.Event{Name: "O", Modifiers: key.ModCtrl, State: key.Press})
	assert.True(t, ok)
	assert.Equal(t, "OpenGallery", a)
	_, ok = kb.Action(key.Event{Name: "O", Modifiers: key.ModCtrl, State: key.Release})
	assert.False(t, ok, "only presses trigger actions")
	_, ok = kb.Action(key.Event{Name: "O", State: key.Press})
	assert.False(t, ok)
	_, ok = kb.Action(key.Event{Name: "Q", Modifiers: key.ModCtrl, State: key.Press})
	assert.False(t, ok, "an empty action unbinds the key")

	assert.Equal(t, "Ctrl+O", kb.Hint("OpenGallery"))
	assert.Equal(t, "Ctrl+Shift+R", kb.Hint("Reload"))
	assert.Empty(t, kb.Hint("Quit"))
	assert.Len(t, kb.Filters(), 2)
}

func TestUserKeyBindings(t *testing.T) {
	userConfig(t, map[string]string{"keybindings.yml": "- { key: \"F5\", action: Reload }\n- { key: \"Q\", shortcut: true }\n"})
	kb, warn := gioui.LoadKeyBindings()
	require.NoError(t, warn)
	a, ok := kb.Action(key.Event{Name: key.NameF5, State: key.Press})
	assert.True(t, ok)
	assert.Equal(t, "Reload", a)
	_, ok = kb.Action(key.Event{Name: "Q", Modifiers: key.ModShortcut, State: key.Press})
	assert.False(t, ok)
	assert.NotEmpty(t, kb.Hint("OpenGallery"), "defaults are kept")
}
