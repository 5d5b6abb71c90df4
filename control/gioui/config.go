package gioui

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"gioui.org/unit"
	"gopkg.in/yaml.v3"
)

type (
	Preferences struct {
		Window WindowPreferences
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

// ConfigDirName is the directory under os.UserConfigDir where users can put
// files overriding the defaults, e.g. theme.yml.
const ConfigDirName = "spectrum"

//go:embed preferences.yml
var defaultPreferences []byte

// ReadConfig decodes the embedded default into target, then decodes the
// file with the same name in the user config directory, if any, over it.
// The default must decode strictly; a broken default panics. Problems with
// the user file are returned as a warning, target then holds the default.
// target must be a non-nil pointer.
func ReadConfig(defaultYml []byte, filename string, target any) (warn error) {
	dec := yaml.NewDecoder(bytes.NewReader(defaultYml))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		panic(fmt.Errorf("failed to unmarshal default %s: %w", filename, err))
	}
	b, path, err := readUserConfig(filename)
	if b == nil {
		return err
	}
	if err := yaml.Unmarshal(b, target); err != nil {
		// start over from the default so that a half decoded file is not used
		v := reflect.ValueOf(target).Elem()
		v.Set(reflect.Zero(v.Type()))
		dec := yaml.NewDecoder(bytes.NewReader(defaultYml))
		_ = dec.Decode(target)
		return fmt.Errorf("error in %s: %w", path, err)
	}
	return nil
}

// readUserConfig returns the contents of filename in the user config
// directory and its path. A missing file returns nil contents and no error.
func readUserConfig(filename string) ([]byte, string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, "", nil
	}
	path := filepath.Join(configDir, ConfigDirName, filename)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, path, nil
	}
	if err != nil {
		return nil, path, fmt.Errorf("could not read %s: %w", path, err)
	}
	return b, path, nil
}

func MakePreferences() (Preferences, error) {
	var p Preferences
	warn := ReadConfig(defaultPreferences, "preferences.yml", &p)
	return p, warn
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}
