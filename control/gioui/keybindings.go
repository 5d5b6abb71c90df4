package gioui

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gioui.org/io/key"
	"github.com/spectrumkit/spectrum/control"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type KeyBinding struct {
	Key                                        string
	Shortcut, Ctrl, Command, Shift, Alt, Super bool
	Action                                     string
}

//go:embed keybindings.yml
var defaultKeyBindings []byte

// KeyBindings maps key presses to the names of gallery actions.
type KeyBindings struct {
	actions map[key.Event]string
	hints   map[string]string // the text of the last key bound to an action
}

// LoadKeyBindings returns the default key bindings followed by the ones in
// keybindings.yml of the user config directory. A user binding with an
// empty action unbinds the key.
func LoadKeyBindings() (KeyBindings, error) {
	var bindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaultKeyBindings))
	dec.KnownFields(true)
	if err := dec.Decode(&bindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	var warn error
	b, path, err := readUserConfig("keybindings.yml")
	switch {
	case err != nil:
		warn = err
	case b != nil:
		var user []KeyBinding
		if err := yaml.Unmarshal(b, &user); err != nil {
			warn = fmt.Errorf("error in %s: %w", path, err)
		} else {
			bindings = append(bindings, user...)
		}
	}
	return MakeKeyBindings(bindings), warn
}

func MakeKeyBindings(bindings []KeyBinding) KeyBindings {
	ret := KeyBindings{actions: map[key.Event]string{}, hints: map[string]string{}}
	for _, kb := range bindings {
		ev := key.Event{Name: key.Name(kb.Key), Modifiers: kb.modifiers(), State: key.Press}
		if old, ok := ret.actions[ev]; ok {
			delete(ret.hints, old)
		}
		if kb.Action == "" {
			delete(ret.actions, ev)
			continue
		}
		ret.actions[ev] = kb.Action
		ret.hints[kb.Action] = hintText(ev)
	}
	return ret
}

var modifierNames = []struct {
	mod  key.Modifiers
	name string
}{
	{key.ModCtrl, "Ctrl"},
	{key.ModCommand, "Cmd"},
	{key.ModShift, "Shift"},
	{key.ModAlt, "Alt"},
	{key.ModSuper, "Super"},
}

// hintText prints a key press the way menus do, e.g. "Ctrl+Shift+R".
func hintText(ev key.Event) string {
	parts := make([]string, 0, len(modifierNames)+1)
	for _, m := range modifierNames {
		if ev.Modifiers.Contain(m.mod) {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(append(parts, string(ev.Name)), "+")
}

func (kb KeyBinding) modifiers() key.Modifiers {
	var mods key.Modifiers
	for _, m := range []struct {
		set bool
		mod key.Modifiers
	}{
		{kb.Shortcut, key.ModShortcut},
		{kb.Ctrl, key.ModCtrl},
		{kb.Command, key.ModCommand},
		{kb.Shift, key.ModShift},
		{kb.Alt, key.ModAlt},
		{kb.Super, key.ModSuper},
	} {
		if m.set {
			mods |= m.mod
		}
	}
	return mods
}

// Action returns the action bound to a key press, if any.
func (k KeyBindings) Action(e key.Event) (string, bool) {
	if e.State != key.Press {
		return "", false
	}
	a, ok := k.actions[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	if ok {
		control.Logger().Debug("key action", zap.String("action", a))
	}
	return a, ok
}

// Hint returns the key bound to action for showing in the user interface,
// e.g. "Ctrl+O".
func (k KeyBindings) Hint(action string) string { return k.hints[action] }

// Filters returns the key filters for every bound key, for the top level
// handler of the window.
func (k KeyBindings) Filters() []key.Filter {
	ret := make([]key.Filter, 0, len(k.actions))
	for ev := range k.actions {
		ret = append(ret, key.Filter{Name: ev.Name, Required: ev.Modifiers})
	}
	return ret
}
