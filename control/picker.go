package control

import (
	"errors"
	"fmt"

	"github.com/spectrumkit/spectrum"
	"go.uber.org/zap"
)

type (
	// Picker is a button that opens a menu of items, one of which can be
	// selected.
	Picker struct {
		Label     string
		Placement string
		Quiet     bool
		Invalid   bool

		id         ID
		items      []spectrum.PickerItemSpec
		value      string
		open       bool
		disabled   bool
		readonly   bool
		focused    bool
		events     *EventHandler
		attributes spectrum.AttributeTable
	}
)

// DefaultPickerPlacement is where the menu opens relative to the button.
const DefaultPickerPlacement = "bottom-start"

var ErrUnknownItem = errors.New("unknown picker item")

func NewPicker(items []spectrum.PickerItemSpec) *Picker {
	return &Picker{items: items, Placement: DefaultPickerPlacement}
}

func (p *Picker) ID() ID                           { return p.id }
func (p *Picker) Items() []spectrum.PickerItemSpec { return p.items }
func (p *Picker) Value() string                    { return p.value }
func (p *Picker) Open() bool                       { return p.open }
func (p *Picker) Disabled() bool                   { return p.disabled }
func (p *Picker) Readonly() bool                   { return p.readonly }
func (p *Picker) Focused() bool                    { return p.focused }

func (p *Picker) SetEventHandler(h *EventHandler) { p.events = h }
func (p *Picker) SetReadonly(readonly bool)       { p.readonly = readonly }

// SetDisabled disables the picker; a disabled picker closes its menu,
// even when it is readonly.
func (p *Picker) SetDisabled(disabled bool) {
	p.disabled = disabled
	if disabled {
		p.focused = false
		p.setOpen(false)
	}
}

// Toggle flips the menu between open and closed.
func (p *Picker) Toggle() bool { return p.SetOpen(!p.open) }

// SetOpen opens or closes the menu. Readonly pickers ignore it, and
// disabled ones cannot be opened.
func (p *Picker) SetOpen(open bool) bool {
	if p.readonly {
		Logger().Debug("picker is readonly", zap.Int("picker", int(p.id)))
		return false
	}
	if open && p.disabled {
		return false
	}
	return p.setOpen(open)
}

func (p *Picker) Close() bool { return p.SetOpen(false) }

func (p *Picker) setOpen(open bool) bool {
	if p.open == open {
		return false
	}
	p.open = open
	kind := ClosedEvent
	if open {
		kind = OpenedEvent
	}
	p.events.Emit(Event{Kind: kind, Source: p.id, Text: p.value})
	return true
}

// KeyDown opens the menu on ArrowUp and ArrowDown.
func (p *Picker) KeyDown(k Key) bool {
	if k != ArrowUp && k != ArrowDown {
		return false
	}
	return p.SetOpen(true)
}

func (p *Picker) Focus() {
	if !p.disabled {
		p.focused = true
	}
}

func (p *Picker) Blur() { p.focused = false }

// Select selects the item with the given value from the menu, closes the
// menu and emits a ChangeEvent. Disabled items cannot be selected.
func (p *Picker) Select(value string) error {
	if p.disabled || p.readonly {
		return nil
	}
	item, ok := p.item(value)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, value)
	}
	if item.Disabled {
		return nil
	}
	changed := p.value != value
	p.value = value
	p.setOpen(false)
	if changed {
		p.events.Emit(Event{Kind: ChangeEvent, Source: p.id, Text: value})
	}
	return nil
}

// SetValue assigns the value without emitting events. Values not in the
// menu are kept; the button then shows the label of the picker.
func (p *Picker) SetValue(value string) { p.value = value }

func (p *Picker) SelectedItem() (spectrum.PickerItemSpec, bool) {
	if p.value == "" {
		return spectrum.PickerItemSpec{}, false
	}
	return p.item(p.value)
}

// ButtonText returns the label of the selected item, or the label of the
// picker when nothing is selected.
func (p *Picker) ButtonText() (text string, placeholder bool) {
	if item, ok := p.SelectedItem(); ok {
		if item.Label == "" {
			return item.Value, false
		}
		return item.Label, false
	}
	return p.Label, true
}

func (p *Picker) item(value string) (spectrum.PickerItemSpec, bool) {
	for _, it := range p.items {
		if it.Value == value {
			return it, true
		}
	}
	return spectrum.PickerItemSpec{}, false
}
