package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizes = []spectrum.PickerItemSpec{
	{Value: "s", Label: "Small"},
	{Value: "m", Label: "Medium"},
	{Value: "l"},
	{Value: "xl", Label: "Huge", Disabled: true},
}

func newPicker(t *testing.T, spec spectrum.PickerSpec) (*control.Picker, *recorder) {
	t.Helper()
	c, rec := newContainer(t, "")
	if spec.Items == nil {
		spec.Items = sizes
	}
	p, err := c.NewPicker(spec)
	require.NoError(t, err)
	return p, rec
}

func TestPickerToggle(t *testing.T) {
	p, rec := newPicker(t, spectrum.PickerSpec{Label: "Size"})
	assert.Equal(t, control.DefaultPickerPlacement, p.Placement)
	assert.True(t, p.Toggle())
	assert.True(t, p.Open())
	assert.True(t, p.Effects().Has("menu.open"))
	assert.True(t, p.Toggle())
	assert.False(t, p.Open())
	assert.False(t, p.Close(), "already closed")
	assert.Equal(t, []control.EventKind{control.OpenedEvent, control.ClosedEvent}, rec.kinds())
}

func TestPickerSelect(t *testing.T) {
	p, rec := newPicker(t, spectrum.PickerSpec{Label: "Size"})
	text, placeholder := p.ButtonText()
	assert.Equal(t, "Size", text)
	assert.True(t, placeholder)

	p.Toggle()
	require.NoError(t, p.Select("m"))
	assert.Equal(t, "m", p.Value())
	assert.False(t, p.Open(), "selecting closes the menu")
	assert.Equal(t, []control.EventKind{control.OpenedEvent, control.ClosedEvent, control.ChangeEvent}, rec.kinds())
	assert.Equal(t, "m", rec.events[2].Text)
	text, placeholder = p.ButtonText()
	assert.Equal(t, "Medium", text)
	assert.False(t, placeholder)

	rec.reset()
	require.NoError(t, p.Select("m"))
	assert.Empty(t, rec.events, "selecting the same item changes nothing")
	require.NoError(t, p.Select("xl"))
	assert.Equal(t, "m", p.Value(), "disabled items cannot be selected")
	assert.ErrorIs(t, p.Select("xxl"), control.ErrUnknownItem)

	p.SetValue("l")
	text, _ = p.ButtonText()
	assert.Equal(t, "l", text, "items without a label show their value")
	assert.Empty(t, rec.events)
}

func TestPickerReadonly(t *testing.T) {
	p, rec := newPicker(t, spectrum.PickerSpec{Value: "s", Readonly: true})
	assert.False(t, p.Toggle())
	assert.False(t, p.KeyDown(control.ArrowDown))
	require.NoError(t, p.Select("m"))
	assert.Equal(t, "s", p.Value())
	assert.Empty(t, rec.events)
	assert.True(t, p.Effects().Has("button.readonly"))

	p.SetReadonly(false)
	require.True(t, p.Toggle())
	p.SetReadonly(true)
	assert.False(t, p.Close(), "readonly pickers do not close either")
	p.SetDisabled(true)
	assert.False(t, p.Open(), "disabling closes the menu")
}

func TestPickerDisabled(t *testing.T) {
	p, rec := newPicker(t, spectrum.PickerSpec{Disabled: true})
	assert.False(t, p.Toggle())
	assert.False(t, p.KeyDown(control.ArrowUp))
	p.Focus()
	assert.False(t, p.Focused())
	require.NoError(t, p.Select("s"))
	assert.Equal(t, "", p.Value())
	assert.Empty(t, rec.events)
}

func TestPickerKeys(t *testing.T) {
	p, _ := newPicker(t, spectrum.PickerSpec{Quiet: true, Invalid: true})
	assert.False(t, p.KeyDown(control.ArrowLeft))
	assert.True(t, p.KeyDown(control.ArrowDown))
	assert.True(t, p.Open())
	p.Focus()
	assert.Equal(t, []string{"border.focus", "border.invalid", "button.quiet", "menu.open"}, p.Effects().List())
}

func TestPickerUnknownValue(t *testing.T) {
	c, _ := newContainer(t, "")
	_, err := c.NewPicker(spectrum.PickerSpec{Value: "nope", Items: sizes})
	assert.ErrorIs(t, err, control.ErrUnknownItem)
}
