package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerIDs(t *testing.T) {
	c, _ := newContainer(t, "")
	s, err := c.NewSlider(spectrum.SliderSpec{Label: "A", Max: 10, Step: 1, Tooltip: &spectrum.TooltipSpec{Text: "a"}})
	require.NoError(t, err)
	st, err := c.NewStepper(spectrum.DefaultStepper())
	require.NoError(t, err)
	p, err := c.NewPicker(spectrum.PickerSpec{Items: sizes})
	require.NoError(t, err)

	assert.Equal(t, control.ID(1), s.ID())
	assert.Equal(t, control.ID(2), c.Tooltip(s.ID()).ID(), "tooltips take the next ID")
	assert.Equal(t, control.ID(3), st.ID())
	assert.Equal(t, control.ID(4), p.ID())
	assert.Nil(t, c.Tooltip(st.ID()))

	ids := []control.ID{}
	for _, comp := range c.Components() {
		ids = append(ids, comp.ID())
	}
	assert.Equal(t, []control.ID{1, 3, 4}, ids)
}

func TestLoadGallery(t *testing.T) {
	doc := spectrum.Gallery{
		Locale:   "fr",
		Steppers: []spectrum.StepperSpec{{Label: "N", Step: 1}},
		Sliders:  []spectrum.SliderSpec{spectrum.DefaultSlider(), {Kind: "range", Max: 10, Step: 1, ValueEnd: 10}},
		Pickers:  []spectrum.PickerSpec{{Items: sizes, Value: "s"}},
	}
	c, err := control.LoadGallery(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, "fr", c.Formatter().Locale())
	require.Len(t, c.Sliders(), 2)
	assert.IsType(t, control.RangeSlider{}, c.Sliders()[1])
	require.Len(t, c.Steppers(), 1)
	assert.Equal(t, control.ID(3), c.Steppers()[0].ID(), "sliders are created first")
	assert.Equal(t, "s", c.Pickers()[0].Value())
}

func TestContainerErrors(t *testing.T) {
	c, _ := newContainer(t, "")
	_, err := c.NewStepper(spectrum.StepperSpec{Tooltip: &spectrum.TooltipSpec{}})
	assert.Error(t, err, "a tooltip needs a text")

	_, err = c.NewSlider(spectrum.SliderSpec{Max: 10, ValueFormat: "{{ .Value"})
	assert.Error(t, err)

	_, err = control.LoadGallery(spectrum.Gallery{Locale: "not a locale!"}, nil)
	assert.Error(t, err)

	_, err = control.LoadGallery(spectrum.Gallery{Pickers: []spectrum.PickerSpec{{Value: "x"}}}, nil)
	assert.ErrorIs(t, err, control.ErrUnknownItem)
}

func TestContainerEvents(t *testing.T) {
	h := control.NewEventHandler(4)
	c, err := control.NewContainer("", h)
	require.NoError(t, err)
	st, err := c.NewStepper(spectrum.StepperSpec{Step: 2})
	require.NoError(t, err)
	assert.Same(t, h, c.Events())
	require.True(t, st.Increment())
	ev := <-h.Events
	assert.Equal(t, control.Event{Kind: control.InputEvent, Source: st.ID(), Value: 2}, ev)
	ev = <-h.Events
	assert.Equal(t, control.ChangeEvent, ev.Kind)
}
