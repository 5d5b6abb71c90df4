package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T, locale string) (*control.Container, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := control.NewContainer(locale, rec.handler())
	require.NoError(t, err)
	return c, rec
}

func TestDefaultSlider(t *testing.T) {
	c, _ := newContainer(t, "")
	v, err := c.NewSlider(spectrum.DefaultSlider())
	require.NoError(t, err)
	s, ok := v.(*control.Slider)
	require.True(t, ok, "a slider without handles has a single handle")
	assert.Equal(t, 10.0, s.Value())
	assert.Equal(t, "10", s.ValueText())
	assert.InDelta(t, 0.1, s.TrackProgress(), 1e-9)
	assert.Equal(t, s.Handle(), s.FocusTarget())
	assert.False(t, s.Focused())
	s.Track().Focus(s.FocusTarget())
	assert.True(t, s.Focused())

	assert.True(t, s.SetValue(250))
	assert.Equal(t, 100.0, s.Value())
}

func TestRangeSlider(t *testing.T) {
	c, rec := newContainer(t, "")
	spec := spectrum.DefaultSlider()
	spec.Kind = "range"
	v, err := c.NewSlider(spec)
	require.NoError(t, err)
	r, ok := v.(control.RangeSlider)
	require.True(t, ok)
	assert.Equal(t, 10.0, r.ValueStart())
	assert.Equal(t, 90.0, r.ValueEnd())
	assert.Equal(t, "10 - 90", r.ValueText())
	start, end := r.ThumbRatios()
	assert.InDelta(t, 0.1, start, 1e-9)
	assert.InDelta(t, 0.9, end, 1e-9)

	r.SetValueStart(95)
	assert.Equal(t, 90.0, r.ValueStart(), "start cannot pass end")
	r.SetValueEnd(5)
	assert.Equal(t, 90.0, r.ValueEnd(), "end cannot pass start")
	r.SetValueStart(30)
	r.SetValueEnd(70)
	assert.Equal(t, []spectrum.HandleValue{{Name: "start", Value: 30}, {Name: "end", Value: 70}}, r.Values())
	assert.Empty(t, rec.events)

	assert.Equal(t, r.Start(), r.FocusTarget())
	r.Track().Focus(r.End())
	assert.Equal(t, r.End(), r.FocusTarget())
	assert.True(t, r.Focused())
}

func TestMultiSliderValueText(t *testing.T) {
	c, _ := newContainer(t, "")
	v, err := c.NewSlider(spectrum.SliderSpec{
		Label: "Times", Min: 0, Max: 24, Step: 0.5,
		Handles: []spectrum.HandleSpec{
			{Name: "wake", Value: 7},
			{Name: "sleep", Value: 22.5, Format: "%.1f h"},
		},
	})
	require.NoError(t, err)
	m, ok := v.(*control.MultiSlider)
	require.True(t, ok)
	assert.Equal(t, "7 - 22.5 h", m.ValueText())
	h, ok := m.Handle("sleep")
	require.True(t, ok)
	assert.Equal(t, 22.5, h.Value())
}

func TestValueFormat(t *testing.T) {
	c, _ := newContainer(t, "")
	spec := spectrum.DefaultSlider()
	spec.Label = "Gain"
	spec.ValueFormat = `{{ .Label | lower }}: {{ number .Value "%.1f" }}`
	v, err := c.NewSlider(spec)
	require.NoError(t, err)
	assert.Equal(t, "gain: 10.0", v.ValueText())

	spec.Kind = "range"
	spec.ValueFormat = `{{ .Start }} to {{ .End }}`
	v, err = c.NewSlider(spec)
	require.NoError(t, err)
	assert.Equal(t, "10 to 90", v.ValueText())

	spec.ValueFormat = `{{ .Start `
	_, err = c.NewSlider(spec)
	assert.Error(t, err)
}

func TestLocaleValueText(t *testing.T) {
	c, _ := newContainer(t, "de")
	spec := spectrum.SliderSpec{Min: 0, Max: 1, Step: 0.25, Value: 0.5}
	v, err := c.NewSlider(spec)
	require.NoError(t, err)
	assert.Equal(t, "0,5", v.ValueText())

	_, err = control.NewContainer("not a locale!", nil)
	assert.Error(t, err)
}

func TestSliderVariants(t *testing.T) {
	c, _ := newContainer(t, "")
	for _, variant := range control.Variants {
		spec := spectrum.DefaultSlider()
		spec.Variant = variant
		v, err := c.NewSlider(spec)
		require.NoError(t, err)
		assert.Equal(t, variant, v.Presentation().Variant())
	}
	spec := spectrum.DefaultSlider()
	spec.Variant = "striped"
	v, err := c.NewSlider(spec)
	require.NoError(t, err)
	assert.Equal(t, "", v.Presentation().Variant(), "unknown variants are reset")
}

func TestSliderEffects(t *testing.T) {
	c, _ := newContainer(t, "")
	spec := spectrum.DefaultSlider()
	spec.Variant = "filled"
	v, err := c.NewSlider(spec)
	require.NoError(t, err)
	p := v.Presentation()
	assert.Equal(t, []string{"track.filled"}, p.Effects().List())

	tr := v.Track()
	require.True(t, tr.PointerDown(v.FocusTarget()))
	assert.True(t, p.Effects().Has("handle.dragging"))
	tr.PointerUp()
	tr.Focus(v.FocusTarget())
	assert.True(t, p.Effects().Has("handle.highlight"))
	tr.SetDisabled(true)
	assert.Equal(t, []string{"state.disabled", "track.filled"}, p.Effects().List())
}

func TestSliderTicks(t *testing.T) {
	c, _ := newContainer(t, "")
	v, err := c.NewSlider(spectrum.SliderSpec{Min: 0, Max: 10, Step: 1, Variant: "tick", TickStep: 2, TickLabels: true})
	require.NoError(t, err)
	p := v.Presentation()
	ticks := p.Ticks()
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, ticks.Labels)
	assert.False(t, ticks.PartialFit)
	assert.True(t, p.Effects().Has("ticks.labels"))
	assert.Equal(t, "8", p.TickText(ticks.Labels[4]))

	p.TickStep = 0
	assert.Len(t, p.Ticks().Labels, 11, "ticks fall back to the step of the track")

	p.SetVariant("")
	assert.Empty(t, p.Ticks().Positions, "only the tick variant has ticks")
}

func TestFixedShapeSliders(t *testing.T) {
	c, rec := newContainer(t, "")
	v, err := c.NewSlider(spectrum.SliderSpec{Kind: "range", Max: 100, Step: 1, ValueStart: 10, ValueEnd: 90})
	require.NoError(t, err)
	r := v.(control.RangeSlider)
	assert.ErrorIs(t, r.Track().RemoveHandle("end"), control.ErrFixedHandles)
	_, err = r.Track().AddHandle(spectrum.HandleSpec{Name: "middle"})
	assert.ErrorIs(t, err, control.ErrFixedHandles)
	assert.Equal(t, 90.0, r.ValueEnd())
	start, end := r.ThumbRatios()
	assert.InDelta(t, 0.1, start, 1e-9)
	assert.InDelta(t, 0.9, end, 1e-9)

	v, err = c.NewSlider(spectrum.DefaultSlider())
	require.NoError(t, err)
	s := v.(*control.Slider)
	assert.ErrorIs(t, s.Track().RemoveHandle(""), control.ErrFixedHandles)
	assert.True(t, s.SetValue(250))
	assert.Equal(t, 100.0, s.Value(), "the handle is still clamped to the track")

	v, err = c.NewSlider(spectrum.SliderSpec{Max: 10, Step: 1, Handles: []spectrum.HandleSpec{{Name: "a"}, {Name: "b"}}})
	require.NoError(t, err)
	assert.NoError(t, v.Track().RemoveHandle("b"), "multi-handle sliders can change shape")
	assert.Empty(t, rec.events)
}

func TestFractionalStepValueText(t *testing.T) {
	c, rec := newContainer(t, "")
	v, err := c.NewSlider(spectrum.SliderSpec{Max: 1, Step: 0.1, Value: 0.3})
	require.NoError(t, err)
	s := v.(*control.Slider)
	assert.Equal(t, 0.3, s.Value())
	assert.Equal(t, "0.3", s.ValueText())

	require.True(t, s.Track().PointerDown(s.Handle()))
	require.True(t, s.Track().PointerMove(0.7, true))
	s.Track().PointerUp()
	assert.Equal(t, 0.7, s.Value())
	require.Len(t, rec.events, 2)
	assert.Equal(t, 0.7, rec.events[1].Value)
	assert.Equal(t, "0.7", s.ValueText())
}
