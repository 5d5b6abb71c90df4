package control

import (
	"strings"

	"github.com/spectrumkit/spectrum"
	"go.uber.org/zap"
)

type (
	// Focusable is implemented by components that own a keyboard focus
	// target.
	Focusable interface {
		FocusTarget() *Handle
		Focused() bool
	}

	// ValueTrack is implemented by all sliders, whatever their number of
	// handles.
	ValueTrack interface {
		Focusable
		ID() ID
		Track() *Track
		Values() []spectrum.HandleValue
		ValueText() string
		Presentation() *Presentation
	}

	// Presentation holds the presentational state shared by the sliders:
	// label, variant and ticks, and how the value text is formatted.
	Presentation struct {
		Label      string
		TickStep   float64
		TickLabels bool

		variant    string
		track      *Track
		attributes spectrum.AttributeTable
		formatter  *Formatter
		template   *ValueTemplate
	}

	// Slider is a track with a single, unnamed handle.
	Slider struct {
		presentation Presentation
		track        *Track
		handle       *Handle
	}

	// MultiSlider is a track with any number of named handles.
	MultiSlider struct {
		presentation Presentation
		track        *Track
	}

	// RangeSlider is a MultiSlider with the two handles "start" and "end",
	// start bounded above by end and end bounded below by start.
	RangeSlider struct {
		*MultiSlider
	}
)

// Variants are the slider variants; any other variant is reset to "".
var Variants = []string{"filled", "ramp", "range", "tick"}

func (p *Presentation) Variant() string { return p.variant }

// SetVariant sets the variant, resetting unknown variants to the plain
// slider.
func (p *Presentation) SetVariant(v string) {
	table := p.attributes
	if table == nil {
		table = builtinAttributes()
	}
	if v != "" && !table.Allows("slider", "variant", v) {
		Logger().Warn("unknown slider variant", zap.String("variant", v))
		v = ""
	}
	p.variant = v
}

// Effects returns the visual effects of the current state of the slider.
func (p *Presentation) Effects() spectrum.Effects {
	return resolveEffects(p.attributes, "slider", map[string]string{
		"variant":          p.variant,
		"tick-labels":      spectrum.BoolAttr(p.TickLabels),
		"disabled":         spectrum.BoolAttr(p.track.disabled),
		"dragging":         spectrum.BoolAttr(p.track.dragging != nil),
		"handle-highlight": spectrum.BoolAttr(p.track.Focused() != nil),
	})
}

// Ticks returns the ticks of the tick variant, spaced by TickStep or, when
// it is zero, by the step of the track.
func (p *Presentation) Ticks() Ticks {
	if p.variant != "tick" {
		return Ticks{}
	}
	step := p.TickStep
	if step <= 0 {
		step = p.track.Step
	}
	return ComputeTicks(p.track.Min, p.track.Max, step)
}

func (p *Presentation) render(data ValueTextData) string {
	if p.template == nil {
		return data.Text
	}
	data.Label = p.Label
	s, err := p.template.Execute(data)
	if err != nil {
		Logger().Warn("value format failed", zap.Error(err))
		return data.Text
	}
	return s
}

// TickText formats the label of a tick.
func (p *Presentation) TickText(v float64) string { return p.formatter.Number(v, "") }

func (p *Presentation) handleText(h *Handle) string {
	return p.formatter.Number(h.value, h.Format)
}

// Slider methods

func (s *Slider) ID() ID                         { return s.track.id }
func (s *Slider) Track() *Track                  { return s.track }
func (s *Slider) Handle() *Handle                { return s.handle }
func (s *Slider) Presentation() *Presentation    { return &s.presentation }
func (s *Slider) Value() float64                 { return s.handle.value }
func (s *Slider) SetValue(v float64) bool        { return s.handle.SetValue(v) }
func (s *Slider) Values() []spectrum.HandleValue { return s.track.Values() }
func (s *Slider) FocusTarget() *Handle           { return s.handle }
func (s *Slider) Focused() bool                  { return s.handle.focused }

// TrackProgress is the fraction of the track before the handle, i.e. the
// filled part of the track.
func (s *Slider) TrackProgress() float64 { return s.handle.NormalizedPosition() }

func (s *Slider) ValueText() string {
	text := s.presentation.handleText(s.handle)
	return s.presentation.render(ValueTextData{Value: s.handle.value, Values: s.Values(), Text: text})
}

// MultiSlider methods

func (m *MultiSlider) ID() ID                         { return m.track.id }
func (m *MultiSlider) Track() *Track                  { return m.track }
func (m *MultiSlider) Presentation() *Presentation    { return &m.presentation }
func (m *MultiSlider) Values() []spectrum.HandleValue { return m.track.Values() }
func (m *MultiSlider) Focused() bool                  { return m.track.Focused() != nil }

func (m *MultiSlider) Handle(name string) (*Handle, bool) { return m.track.Handle(name) }

// FocusTarget returns the focused handle, or the first handle when none is
// focused.
func (m *MultiSlider) FocusTarget() *Handle {
	if h := m.track.Focused(); h != nil {
		return h
	}
	if len(m.track.handles) == 0 {
		return nil
	}
	return m.track.handles[0]
}

// ValueText joins the texts of the handles with " - ".
func (m *MultiSlider) ValueText() string {
	texts := make([]string, len(m.track.handles))
	for i, h := range m.track.handles {
		texts[i] = m.presentation.handleText(h)
	}
	data := ValueTextData{Values: m.Values(), Text: strings.Join(texts, " - ")}
	if n := len(m.track.handles); n > 0 {
		data.Start = m.track.handles[0].value
		data.End = m.track.handles[n-1].value
		data.Value = data.Start
	}
	return m.presentation.render(data)
}

// RangeSlider methods

func (r RangeSlider) start() *Handle { return r.track.handles[0] }
func (r RangeSlider) end() *Handle   { return r.track.handles[1] }

func (r RangeSlider) Start() *Handle               { return r.start() }
func (r RangeSlider) End() *Handle                 { return r.end() }
func (r RangeSlider) ValueStart() float64          { return r.start().value }
func (r RangeSlider) ValueEnd() float64            { return r.end().value }
func (r RangeSlider) SetValueStart(v float64) bool { return r.start().SetValue(v) }
func (r RangeSlider) SetValueEnd(v float64) bool   { return r.end().SetValue(v) }

// ThumbRatios returns the normalized positions of the two handles, which
// delimit the middle section of the track.
func (r RangeSlider) ThumbRatios() (start, end float64) {
	return r.start().NormalizedPosition(), r.end().NormalizedPosition()
}
