package control

import (
	"fmt"

	"github.com/spectrumkit/spectrum"
	"go.uber.org/zap"
)

type (
	// Container owns a set of components. It assigns each component a
	// sequential ID at construction and wires the components to a shared
	// event handler, attribute table and number formatter.
	Container struct {
		events     *EventHandler
		attributes spectrum.AttributeTable
		formatter  *Formatter
		lastID     ID

		sliders  []ValueTrack
		steppers []*Stepper
		pickers  []*Picker
		tooltips map[ID]*Tooltip
	}

	// Component is anything a Container can hold.
	Component interface {
		ID() ID
	}
)

// NewContainer returns an empty container formatting numbers for locale.
// events may be nil, in which case no events are delivered.
func NewContainer(locale string, events *EventHandler) (*Container, error) {
	f, err := NewFormatter(locale)
	if err != nil {
		return nil, err
	}
	return &Container{
		events:     events,
		attributes: spectrum.DefaultAttributes(),
		formatter:  f,
		tooltips:   map[ID]*Tooltip{},
	}, nil
}

func (c *Container) Events() *EventHandler     { return c.events }
func (c *Container) Formatter() *Formatter     { return c.formatter }
func (c *Container) Sliders() []ValueTrack     { return c.sliders }
func (c *Container) Steppers() []*Stepper      { return c.steppers }
func (c *Container) Pickers() []*Picker        { return c.pickers }
func (c *Container) Tooltip(owner ID) *Tooltip { return c.tooltips[owner] }

// Components returns the sliders, steppers and pickers of the container.
func (c *Container) Components() []Component {
	ret := make([]Component, 0, len(c.sliders)+len(c.steppers)+len(c.pickers))
	for _, s := range c.sliders {
		ret = append(ret, s)
	}
	for _, s := range c.steppers {
		ret = append(ret, s)
	}
	for _, p := range c.pickers {
		ret = append(ret, p)
	}
	return ret
}

func (c *Container) nextID() ID {
	c.lastID++
	return c.lastID
}

// NewSlider builds a slider from its declaration: a *Slider for a single
// handle, a RangeSlider for kind "range" and a *MultiSlider otherwise.
func (c *Container) NewSlider(s spectrum.SliderSpec) (ValueTrack, error) {
	t := NewTrack(s.Min, s.Max, s.Step)
	t.id = c.nextID()
	t.events = c.events
	for _, hs := range s.HandleSpecs() {
		if _, err := t.AddHandle(hs); err != nil {
			return nil, fmt.Errorf("slider %q: %w", s.Label, err)
		}
	}
	p := Presentation{
		Label:      s.Label,
		TickStep:   s.TickStep,
		TickLabels: s.TickLabels,
		track:      t,
		attributes: c.attributes,
		formatter:  c.formatter,
	}
	if s.ValueFormat != "" {
		tmpl, err := ParseValueTemplate(s.ValueFormat, c.formatter)
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", s.Label, err)
		}
		p.template = tmpl
	}
	p.SetVariant(s.Variant)
	t.SetDisabled(s.Disabled)
	var ret ValueTrack
	switch {
	case s.Kind == "range":
		t.fixed = true
		ret = RangeSlider{&MultiSlider{presentation: p, track: t}}
	case len(s.Handles) > 0:
		ret = &MultiSlider{presentation: p, track: t}
	default:
		t.fixed = true
		ret = &Slider{presentation: p, track: t, handle: t.handles[0]}
	}
	c.sliders = append(c.sliders, ret)
	if err := c.attachTooltip(t.id, s.Tooltip); err != nil {
		return nil, err
	}
	Logger().Debug("slider created", zap.Int("id", int(t.id)), zap.String("label", s.Label), zap.Int("handles", len(t.handles)))
	return ret, nil
}

func (c *Container) NewStepper(s spectrum.StepperSpec) (*Stepper, error) {
	st := &Stepper{Label: s.Label, Step: s.Step, Min: s.Min, Max: s.Max}
	st.id = c.nextID()
	st.events = c.events
	st.formatter = c.formatter
	st.attributes = c.attributes
	st.value = st.clamp(s.Value)
	st.SetDisabled(s.Disabled)
	c.steppers = append(c.steppers, st)
	if err := c.attachTooltip(st.id, s.Tooltip); err != nil {
		return nil, err
	}
	return st, nil
}

func (c *Container) NewPicker(s spectrum.PickerSpec) (*Picker, error) {
	p := NewPicker(s.Items)
	p.id = c.nextID()
	p.events = c.events
	p.attributes = c.attributes
	p.Label = s.Label
	p.Quiet = s.Quiet
	p.Invalid = s.Invalid
	if s.Placement != "" {
		p.Placement = s.Placement
	}
	if s.Value != "" {
		if _, ok := p.item(s.Value); !ok {
			return nil, fmt.Errorf("picker %q: %w: %q", s.Label, ErrUnknownItem, s.Value)
		}
		p.value = s.Value
	}
	p.SetDisabled(s.Disabled)
	p.readonly = s.Readonly
	c.pickers = append(c.pickers, p)
	if err := c.attachTooltip(p.id, s.Tooltip); err != nil {
		return nil, err
	}
	return p, nil
}

// NewTooltip attaches a tooltip to the component with the given ID,
// replacing any tooltip it had.
func (c *Container) NewTooltip(owner ID, s spectrum.TooltipSpec) *Tooltip {
	t := NewTooltip(s.Text)
	t.id = c.nextID()
	t.owner = owner
	t.events = c.events
	t.attributes = c.attributes
	t.Auto = s.Auto
	if s.Placement != "" {
		t.Placement = s.Placement
	}
	if s.Offset != 0 {
		t.Offset = float32(s.Offset)
	}
	t.SetVariant(s.Variant)
	c.tooltips[owner] = t
	return t
}

func (c *Container) attachTooltip(owner ID, s *spectrum.TooltipSpec) error {
	if s == nil {
		return nil
	}
	if s.Text == "" {
		return fmt.Errorf("tooltip of component %d has no text", owner)
	}
	c.NewTooltip(owner, *s)
	return nil
}

// Load adds all the components declared by a gallery: sliders first, then
// steppers and pickers.
func (c *Container) Load(g spectrum.Gallery) error {
	for _, s := range g.Sliders {
		if _, err := c.NewSlider(s); err != nil {
			return err
		}
	}
	for _, s := range g.Steppers {
		if _, err := c.NewStepper(s); err != nil {
			return err
		}
	}
	for _, p := range g.Pickers {
		if _, err := c.NewPicker(p); err != nil {
			return err
		}
	}
	return nil
}

// LoadGallery returns a container for the locale of the gallery, holding the
// components the gallery declares.
func LoadGallery(g spectrum.Gallery, events *EventHandler) (*Container, error) {
	c, err := NewContainer(g.Locale, events)
	if err != nil {
		return nil, err
	}
	if err := c.Load(g); err != nil {
		return nil, err
	}
	return c, nil
}
