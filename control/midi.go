package control

import (
	"errors"
	"fmt"

	"github.com/spectrumkit/spectrum"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

type (
	// ControlBinding binds a MIDI continuous controller to a handle: the
	// controller value 0..127 is mapped onto the range of the handle through
	// its normalization.
	ControlBinding struct {
		Channel    uint8
		Controller uint8
		Handle     *Handle
	}

	// ControlMap dispatches control change messages to the bound handles.
	ControlMap struct {
		bindings []ControlBinding
	}

	// MIDIInput is a source of MIDI messages, listening to one device at a
	// time.
	MIDIInput interface {
		Messages() <-chan midi.Message
		OpenByPrefix(prefix string) error
		Close()
	}

	// NullMIDIInput is the input of builds without MIDI support. It never
	// delivers messages.
	NullMIDIInput struct{}
)

var ErrNoMIDI = errors.New("MIDI input is not supported by this build")

func (NullMIDIInput) Messages() <-chan midi.Message    { return nil }
func (NullMIDIInput) OpenByPrefix(prefix string) error { return ErrNoMIDI }
func (NullMIDIInput) Close()                           {}

func (m *ControlMap) Bind(channel, controller uint8, h *Handle) {
	m.bindings = append(m.bindings, ControlBinding{Channel: channel, Controller: controller, Handle: h})
}

func (m *ControlMap) Bindings() []ControlBinding { return m.bindings }

// Dispatch applies a control change message to every handle bound to its
// channel and controller. Other messages are ignored. Returns true if any
// value changed.
func (m *ControlMap) Dispatch(msg midi.Message) bool {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) {
		return false
	}
	changed := false
	for _, b := range m.bindings {
		if b.Channel != channel || b.Controller != controller {
			continue
		}
		if b.Apply(value) {
			changed = true
		}
	}
	return changed
}

// Apply moves the handle to the position value/127 along its range, as an
// interaction of its own.
func (b ControlBinding) Apply(value uint8) bool {
	h := b.Handle
	if h == nil || h.track == nil {
		return false
	}
	pos := float64(value) / 127
	ok := h.track.ControllerInput(h, h.ValueAt(pos, true))
	Logger().Debug("controller input", zap.Uint8("channel", b.Channel), zap.Uint8("controller", b.Controller),
		zap.Uint8("value", value), zap.Float64("handle", h.value))
	return ok
}

// BindControls binds the controllers a gallery declares to the handles of
// the sliders of the container, finding the sliders by their labels.
func (c *Container) BindControls(specs []spectrum.ControlSpec) (*ControlMap, error) {
	ret := &ControlMap{}
	for _, s := range specs {
		h, err := c.findHandle(s.Slider, s.Handle)
		if err != nil {
			return nil, fmt.Errorf("controller %d/%d: %w", s.Channel, s.Controller, err)
		}
		ret.Bind(s.Channel, s.Controller, h)
	}
	return ret, nil
}

func (c *Container) findHandle(slider, handle string) (*Handle, error) {
	for _, s := range c.sliders {
		if s.Presentation().Label != slider {
			continue
		}
		if h, ok := s.Track().Handle(handle); ok {
			return h, nil
		}
		return nil, fmt.Errorf("slider %q: %w: %q", slider, ErrUnknownHandle, handle)
	}
	return nil, fmt.Errorf("unknown slider %q", slider)
}
