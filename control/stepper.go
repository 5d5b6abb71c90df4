package control

import (
	"math"

	"github.com/spectrumkit/spectrum"

	"go.uber.org/zap"
)

// Stepper is a numeric field with buttons that increment and decrement the
// value by Step. Min and Max are optional bounds; the value is not quantized,
// so steppers can hold any value typed into them.
type Stepper struct {
	Label string
	Step  float64
	Min   *float64
	Max   *float64

	id              ID
	value           float64
	disabled        bool
	focused         bool // focus is within the buttons
	keyboardFocused bool // focus is on the field
	events          *EventHandler
	formatter       *Formatter
	attributes      spectrum.AttributeTable
}

func NewStepper(value, step float64) *Stepper {
	s := &Stepper{Step: step}
	s.value = s.clamp(value)
	return s
}

func (s *Stepper) ID() ID                { return s.id }
func (s *Stepper) Value() float64        { return s.value }
func (s *Stepper) Disabled() bool        { return s.disabled }
func (s *Stepper) Focused() bool         { return s.focused }
func (s *Stepper) KeyboardFocused() bool { return s.keyboardFocused }

func (s *Stepper) SetEventHandler(h *EventHandler) { s.events = h }

func (s *Stepper) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.focused = false
		s.keyboardFocused = false
	}
}

// SetValue assigns the value without emitting events.
func (s *Stepper) SetValue(v float64) bool {
	v = s.clamp(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

func (s *Stepper) Increment() bool { return s.stepBy(1) }
func (s *Stepper) Decrement() bool { return s.stepBy(-1) }

// Input sets the value as if typed into the field, emitting an InputEvent and
// a ChangeEvent when it changes.
func (s *Stepper) Input(v float64) bool {
	if s.disabled {
		return false
	}
	if !s.SetValue(v) {
		return false
	}
	s.emit(InputEvent)
	s.emit(ChangeEvent)
	return true
}

func (s *Stepper) stepBy(n float64) bool {
	if s.disabled {
		Logger().Debug("rejected step, stepper is disabled", zap.Int("stepper", int(s.id)))
		return false
	}
	step := s.Step
	if step == 0 {
		step = 1
	}
	return s.Input(s.value + n*step)
}

// Focus and Blur track the focus of the field, FocusIn and FocusOut the
// focus of the buttons.
func (s *Stepper) Focus() {
	if !s.disabled {
		s.keyboardFocused = true
	}
}

func (s *Stepper) Blur() { s.keyboardFocused = false }

func (s *Stepper) FocusIn() {
	if !s.disabled {
		s.focused = true
	}
}

func (s *Stepper) FocusOut() { s.focused = false }

// Text is the value printed with the formatter of the stepper.
func (s *Stepper) Text() string { return s.formatter.Number(s.value, "") }

func (s *Stepper) clamp(v float64) float64 {
	if s.Min != nil {
		v = math.Max(v, *s.Min)
	}
	if s.Max != nil {
		v = math.Min(v, *s.Max)
	}
	return v
}

func (s *Stepper) emit(kind EventKind) {
	s.events.Emit(Event{Kind: kind, Source: s.id, Value: s.value})
}
