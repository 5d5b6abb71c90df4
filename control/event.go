package control

import "github.com/spectrumkit/spectrum"

type (
	// EventKind tells what happened to a component.
	EventKind int

	// Event describes a change of a component. For sliders, Handle and Value
	// describe the handle that changed and Values holds the values of all the
	// handles of the track. For pickers, Text holds the selected value.
	Event struct {
		Kind   EventKind
		Source ID
		Handle string
		Value  float64
		Values []spectrum.HandleValue
		Text   string
	}

	// EventHandler delivers events through a channel, a callback or both.
	// Sends to the channel never block: if the channel is full, the event is
	// dropped from the channel but the callback still gets it.
	EventHandler struct {
		Events chan Event
		Handle func(Event)
	}
)

const (
	// InputEvent is the live update fired for every change of value while an
	// interaction is in progress.
	InputEvent EventKind = iota
	// ChangeEvent is the committed change fired once when an interaction
	// ends with a changed value.
	ChangeEvent
	OpenedEvent
	ClosedEvent
)

func (k EventKind) String() string {
	switch k {
	case InputEvent:
		return "input"
	case ChangeEvent:
		return "change"
	case OpenedEvent:
		return "opened"
	case ClosedEvent:
		return "closed"
	}
	return "unknown"
}

func NewEventHandler(buffer int) *EventHandler {
	return &EventHandler{Events: make(chan Event, buffer)}
}

func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}
