package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum/control"
	"github.com/stretchr/testify/assert"
)

func TestEventHandler(t *testing.T) {
	var none *control.EventHandler
	none.Emit(control.Event{})

	h := control.NewEventHandler(1)
	var called int
	h.Handle = func(control.Event) { called++ }
	h.Emit(control.Event{Kind: control.OpenedEvent})
	h.Emit(control.Event{Kind: control.ClosedEvent})
	assert.Equal(t, 2, called, "the callback gets every event")
	assert.Len(t, h.Events, 1, "a full channel drops events")
	assert.Equal(t, control.OpenedEvent, (<-h.Events).Kind)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "input", control.InputEvent.String())
	assert.Equal(t, "change", control.ChangeEvent.String())
	assert.Equal(t, "closed", control.ClosedEvent.String())
	assert.Equal(t, "unknown", control.EventKind(42).String())
}

func TestKeyByName(t *testing.T) {
	assert.Equal(t, control.PageUp, control.KeyByName("PageUp"))
	assert.Equal(t, control.End, control.KeyByName("End"))
	assert.Equal(t, control.KeyNone, control.KeyByName("Enter"))
}
