package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTooltipDefaults(t *testing.T) {
	tip := control.NewTooltip("hello")
	assert.Equal(t, control.DefaultTooltipPlacement, tip.Placement)
	assert.Equal(t, control.DefaultTooltipOffset, tip.Offset)
	assert.False(t, tip.Open())
	for _, v := range control.TooltipVariants {
		tip.SetVariant(v)
		assert.Equal(t, v, tip.Variant())
	}
	tip.SetVariant("warning")
	assert.Equal(t, "", tip.Variant(), "unknown variants are reset")
}

func TestAutoTooltip(t *testing.T) {
	c, rec := newContainer(t, "")
	s, err := c.NewStepper(spectrum.StepperSpec{Step: 1, Tooltip: &spectrum.TooltipSpec{Text: "tip", Auto: true, Variant: "info"}})
	require.NoError(t, err)
	tip := c.Tooltip(s.ID())
	require.NotNil(t, tip)
	assert.Equal(t, s.ID(), tip.Owner())

	tip.PointerEnter()
	assert.True(t, tip.Open())
	tip.FocusIn()
	tip.PointerLeave()
	assert.True(t, tip.Open(), "focus keeps the tooltip open")
	tip.FocusOut()
	assert.False(t, tip.Open())
	assert.Equal(t, []control.EventKind{control.OpenedEvent, control.ClosedEvent}, rec.kinds())
	assert.Equal(t, tip.ID(), rec.events[0].Source)
	assert.Equal(t, []string{"tip.info"}, tip.Effects().List())
}

func TestManualTooltip(t *testing.T) {
	tip := control.NewTooltip("hello")
	tip.PointerEnter()
	assert.False(t, tip.Open(), "only automatic tooltips follow the pointer")
	tip.SetOpen(true)
	assert.True(t, tip.Open())
	assert.True(t, tip.Effects().Has("tip.open"))
}
