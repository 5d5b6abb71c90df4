package gioui

import (
	"image"
	"image/color"
	"strings"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/x/component"
	"github.com/spectrumkit/spectrum/control"
)

// TipArea shows the tooltip of a component next to it. Hovering the area or
// long pressing it reports a pointer enter to the tooltip, which opens if it
// is automatic; the tooltip fades in and out as it opens and closes.
type TipArea struct {
	component.VisibilityAnimation
	Hover     component.InvalidateDeadline
	Press     component.InvalidateDeadline
	LongPress component.InvalidateDeadline
	Exit      component.InvalidateDeadline
	init      bool
	focused   bool
	// HoverDelay is the delay between the cursor entering the tip area
	// and the tooltip appearing.
	HoverDelay time.Duration
	// LongPressDelay is the required duration of a press in the area for
	// it to count as a long press.
	LongPressDelay time.Duration
	// LongPressDuration is the amount of time the tooltip should be displayed
	// after being triggered by a long press.
	LongPressDuration time.Duration
	FadeDuration      time.Duration
	// ExitDuration is the amount of time the tooltip will remain visible at
	// maximum, in case the area was left without a pointer.Leave event.
	ExitDuration time.Duration
}

const (
	tipAreaHoverDelay        = time.Millisecond * 500
	tipAreaLongPressDuration = time.Millisecond * 1500
	tipAreaFadeDuration      = time.Millisecond * 250
	longPressTheshold        = time.Millisecond * 500
	tipAreaExitDelay         = time.Millisecond * 5000
)

func (t *TipArea) setDefaults() {
	if t.init {
		return
	}
	t.init = true
	t.VisibilityAnimation.State = component.Invisible
	if t.HoverDelay == 0 {
		t.HoverDelay = tipAreaHoverDelay
	}
	if t.LongPressDelay == 0 {
		t.LongPressDelay = longPressTheshold
	}
	if t.LongPressDuration == 0 {
		t.LongPressDuration = tipAreaLongPressDuration
	}
	if t.FadeDuration == 0 {
		t.FadeDuration = tipAreaFadeDuration
	}
	if t.ExitDuration == 0 {
		t.ExitDuration = tipAreaExitDelay
	}
	t.VisibilityAnimation.Duration = t.FadeDuration
}

// Layout lays out w with the tooltip tip. focused tells whether the owner of
// the tooltip has the keyboard focus. A nil tip lays out w only.
func (t *TipArea) Layout(gtx C, th *Theme, tip *control.Tooltip, focused bool, w layout.Widget) D {
	if tip == nil {
		return w(gtx)
	}
	t.setDefaults()
	t.update(gtx, tip, focused)
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(w),
		layout.Expanded(func(gtx C) D {
			defer pointer.PassOp{}.Push(gtx.Ops).Pop()
			defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
			event.Op(gtx.Ops, t)
			owner := gtx.Constraints.Min
			gtx.Constraints.Min = image.Point{}
			if t.Visible() {
				macro := op.Record(gtx.Ops)
				tw := Tooltip(th, tip)
				tw.Bg = component.Interpolate(color.NRGBA{}, tw.Bg, t.VisibilityAnimation.Revealed(gtx))
				dims := tw.Layout(gtx)
				call := macro.Stop()
				macro = op.Record(gtx.Ops)
				op.Offset(tipOffset(gtx, tip, owner, dims.Size)).Add(gtx.Ops)
				call.Add(gtx.Ops)
				op.Defer(gtx.Ops, macro.Stop())
			}
			return D{}
		}),
	)
}

func (t *TipArea) update(gtx C, tip *control.Tooltip, focused bool) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Release | pointer.Enter | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		t.Exit.SetTarget(gtx.Now.Add(t.ExitDuration))
		switch e.Kind {
		case pointer.Enter:
			t.Hover.SetTarget(gtx.Now.Add(t.HoverDelay))
		case pointer.Leave:
			t.Hover.ClearTarget()
			tip.PointerLeave()
		case pointer.Press:
			t.Press.SetTarget(gtx.Now.Add(t.LongPressDelay))
		case pointer.Release:
			t.Press.ClearTarget()
		case pointer.Cancel:
			t.Hover.ClearTarget()
			t.Press.ClearTarget()
		}
	}
	if t.Hover.Process(gtx) {
		tip.PointerEnter()
	}
	if t.Press.Process(gtx) {
		tip.PointerEnter()
		t.LongPress.SetTarget(gtx.Now.Add(t.LongPressDuration))
	}
	if t.LongPress.Process(gtx) || t.Exit.Process(gtx) {
		tip.PointerLeave()
	}
	if focused != t.focused {
		t.focused = focused
		if focused {
			tip.FocusIn()
		} else {
			tip.FocusOut()
		}
	}
	switch {
	case tip.Open() && (!t.Visible() || t.VisibilityAnimation.State == component.Disappearing):
		t.VisibilityAnimation.Appear(gtx.Now)
	case !tip.Open() && t.Visible() && t.VisibilityAnimation.State != component.Disappearing:
		t.VisibilityAnimation.Disappear(gtx.Now)
	}
}

// tipOffset places a tooltip of the given size around its owner,
// following the placement and offset of the tooltip.
func tipOffset(gtx C, tip *control.Tooltip, owner, size image.Point) image.Point {
	gap := gtx.Dp(unit.Dp(tip.Offset))
	side, _, _ := strings.Cut(tip.Placement, "-")
	centerX := (owner.X - size.X) / 2
	centerY := (owner.Y - size.Y) / 2
	switch side {
	case "bottom":
		return image.Pt(centerX, owner.Y+gap)
	case "left":
		return image.Pt(-size.X-gap, centerY)
	case "right":
		return image.Pt(owner.X+gap, centerY)
	}
	return image.Pt(centerX, -size.Y-gap)
}

// Tooltip returns the tooltip widget for tip, colored by its variant.
func Tooltip(th *Theme, tip *control.Tooltip) component.Tooltip {
	tw := component.PlatformTooltip(&th.Material, tip.Text)
	colors := th.Tooltip.Colors(tip.Variant())
	tw.Bg = colors.Bg
	tw.Text.Color = colors.Fg
	tw.Text.TextSize = th.Tooltip.TextSize
	return tw
}
