package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type (
	PopupStyle struct {
		SurfaceColor color.NRGBA
		ShadowColor  color.NRGBA
		Shadow       unit.Dp
		CornerRadius unit.Dp
	}

	// PopupWidget draws its contents over everything else at the current
	// offset. Pressing anywhere outside the popup calls Dismiss.
	PopupWidget struct {
		Style   *PopupStyle
		Tag     event.Tag
		Dismiss func()
	}
)

func Popup(th *Theme, tag event.Tag, dismiss func()) PopupWidget {
	return PopupWidget{Style: &th.Popup, Tag: tag, Dismiss: dismiss}
}

func (p PopupWidget) Layout(gtx C, contents layout.Widget) D {
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: p.Tag, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press && p.Dismiss != nil {
			p.Dismiss()
		}
	}
	bg := func(gtx C) D {
		r := gtx.Dp(p.Style.CornerRadius)
		rrect := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, r)
		shadow := rrect
		s := gtx.Dp(p.Style.Shadow)
		shadow.Rect.Min = shadow.Rect.Min.Sub(image.Pt(s, s))
		shadow.Rect.Max = shadow.Rect.Max.Add(image.Pt(s, s))
		paint.FillShape(gtx.Ops, p.Style.ShadowColor, shadow.Op(gtx.Ops))
		paint.FillShape(gtx.Ops, p.Style.SurfaceColor, rrect.Op(gtx.Ops))
		// presses outside the popup dismiss it, presses inside are eaten
		area := clip.Rect(image.Rect(-1e6, -1e6, 1e6, 1e6)).Push(gtx.Ops)
		event.Op(gtx.Ops, p.Tag)
		area.Pop()
		area = clip.Rect(shadow.Rect).Push(gtx.Ops)
		event.Op(gtx.Ops, &popupBlocker)
		area.Pop()
		return D{Size: gtx.Constraints.Min}
	}
	macro := op.Record(gtx.Ops)
	dims := layout.Stack{}.Layout(gtx,
		layout.Expanded(bg),
		layout.Stacked(contents),
	)
	op.Defer(gtx.Ops, macro.Stop())
	return dims
}

var popupBlocker bool
