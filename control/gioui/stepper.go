package gioui

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"github.com/spectrumkit/spectrum/control"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	StepperState struct {
		dragStartValue float64
		dragStartXY    float32
		clickDecrease  gesture.Click
		clickIncrease  gesture.Click
		buttons        bool // tag of the button area
		tipArea        TipArea
	}

	StepperWidget struct {
		Theme   *Theme
		Style   *StepperStyle
		Stepper *control.Stepper
		State   *StepperState
		Tooltip *control.Tooltip
	}
)

func Stepper(th *Theme, s *control.Stepper, state *StepperState, tip *control.Tooltip) StepperWidget {
	return StepperWidget{Theme: th, Style: &th.Stepper, Stepper: s, State: state, Tooltip: tip}
}

func (s StepperWidget) update(gtx C) {
	st := s.Stepper
	pxPerStep := float32(gtx.Dp(s.Style.UnitsPerStep))
	for {
		ev, ok := gtx.Event(
			pointer.Filter{Target: s.State, Kinds: pointer.Press | pointer.Drag | pointer.Release},
			key.FocusFilter{Target: s.State},
			key.Filter{Focus: s.State, Name: key.NameUpArrow},
			key.Filter{Focus: s.State, Name: key.NameDownArrow},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case pointer.Event:
			switch e.Kind {
			case pointer.Press:
				gtx.Execute(key.FocusCmd{Tag: s.State})
				s.State.dragStartValue = st.Value()
				s.State.dragStartXY = e.Position.X - e.Position.Y
			case pointer.Drag:
				delta := e.Position.X - e.Position.Y - s.State.dragStartXY
				steps := float64(int(delta/pxPerStep + 0.5))
				st.Input(s.State.dragStartValue + steps*st.Step)
			}
		case key.FocusEvent:
			if e.Focus {
				st.Focus()
			} else {
				st.Blur()
			}
		case key.Event:
			if e.State != key.Press {
				continue
			}
			switch e.Name {
			case key.NameUpArrow:
				st.Increment()
			case key.NameDownArrow:
				st.Decrement()
			}
		}
	}
	// the buttons have the focus within while hovered or pressed
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &s.State.buttons, Kinds: pointer.Enter | pointer.Leave | pointer.Cancel})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			if e.Kind == pointer.Enter {
				st.FocusIn()
			} else {
				st.FocusOut()
			}
		}
	}
	for {
		ev, ok := s.State.clickDecrease.Update(gtx.Source)
		if !ok {
			break
		}
		if ev.Kind == gesture.KindClick {
			st.Decrement()
		}
	}
	for {
		ev, ok := s.State.clickIncrease.Update(gtx.Source)
		if !ok {
			break
		}
		if ev.Kind == gesture.KindClick {
			st.Increment()
		}
	}
}

func (s StepperWidget) Layout(gtx C) D {
	return s.State.tipArea.Layout(gtx, s.Theme, s.Tooltip, gtx.Focused(s.State), func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(Label(s.Theme, &s.Style.Label, s.Stepper.Label).Layout),
			layout.Rigid(s.layoutField),
		)
	})
}

func (s StepperWidget) layoutField(gtx C) D {
	s.update(gtx)
	effects := s.Stepper.Effects()
	gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(s.Style.Width), gtx.Dp(s.Style.Height)))
	width := gtx.Dp(s.Style.ButtonWidth)
	height := gtx.Dp(s.Style.Height)
	iconColor := s.Style.IconColor
	if effects.Has("state.disabled") {
		iconColor = s.Style.Disabled
	}
	button := func(click *gesture.Click, icon []byte) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			gtx.Constraints = layout.Exact(image.Pt(width, height))
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
					if effects.Has("buttons.focused") {
						paint.Fill(gtx.Ops, s.Style.ButtonFocus)
					}
					click.Add(gtx.Ops)
					return D{Size: gtx.Constraints.Min}
				},
				func(gtx C) D { return s.Theme.Icon(icon).Layout(gtx, iconColor) },
			)
		})
	}
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			border := s.Style.BorderColor
			if effects.Has("border.focus") {
				border = s.Style.FocusColor
			}
			r := gtx.Dp(s.Style.CornerRadius)
			rect := image.Rectangle{Max: gtx.Constraints.Min}
			paint.FillShape(gtx.Ops, border, clip.UniformRRect(rect, r).Op(gtx.Ops))
			b := gtx.Dp(s.Style.Border)
			inner := image.Rectangle{Min: image.Pt(b, b), Max: rect.Max.Sub(image.Pt(b, b))}
			defer clip.UniformRRect(inner, max(r-b, 0)).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, s.Style.Bg)
			event.Op(gtx.Ops, s.State) // drags and focus, if not hitting the buttons
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx C) D {
					valueColor := s.Style.Value
					if effects.Has("state.disabled") {
						valueColor.Color = s.Style.Disabled
					}
					return widget.Label{Alignment: text.Middle, MaxLines: 1}.Layout(gtx, s.Theme.Material.Shaper, valueColor.Font, valueColor.TextSize, s.Stepper.Text(), colorMaterial(gtx.Ops, valueColor.Color))
				}),
				layout.Rigid(func(gtx C) D {
					dims := layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						button(&s.State.clickDecrease, icons.ContentRemove),
						button(&s.State.clickIncrease, icons.ContentAdd),
					)
					defer pointer.PassOp{}.Push(gtx.Ops).Pop()
					defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
					event.Op(gtx.Ops, &s.State.buttons)
					return dims
				}),
			)
		},
	)
}
