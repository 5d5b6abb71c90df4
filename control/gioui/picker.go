package gioui

import (
	"image"
	"strings"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spectrumkit/spectrum/control"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	PickerState struct {
		click   gesture.Click
		menu    bool // tag of the popup
		tags    []bool
		hover   int // 1-based index of the highlighted item, 0 for none
		tipArea TipArea
	}

	PickerWidget struct {
		Theme   *Theme
		Style   *PickerStyle
		Picker  *control.Picker
		State   *PickerState
		Tooltip *control.Tooltip
	}
)

var pickerKeys = map[key.Name]control.Key{
	key.NameUpArrow:   control.ArrowUp,
	key.NameDownArrow: control.ArrowDown,
}

func Picker(th *Theme, p *control.Picker, state *PickerState, tip *control.Tooltip) PickerWidget {
	return PickerWidget{Theme: th, Style: &th.Picker, Picker: p, State: state, Tooltip: tip}
}

func (p PickerWidget) update(gtx C) {
	pk := p.Picker
	for {
		ev, ok := p.State.click.Update(gtx.Source)
		if !ok {
			break
		}
		switch ev.Kind {
		case gesture.KindPress:
			gtx.Execute(key.FocusCmd{Tag: p.State})
		case gesture.KindClick:
			pk.Toggle()
		}
	}
	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: p.State},
			key.Filter{Focus: p.State, Name: key.NameUpArrow},
			key.Filter{Focus: p.State, Name: key.NameDownArrow},
			key.Filter{Focus: p.State, Name: key.NameReturn},
			key.Filter{Focus: p.State, Name: key.NameSpace},
			key.Filter{Focus: p.State, Name: key.NameEscape},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.FocusEvent:
			if e.Focus {
				pk.Focus()
			} else {
				pk.Blur()
			}
		case key.Event:
			if e.State != key.Press {
				continue
			}
			p.keyDown(e.Name)
		}
	}
}

func (p PickerWidget) keyDown(name key.Name) {
	pk := p.Picker
	items := pk.Items()
	switch name {
	case key.NameUpArrow, key.NameDownArrow:
		if !pk.Open() {
			pk.KeyDown(pickerKeys[name])
			return
		}
		if len(items) == 0 {
			return
		}
		delta := 1
		if name == key.NameUpArrow {
			delta = -1
		}
		// skip the disabled items
		for range items {
			p.State.hover = (p.State.hover-1+delta+len(items))%len(items) + 1
			if !items[p.State.hover-1].Disabled {
				break
			}
		}
	case key.NameReturn, key.NameSpace:
		if pk.Open() && p.State.hover > 0 && p.State.hover <= len(items) {
			p.selectItem(p.State.hover - 1)
			return
		}
		pk.Toggle()
	case key.NameEscape:
		pk.Close()
	}
}

func (p PickerWidget) selectItem(i int) {
	if err := p.Picker.Select(p.Picker.Items()[i].Value); err != nil {
		control.Logger().Warn("could not select picker item", zap.Error(err))
	}
}

func (p PickerWidget) Layout(gtx C) D {
	return p.State.tipArea.Layout(gtx, p.Theme, p.Tooltip, gtx.Focused(p.State), func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(Label(p.Theme, &p.Style.Label, p.Picker.Label).Layout),
			layout.Rigid(p.layoutButton),
		)
	})
}

func (p PickerWidget) layoutButton(gtx C) D {
	p.update(gtx)
	effects := p.Picker.Effects()
	size := image.Pt(gtx.Dp(p.Style.Width), gtx.Dp(p.Style.Height))
	gtx.Constraints = layout.Exact(size)
	r := gtx.Dp(p.Style.CornerRadius)
	border := p.Style.BorderColor
	switch {
	case effects.Has("border.invalid"):
		border = p.Style.InvalidColor
	case effects.Has("border.focus"):
		border = p.Style.FocusColor
	}
	rect := image.Rectangle{Max: size}
	if effects.Has("button.quiet") {
		b := gtx.Dp(p.Style.Border)
		paint.FillShape(gtx.Ops, border, clip.Rect(image.Rect(0, size.Y-b, size.X, size.Y)).Op())
	} else {
		paint.FillShape(gtx.Ops, border, clip.UniformRRect(rect, r).Op(gtx.Ops))
		b := gtx.Dp(p.Style.Border)
		inner := image.Rectangle{Min: image.Pt(b, b), Max: size.Sub(image.Pt(b, b))}
		paint.FillShape(gtx.Ops, p.Style.Bg, clip.UniformRRect(inner, max(r-b, 0)).Op(gtx.Ops))
	}
	text, placeholder := p.Picker.ButtonText()
	textStyle := p.Style.Text
	if placeholder {
		textStyle = p.Style.Placeholder
	}
	textStyle.Alignment = layout.W
	iconColor := p.Style.IconColor
	if effects.Has("state.disabled") {
		iconColor = p.Style.Disabled
	}
	icon := icons.NavigationExpandMore
	if effects.Has("border.invalid") {
		icon = icons.AlertErrorOutline
	}
	layout.Inset{Left: unit.Dp(8), Right: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, Label(p.Theme, &textStyle, text).Layout),
			layout.Rigid(func(gtx C) D {
				s := gtx.Dp(p.Style.IconSize)
				gtx.Constraints = layout.Exact(image.Pt(s, s))
				return p.Theme.Icon(icon).Layout(gtx, iconColor)
			}),
		)
	})
	area := clip.Rect(rect).Push(gtx.Ops)
	if !effects.Has("state.disabled") && !effects.Has("button.readonly") {
		pointer.CursorPointer.Add(gtx.Ops)
	}
	event.Op(gtx.Ops, p.State)
	p.State.click.Add(gtx.Ops)
	area.Pop()
	if effects.Has("menu.open") {
		p.layoutMenu(gtx, size)
	}
	return D{Size: size}
}

// layoutMenu lays out the menu of the picker below or above the button,
// depending on the placement of the picker.
func (p PickerWidget) layoutMenu(gtx C, button image.Point) {
	items := p.Picker.Items()
	for len(p.State.tags) < len(items) {
		p.State.tags = append(p.State.tags, false)
	}
	for i := range items {
		for {
			ev, ok := gtx.Event(pointer.Filter{Target: &p.State.tags[i], Kinds: pointer.Press | pointer.Enter | pointer.Leave})
			if !ok {
				break
			}
			e, ok := ev.(pointer.Event)
			if !ok {
				continue
			}
			switch e.Kind {
			case pointer.Press:
				p.selectItem(i)
			case pointer.Enter:
				p.State.hover = i + 1
			case pointer.Leave:
				if p.State.hover == i+1 {
					p.State.hover = 0
				}
			}
		}
	}
	if !p.Picker.Open() { // an item was selected above
		return
	}
	itemHeight := gtx.Dp(p.Style.Menu.ItemHeight)
	menuSize := image.Pt(button.X, itemHeight*len(items))
	offset := image.Pt(0, button.Y)
	if strings.HasPrefix(p.Picker.Placement, "top") {
		offset.Y = -menuSize.Y
	}
	defer op.Offset(offset).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(menuSize)
	popup := Popup(p.Theme, &p.State.menu, func() { p.Picker.Close() })
	popup.Layout(gtx, func(gtx C) D {
		for i, item := range items {
			stack := op.Offset(image.Pt(0, i*itemHeight)).Push(gtx.Ops)
			rect := image.Rect(0, 0, menuSize.X, itemHeight)
			switch {
			case item.Value == p.Picker.Value():
				paint.FillShape(gtx.Ops, p.Style.Menu.SelectedColor, clip.Rect(rect).Op())
			case i == p.State.hover-1 && !item.Disabled:
				paint.FillShape(gtx.Ops, p.Style.Menu.HoverColor, clip.Rect(rect).Op())
			}
			style := p.Style.Menu.Text
			if item.Disabled {
				style = p.Style.Menu.Disabled
			}
			style.Alignment = layout.W
			label := item.Label
			if label == "" {
				label = item.Value
			}
			igtx := gtx
			igtx.Constraints = layout.Exact(rect.Max)
			layout.Inset{Left: unit.Dp(8)}.Layout(igtx, Label(p.Theme, &style, label).Layout)
			if !item.Disabled {
				area := clip.Rect(rect).Push(gtx.Ops)
				event.Op(gtx.Ops, &p.State.tags[i])
				area.Pop()
			}
			stack.Pop()
		}
		return D{Size: menuSize}
	})
}
