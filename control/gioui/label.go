package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	LabelStyle struct {
		Color      color.NRGBA
		ShadeColor color.NRGBA
		Alignment  layout.Direction
		Font       font.Font
		TextSize   unit.Sp
	}

	LabelWidget struct {
		Text   string
		Shaper *text.Shaper
		Style  *LabelStyle
	}
)

func Label(th *Theme, style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{Text: txt, Shaper: th.Material.Shaper, Style: style}
}

func (l LabelWidget) Layout(gtx C) D {
	return l.Style.Alignment.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min = image.Point{}
		if l.Style.ShadeColor.A > 0 {
			offs := op.Offset(image.Pt(2, 2)).Push(gtx.Ops)
			widget.Label{MaxLines: 1}.Layout(gtx, l.Shaper, l.Style.Font, l.Style.TextSize, l.Text, colorMaterial(gtx.Ops, l.Style.ShadeColor))
			offs.Pop()
		}
		dims := widget.Label{MaxLines: 1}.Layout(gtx, l.Shaper, l.Style.Font, l.Style.TextSize, l.Text, colorMaterial(gtx.Ops, l.Style.Color))
		return D{Size: dims.Size, Baseline: dims.Baseline}
	})
}

func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	m := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return m.Stop()
}
