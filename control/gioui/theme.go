package gioui

import (
	_ "embed"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/spectrumkit/spectrum/control"
	"go.uber.org/zap"
)

type (
	Theme struct {
		Material material.Theme
		Gallery  struct {
			Bg    color.NRGBA
			Inset unit.Dp
			Title LabelStyle
			Log   LabelStyle
		}
		Slider  SliderStyle
		Stepper StepperStyle
		Picker  PickerStyle
		Tooltip TooltipStyle
		Popup   PopupStyle

		iconCache map[*byte]*widget.Icon
	}

	SliderStyle struct {
		Width          unit.Dp
		TrackWidth     unit.Dp
		HandleDiameter unit.Dp
		HandleBorder   unit.Dp
		FocusRing      unit.Dp
		TickLength     unit.Dp
		Track          struct {
			Bg   color.NRGBA
			Fill color.NRGBA
			Ramp color.NRGBA
		}
		Handle struct {
			Bg     color.NRGBA
			Border color.NRGBA
			Active color.NRGBA
			Focus  color.NRGBA
		}
		Disabled struct {
			Track  color.NRGBA
			Handle color.NRGBA
		}
		Label     LabelStyle
		Value     LabelStyle
		TickLabel LabelStyle
	}

	StepperStyle struct {
		Width        unit.Dp
		Height       unit.Dp
		ButtonWidth  unit.Dp
		CornerRadius unit.Dp
		Border       unit.Dp
		UnitsPerStep unit.Dp
		Bg           color.NRGBA
		BorderColor  color.NRGBA
		FocusColor   color.NRGBA
		ButtonFocus  color.NRGBA
		IconColor    color.NRGBA
		Disabled     color.NRGBA
		Label        LabelStyle
		Value        LabelStyle
	}

	PickerStyle struct {
		Width        unit.Dp
		Height       unit.Dp
		CornerRadius unit.Dp
		Border       unit.Dp
		IconSize     unit.Dp
		Bg           color.NRGBA
		BorderColor  color.NRGBA
		FocusColor   color.NRGBA
		InvalidColor color.NRGBA
		IconColor    color.NRGBA
		Disabled     color.NRGBA
		Label        LabelStyle
		Text         LabelStyle
		Placeholder  LabelStyle
		Menu         struct {
			Text          LabelStyle
			Disabled      LabelStyle
			ItemHeight    unit.Dp
			HoverColor    color.NRGBA
			SelectedColor color.NRGBA
		}
	}

	TooltipColors struct {
		Bg color.NRGBA
		Fg color.NRGBA
	}

	TooltipStyle struct {
		TextSize unit.Sp
		Neutral  TooltipColors
		Info     TooltipColors
		Positive TooltipColors
		Negative TooltipColors
	}
)

//go:embed theme.yml
var defaultTheme []byte

// NewTheme returns the default theme, modified by theme.yml in the user
// config directory if there is one. A non-nil warning tells the user file
// could not be used.
func NewTheme() (*Theme, error) {
	var theme Theme
	warn := ReadConfig(defaultTheme, "theme.yml", &theme)
	if warn != nil {
		control.Logger().Warn("could not read theme", zap.Error(warn))
	}
	theme.Material.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	theme.iconCache = map[*byte]*widget.Icon{}
	return &theme, warn
}

// Icon returns a widget for IconVG data, caching the results.
func (th *Theme) Icon(data []byte) *widget.Icon {
	if w, ok := th.iconCache[&data[0]]; ok {
		return w
	}
	w, err := widget.NewIcon(data)
	if err != nil {
		// the icons come from the icons package, so this is a programming error
		panic(err)
	}
	th.iconCache[&data[0]] = w
	return w
}

func (s *TooltipStyle) Colors(variant string) TooltipColors {
	switch variant {
	case "info":
		return s.Info
	case "positive":
		return s.Positive
	case "negative":
		return s.Negative
	}
	return s.Neutral
}
