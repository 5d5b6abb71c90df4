package gioui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/x/stroke"
	"github.com/spectrumkit/spectrum/control"
)

type (
	SliderState struct {
		drag    gesture.Drag
		tipArea TipArea
	}

	SliderWidget struct {
		Theme   *Theme
		Style   *SliderStyle
		Slider  control.ValueTrack
		State   *SliderState
		Tooltip *control.Tooltip
	}

	// trackGeometry maps normalized positions to x coordinates of the track.
	trackGeometry struct {
		radius float32
		span   float32
		cy     float32
		ltr    bool
	}
)

var sliderKeys = map[key.Name]control.Key{
	key.NameLeftArrow:  control.ArrowLeft,
	key.NameRightArrow: control.ArrowRight,
	key.NameUpArrow:    control.ArrowUp,
	key.NameDownArrow:  control.ArrowDown,
	key.NamePageUp:     control.PageUp,
	key.NamePageDown:   control.PageDown,
	key.NameHome:       control.Home,
	key.NameEnd:        control.End,
}

func Slider(th *Theme, v control.ValueTrack, state *SliderState, tip *control.Tooltip) SliderWidget {
	return SliderWidget{Theme: th, Style: &th.Slider, Slider: v, State: state, Tooltip: tip}
}

func (s SliderWidget) Layout(gtx C) D {
	return s.State.tipArea.Layout(gtx, s.Theme, s.Tooltip, gtx.Focused(s.State), func(gtx C) D {
		gtx.Constraints.Max.X = gtx.Dp(s.Style.Width)
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(s.layoutHeader),
			layout.Rigid(s.layoutTrack),
		)
	})
}

func (s SliderWidget) layoutHeader(gtx C) D {
	p := s.Slider.Presentation()
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Baseline}.Layout(gtx,
		layout.Rigid(Label(s.Theme, &s.Style.Label, p.Label).Layout),
		layout.Flexed(1, func(gtx C) D { return D{Size: image.Pt(gtx.Constraints.Min.X, 0)} }),
		layout.Rigid(Label(s.Theme, &s.Style.Value, s.Slider.ValueText()).Layout),
	)
}

func (g trackGeometry) x(position float64) float32 {
	if !g.ltr {
		position = 1 - position
	}
	return g.radius + float32(position)*g.span
}

func (g trackGeometry) offset(x float32) float64 {
	if g.span <= 0 {
		return 0
	}
	return math.Min(math.Max(float64((x-g.radius)/g.span), 0), 1)
}

func (s SliderWidget) layoutTrack(gtx C) D {
	width := gtx.Constraints.Max.X
	diam := gtx.Dp(s.Style.HandleDiameter)
	ring := gtx.Dp(s.Style.FocusRing)
	height := diam + 2*ring
	g := trackGeometry{
		radius: float32(diam)/2 + float32(ring),
		cy:     float32(height) / 2,
		ltr:    gtx.Locale.Direction.Progression() == system.FromOrigin,
	}
	g.span = float32(width) - 2*g.radius
	s.update(gtx, g)

	p := s.Slider.Presentation()
	effects := p.Effects()
	disabled := effects.Has("state.disabled")
	trackColor, fillColor := s.Style.Track.Bg, s.Style.Track.Fill
	if disabled {
		trackColor, fillColor = s.Style.Disabled.Track, s.Style.Disabled.Track
	}
	tw := float32(gtx.Dp(s.Style.TrackWidth))
	handles := s.Slider.Track().Handles()
	positions := make([]float64, len(handles))
	for i, h := range handles {
		positions[i] = h.NormalizedPosition()
	}
	s.fillSpan(gtx, g, trackColor, 0, 1, tw)
	switch {
	case effects.Has("track.ramp"):
		s.drawRamp(gtx, g, fillColor, float32(diam)/2)
	case effects.Has("track.range") && len(positions) > 1:
		s.fillSpan(gtx, g, fillColor, positions[0], positions[len(positions)-1], tw)
	case effects.Has("track.filled") && len(positions) > 0:
		s.fillSpan(gtx, g, fillColor, 0, positions[0], tw)
	}
	ticksHeight := 0
	if effects.Has("track.ticks") {
		ticksHeight = s.drawTicks(gtx, g, p, trackColor, effects.Has("ticks.labels"), height)
	}
	focused := gtx.Focused(s.State)
	for i, h := range handles {
		s.drawHandle(gtx, g, h, positions[i], focused, disabled)
	}

	size := image.Pt(width, height)
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	if !disabled {
		pointer.CursorPointer.Add(gtx.Ops)
	}
	event.Op(gtx.Ops, s.State)
	s.State.drag.Add(gtx.Ops)
	return D{Size: image.Pt(width, height+ticksHeight)}
}

func (s SliderWidget) update(gtx C, g trackGeometry) {
	t := s.Slider.Track()
	for {
		e, ok := s.State.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		offset := g.offset(e.Position.X)
		switch e.Kind {
		case pointer.Press:
			if t.Disabled() {
				break
			}
			gtx.Execute(key.FocusCmd{Tag: s.State})
			if h := s.handleAt(g, e.Position.X); h != nil {
				t.PointerDown(h)
				t.Focus(h)
			} else if h, ok := t.TrackPointerDown(offset, g.ltr); ok {
				t.Focus(h)
			}
		case pointer.Drag:
			t.PointerMove(offset, g.ltr)
		case pointer.Release:
			t.PointerUp()
		case pointer.Cancel:
			t.PointerCancel()
		}
	}
	filters := []event.Filter{key.FocusFilter{Target: s.State}}
	for name := range sliderKeys {
		filters = append(filters, key.Filter{Focus: s.State, Name: name})
	}
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.FocusEvent:
			if e.Focus {
				t.Focus(s.Slider.FocusTarget())
			} else if h := t.Focused(); h != nil {
				t.Blur(h)
			}
		case key.Event:
			if e.State != key.Press {
				continue
			}
			h := t.Focused()
			if h == nil {
				h = s.Slider.FocusTarget()
				t.Focus(h)
			}
			t.KeyDown(h, sliderKeys[e.Name], g.ltr)
		}
	}
}

// handleAt returns the handle under x, preferring the handles drawn last.
func (s SliderWidget) handleAt(g trackGeometry, x float32) *control.Handle {
	handles := s.Slider.Track().Handles()
	for i := len(handles) - 1; i >= 0; i-- {
		hx := g.x(handles[i].NormalizedPosition())
		if float32(math.Abs(float64(hx-x))) <= g.radius {
			return handles[i]
		}
	}
	return nil
}

func (s SliderWidget) fillSpan(gtx C, g trackGeometry, c color.NRGBA, from, to float64, width float32) {
	x0, x1 := g.x(from), g.x(to)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	r := image.Rect(int(x0), int(g.cy-width/2), int(math.Ceil(float64(x1))), int(math.Ceil(float64(g.cy+width/2))))
	paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
}

// drawRamp draws a wedge growing from the minimum to the maximum of the track.
func (s SliderWidget) drawRamp(gtx C, g trackGeometry, c color.NRGBA, halfHeight float32) {
	x0, x1 := g.x(0), g.x(1)
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x0, g.cy))
	path.LineTo(f32.Pt(x1, g.cy-halfHeight))
	path.LineTo(f32.Pt(x1, g.cy+halfHeight))
	path.Close()
	paint.FillShape(gtx.Ops, s.Style.Track.Ramp, clip.Outline{Path: path.End()}.Op())
	segments := [...]stroke.Segment{
		stroke.MoveTo(f32.Pt(x0, g.cy)),
		stroke.LineTo(f32.Pt(x1, g.cy-halfHeight)),
		stroke.LineTo(f32.Pt(x1, g.cy+halfHeight)),
		stroke.LineTo(f32.Pt(x0, g.cy)),
	}
	outline := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: float32(gtx.Dp(s.Style.TrackWidth)) / 2,
		Join:  stroke.RoundJoin,
	}
	paint.FillShape(gtx.Ops, c, outline.Op(gtx.Ops))
}

// drawTicks draws the ticks below the track and returns the height they
// take below the handles.
func (s SliderWidget) drawTicks(gtx C, g trackGeometry, p *control.Presentation, c color.NRGBA, labels bool, top int) int {
	ticks := p.Ticks()
	length := gtx.Dp(s.Style.TickLength)
	tw := max(gtx.Dp(s.Style.TrackWidth)/2, 1)
	y0 := int(g.cy) + gtx.Dp(s.Style.HandleDiameter)/2
	extra := y0 + length - top
	for i, pos := range ticks.Positions {
		x := int(g.x(float64(pos)))
		paint.FillShape(gtx.Ops, c, clip.Rect(image.Rect(x-tw/2, y0, x-tw/2+tw, y0+length)).Op())
		if !labels {
			continue
		}
		macro := op.Record(gtx.Ops)
		lgtx := gtx
		lgtx.Constraints.Min = image.Point{}
		dims := Label(s.Theme, &s.Style.TickLabel, p.TickText(ticks.Labels[i])).Layout(lgtx)
		call := macro.Stop()
		off := op.Offset(image.Pt(x-dims.Size.X/2, y0+length)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()
		extra = max(extra, y0+length+dims.Size.Y-top)
	}
	return max(extra, 0)
}

func (s SliderWidget) drawHandle(gtx C, g trackGeometry, h *control.Handle, pos float64, focused, disabled bool) {
	center := f32.Pt(g.x(pos), g.cy)
	r := float32(gtx.Dp(s.Style.HandleDiameter)) / 2
	border := float32(gtx.Dp(s.Style.HandleBorder))
	borderColor := s.Style.Handle.Border
	switch {
	case disabled:
		borderColor = s.Style.Disabled.Handle
	case h.Dragging():
		borderColor = s.Style.Handle.Active
	}
	ellipse := clip.Ellipse(image.Rect(int(center.X-r), int(center.Y-r), int(center.X+r), int(center.Y+r)))
	paint.FillShape(gtx.Ops, s.Style.Handle.Bg, ellipse.Op(gtx.Ops))
	strokeCircle(gtx, borderColor, center, r-border/2, border)
	if focused && h.Focused() {
		ring := float32(gtx.Dp(s.Style.FocusRing))
		strokeCircle(gtx, s.Style.Handle.Focus, center, r+ring/2, ring)
	}
}

func strokeCircle(gtx C, c color.NRGBA, center f32.Point, radius, width float32) {
	segments := [...]stroke.Segment{
		stroke.MoveTo(f32.Pt(center.X+radius, center.Y)),
		stroke.ArcTo(center, 2*math.Pi),
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: width,
	}
	paint.FillShape(gtx.Ops, c, s.Op(gtx.Ops))
}
