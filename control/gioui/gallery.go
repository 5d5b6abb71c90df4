package gioui

import (
	"fmt"
	"image"
	"io"
	"strings"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/control"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

type (
	// Gallery is a window showing every component of a container, with a
	// log of the events they fire. MIDI control changes received from the
	// input channel drive the handles bound to them.
	Gallery struct {
		Theme     *Theme
		Title     string
		Explorer  *explorer.Explorer
		Exploring bool

		doc       spectrum.Gallery
		container *control.Container
		controls  *control.ControlMap
		events    *control.EventHandler
		midi      <-chan midi.Message
		toGallery chan func()
		quitted   bool

		sliders  map[control.ID]*SliderState
		steppers map[control.ID]*StepperState
		pickers  map[control.ID]*PickerState
		list     widget.List
		log      []string

		keys        KeyBindings
		preferences Preferences
	}

	C = layout.Context
	D = layout.Dimensions
)

const (
	eventBuffer = 256
	logLines    = 8
)

// NewGallery returns a gallery reading MIDI messages from midiIn, which may
// be nil. Problems with the user configuration files are logged and the
// defaults used instead.
func NewGallery(midiIn <-chan midi.Message) *Gallery {
	g := &Gallery{
		Title:     "Spectrum Gallery",
		events:    control.NewEventHandler(eventBuffer),
		midi:      midiIn,
		toGallery: make(chan func(), 16),
		list:      widget.List{List: layout.List{Axis: layout.Vertical}},
	}
	g.Theme, _ = NewTheme() // a warning was already logged
	var warn error
	if g.preferences, warn = MakePreferences(); warn != nil {
		control.Logger().Warn("could not read preferences", zap.Error(warn))
	}
	if g.keys, warn = LoadKeyBindings(); warn != nil {
		control.Logger().Warn("could not read key bindings", zap.Error(warn))
	}
	g.reset(nil, nil)
	return g
}

func (g *Gallery) Container() *control.Container { return g.container }
func (g *Gallery) Controls() *control.ControlMap { return g.controls }
func (g *Gallery) Log() []string                 { return g.log }

// Load replaces the components of the gallery with the ones declared by doc.
// On error, the gallery keeps its current components.
func (g *Gallery) Load(doc spectrum.Gallery) error {
	c, err := control.LoadGallery(doc, g.events)
	if err != nil {
		return fmt.Errorf("could not load gallery: %w", err)
	}
	controls, err := c.BindControls(doc.Controls)
	if err != nil {
		return fmt.Errorf("could not bind controls: %w", err)
	}
	g.doc = doc
	if doc.Title != "" {
		g.Title = doc.Title
	}
	g.reset(c, controls)
	control.Logger().Info("gallery loaded",
		zap.String("title", g.Title),
		zap.Int("components", len(c.Components())),
		zap.Int("controls", len(controls.Bindings())))
	return nil
}

// ReadGallery decodes a gallery document from r and loads it, closing r.
func (g *Gallery) ReadGallery(r io.ReadCloser) error {
	defer r.Close()
	doc, err := spectrum.ReadGallery(r)
	if err != nil {
		return err
	}
	return g.Load(doc)
}

func (g *Gallery) reset(c *control.Container, controls *control.ControlMap) {
	if c == nil {
		c, _ = control.NewContainer("", g.events) // the default locale always parses
		controls = &control.ControlMap{}
	}
	g.container, g.controls = c, controls
	g.sliders = map[control.ID]*SliderState{}
	g.steppers = map[control.ID]*StepperState{}
	g.pickers = map[control.ID]*PickerState{}
	g.log = g.log[:0]
}

func (g *Gallery) Main() {
	var ops op.Ops
	w := g.newWindow()
	g.Explorer = explorer.NewExplorer(w)
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	for {
		select {
		case ev := <-g.events.Events:
			g.logEvent(ev)
			w.Invalidate()
		case msg := <-g.midi:
			if g.controls.Dispatch(msg) {
				w.Invalidate()
			}
		case f := <-g.toGallery:
			f()
			w.Invalidate()
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				g.Layout(gtx)
				e.Frame(gtx.Ops)
				if g.quitted {
					w.Perform(system.ActionClose)
				}
			}
			acks <- struct{}{}
		}
	}
}

func (g *Gallery) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title(g.Title), app.Size(g.preferences.WindowSize()))
	if g.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (g *Gallery) logEvent(ev control.Event) {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", ev.Source, ev.Kind)
	switch {
	case ev.Text != "":
		fmt.Fprintf(&b, " %q", ev.Text)
	case ev.Kind == control.InputEvent || ev.Kind == control.ChangeEvent:
		if ev.Handle != "" {
			fmt.Fprintf(&b, " %s", ev.Handle)
		}
		fmt.Fprintf(&b, " %v", ev.Value)
	}
	g.log = append(g.log, b.String())
	if len(g.log) > logLines {
		g.log = append(g.log[:0], g.log[len(g.log)-logLines:]...)
	}
}

func (g *Gallery) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, g.Theme.Gallery.Bg)
	event.Op(gtx.Ops, g)
	layout.UniformInset(g.Theme.Gallery.Inset).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(Label(g.Theme, &g.Theme.Gallery.Title, g.Title).Layout),
			layout.Flexed(1, g.layoutComponents),
			layout.Rigid(g.layoutLog),
		)
	})
	g.update(gtx)
}

func (g *Gallery) update(gtx C) {
	keyFilters := g.keys.Filters()
	filters := make([]event.Filter, 0, len(keyFilters)+1)
	for _, f := range keyFilters {
		filters = append(filters, f)
	}
	filters = append(filters, transfer.TargetFilter{Target: g, Type: "application/text"})
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.Event:
			if action, ok := g.keys.Action(e); ok {
				g.do(gtx, action)
			}
		case transfer.DataEvent:
			if err := g.ReadGallery(e.Open()); err != nil {
				control.Logger().Warn("could not paste gallery", zap.Error(err))
			}
		}
	}
}

func (g *Gallery) do(gtx C, action string) {
	switch action {
	case "OpenGallery":
		g.explorerChooseFile(".yml", ".yaml")
	case "Paste":
		gtx.Execute(clipboard.ReadCmd{Tag: g})
	case "Reload":
		if err := g.Load(g.doc); err != nil {
			control.Logger().Warn("could not reload gallery", zap.Error(err))
		}
	case "ClearLog":
		g.log = g.log[:0]
	case "Quit":
		g.quitted = true
	case "Blur":
		gtx.Execute(key.FocusCmd{})
	}
}

func (g *Gallery) explorerChooseFile(extensions ...string) {
	if g.Exploring {
		return
	}
	g.Exploring = true
	go func() {
		file, err := g.Explorer.ChooseFile(extensions...)
		g.toGallery <- func() {
			g.Exploring = false
			if err != nil {
				if err != explorer.ErrUserDecline {
					control.Logger().Warn("could not open gallery", zap.Error(err))
				}
				return
			}
			if err := g.ReadGallery(file); err != nil {
				control.Logger().Warn("could not open gallery", zap.Error(err))
			}
		}
	}()
}

func (g *Gallery) layoutComponents(gtx C) D {
	widgets := g.widgets()
	return material.List(&g.Theme.Material, &g.list).Layout(gtx, len(widgets), func(gtx C, i int) D {
		return layout.Inset{Bottom: g.Theme.Gallery.Inset}.Layout(gtx, widgets[i])
	})
}

// widgets returns the widgets of the components in the order the container
// holds them.
func (g *Gallery) widgets() []layout.Widget {
	c := g.container
	ret := make([]layout.Widget, 0, len(c.Components()))
	for _, s := range c.Sliders() {
		ret = append(ret, Slider(g.Theme, s, stateOf(g.sliders, s.ID()), c.Tooltip(s.ID())).Layout)
	}
	for _, s := range c.Steppers() {
		ret = append(ret, Stepper(g.Theme, s, stateOf(g.steppers, s.ID()), c.Tooltip(s.ID())).Layout)
	}
	for _, p := range c.Pickers() {
		ret = append(ret, Picker(g.Theme, p, stateOf(g.pickers, p.ID()), c.Tooltip(p.ID())).Layout)
	}
	return ret
}

func stateOf[T any](states map[control.ID]*T, id control.ID) *T {
	s, ok := states[id]
	if !ok {
		s = new(T)
		states[id] = s
	}
	return s
}

func (g *Gallery) layoutLog(gtx C) D {
	children := make([]layout.FlexChild, 0, len(g.log)+1)
	if len(g.log) == 0 {
		hint := "No events yet"
		if k := g.keys.Hint("OpenGallery"); k != "" {
			hint += fmt.Sprintf(", %s opens a gallery", k)
		}
		children = append(children, layout.Rigid(Label(g.Theme, &g.Theme.Gallery.Log, hint).Layout))
	}
	for _, line := range g.log {
		children = append(children, layout.Rigid(Label(g.Theme, &g.Theme.Gallery.Log, line).Layout))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}
