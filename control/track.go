package control

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spectrumkit/spectrum"
	"go.uber.org/zap"
)

type (
	// ID identifies a component within its Container.
	ID int

	// Track is a bounded numeric range shared by one or more handles. Min,
	// Max and Step are configuration: changing them does not re-validate the
	// values of the handles, call Reclamp for that.
	Track struct {
		Min, Max, Step float64

		id       ID
		disabled bool
		handles  []*Handle
		events   *EventHandler
		dragging *Handle
		fixed    bool // handles cannot be added or removed
	}

	// Handle is one value marker on a Track. A handle belongs to exactly
	// one track, from AddHandle until RemoveHandle.
	Handle struct {
		Name          string
		Min           spectrum.Limit
		Max           spectrum.Limit
		Step          float64 // 0 uses the step of the track
		Normalization spectrum.Normalization
		Format        string

		value   float64
		track   *Track
		state   InteractionState
		focused bool
		changed bool // the current interaction has changed the value
	}

	InteractionState int
)

const (
	Idle InteractionState = iota
	Dragging
	KeyboardActive
)

// PageSteps is the number of steps PageUp and PageDown move a handle.
const PageSteps = 10

var (
	ErrUnnamedHandle   = errors.New("only a single handle can be unnamed")
	ErrDuplicateHandle = errors.New("duplicate handle name")
	ErrUnknownHandle   = errors.New("unknown handle")
	ErrFixedHandles    = errors.New("the handles of this track cannot be added or removed")
)

func (s InteractionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case KeyboardActive:
		return "keyboard-active"
	}
	return "unknown"
}

func NewTrack(min, max, step float64) *Track {
	return &Track{Min: min, Max: max, Step: step}
}

func (t *Track) ID() ID                          { return t.id }
func (t *Track) Disabled() bool                  { return t.disabled }
func (t *Track) Handles() []*Handle              { return t.handles }
func (t *Track) SetEventHandler(h *EventHandler) { t.events = h }
func (t *Track) Active() *Handle                 { return t.dragging }

func (t *Track) Handle(name string) (*Handle, bool) {
	for _, h := range t.handles {
		if h.Name == name {
			return h, true
		}
	}
	return nil, false
}

// AddHandle appends a handle declared by s after the existing handles. The
// initial value is clamped to the bounds the handle has at that point, so
// handles declared out of order end up stacked instead of crossed.
func (t *Track) AddHandle(s spectrum.HandleSpec) (*Handle, error) {
	if t.fixed {
		return nil, ErrFixedHandles
	}
	if len(t.handles) > 0 && (s.Name == "" || t.handles[0].Name == "") {
		return nil, ErrUnnamedHandle
	}
	if _, ok := t.Handle(s.Name); ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateHandle, s.Name)
	}
	norm, err := spectrum.NormalizationByName(s.Normalization)
	if err != nil {
		return nil, fmt.Errorf("handle %q: %w", s.Name, err)
	}
	h := &Handle{
		Name:          s.Name,
		Min:           s.Min.Limit,
		Max:           s.Max.Limit,
		Step:          s.Step,
		Normalization: norm,
		Format:        s.Format,
		track:         t,
	}
	t.handles = append(t.handles, h)
	h.value = h.constrain(s.Value)
	return h, nil
}

// RemoveHandle detaches the named handle from the track. A drag of the
// handle in progress ends first, emitting its ChangeEvent.
func (t *Track) RemoveHandle(name string) error {
	if t.fixed {
		return ErrFixedHandles
	}
	for i, h := range t.handles {
		if h.Name != name {
			continue
		}
		if t.dragging == h {
			t.endDrag()
		}
		t.handles = append(t.handles[:i], t.handles[i+1:]...)
		h.track = nil
		h.state = Idle
		h.focused = false
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownHandle, name)
}

func (t *Track) Values() []spectrum.HandleValue {
	ret := make([]spectrum.HandleValue, len(t.handles))
	for i, h := range t.handles {
		ret[i] = spectrum.HandleValue{Name: h.Name, Value: h.value}
	}
	return ret
}

// Quantize rounds raw to the nearest multiple of step measured from Min,
// rounding halves up. A non-positive step uses the step of the track.
func (t *Track) Quantize(raw, step float64) float64 {
	if step <= 0 {
		step = t.Step
	}
	if step <= 0 {
		return raw
	}
	q := t.Min + math.Floor((raw-t.Min)/step+0.5)*step
	return roundTo(q, max(decimals(step), decimals(t.Min)))
}

// decimals returns the number of fraction digits of the shortest decimal
// representation of v.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return min(len(s)-i-1, maxDecimals)
	}
	return 0
}

const maxDecimals = 15

// roundTo removes the binary noise left by stepping, e.g. 3*0.1.
func roundTo(v float64, decimals int) float64 {
	if decimals == 0 {
		return math.Round(v)
	}
	p := math.Pow10(decimals)
	r := math.Round(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

// ValueFromPointerOffset maps a pointer offset along the track, as a
// fraction of the track length, to a value: linearly from Min to Max, or from
// Max to Min when the layout is right-to-left. The value is clamped to the
// track and quantized to its step.
func (t *Track) ValueFromPointerOffset(offset float64, leftToRight bool) float64 {
	if !leftToRight {
		offset = 1 - offset
	}
	return t.fit(t.Min+(t.Max-t.Min)*offset, t.Min, t.Max, t.Step)
}

// fit clamps raw to [lo, hi] and quantizes it. If rounding pushed the value
// out of the bounds, it is moved back by one step; if the bounds are
// narrower than one step or inverted, the value is clamped again.
func (t *Track) fit(raw, lo, hi, step float64) float64 {
	if step <= 0 {
		step = t.Step
	}
	q := t.Quantize(clamp(raw, lo, hi), step)
	if step > 0 {
		d := max(decimals(step), decimals(t.Min))
		if q > hi {
			q = roundTo(q-step, d)
		}
		if q < lo {
			q = roundTo(q+step, d)
		}
	}
	if q < lo || q > hi {
		q = clamp(q, lo, hi)
	}
	return q
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// Reclamp commits every handle again, in declaration order, after the
// configuration of the track has changed. No events are emitted.
func (t *Track) Reclamp() (changed bool) {
	for _, h := range t.handles {
		if h.commit(h.value) {
			changed = true
		}
	}
	return changed
}

// SetDisabled disables or enables pointer and keyboard interaction. Disabling
// ends any interaction in progress and takes the focus from the handles.
func (t *Track) SetDisabled(disabled bool) {
	t.disabled = disabled
	if !disabled {
		return
	}
	t.endDrag()
	for _, h := range t.handles {
		h.focused = false
		if h.state == KeyboardActive {
			h.state = Idle
			t.flush(h)
		}
	}
}

// Commit clamps raw to the effective bounds of h, quantizes it and stores
// it if it differs from the current value. While h is being interacted with,
// a changed value emits an InputEvent and the interaction will end with a
// ChangeEvent.
func (t *Track) Commit(h *Handle, raw float64) bool {
	if h.track != t {
		return false
	}
	if h.state == Idle {
		return h.commit(raw)
	}
	return t.update(h, raw)
}

func (t *Track) update(h *Handle, raw float64) bool {
	if !h.commit(raw) {
		return false
	}
	h.changed = true
	t.emit(InputEvent, h)
	return true
}

func (t *Track) flush(h *Handle) {
	if !h.changed {
		return
	}
	h.changed = false
	t.emit(ChangeEvent, h)
}

func (t *Track) emit(kind EventKind, h *Handle) {
	t.events.Emit(Event{
		Kind:   kind,
		Source: t.id,
		Handle: h.Name,
		Value:  h.value,
		Values: t.Values(),
	})
}

// PointerDown starts dragging h. Only one handle of a track can be dragged
// at a time.
func (t *Track) PointerDown(h *Handle) bool {
	if t.disabled || h == nil || h.track != t {
		return false
	}
	if t.dragging != nil && t.dragging != h {
		Logger().Debug("rejected drag, another handle is dragging",
			zap.Int("track", int(t.id)), zap.String("handle", h.Name), zap.String("dragging", t.dragging.Name))
		return false
	}
	t.beginDrag(h)
	return true
}

// TrackPointerDown handles a press on the track itself: the handle nearest
// to the pointer is moved under it and starts dragging.
func (t *Track) TrackPointerDown(offset float64, leftToRight bool) (*Handle, bool) {
	if t.disabled || len(t.handles) == 0 || t.dragging != nil {
		return nil, false
	}
	pos := offset
	if !leftToRight {
		pos = 1 - offset
	}
	var nearest *Handle
	best := math.Inf(1)
	for _, h := range t.handles {
		p := h.NormalizedPosition()
		d := math.Abs(p - pos)
		// on a tie, prefer the handle that does not have to cross the others
		if d < best || (d == best && pos > p) {
			best = d
			nearest = h
		}
	}
	if nearest == nil {
		nearest = t.handles[0]
	}
	t.beginDrag(nearest)
	t.update(nearest, nearest.ValueAt(offset, leftToRight))
	return nearest, true
}

func (t *Track) PointerMove(offset float64, leftToRight bool) bool {
	h := t.dragging
	if h == nil || t.disabled {
		return false
	}
	return t.update(h, h.ValueAt(offset, leftToRight))
}

func (t *Track) PointerUp()     { t.endDrag() }
func (t *Track) PointerCancel() { t.endDrag() }

func (t *Track) beginDrag(h *Handle) {
	Logger().Debug("drag started", zap.Int("track", int(t.id)), zap.String("handle", h.Name), zap.Stringer("from", h.state))
	h.state = Dragging
	h.changed = false
	t.dragging = h
}

func (t *Track) endDrag() {
	h := t.dragging
	if h == nil {
		return
	}
	t.dragging = nil
	if h.focused && !t.disabled {
		h.state = KeyboardActive
	} else {
		h.state = Idle
	}
	Logger().Debug("drag ended", zap.Int("track", int(t.id)), zap.String("handle", h.Name), zap.Stringer("to", h.state))
	t.flush(h)
}

// Focus gives the keyboard focus to h.
func (t *Track) Focus(h *Handle) bool {
	if t.disabled || h == nil || h.track != t {
		return false
	}
	for _, o := range t.handles {
		if o != h && o.focused {
			t.Blur(o)
		}
	}
	h.focused = true
	if h.state == Idle {
		h.state = KeyboardActive
	}
	return true
}

func (t *Track) Blur(h *Handle) {
	if h == nil || h.track != t {
		return
	}
	h.focused = false
	if h.state == KeyboardActive {
		h.state = Idle
		t.flush(h)
	}
}

// Focused returns the handle holding the keyboard focus, if any.
func (t *Track) Focused() *Handle {
	for _, h := range t.handles {
		if h.focused {
			return h
		}
	}
	return nil
}

// StepBy moves a keyboard-active handle by n steps. Each call is a complete
// interaction: a changed value emits an InputEvent followed by a
// ChangeEvent.
func (t *Track) StepBy(h *Handle, n int) bool {
	if t.disabled || h == nil || h.track != t || h.state != KeyboardActive {
		return false
	}
	changed := t.update(h, h.value+float64(n)*h.step())
	t.flush(h)
	return changed
}

// StepToBound moves a keyboard-active handle to its lower or upper
// effective bound.
func (t *Track) StepToBound(h *Handle, upper bool) bool {
	if t.disabled || h == nil || h.track != t || h.state != KeyboardActive {
		return false
	}
	lo, hi := h.EffectiveBounds()
	target := lo
	if upper {
		target = hi
	}
	changed := t.update(h, target)
	t.flush(h)
	return changed
}

// ControllerInput sets h from an external controller such as a MIDI fader.
// Like a key press, it is a complete interaction of its own.
func (t *Track) ControllerInput(h *Handle, raw float64) bool {
	if t.disabled || h == nil || h.track != t || h.state == Dragging {
		return false
	}
	changed := t.update(h, raw)
	t.flush(h)
	return changed
}

// Handle methods

func (h *Handle) Value() float64          { return h.value }
func (h *Handle) Track() *Track           { return h.track }
func (h *Handle) State() InteractionState { return h.state }
func (h *Handle) Focused() bool           { return h.focused }
func (h *Handle) Dragging() bool          { return h.state == Dragging }

// SetValue assigns the value directly. The value is clamped and quantized
// like any other commit, but no events are emitted and the assignment works
// even when the track is disabled. A removed handle keeps its last value.
func (h *Handle) SetValue(raw float64) bool {
	if h.track == nil {
		return false
	}
	return h.commit(raw)
}

func (h *Handle) Index() int {
	if h.track == nil {
		return -1
	}
	for i, o := range h.track.handles {
		if o == h {
			return i
		}
	}
	return -1
}

// EffectiveBounds returns the bounds the value of h is clamped to, after
// resolving "previous" and "next" limits to the values of the neighbouring
// handles.
func (h *Handle) EffectiveBounds() (lo, hi float64) {
	t := h.track
	if t == nil {
		return math.Inf(-1), math.Inf(1)
	}
	i := h.Index()
	var prev, next float64
	hasPrev := i > 0
	hasNext := i >= 0 && i < len(t.handles)-1
	if hasPrev {
		prev = t.handles[i-1].value
	}
	if hasNext {
		next = t.handles[i+1].value
	}
	lo = h.Min.Resolve(t.Min, prev, hasPrev)
	hi = h.Max.Resolve(t.Max, next, hasNext)
	if h.Min.IsAdjacent() {
		lo = math.Max(t.Min, lo)
	}
	if h.Max.IsAdjacent() {
		hi = math.Min(t.Max, hi)
	}
	return lo, hi
}

// RangeBounds returns the bounds used for normalization: fixed limits as
// declared, inherited and adjacent limits as the bounds of the track. All the
// handles of a track with the default limits share the same range, so their
// positions are comparable.
func (h *Handle) RangeBounds() (lo, hi float64) {
	t := h.track
	if t == nil {
		return 0, 1
	}
	lo, hi = t.Min, t.Max
	if h.Min.Kind == spectrum.LimitFixed {
		lo = h.Min.Value
	}
	if h.Max.Kind == spectrum.LimitFixed {
		hi = h.Max.Value
	}
	return lo, hi
}

// NormalizedPosition returns the position of h along the track in [0, 1],
// for rendering only.
func (h *Handle) NormalizedPosition() float64 {
	lo, hi := h.RangeBounds()
	return h.normalization().ToNormalized(h.value, lo, hi)
}

// ValueAt returns the unconstrained value at a position along the track.
func (h *Handle) ValueAt(position float64, leftToRight bool) float64 {
	if !leftToRight {
		position = 1 - position
	}
	lo, hi := h.RangeBounds()
	return h.normalization().FromNormalized(position, lo, hi)
}

func (h *Handle) normalization() spectrum.Normalization {
	if h.Normalization == nil {
		return spectrum.Linear
	}
	return h.Normalization
}

func (h *Handle) step() float64 {
	if h.Step > 0 || h.track == nil {
		return h.Step
	}
	return h.track.Step
}

func (h *Handle) constrain(raw float64) float64 {
	lo, hi := h.EffectiveBounds()
	return h.track.fit(raw, lo, hi, h.step())
}

func (h *Handle) commit(raw float64) bool {
	v := h.constrain(raw)
	if v == h.value {
		return false
	}
	h.value = v
	return true
}
