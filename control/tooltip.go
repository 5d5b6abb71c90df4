package control

import (
	"github.com/spectrumkit/spectrum"
	"go.uber.org/zap"
)

// Tooltip is a short text shown next to the component it belongs to. An
// automatic tooltip opens while the pointer is over its owner or the owner
// has focus.
type Tooltip struct {
	Text      string
	Placement string
	Offset    float32
	Auto      bool

	id         ID
	owner      ID
	variant    string
	open       bool
	hovered    bool
	focused    bool
	events     *EventHandler
	attributes spectrum.AttributeTable
}

const (
	DefaultTooltipPlacement         = "top"
	DefaultTooltipOffset    float32 = 6
)

var TooltipVariants = []string{"info", "positive", "negative"}

func NewTooltip(text string) *Tooltip {
	return &Tooltip{Text: text, Placement: DefaultTooltipPlacement, Offset: DefaultTooltipOffset}
}

func (t *Tooltip) ID() ID          { return t.id }
func (t *Tooltip) Owner() ID       { return t.owner }
func (t *Tooltip) Variant() string { return t.variant }
func (t *Tooltip) Open() bool      { return t.open }

func (t *Tooltip) SetEventHandler(h *EventHandler) { t.events = h }

// SetVariant sets one of TooltipVariants; anything else resets the variant
// to the neutral tooltip.
func (t *Tooltip) SetVariant(v string) {
	table := t.attributes
	if table == nil {
		table = builtinAttributes()
	}
	if v != "" && !table.Allows("tooltip", "variant", v) {
		Logger().Warn("unknown tooltip variant", zap.String("variant", v))
		v = ""
	}
	t.variant = v
}

func (t *Tooltip) SetOpen(open bool) {
	if t.open == open {
		return
	}
	t.open = open
	kind := ClosedEvent
	if open {
		kind = OpenedEvent
	}
	t.events.Emit(Event{Kind: kind, Source: t.id, Text: t.Text})
}

// PointerEnter, PointerLeave, FocusIn and FocusOut report what happens to
// the owner. They only open and close automatic tooltips.
func (t *Tooltip) PointerEnter() { t.hovered = true; t.sync() }
func (t *Tooltip) PointerLeave() { t.hovered = false; t.sync() }
func (t *Tooltip) FocusIn()      { t.focused = true; t.sync() }
func (t *Tooltip) FocusOut()     { t.focused = false; t.sync() }

func (t *Tooltip) sync() {
	if !t.Auto {
		return
	}
	t.SetOpen(t.hovered || t.focused)
}
