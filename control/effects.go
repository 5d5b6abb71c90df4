package control

import (
	"sync"

	"github.com/spectrumkit/spectrum"
	"go.uber.org/zap"
)

var builtinAttributes = sync.OnceValue(spectrum.DefaultAttributes)

// resolveEffects resolves the attribute values of a component, using the
// built-in attribute table when table is nil. Failures are logged and give
// no effects.
func resolveEffects(table spectrum.AttributeTable, component string, values map[string]string) spectrum.Effects {
	if table == nil {
		table = builtinAttributes()
	}
	effects, err := table.Resolve(component, values)
	if err != nil {
		Logger().Warn("could not resolve attributes", zap.String("component", component), zap.Error(err))
		return spectrum.Effects{}
	}
	return effects
}

// Effects returns the visual effects of the current state of the stepper.
func (s *Stepper) Effects() spectrum.Effects {
	return resolveEffects(s.attributes, "stepper", map[string]string{
		"disabled":         spectrum.BoolAttr(s.disabled),
		"focused":          spectrum.BoolAttr(s.focused),
		"keyboard-focused": spectrum.BoolAttr(s.keyboardFocused),
	})
}

func (p *Picker) Effects() spectrum.Effects {
	return resolveEffects(p.attributes, "picker", map[string]string{
		"disabled": spectrum.BoolAttr(p.disabled),
		"focused":  spectrum.BoolAttr(p.focused),
		"invalid":  spectrum.BoolAttr(p.Invalid),
		"open":     spectrum.BoolAttr(p.open),
		"quiet":    spectrum.BoolAttr(p.Quiet),
		"readonly": spectrum.BoolAttr(p.readonly),
	})
}

func (t *Tooltip) Effects() spectrum.Effects {
	return resolveEffects(t.attributes, "tooltip", map[string]string{
		"variant": t.variant,
		"open":    spectrum.BoolAttr(t.open),
	})
}
