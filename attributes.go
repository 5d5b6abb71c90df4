package spectrum

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type (
	// Attribute declares how one presentational attribute of a component
	// maps to visual effects. A boolean attribute applies Effect when set; an
	// enum attribute applies the effect listed for its value in Values.
	Attribute struct {
		Name   string
		Kind   AttributeKind
		Effect string            `yaml:",omitempty"`
		Values map[string]string `yaml:",omitempty"`
	}

	AttributeKind string

	// AttributeTable lists the attributes of each component by component
	// name.
	AttributeTable map[string][]Attribute

	// Effects is the resolved set of effect names for one component
	// instance. The renderer queries it instead of inspecting attributes.
	Effects map[string]struct{}
)

const (
	BooleanAttribute AttributeKind = "boolean"
	EnumAttribute    AttributeKind = "enum"
)

var (
	ErrUnknownComponent      = errors.New("unknown component")
	ErrUnknownAttribute      = errors.New("unknown attribute")
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
)

//go:embed attributes.yml
var defaultAttributesYaml []byte

// DefaultAttributes returns the built-in attribute table.
func DefaultAttributes() AttributeTable {
	var table AttributeTable
	if err := yaml.Unmarshal(defaultAttributesYaml, &table); err != nil {
		panic(fmt.Errorf("failed to unmarshal attributes: %w", err))
	}
	return table
}

// Allows reports whether value is a valid value for the attribute. Boolean
// attributes accept "true" and "false"; the empty string is always valid and
// means the attribute is unset.
func (t AttributeTable) Allows(component, name, value string) bool {
	a, ok := t.find(component, name)
	if !ok {
		return false
	}
	if value == "" {
		return true
	}
	switch a.Kind {
	case BooleanAttribute:
		return value == "true" || value == "false"
	case EnumAttribute:
		_, ok := a.Values[value]
		return ok
	}
	return false
}

// Resolve turns attribute values of one component into the set of effects
// they apply. Unset (empty) values and boolean "false" apply nothing.
func (t AttributeTable) Resolve(component string, values map[string]string) (Effects, error) {
	if _, ok := t[component]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
	ret := Effects{}
	for name, value := range values {
		a, ok := t.find(component, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, component, name)
		}
		if value == "" {
			continue
		}
		switch a.Kind {
		case BooleanAttribute:
			switch value {
			case "true":
				ret[a.Effect] = struct{}{}
			case "false":
			default:
				return nil, fmt.Errorf("%w: %s.%s=%q", ErrInvalidAttributeValue, component, name, value)
			}
		case EnumAttribute:
			effect, ok := a.Values[value]
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s=%q", ErrInvalidAttributeValue, component, name, value)
			}
			ret[effect] = struct{}{}
		}
	}
	return ret, nil
}

func (t AttributeTable) find(component, name string) (Attribute, bool) {
	for _, a := range t[component] {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

func (e Effects) Has(effect string) bool {
	_, ok := e[effect]
	return ok
}

// List returns the effects in sorted order.
func (e Effects) List() []string {
	ret := make([]string, 0, len(e))
	for k := range e {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// BoolAttr formats a boolean for Resolve.
func BoolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
