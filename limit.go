package spectrum

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type (
	// Limit is the declared lower or upper bound of a slider handle. The zero
	// value inherits the bound of the track the handle belongs to. A fixed
	// limit holds a number, and an adjacent limit follows the current value
	// of the neighbouring handle: the previous one for a lower bound, the next
	// one for an upper bound. In YAML, a limit is written either as a number
	// or as one of the words "previous" and "next".
	Limit struct {
		Kind  LimitKind
		Value float64
	}

	LimitKind int
)

const (
	LimitTrack LimitKind = iota
	LimitFixed
	LimitAdjacent
)

// Previous is the lower bound that follows the value of the previous handle.
var Previous = Limit{Kind: LimitAdjacent}

// Next is the upper bound that follows the value of the next handle.
var Next = Limit{Kind: LimitAdjacent}

// At returns a fixed limit.
func At(v float64) Limit { return Limit{Kind: LimitFixed, Value: v} }

func (l Limit) IsAdjacent() bool { return l.Kind == LimitAdjacent }

// Resolve returns the numeric bound, using trackBound for inherited limits
// and adjacent for adjacent limits. An adjacent limit on the first or last
// handle has no neighbour and falls back to the track bound.
func (l Limit) Resolve(trackBound float64, adjacent float64, hasAdjacent bool) float64 {
	switch l.Kind {
	case LimitFixed:
		return l.Value
	case LimitAdjacent:
		if hasAdjacent {
			return adjacent
		}
	}
	return trackBound
}

func (l Limit) String() string {
	switch l.Kind {
	case LimitFixed:
		return strconv.FormatFloat(l.Value, 'g', -1, 64)
	case LimitAdjacent:
		return "adjacent"
	}
	return ""
}

// MarshalMin encodes the limit as a lower bound attribute.
func (l Limit) MarshalMin() string {
	if l.Kind == LimitAdjacent {
		return "previous"
	}
	return l.String()
}

// MarshalMax encodes the limit as an upper bound attribute.
func (l Limit) MarshalMax() string {
	if l.Kind == LimitAdjacent {
		return "next"
	}
	return l.String()
}

// ParseLimit parses an attribute value. The sentinel word that is accepted
// depends on the side: "previous" for a lower bound, "next" for an upper
// bound. An empty string inherits the track bound.
func ParseLimit(s string, upper bool) (Limit, error) {
	switch {
	case s == "":
		return Limit{}, nil
	case s == "previous" && !upper, s == "next" && upper:
		return Limit{Kind: LimitAdjacent}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Limit{}, fmt.Errorf("invalid limit %q: %w", s, err)
	}
	return At(v), nil
}

// LowerLimit and UpperLimit are the YAML forms of a Limit; the side decides
// which sentinel word is valid.
type (
	LowerLimit struct{ Limit }
	UpperLimit struct{ Limit }
)

func (l LowerLimit) MarshalYAML() (interface{}, error) {
	if l.Kind == LimitTrack {
		return nil, nil
	}
	if l.Kind == LimitFixed {
		return l.Value, nil
	}
	return l.MarshalMin(), nil
}

func (l *LowerLimit) UnmarshalYAML(value *yaml.Node) error {
	lim, err := ParseLimit(value.Value, false)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	l.Limit = lim
	return nil
}

func (l UpperLimit) MarshalYAML() (interface{}, error) {
	if l.Kind == LimitTrack {
		return nil, nil
	}
	if l.Kind == LimitFixed {
		return l.Value, nil
	}
	return l.MarshalMax(), nil
}

func (l *UpperLimit) UnmarshalYAML(value *yaml.Node) error {
	lim, err := ParseLimit(value.Value, true)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	l.Limit = lim
	return nil
}
