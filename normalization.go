package spectrum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalization maps a value inside [min, max] to a position in [0, 1] and
// back. Positions are used only for placing handles on the track; values are
// always stored unnormalized. Implementations are expected to be pure and
// FromNormalized(ToNormalized(v)) should return v.
type Normalization interface {
	ToNormalized(value, min, max float64) float64
	FromNormalized(position, min, max float64) float64
}

type (
	// LinearNormalization is the default, evenly spaced mapping.
	LinearNormalization struct{}

	// PowerNormalization spaces values by position^Exponent, which gives
	// finer control near min for Exponent > 1 (e.g. gain or frequency).
	PowerNormalization struct {
		Exponent float64
	}
)

// Linear is the default normalization of a handle.
var Linear Normalization = LinearNormalization{}

func (LinearNormalization) ToNormalized(value, min, max float64) float64 {
	return (value - min) / (max - min)
}

func (LinearNormalization) FromNormalized(position, min, max float64) float64 {
	return position*(max-min) + min
}

func (p PowerNormalization) ToNormalized(value, min, max float64) float64 {
	return math.Pow((value-min)/(max-min), 1/p.Exponent)
}

func (p PowerNormalization) FromNormalized(position, min, max float64) float64 {
	return math.Pow(position, p.Exponent)*(max-min) + min
}

// NormalizationByName resolves the names used in YAML declarations: "" and
// "linear" for the default, "power:<exponent>" for PowerNormalization.
func NormalizationByName(name string) (Normalization, error) {
	if name == "" || name == "linear" {
		return Linear, nil
	}
	arg, ok := strings.CutPrefix(name, "power:")
	if !ok {
		return nil, fmt.Errorf("unknown normalization %q", name)
	}
	exp, err := strconv.ParseFloat(arg, 64)
	if err != nil || !(exp > 0) || math.IsInf(exp, 0) {
		return nil, fmt.Errorf("invalid power normalization %q: the exponent must be a positive number", name)
	}
	return PowerNormalization{Exponent: exp}, nil
}
