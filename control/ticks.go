package control

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// Ticks are the marks drawn under a slider of the tick variant.
type Ticks struct {
	Positions  []float32 // normalized positions along the track
	Labels     []float64
	PartialFit bool // the range is not a whole number of tick steps
}

const maxTicks = 1024

// ComputeTicks returns floor((max-min)/tickStep)+1 ticks starting from min.
// Nothing is returned for a non-positive step, an empty range or more than
// maxTicks ticks.
func ComputeTicks(min, max, tickStep float64) Ticks {
	if !(tickStep > 0) || !(max > min) {
		return Ticks{}
	}
	count := (max - min) / tickStep
	n := int(math.Floor(count + 1))
	if n > maxTicks {
		return Ticks{}
	}
	pos := make([]float32, n)
	labels := make([]float64, n)
	for i := range pos {
		pos[i] = float32(i)
		labels[i] = min + float64(i)*tickStep
	}
	vek32.MulNumber_Inplace(pos, float32(tickStep/(max-min)))
	return Ticks{Positions: pos, Labels: labels, PartialFit: math.Mod(count, 1) != 0}
}
