package spectrum_test

import (
	"math"
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizationRoundTrip(t *testing.T) {
	norms := map[string]spectrum.Normalization{
		"linear": spectrum.Linear,
		"square": spectrum.PowerNormalization{Exponent: 2},
		"cube":   spectrum.PowerNormalization{Exponent: 3},
	}
	const min, max, step = -20.0, 80.0, 0.5
	for name, n := range norms {
		for v := min; v <= max; v += step {
			pos := n.ToNormalized(v, min, max)
			if pos < 0 || pos > 1 {
				t.Errorf("%s: position of %v out of range: %v", name, v, pos)
			}
			if back := n.FromNormalized(pos, min, max); math.Abs(back-v) > step {
				t.Errorf("%s: %v round-tripped to %v", name, v, back)
			}
		}
	}
}

func TestNormalizationByName(t *testing.T) {
	n, err := spectrum.NormalizationByName("")
	require.NoError(t, err)
	assert.Equal(t, spectrum.Linear, n)
	n, err = spectrum.NormalizationByName("power:2.5")
	require.NoError(t, err)
	assert.Equal(t, spectrum.PowerNormalization{Exponent: 2.5}, n)
	for _, name := range []string{"logarithmic", "power:", "power:0", "power:-2", "power:2abc", "power:NaN", "power:Inf"} {
		_, err = spectrum.NormalizationByName(name)
		assert.Error(t, err, name)
	}
}
