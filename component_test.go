package spectrum_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGallery = `
title: Test
locale: fi
sliders:
  - label: Plain
  - label: Span
    kind: range
    valueend: 60
  - label: Three
    min: 0
    max: 255
    handles:
      - { name: low, value: 5, max: next }
      - { name: mid, value: 100, min: previous, max: next }
      - { name: high, value: 250, min: previous }
steppers:
  - label: Count
    max: 10
pickers:
  - label: Size
    value: m
    items:
      - { value: s }
      - { value: m, label: Medium }
controls:
  - { slider: Plain, channel: 1, controller: 7 }
`

func TestReadGallery(t *testing.T) {
	g, err := spectrum.ReadGallery(strings.NewReader(testGallery))
	require.NoError(t, err)
	assert.Equal(t, "Test", g.Title)
	assert.Equal(t, "fi", g.Locale)
	require.Len(t, g.Sliders, 3)

	plain := g.Sliders[0]
	assert.Equal(t, 0.0, plain.Min)
	assert.Equal(t, 100.0, plain.Max)
	assert.Equal(t, 1.0, plain.Step)
	assert.Equal(t, 10.0, plain.Value)
	assert.Equal(t, []spectrum.HandleSpec{{Value: 10}}, plain.HandleSpecs())

	span := g.Sliders[1].HandleSpecs()
	require.Len(t, span, 2)
	assert.Equal(t, "start", span[0].Name)
	assert.Equal(t, 10.0, span[0].Value)
	assert.Equal(t, spectrum.Next, span[0].Max.Limit)
	assert.Equal(t, "end", span[1].Name)
	assert.Equal(t, 60.0, span[1].Value)
	assert.Equal(t, spectrum.Previous, span[1].Min.Limit)

	assert.Len(t, g.Sliders[2].HandleSpecs(), 3)
	require.Len(t, g.Steppers, 1)
	assert.Equal(t, 1.0, g.Steppers[0].Step)
	require.NotNil(t, g.Steppers[0].Max)
	assert.Nil(t, g.Steppers[0].Min)
	assert.Equal(t, spectrum.ControlSpec{Slider: "Plain", Channel: 1, Controller: 7}, g.Controls[0])
}

func TestReadGalleryUnknownField(t *testing.T) {
	_, err := spectrum.ReadGallery(strings.NewReader("title: x\ncolour: red\n"))
	assert.Error(t, err)
}

func TestReadEmptyGallery(t *testing.T) {
	g, err := spectrum.ReadGallery(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, spectrum.Gallery{}, g)
}

func TestWriteGallery(t *testing.T) {
	g, err := spectrum.ReadGallery(strings.NewReader(testGallery))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, spectrum.WriteGallery(&buf, g))
	back, err := spectrum.ReadGallery(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}
