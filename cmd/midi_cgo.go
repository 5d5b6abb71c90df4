//go:build cgo

package cmd

import (
	"github.com/spectrumkit/spectrum/control"
	"github.com/spectrumkit/spectrum/control/gomidi"
)

func NewMIDIInput() control.MIDIInput {
	return gomidi.NewInput()
}
