//go:build !cgo

package cmd

import (
	"github.com/spectrumkit/spectrum/control"
)

func NewMIDIInput() control.MIDIInput {
	// with no cgo, we cannot use rtmidi, so return a null input
	return control.NullMIDIInput{}
}
