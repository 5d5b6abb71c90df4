// Package gomidi reads MIDI input devices with the rtmidi driver of gomidi
// and hands the messages over to the UI goroutine.
package gomidi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spectrumkit/spectrum/control"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	"go.uber.org/zap"
)

type (
	// Input listens to at most one MIDI input device at a time.
	Input struct {
		driver    *rtmididrv.Driver
		currentIn drivers.In
		stop      func()
		messages  chan midi.Message
	}

	Device struct {
		input *Input
		in    drivers.In
	}
)

var ErrNoDriver = errors.New("no MIDI driver available")

// NewInput opens the driver. If that fails, the input works but has no
// devices.
func NewInput() *Input {
	m := Input{messages: make(chan midi.Message, 1024)}
	var err error
	if m.driver, err = rtmididrv.New(); err != nil {
		control.Logger().Warn("could not open MIDI driver", zap.Error(err))
		m.driver = nil
	}
	return &m
}

func (m *Input) Messages() <-chan midi.Message { return m.messages }

// Devices iterates over the input devices of the driver.
func (m *Input) Devices(yield func(Device) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		control.Logger().Warn("could not list MIDI inputs", zap.Error(err))
		return
	}
	for _, in := range ins {
		if !yield(Device{input: m, in: in}) {
			return
		}
	}
}

// OpenByPrefix opens the first device whose name starts with prefix.
func (m *Input) OpenByPrefix(prefix string) error {
	for d := range m.Devices {
		if strings.HasPrefix(d.String(), prefix) {
			return d.Open()
		}
	}
	return fmt.Errorf("no MIDI input device with prefix %q", prefix)
}

// Open starts listening to the device, closing the device listened to so
// far.
func (d Device) Open() error {
	m := d.input
	if m.currentIn == d.in {
		return nil
	}
	if m.driver == nil {
		return ErrNoDriver
	}
	m.closeCurrent()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, m.handleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	m.currentIn = d.in
	m.stop = stop
	control.Logger().Info("MIDI input opened", zap.String("device", d.String()))
	return nil
}

func (d Device) String() string { return d.in.String() }

func (m *Input) handleMessage(msg midi.Message, timestampms int32) {
	select {
	case m.messages <- msg: // if the channel is full, just drop the message
	default:
	}
}

func (m *Input) closeCurrent() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	m.currentIn = nil
}

func (m *Input) Close() {
	if m.driver == nil {
		return
	}
	m.closeCurrent()
	m.driver.Close()
}
