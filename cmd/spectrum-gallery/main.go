package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gioui.org/app"
	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/cmd"
	"github.com/spectrumkit/spectrum/control"
	"github.com/spectrumkit/spectrum/control/gioui"
	"github.com/spectrumkit/spectrum/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose   bool
	locale    string
	midiInput string

	logger = zap.NewNop()
)

//go:embed gallery.yml
var defaultGallery []byte

var rootCmd = &cobra.Command{
	Use:   "spectrum-gallery [gallery.yml]",
	Short: "Show the components declared by a gallery file",
	Long: `spectrum-gallery opens a window showing the sliders, steppers and pickers
declared by a gallery file, logging the events they fire. Without a file, a
built-in gallery showing every kind of component is used.

MIDI controllers bound by the "controls" section of the gallery move the
handles of the sliders; use --midi-input to choose the device.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.VersionOrHash,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		control.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(c *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runGallery,
}

var dumpCmd = &cobra.Command{
	Use:   "dump [gallery.yml]",
	Short: "Print a gallery with all the defaults filled in",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		doc, err := readGallery(args)
		if err != nil {
			return err
		}
		// building the components validates the declarations
		if _, err := control.LoadGallery(doc, nil); err != nil {
			return err
		}
		return spectrum.WriteGallery(c.OutOrStdout(), doc)
	},
}

func readGallery(args []string) (spectrum.Gallery, error) {
	var r io.Reader = bytes.NewReader(defaultGallery)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return spectrum.Gallery{}, fmt.Errorf("could not open gallery: %w", err)
		}
		defer f.Close()
		r = f
	}
	doc, err := spectrum.ReadGallery(r)
	if err != nil {
		return spectrum.Gallery{}, err
	}
	if locale != "" {
		doc.Locale = locale
	}
	return doc, nil
}

func runGallery(c *cobra.Command, args []string) error {
	doc, err := readGallery(args)
	if err != nil {
		return err
	}
	input := cmd.NewMIDIInput()
	if c.Flags().Changed("midi-input") {
		if err := input.OpenByPrefix(midiInput); err != nil {
			logger.Warn("failed to open MIDI input", zap.String("prefix", midiInput), zap.Error(err))
		}
	}
	gallery := gioui.NewGallery(input.Messages())
	if err := gallery.Load(doc); err != nil {
		input.Close()
		return err
	}
	go func() {
		gallery.Main()
		input.Close()
		_ = logger.Sync()
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "BCP 47 locale for the value texts, overriding the gallery")
	rootCmd.Flags().StringVar(&midiInput, "midi-input", "", "connect MIDI input to matching device name prefix")
	rootCmd.AddCommand(dumpCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
