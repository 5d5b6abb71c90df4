package spectrum

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type (
	// HandleValue is the value of one named handle, as carried by
	// notifications and returned by multi-handle sliders.
	HandleValue struct {
		Name  string
		Value float64
	}

	// HandleSpec declares one handle of a multi-handle slider. Min and Max
	// can be left out to inherit the track bounds, or set to "previous" and
	// "next" respectively to keep the handles from crossing each other.
	HandleSpec struct {
		Name          string     `yaml:",omitempty"`
		Value         float64    `yaml:"value"`
		Min           LowerLimit `yaml:",omitempty"`
		Max           UpperLimit `yaml:",omitempty"`
		Step          float64    `yaml:",omitempty"`
		Normalization string     `yaml:",omitempty"`
		// Format is a fmt verb such as "%.1f" used for the handle's value
		// text, printed with the locale of the gallery.
		Format string `yaml:",omitempty"`
	}

	// SliderSpec declares a slider. Kind "range" declares a two-handle range
	// slider using ValueStart and ValueEnd; otherwise Handles declares a
	// multi-handle slider and, when empty, a single handle using Value.
	SliderSpec struct {
		Kind       string       `yaml:",omitempty"`
		Label      string       `yaml:",omitempty"`
		Min        float64      `yaml:"min"`
		Max        float64      `yaml:"max"`
		Step       float64      `yaml:"step"`
		Value      float64      `yaml:"value"`
		ValueStart float64      `yaml:"valuestart,omitempty"`
		ValueEnd   float64      `yaml:"valueend,omitempty"`
		Handles    []HandleSpec `yaml:",omitempty"`
		Variant    string       `yaml:",omitempty"`
		TickStep   float64      `yaml:",omitempty"`
		TickLabels bool         `yaml:",omitempty"`
		Disabled   bool         `yaml:",omitempty"`
		// ValueFormat is a text/template rendering the value text; it sees
		// .Value (single handle), .Start and .End (range) and .Values.
		ValueFormat string       `yaml:",omitempty"`
		Tooltip     *TooltipSpec `yaml:",omitempty"`
	}

	StepperSpec struct {
		Label    string       `yaml:",omitempty"`
		Value    float64      `yaml:"value"`
		Step     float64      `yaml:"step"`
		Min      *float64     `yaml:",omitempty"`
		Max      *float64     `yaml:",omitempty"`
		Disabled bool         `yaml:",omitempty"`
		Tooltip  *TooltipSpec `yaml:",omitempty"`
	}

	PickerItemSpec struct {
		Value    string
		Label    string `yaml:",omitempty"`
		Disabled bool   `yaml:",omitempty"`
	}

	PickerSpec struct {
		Label     string           `yaml:",omitempty"`
		Value     string           `yaml:",omitempty"`
		Items     []PickerItemSpec `yaml:",omitempty"`
		Placement string           `yaml:",omitempty"`
		Disabled  bool             `yaml:",omitempty"`
		Readonly  bool             `yaml:",omitempty"`
		Quiet     bool             `yaml:",omitempty"`
		Invalid   bool             `yaml:",omitempty"`
		Tooltip   *TooltipSpec     `yaml:",omitempty"`
	}

	TooltipSpec struct {
		Text      string
		Variant   string  `yaml:",omitempty"`
		Placement string  `yaml:",omitempty"`
		Offset    float64 `yaml:",omitempty"`
		Auto      bool    `yaml:",omitempty"`
	}

	// ControlSpec binds a MIDI continuous controller to a handle of the
	// slider with the given label. Channel is zero based.
	ControlSpec struct {
		Slider     string
		Handle     string `yaml:",omitempty"`
		Channel    uint8  `yaml:"channel"`
		Controller uint8  `yaml:"controller"`
	}

	// Gallery is a document declaring a set of components, used by the
	// gallery command and for persisting component declarations.
	Gallery struct {
		Title    string        `yaml:",omitempty"`
		Locale   string        `yaml:",omitempty"`
		Sliders  []SliderSpec  `yaml:",omitempty"`
		Steppers []StepperSpec `yaml:",omitempty"`
		Pickers  []PickerSpec  `yaml:",omitempty"`
		Controls []ControlSpec `yaml:",omitempty"`
	}
)

// DefaultSlider returns the declaration of a slider with all the properties
// at their defaults: range [0, 100], step 1 and value 10.
func DefaultSlider() SliderSpec {
	return SliderSpec{Min: 0, Max: 100, Step: 1, Value: 10, ValueStart: 10, ValueEnd: 90}
}

func DefaultStepper() StepperSpec {
	return StepperSpec{Step: 1}
}

func (s *SliderSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain SliderSpec
	ret := plain(DefaultSlider())
	if err := value.Decode(&ret); err != nil {
		return err
	}
	*s = SliderSpec(ret)
	return nil
}

func (s *StepperSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain StepperSpec
	ret := plain(DefaultStepper())
	if err := value.Decode(&ret); err != nil {
		return err
	}
	*s = StepperSpec(ret)
	return nil
}

// HandleSpecs returns the handles the slider declares, expanding the single
// handle and range forms.
func (s *SliderSpec) HandleSpecs() []HandleSpec {
	switch {
	case s.Kind == "range":
		return []HandleSpec{
			{Name: "start", Value: s.ValueStart, Max: UpperLimit{Next}},
			{Name: "end", Value: s.ValueEnd, Min: LowerLimit{Previous}},
		}
	case len(s.Handles) > 0:
		return s.Handles
	}
	return []HandleSpec{{Value: s.Value}}
}

// ReadGallery decodes a gallery document. Unknown fields are reported as
// errors to catch typos in hand-written files.
func ReadGallery(r io.Reader) (Gallery, error) {
	var g Gallery
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil && err != io.EOF {
		return Gallery{}, fmt.Errorf("could not decode gallery: %w", err)
	}
	return g, nil
}

func WriteGallery(w io.Writer, g Gallery) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("could not encode gallery: %w", err)
	}
	return enc.Close()
}
