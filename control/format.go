package control

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/spectrumkit/spectrum"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type (
	// Formatter prints numbers for value texts using the conventions of a
	// locale.
	Formatter struct {
		printer *message.Printer
		tag     language.Tag
	}

	// ValueTemplate renders a custom value text. Templates can use the sprig
	// functions and "number", which formats a value with the formatter of
	// the component, e.g. {{ number .Value "%.1f" }}.
	ValueTemplate struct {
		tmpl *template.Template
	}

	// ValueTextData is what a ValueTemplate sees. Text is the default value
	// text, so templates can decorate it.
	ValueTextData struct {
		Label  string
		Value  float64
		Start  float64
		End    float64
		Values []spectrum.HandleValue
		Text   string
	}
)

// NewFormatter returns a formatter for a BCP 47 locale; the empty locale
// means English.
func NewFormatter(locale string) (*Formatter, error) {
	tag := language.English
	if locale != "" {
		t, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tag = t
	}
	return &Formatter{printer: message.NewPrinter(tag), tag: tag}, nil
}

func (f *Formatter) Locale() string { return f.tag.String() }

// Number prints v with a fmt verb, "%v" by default.
func (f *Formatter) Number(v float64, format string) string {
	if format == "" {
		format = "%v"
	}
	if f == nil {
		return fmt.Sprintf(format, v)
	}
	return f.printer.Sprintf(format, v)
}

func ParseValueTemplate(text string, f *Formatter) (*ValueTemplate, error) {
	funcs := sprig.TxtFuncMap()
	funcs["number"] = func(v float64, format string) string { return f.Number(v, format) }
	tmpl, err := template.New("value").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse value format: %w", err)
	}
	return &ValueTemplate{tmpl: tmpl}, nil
}

func (v *ValueTemplate) Execute(data ValueTextData) (string, error) {
	var b strings.Builder
	if err := v.tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
