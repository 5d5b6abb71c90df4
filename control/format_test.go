package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum"
	"github.com/spectrumkit/spectrum/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	f, err := control.NewFormatter("")
	require.NoError(t, err)
	assert.Equal(t, "en", f.Locale())
	assert.Equal(t, "1,234.5", f.Number(1234.5, "%.1f"))

	f, err = control.NewFormatter("de")
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", f.Number(1234.5, "%.1f"))

	var none *control.Formatter
	assert.Equal(t, "0.5", none.Number(0.5, ""))
}

func TestValueTemplate(t *testing.T) {
	f, err := control.NewFormatter("")
	require.NoError(t, err)
	tmpl, err := control.ParseValueTemplate(`{{ .Label | upper }}: {{ number .Start "%.0f" }}-{{ number .End "%.0f" }} ({{ .Text }})`, f)
	require.NoError(t, err)
	text, err := tmpl.Execute(control.ValueTextData{
		Label:  "Price",
		Start:  10,
		End:    2000,
		Values: []spectrum.HandleValue{{Name: "start", Value: 10}, {Name: "end", Value: 2000}},
		Text:   "10 - 2000",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRICE: 10-2,000 (10 - 2000)", text)

	_, err = control.ParseValueTemplate("{{ nosuchfunc }}", f)
	assert.Error(t, err)
}
