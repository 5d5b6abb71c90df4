// Package spectrum declares the components of the spectrum widget kit: the
// YAML-serializable specs of sliders, steppers, pickers and tooltips, the
// handle limits and normalizations used by sliders, and the table mapping
// presentational attributes to visual effects.
//
// The value models live in package control and the Gio widgets in package
// control/gioui.
package spectrum
