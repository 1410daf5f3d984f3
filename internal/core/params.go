package core

import (
	"image/color"
	"strconv"
)

// Parameter describes a single value exposed by a simulation for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a sim exposes to the HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe themselves.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam builds an integer-valued Parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// Int64Param builds a 64-bit integer Parameter.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating-point Parameter with compact formatting.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'g', 4, 64)}
}

// StringParam builds a free-form Parameter.
func StringParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Value: v}
}

// LegendEntry is one coloured row of the HUD legend.
type LegendEntry struct {
	Label string
	Color color.RGBA
	Count int
}

// LegendProvider is implemented by sims whose colours carry meaning.
type LegendProvider interface {
	Legend(limit int) []LegendEntry
}
