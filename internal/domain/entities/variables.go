package entities

import "strings"

// RoofVariables is the fixed bag of named roof measurements every formula
// evaluates against. It is built once per estimation request from upstream
// measurement data (manual intake, sketch, photo analysis) and treated as
// read-only afterwards.
//
// Variable names are matched case-insensitively. Per-slope measurements are
// addressed with a dotted identifier (e.g. "F1.SQ").
type RoofVariables struct {
	SQ             float64 `json:"sq"` // squares (1 square = 100 sq ft)
	SF             float64 `json:"sf"`
	Perimeter      float64 `json:"p"`
	Eave           float64 `json:"eave"`
	Ridge          float64 `json:"r"`
	Valley         float64 `json:"val"`
	Hip            float64 `json:"hip"`
	Rake           float64 `json:"rake"`
	SkylightCount  float64 `json:"skylight_count"`
	ChimneyCount   float64 `json:"chimney_count"`
	PipeCount      float64 `json:"pipe_count"`
	VentCount      float64 `json:"vent_count"`
	GutterLF       float64 `json:"gutter_lf"`
	DownspoutCount float64 `json:"ds_count"`

	// Slopes maps a slope label (e.g. "F1") to its per-slope measurements.
	Slopes map[string]SlopeVariables `json:"slopes,omitempty"`
}

// SlopeVariables carries the measurements of a single roof slope.
type SlopeVariables struct {
	SQ     float64 `json:"sq"`
	SF     float64 `json:"sf"`
	Pitch  float64 `json:"pitch"`
	Eave   float64 `json:"eave"`
	Ridge  float64 `json:"ridge"`
	Valley float64 `json:"valley"`
	Hip    float64 `json:"hip"`
	Rake   float64 `json:"rake"`
}

// Lookup resolves a variable name, case-insensitively. Dotted names resolve
// against the slope map ("F1.SQ" reads slope F1's squares).
func (v RoofVariables) Lookup(name string) (float64, bool) {
	upper := strings.ToUpper(name)

	if label, field, ok := strings.Cut(upper, "."); ok {
		return v.lookupSlope(label, field)
	}

	switch upper {
	case "SQ":
		return v.SQ, true
	case "SF":
		return v.SF, true
	case "P":
		return v.Perimeter, true
	case "EAVE":
		return v.Eave, true
	case "R":
		return v.Ridge, true
	case "VAL":
		return v.Valley, true
	case "HIP":
		return v.Hip, true
	case "RAKE":
		return v.Rake, true
	case "SKYLIGHT_COUNT":
		return v.SkylightCount, true
	case "CHIMNEY_COUNT":
		return v.ChimneyCount, true
	case "PIPE_COUNT":
		return v.PipeCount, true
	case "VENT_COUNT":
		return v.VentCount, true
	case "GUTTER_LF":
		return v.GutterLF, true
	case "DS_COUNT":
		return v.DownspoutCount, true
	}
	return 0, false
}

func (v RoofVariables) lookupSlope(label, field string) (float64, bool) {
	var slope SlopeVariables
	found := false
	for k, s := range v.Slopes {
		if strings.EqualFold(k, label) {
			slope = s
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}

	switch field {
	case "SQ":
		return slope.SQ, true
	case "SF":
		return slope.SF, true
	case "PITCH":
		return slope.Pitch, true
	case "EAVE":
		return slope.Eave, true
	case "RIDGE":
		return slope.Ridge, true
	case "VALLEY":
		return slope.Valley, true
	case "HIP":
		return slope.Hip, true
	case "RAKE":
		return slope.Rake, true
	}
	return 0, false
}
