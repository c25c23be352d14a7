package model

import (
	"fmt"
	"strings"
)

// Layer is a drawing layer record.
type Layer struct {
	Name     string `json:"name"`
	Color    int    `json:"color"`
	LineType string `json:"line_type"`
	Visible  bool   `json:"visible"`
	Locked   bool   `json:"locked"`
	Frozen   bool   `json:"frozen"`
}

// Warning records a non-fatal issue encountered while producing a result.
// Warnings are returned beside results instead of being logged.
type Warning struct {
	Stage   string `json:"stage"`
	Entity  string `json:"entity,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Entity != "" {
		return fmt.Sprintf("%s: %s: %s", w.Stage, w.Entity, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// FormatWarnings renders warnings as a single newline-separated string for
// callers that want to log them.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// Metadata describes how a Drawing was produced. It is written once by the
// normalizer and read-only afterward.
type Metadata struct {
	// Unit detection outcome applied to this drawing.
	UnitFactor      float64 `json:"unit_factor"`
	UnitConfidence  float64 `json:"unit_confidence"`
	DetectionMethod string  `json:"detection_method"`
	InsertionUnits  int     `json:"insertion_units"`

	// Secondary size correction, if one was applied.
	AutoScaled       bool    `json:"auto_scaled"`
	CorrectiveFactor float64 `json:"corrective_factor"`
	CorrectionBasis  string  `json:"correction_basis,omitempty"`

	// RawBounds is the extent after unit scaling but before any corrective
	// rescale.
	RawBounds BBox `json:"raw_bounds"`

	Warnings []Warning         `json:"warnings,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Drawing is a fully normalized drawing: every coordinate is in millimeters
// and all block references the source could resolve have been expanded.
// A Drawing is immutable once handed to the difference engine.
type Drawing struct {
	Source   string
	Layers   []Layer
	Elements []Element
	Metadata Metadata
}

// ElementsByKind returns the elements of one geometric kind, in drawing
// order.
func (d *Drawing) ElementsByKind(kind ElementKind) []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// ElementsByClass returns the elements carrying one architectural
// classification.
func (d *Drawing) ElementsByClass(class ArchClass) []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Info().Class == class {
			out = append(out, e)
		}
	}
	return out
}

// ElementsByLayer returns the elements on a named layer.
func (d *Drawing) ElementsByLayer(layer string) []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Info().Style.Layer == layer {
			out = append(out, e)
		}
	}
	return out
}

// Bounds returns the extent of all elements, or the empty box for a drawing
// with no elements.
func (d *Drawing) Bounds() BBox {
	var box BBox
	for _, e := range d.Elements {
		box = box.Union(e.Bounds())
	}
	return box
}
