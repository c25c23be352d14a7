package normalize

import (
	"errors"
	"fmt"
	"strconv"

	"plandiff/model"
	"plandiff/source"
	"plandiff/units"
)

// Options controls normalization.
type Options struct {
	// IncludePaperSpace also converts paper-space layouts (viewports are
	// always skipped).
	IncludePaperSpace bool
	// ExcludeBorder ignores sheet borders and dimension layers when
	// computing the extent that drives the secondary size correction.
	ExcludeBorder bool
	// Correction enables the secondary ×1000/÷1000 rescale when the
	// expanded geometry's extent is implausible for the detected unit.
	Correction bool
}

// DefaultOptions returns the options used by the top-level API.
func DefaultOptions() Options {
	return Options{
		IncludePaperSpace: true,
		ExcludeBorder:     true,
		Correction:        true,
	}
}

// Normalizer converts raw source entities into a flat millimeter Drawing,
// expanding block references through their nested transforms.
type Normalizer struct {
	opts Options
}

// New creates a normalizer.
func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// ErrNilSource is returned when Normalize is called without a source.
var ErrNilSource = errors.New("normalize: nil source")

// Normalize converts every model-space entity (and paper-space entity, when
// enabled) to millimeters using the unit decision, expanding block
// references recursively. Entities that cannot be converted are skipped with
// a warning; only a missing source is an error. The returned Drawing is
// complete and must be treated as immutable.
func (n *Normalizer) Normalize(src source.Source, dec units.Decision) (*model.Drawing, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	var (
		elements []model.Element
		warnings []model.Warning
	)

	for _, rec := range src.ModelSpace() {
		elements = append(elements, n.convertAny(src, rec, dec.Factor, &warnings)...)
	}

	if n.opts.IncludePaperSpace {
		for _, layout := range src.Layouts() {
			for _, rec := range layout.Records() {
				if rec.Kind == source.KindViewport {
					continue
				}
				elements = append(elements, n.convertAny(src, rec, dec.Factor, &warnings)...)
			}
		}
	}

	assignIDs(elements)

	drawing := &model.Drawing{
		Source:   src.Name(),
		Layers:   append([]model.Layer(nil), src.Layers()...),
		Elements: elements,
		Metadata: model.Metadata{
			UnitFactor:       dec.Factor,
			UnitConfidence:   dec.Confidence,
			DetectionMethod:  dec.Method.String(),
			InsertionUnits:   src.InsertionUnits(),
			CorrectiveFactor: 1,
		},
	}
	drawing.Metadata.RawBounds = drawing.Bounds()
	if len(dec.Details) > 0 {
		drawing.Metadata.Extra = make(map[string]string, len(dec.Details))
		for k, v := range dec.Details {
			drawing.Metadata.Extra[k] = v
		}
	}

	if n.opts.Correction {
		n.applyCorrection(drawing, &warnings)
	}
	drawing.Metadata.Warnings = warnings
	return drawing, nil
}

// convertAny converts one record, expanding block references into their
// children. Failures produce warnings, never errors.
func (n *Normalizer) convertAny(src source.Source, rec source.Record, factor float64, warnings *[]model.Warning) []model.Element {
	if rec.Kind == source.KindInsert {
		chain := make(map[string]bool)
		return n.expand(src, rec, factor, chain, warnings)
	}
	el, err := convertRecord(rec, factor)
	if err != nil {
		*warnings = append(*warnings, model.Warning{
			Stage:   "normalize",
			Entity:  rec.Kind.String(),
			Message: err.Error(),
		})
		return nil
	}
	return []model.Element{el}
}

// applyCorrection rescales the whole drawing when its extent is implausible
// in a way a unit-scale error explains. The decision is keyed off the full
// expanded geometry (border and dimension layers excluded when configured);
// an in-window drawing is never rescaled, which makes the pass idempotent.
func (n *Normalizer) applyCorrection(drawing *model.Drawing, warnings *[]model.Warning) {
	box := contentBounds(drawing.Elements, n.opts.ExcludeBorder)
	if !box.Valid {
		return
	}
	width, height := box.Width(), box.Height()
	if units.PlausibleSize(width, height) {
		return
	}

	var corrective float64
	switch {
	case units.PlausibleSize(width*1000, height*1000):
		corrective = 1000 // drawn in meters, declared as millimeters
	case units.PlausibleSize(width/1000, height/1000):
		corrective = 0.001 // drawn in micro-units, a thousand times too large
	default:
		return
	}

	rescaleElements(drawing.Elements, corrective)
	drawing.Metadata.AutoScaled = true
	drawing.Metadata.CorrectiveFactor = corrective
	drawing.Metadata.CorrectionBasis = "geometry"
	*warnings = append(*warnings, model.Warning{
		Stage: "normalize",
		Message: fmt.Sprintf("implausible extent %.1f x %.1f for detected units, applied corrective factor %g",
			width, height, corrective),
	})
}

// assignIDs gives every element a per-kind sequential identifier in emission
// order, keeping output reproducible across runs.
func assignIDs(elements []model.Element) {
	counters := make(map[model.ElementKind]int)
	for _, e := range elements {
		kind := e.Kind()
		e.Info().ID = kind.String() + "_" + strconv.Itoa(counters[kind])
		counters[kind]++
	}
}
