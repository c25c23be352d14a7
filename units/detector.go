package units

import (
	"fmt"
	"strconv"

	"plandiff/model"
	"plandiff/patterns"
	"plandiff/source"
)

// Detector infers the unit factor of a drawing by combining up to three
// independent estimators. It holds only the immutable learned-pattern table,
// so one Detector is safe for concurrent Decide calls.
type Detector struct {
	patterns patterns.Table
}

// NewDetector creates a detector. The pattern table may be nil, in which
// case the learned-pattern estimator never produces a candidate.
func NewDetector(table patterns.Table) *Detector {
	return &Detector{patterns: table}
}

// Decide returns the unit decision for a drawing. role names the drawing's
// function ("site", "plan", ...) and selects per-role unit overrides in the
// pattern table; it may be empty.
//
// Each estimator is optional: header metadata, learned block patterns, and
// the raw-size heuristic each produce a candidate only when their signal is
// present. The candidate with the highest confidence wins; ties go to the
// earlier estimator (header, then patterns, then size). When none apply the
// decision falls back to factor 1.0 at confidence 0.3 so downstream
// consumers can flag the drawing for review.
func (d *Detector) Decide(src source.Source, role string) Decision {
	best := Decision{
		Factor:     1.0,
		Confidence: 0.3,
		Method:     MethodDefault,
		Details:    map[string]string{"reason": "no estimator produced a result"},
	}
	found := false

	consider := func(cand Decision) {
		if !found || cand.Confidence > best.Confidence {
			best = cand
			found = true
		}
	}

	if cand, ok := d.fromHeader(src); ok {
		consider(cand)
	}
	if cand, ok := d.fromPatterns(src, role); ok {
		consider(cand)
	}
	if cand, ok := d.fromSize(src); ok {
		consider(cand)
	}
	return best
}

// fromHeader reads the insertion-units code. A unitless or unrecognized
// code yields no candidate.
func (d *Detector) fromHeader(src source.Source) (Decision, bool) {
	code := src.InsertionUnits()
	factor, ok := HeaderFactor(code)
	if !ok {
		return Decision{}, false
	}
	return Decision{
		Factor:     factor,
		Confidence: 0.9,
		Method:     MethodHeader,
		Details: map[string]string{
			"source": "insertion_units",
			"code":   strconv.Itoa(code),
		},
	}, true
}

// fromPatterns collects one confidence-weighted vote per model-space block
// reference whose name appears in the learned table, then rounds the
// weighted mean factor to the nearest of 1 (millimeter) and 1000 (meter).
func (d *Detector) fromPatterns(src source.Source, role string) (Decision, bool) {
	if len(d.patterns) == 0 {
		return Decision{}, false
	}

	var (
		votes       int
		totalWeight float64
		weightedSum float64
	)
	for _, rec := range src.ModelSpace() {
		if rec.Kind != source.KindInsert {
			continue
		}
		factor, confidence, ok := d.patterns.Vote(rec.BlockName, role)
		if !ok {
			continue
		}
		votes++
		totalWeight += confidence
		weightedSum += factor * confidence
	}
	if votes == 0 || totalWeight <= 0 {
		return Decision{}, false
	}

	weightedFactor := weightedSum / totalWeight
	factor := 1.0
	if weightedFactor > 500 {
		factor = 1000.0
	}
	return Decision{
		Factor:     factor,
		Confidence: totalWeight / float64(votes),
		Method:     MethodLearnedPattern,
		Details: map[string]string{
			"block_votes":     strconv.Itoa(votes),
			"weighted_factor": fmt.Sprintf("%.3f", weightedFactor),
			"role":            role,
		},
	}, true
}

// fromSize estimates units from the drawing extent: block insertion points
// first (confidence 0.8), the full primitive extent as a fallback
// (confidence 0.6). Each extent is tested as-is (millimeters) and scaled by
// 1000 (meters).
func (d *Detector) fromSize(src source.Source) (Decision, bool) {
	if box := insertBounds(src); box.Valid {
		if cand, ok := sizeCandidate(box, 0.8, "insertion_points"); ok {
			return cand, true
		}
	}
	if box := primitiveBounds(src); box.Valid {
		if cand, ok := sizeCandidate(box, 0.6, "entities"); ok {
			return cand, true
		}
	}
	return Decision{}, false
}

func sizeCandidate(box model.BBox, confidence float64, basis string) (Decision, bool) {
	width, height := box.Width(), box.Height()
	details := func(unit string) map[string]string {
		return map[string]string{
			"basis":  basis,
			"unit":   unit,
			"extent": fmt.Sprintf("%.1f x %.1f", width, height),
		}
	}
	if PlausibleSize(width, height) {
		return Decision{
			Factor:     1.0,
			Confidence: confidence,
			Method:     MethodSizeHeuristic,
			Details:    details("mm"),
		}, true
	}
	if PlausibleSize(width*1000, height*1000) {
		return Decision{
			Factor:     1000.0,
			Confidence: confidence,
			Method:     MethodSizeHeuristic,
			Details:    details("m"),
		}, true
	}
	return Decision{}, false
}

// insertBounds returns the bounding box of model-space block insertion
// points.
func insertBounds(src source.Source) model.BBox {
	var box model.BBox
	for _, rec := range src.ModelSpace() {
		if rec.Kind == source.KindInsert {
			box = box.Extend(rec.Position)
		}
	}
	return box
}

// primitiveBounds returns the bounding box of all model-space primitives.
func primitiveBounds(src source.Source) model.BBox {
	var box model.BBox
	for _, rec := range src.ModelSpace() {
		switch rec.Kind {
		case source.KindLine:
			box = box.Extend(rec.Start).Extend(rec.End)
		case source.KindCircle, source.KindArc:
			box = box.Extend(model.Point2D{X: rec.Center.X - rec.Radius, Y: rec.Center.Y - rec.Radius})
			box = box.Extend(model.Point2D{X: rec.Center.X + rec.Radius, Y: rec.Center.Y + rec.Radius})
		case source.KindPolyline:
			for _, v := range rec.Vertices {
				box = box.Extend(v)
			}
		case source.KindText:
			box = box.Extend(rec.Position)
		}
	}
	return box
}
