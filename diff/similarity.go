package diff

import (
	"math"
	"strings"

	"plandiff/model"
)

// minArea floors degenerate bounding boxes so the overlap ratio stays
// defined for zero-area geometry like horizontal lines.
const minArea = 1e-6

// Similarity scores how likely two elements are the same drawn object, in
// [0, 1]. Elements of different kinds score 0. Lines and texts blend a
// spatial term with a kind-specific term at 0.7/0.3; every other kind scores
// on the spatial term alone, so an element is always fully similar to
// itself.
func Similarity(a, b model.Element) float64 {
	if a.Kind() != b.Kind() {
		return 0
	}

	switch ea := a.(type) {
	case *model.Line:
		eb := b.(*model.Line)
		return 0.7*lineSpatial(ea, eb) + 0.3*lineVariant(ea, eb)
	case *model.Text:
		eb := b.(*model.Text)
		return 0.7*boxOverlap(a.Bounds(), b.Bounds()) + 0.3*textVariant(ea, eb)
	default:
		return boxOverlap(a.Bounds(), b.Bounds())
	}
}

// lineSpatial measures endpoint proximity relative to segment length. The
// closer endpoint pairing is taken so direction does not matter.
func lineSpatial(a, b *model.Line) float64 {
	forward := a.Start.Distance(b.Start) + a.End.Distance(b.End)
	reverse := a.Start.Distance(b.End) + a.End.Distance(b.Start)
	minDist := math.Min(forward, reverse)

	avgLength := (a.Length() + b.Length()) / 2
	if avgLength <= 0 {
		// Two degenerate points: identical or unrelated.
		if minDist < 1e-6 {
			return 1
		}
		return 0
	}
	return math.Max(0, 1-minDist/(avgLength*2))
}

// lineVariant compares length and direction.
func lineVariant(a, b *model.Line) float64 {
	lengthDiff := math.Abs(a.Length() - b.Length())
	lengthSim := math.Max(0, 1-lengthDiff/math.Max(math.Max(a.Length(), b.Length()), 1))

	angleDiff := math.Abs(a.Angle() - b.Angle())
	angleSim := math.Max(0, 1-angleDiff/math.Pi)

	return (lengthSim + angleSim) / 2
}

// textVariant compares content: exact match scores 1, a case-insensitive
// substring relation 0.5, anything else 0.
func textVariant(a, b *model.Text) float64 {
	if a.Content == b.Content {
		return 1
	}
	la, lb := strings.ToLower(a.Content), strings.ToLower(b.Content)
	if la != "" && lb != "" && (strings.Contains(lb, la) || strings.Contains(la, lb)) {
		return 0.5
	}
	return 0
}

func sameBox(a, b model.BBox) bool {
	const eps = 1e-9
	return math.Abs(a.MinX-b.MinX) < eps && math.Abs(a.MinY-b.MinY) < eps &&
		math.Abs(a.MaxX-b.MaxX) < eps && math.Abs(a.MaxY-b.MaxY) < eps
}

// boxOverlap is the intersection-over-union of two bounding boxes, with
// areas floored at minArea.
func boxOverlap(a, b model.BBox) float64 {
	if !a.Intersects(b) {
		return 0
	}
	if sameBox(a, b) {
		// Identical boxes score 1 even when degenerate, so zero-area
		// geometry stays fully similar to itself.
		return 1
	}
	overlapX := math.Max(0, math.Min(a.MaxX, b.MaxX)-math.Max(a.MinX, b.MinX))
	overlapY := math.Max(0, math.Min(a.MaxY, b.MaxY)-math.Max(a.MinY, b.MinY))
	overlap := overlapX * overlapY

	areaA := math.Max(a.Area(), minArea)
	areaB := math.Max(b.Area(), minArea)
	total := areaA + areaB - overlap
	if total <= 0 {
		return 0
	}
	return overlap / total
}
