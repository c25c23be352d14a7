package diff

import (
	"math"
	"strings"

	"golang.org/x/text/width"

	"plandiff/model"
)

// classifier assigns architectural classes to new elements. Passes run in
// precedence order (walls, openings, fixtures) and an element classified by
// an earlier pass is skipped by later ones, so the category lists stay
// disjoint.
type classifier struct {
	cfg Config
}

// layerMatches reports whether the layer name contains any keyword. Both
// sides are folded to half-width and lowercased first, so full-width
// katakana layer names still match the configured keywords.
func layerMatches(layer string, keywords []string) bool {
	folded := strings.ToLower(width.Fold.String(layer))
	for _, kw := range keywords {
		if strings.Contains(folded, strings.ToLower(width.Fold.String(kw))) {
			return true
		}
	}
	return false
}

// walls classifies wall candidates: lines and polylines long enough to be
// structural, promoted either by a wall layer name or by sheer length.
func (c classifier) walls(elements []model.Element) []model.Element {
	var walls []model.Element
	for _, el := range elements {
		switch e := el.(type) {
		case *model.Line:
			// A wall layer name classifies regardless of length; without
			// one only clearly structural lines qualify.
			if layerMatches(e.Style.Layer, c.cfg.WallKeywords) {
				e.Class = model.ClassWall
				walls = append(walls, e)
			} else if e.Length() > 1000 {
				e.Class = model.ClassWall
				e.Confidence = 0.7
				walls = append(walls, e)
			}
		case *model.Polyline:
			if layerMatches(e.Style.Layer, c.cfg.WallKeywords) {
				e.Class = model.ClassWall
				walls = append(walls, e)
			} else if len(e.Vertices) >= 2 && openPathLength(e) > 500 {
				e.Class = model.ClassWall
				walls = append(walls, e)
			}
		}
	}
	return walls
}

// openings classifies doors and windows by layer name, plus short lines
// hugging a wall.
func (c classifier) openings(elements, walls []model.Element) []model.Element {
	var openings []model.Element
	for _, el := range elements {
		if el.Info().Class != model.ClassUnknown {
			continue
		}
		layer := el.Info().Style.Layer
		switch {
		case layerMatches(layer, c.cfg.DoorKeywords):
			el.Info().Class = model.ClassDoor
			openings = append(openings, el)
		case layerMatches(layer, c.cfg.WindowKeywords):
			el.Info().Class = model.ClassWindow
			openings = append(openings, el)
		default:
			line, ok := el.(*model.Line)
			if !ok || line.Length() <= 100 || line.Length() >= 3000 {
				continue
			}
			for _, wall := range walls {
				wallLine, ok := wall.(*model.Line)
				if !ok {
					continue
				}
				if segmentDistance(line, wallLine) < 100 {
					line.Class = model.ClassOpening
					line.Confidence = 0.6
					openings = append(openings, line)
					break
				}
			}
		}
	}
	return openings
}

// fixtures classifies equipment: fixture layers, circles, and unexpanded
// block references.
func (c classifier) fixtures(elements []model.Element) []model.Element {
	var fixtures []model.Element
	for _, el := range elements {
		info := el.Info()
		if info.Class != model.ClassUnknown {
			continue
		}
		switch {
		case layerMatches(info.Style.Layer, c.cfg.FixtureKeywords):
			info.Class = model.ClassFixture
			fixtures = append(fixtures, el)
		case el.Kind() == model.KindCircle:
			info.Class = model.ClassFixture
			info.Confidence = 0.7
			fixtures = append(fixtures, el)
		case el.Kind() == model.KindBlockRef:
			info.Class = model.ClassFixture
			info.Confidence = 0.8
			fixtures = append(fixtures, el)
		}
	}
	return fixtures
}

// openPathLength sums the segment lengths without the closing segment,
// matching the length test used for wall candidates.
func openPathLength(p *model.Polyline) float64 {
	var total float64
	for i := 0; i < len(p.Vertices)-1; i++ {
		total += p.Vertices[i].Distance(p.Vertices[i+1])
	}
	return total
}

// segmentDistance returns the minimum distance between two line segments:
// zero when they intersect, otherwise the closest endpoint-to-segment
// distance.
func segmentDistance(a, b *model.Line) float64 {
	if segmentsIntersect(a.Start, a.End, b.Start, b.End) {
		return 0
	}
	return math.Min(
		math.Min(pointSegmentDistance(a.Start, b.Start, b.End),
			pointSegmentDistance(a.End, b.Start, b.End)),
		math.Min(pointSegmentDistance(b.Start, a.Start, a.End),
			pointSegmentDistance(b.End, a.Start, a.End)),
	)
}

func pointSegmentDistance(p, a, b model.Point2D) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := model.Point2D{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return p.Distance(closest)
}

func segmentsIntersect(p1, p2, p3, p4 model.Point2D) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(p3, p4, p1)) ||
		(d2 == 0 && onSegment(p3, p4, p2)) ||
		(d3 == 0 && onSegment(p1, p2, p3)) ||
		(d4 == 0 && onSegment(p1, p2, p4))
}

func cross(a, b, c model.Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p model.Point2D) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
