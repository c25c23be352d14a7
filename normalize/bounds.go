package normalize

import (
	"strings"

	"plandiff/model"
)

// borderCoverage is the fraction of the overall extent a closed rectangle
// must cover, in both dimensions, to count as a sheet border.
const borderCoverage = 0.8

// annotationLayers are layer names whose geometry describes the sheet rather
// than the building, matched as lowercase substrings.
var annotationLayers = []string{"defpoints", "dim"}

// contentBounds computes the extent of the real drawn content. With
// exclusion enabled it drops sheet borders (closed 4 or 5 vertex polylines
// spanning most of the full extent) and annotation layers, so a huge title
// frame cannot mask an implausibly small floor plan.
func contentBounds(elements []model.Element, excludeBorder bool) model.BBox {
	var full model.BBox
	for _, e := range elements {
		full = full.Union(e.Bounds())
	}
	if !excludeBorder || !full.Valid {
		return full
	}

	var content model.BBox
	for _, e := range elements {
		if isAnnotationLayer(e.Info().Style.Layer) {
			continue
		}
		if isBorder(e, full) {
			continue
		}
		content = content.Union(e.Bounds())
	}
	if !content.Valid {
		// Everything looked like sheet furniture; fall back to the full
		// extent rather than reporting an empty drawing.
		return full
	}
	return content
}

func isAnnotationLayer(layer string) bool {
	lower := strings.ToLower(layer)
	for _, marker := range annotationLayers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// isBorder reports whether an element is a closed rectangle covering at
// least borderCoverage of the full extent in both dimensions.
func isBorder(e model.Element, full model.BBox) bool {
	p, ok := e.(*model.Polyline)
	if !ok || !p.Closed {
		return false
	}
	if n := len(p.Vertices); n != 4 && n != 5 {
		return false
	}
	box := p.Bounds()
	return box.Width() >= full.Width()*borderCoverage &&
		box.Height() >= full.Height()*borderCoverage
}

// rescaleElements multiplies every length-bearing field by f, in place.
func rescaleElements(elements []model.Element, f float64) {
	for _, el := range elements {
		switch e := el.(type) {
		case *model.Line:
			e.Start = e.Start.Scale(f)
			e.End = e.End.Scale(f)
		case *model.Circle:
			e.Center = e.Center.Scale(f)
			e.Radius *= f
		case *model.Arc:
			e.Center = e.Center.Scale(f)
			e.Radius *= f
		case *model.Polyline:
			for i := range e.Vertices {
				e.Vertices[i] = e.Vertices[i].Scale(f)
			}
		case *model.Text:
			e.Position = e.Position.Scale(f)
			e.Height *= f
		case *model.BlockRef:
			e.Position = e.Position.Scale(f)
		}
	}
}
