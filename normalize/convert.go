package normalize

import (
	"fmt"
	"math"

	"plandiff/model"
	"plandiff/source"
)

// convertRecord turns one primitive record into an element with every
// length-bearing field multiplied by the unit factor. Block references are
// not handled here; the expander owns those.
func convertRecord(rec source.Record, factor float64) (model.Element, error) {
	switch rec.Kind {
	case source.KindLine:
		start := rec.Start.Scale(factor)
		end := rec.End.Scale(factor)
		if !finitePoint(start) || !finitePoint(end) {
			return nil, fmt.Errorf("non-finite coordinates")
		}
		return &model.Line{
			ElementInfo: infoFor(rec),
			Start:       start,
			End:         end,
		}, nil

	case source.KindCircle:
		center := rec.Center.Scale(factor)
		radius := rec.Radius * factor
		if !finitePoint(center) || !finite(radius) || radius < 0 {
			return nil, fmt.Errorf("invalid circle geometry")
		}
		return &model.Circle{
			ElementInfo: infoFor(rec),
			Center:      center,
			Radius:      radius,
		}, nil

	case source.KindArc:
		center := rec.Center.Scale(factor)
		radius := rec.Radius * factor
		if !finitePoint(center) || !finite(radius) || radius < 0 ||
			!finite(rec.StartAngle) || !finite(rec.EndAngle) {
			return nil, fmt.Errorf("invalid arc geometry")
		}
		return &model.Arc{
			ElementInfo: infoFor(rec),
			Center:      center,
			Radius:      radius,
			StartAngle:  rec.StartAngle,
			EndAngle:    rec.EndAngle,
		}, nil

	case source.KindPolyline:
		if len(rec.Vertices) < 2 {
			return nil, fmt.Errorf("polyline with %d vertices", len(rec.Vertices))
		}
		vertices := make([]model.Point2D, len(rec.Vertices))
		for i, v := range rec.Vertices {
			vertices[i] = v.Scale(factor)
			if !finitePoint(vertices[i]) {
				return nil, fmt.Errorf("non-finite vertex %d", i)
			}
		}
		return &model.Polyline{
			ElementInfo: infoFor(rec),
			Vertices:    vertices,
			Closed:      rec.Closed,
		}, nil

	case source.KindText:
		position := rec.Position.Scale(factor)
		height := rec.Height * factor
		if !finitePoint(position) || !finite(height) {
			return nil, fmt.Errorf("invalid text geometry")
		}
		if height <= 0 {
			height = 2.5 * factor // the common CAD default annotation height
		}
		return &model.Text{
			ElementInfo: infoFor(rec),
			Position:    position,
			Content:     rec.Text,
			Height:      height,
			Rotation:    rec.Rotation,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported entity kind %s", rec.Kind)
	}
}

// infoFor builds the shared element fields from a record's attributes,
// falling back to the drawing defaults where the source carries none.
func infoFor(rec source.Record) model.ElementInfo {
	style := model.DefaultStyle()
	if rec.Layer != "" {
		style.Layer = rec.Layer
	}
	if rec.LineType != "" {
		style.LineType = rec.LineType
	}
	if rec.Color != nil {
		c := *rec.Color
		style.Color = &c
	}
	return model.ElementInfo{Style: style, Confidence: 1.0}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePoint(p model.Point2D) bool {
	return finite(p.X) && finite(p.Y)
}
