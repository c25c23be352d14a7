package normalize

import (
	"math"

	"plandiff/model"
	"plandiff/source"
)

// maxExpansionDepth bounds nested block expansion independently of the cycle
// guard, protecting against pathologically deep (but acyclic) definitions.
const maxExpansionDepth = 32

// expand resolves a block reference into its concrete geometry. Children are
// converted at the unit factor first, then placed through one combined
// transform: scale about the block origin, rotate, translate to the
// unit-scaled insertion point. chain tracks the block names on the current
// reference path; revisiting one means a definition cycle, which is reported
// as a warning and cut, never an error.
func (n *Normalizer) expand(src source.Source, ins source.Record, factor float64, chain map[string]bool, warnings *[]model.Warning) []model.Element {
	if chain[ins.BlockName] {
		*warnings = append(*warnings, model.Warning{
			Stage:   "normalize",
			Entity:  "INSERT " + ins.BlockName,
			Message: "circular block reference, expansion cut",
		})
		return nil
	}
	if len(chain) >= maxExpansionDepth {
		*warnings = append(*warnings, model.Warning{
			Stage:   "normalize",
			Entity:  "INSERT " + ins.BlockName,
			Message: "block nesting exceeds maximum depth, expansion cut",
		})
		return nil
	}

	records, ok := src.Block(ins.BlockName)
	if !ok {
		*warnings = append(*warnings, model.Warning{
			Stage:   "normalize",
			Entity:  "INSERT " + ins.BlockName,
			Message: "referenced block is not defined, reference skipped",
		})
		return nil
	}

	chain[ins.BlockName] = true
	defer delete(chain, ins.BlockName)

	sx, sy := ins.ScaleX, ins.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	insertion := ins.Position.Scale(factor)
	placement := model.Scaling(sx, sy).
		Mul(model.RotationDeg(ins.Rotation)).
		Mul(model.Translation(insertion.X, insertion.Y))
	avgScale := (math.Abs(sx) + math.Abs(sy)) / 2

	var out []model.Element
	for _, rec := range records {
		if rec.Kind == source.KindInsert {
			for _, child := range n.expand(src, rec, factor, chain, warnings) {
				out = append(out, place(child, placement, avgScale, ins.Rotation))
			}
			continue
		}
		el, err := convertRecord(rec, factor)
		if err != nil {
			*warnings = append(*warnings, model.Warning{
				Stage:   "normalize",
				Entity:  "INSERT " + ins.BlockName + " / " + rec.Kind.String(),
				Message: err.Error(),
			})
			continue
		}
		out = append(out, place(el, placement, avgScale, ins.Rotation))
	}
	return out
}

// place applies a block placement to one element, in place. Positions go
// through the full affine transform; scalar sizes (radii, text heights) use
// the average absolute scale since the model cannot represent ellipses, and
// angular fields pick up the placement rotation additively.
func place(el model.Element, m model.Matrix, avgScale, rotation float64) model.Element {
	switch e := el.(type) {
	case *model.Line:
		e.Start = m.Apply(e.Start)
		e.End = m.Apply(e.End)
	case *model.Circle:
		e.Center = m.Apply(e.Center)
		e.Radius *= avgScale
	case *model.Arc:
		e.Center = m.Apply(e.Center)
		e.Radius *= avgScale
		e.StartAngle += rotation
		e.EndAngle += rotation
	case *model.Polyline:
		for i := range e.Vertices {
			e.Vertices[i] = m.Apply(e.Vertices[i])
		}
	case *model.Text:
		e.Position = m.Apply(e.Position)
		e.Height *= avgScale
		e.Rotation += rotation
	case *model.BlockRef:
		e.Position = m.Apply(e.Position)
		e.ScaleX *= avgScale
		e.ScaleY *= avgScale
		e.Rotation += rotation
	}
	return el
}
