package model

import "math"

// ElementKind identifies the geometric variant of an element. The set is
// closed: every stage of the pipeline switches exhaustively over it.
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindLine
	KindCircle
	KindArc
	KindPolyline
	KindText
	KindBlockRef
)

func (k ElementKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindPolyline:
		return "polyline"
	case KindText:
		return "text"
	case KindBlockRef:
		return "block_ref"
	default:
		return "unknown"
	}
}

// ArchClass is the architectural classification of an element, assigned by
// the difference engine. It is orthogonal to the geometric kind.
type ArchClass int

const (
	ClassUnknown ArchClass = iota
	ClassWall
	ClassOpening
	ClassDoor
	ClassWindow
	ClassFixture
	ClassTextLabel
	ClassDimensionLine
)

func (c ArchClass) String() string {
	switch c {
	case ClassWall:
		return "wall"
	case ClassOpening:
		return "opening"
	case ClassDoor:
		return "door"
	case ClassWindow:
		return "window"
	case ClassFixture:
		return "fixture"
	case ClassTextLabel:
		return "text_label"
	case ClassDimensionLine:
		return "dimension_line"
	default:
		return "unknown"
	}
}

// Style carries the drawing attributes of an element.
type Style struct {
	Color     *int    `json:"color,omitempty"`
	LineWidth float64 `json:"line_width"`
	LineType  string  `json:"line_type"`
	Layer     string  `json:"layer"`
}

// DefaultStyle returns the style applied to elements whose source carries no
// explicit attributes.
func DefaultStyle() Style {
	return Style{LineWidth: 1.0, LineType: "CONTINUOUS", Layer: "0"}
}

// ElementInfo holds the identity, style, and classification shared by every
// element variant. Classification fields start at ClassUnknown / confidence 1
// and are filled in by the difference engine.
type ElementInfo struct {
	ID         string    `json:"id"`
	Style      Style     `json:"style"`
	Class      ArchClass `json:"class"`
	Confidence float64   `json:"confidence"`
}

// Element is the closed union of geometric variants. Concrete types are
// *Line, *Circle, *Arc, *Polyline, *Text, and *BlockRef.
type Element interface {
	Kind() ElementKind
	Bounds() BBox
	// Info exposes the shared identity and classification fields.
	Info() *ElementInfo
}

// Line is a straight segment between two points.
type Line struct {
	ElementInfo
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

func (l *Line) Kind() ElementKind { return KindLine }
func (l *Line) Info() *ElementInfo {
	return &l.ElementInfo
}

func (l *Line) Bounds() BBox {
	return NewBBox(l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

// Length returns the segment length.
func (l *Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Angle returns the segment direction in radians, measured from the positive
// X axis.
func (l *Line) Angle() float64 {
	return math.Atan2(l.End.Y-l.Start.Y, l.End.X-l.Start.X)
}

// Circle is a full circle.
type Circle struct {
	ElementInfo
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
}

func (c *Circle) Kind() ElementKind  { return KindCircle }
func (c *Circle) Info() *ElementInfo { return &c.ElementInfo }

func (c *Circle) Bounds() BBox {
	return NewBBox(c.Center.X-c.Radius, c.Center.Y-c.Radius,
		c.Center.X+c.Radius, c.Center.Y+c.Radius)
}

// Arc is a circular arc. Angles are in degrees, counter-clockwise.
type Arc struct {
	ElementInfo
	Center     Point2D `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

func (a *Arc) Kind() ElementKind  { return KindArc }
func (a *Arc) Info() *ElementInfo { return &a.ElementInfo }

// Bounds returns the bounding box of the full circle the arc lies on, the
// same approximation the matching heuristics were tuned against.
func (a *Arc) Bounds() BBox {
	return NewBBox(a.Center.X-a.Radius, a.Center.Y-a.Radius,
		a.Center.X+a.Radius, a.Center.Y+a.Radius)
}

// Polyline is an ordered sequence of vertices, optionally closed.
type Polyline struct {
	ElementInfo
	Vertices []Point2D `json:"vertices"`
	Closed   bool      `json:"closed"`
}

func (p *Polyline) Kind() ElementKind  { return KindPolyline }
func (p *Polyline) Info() *ElementInfo { return &p.ElementInfo }

func (p *Polyline) Bounds() BBox {
	var box BBox
	for _, v := range p.Vertices {
		box = box.Extend(v)
	}
	return box
}

// TotalLength returns the summed length of all segments, including the
// closing segment for closed polylines.
func (p *Polyline) TotalLength() float64 {
	if len(p.Vertices) < 2 {
		return 0
	}
	var total float64
	for i := 0; i < len(p.Vertices)-1; i++ {
		total += p.Vertices[i].Distance(p.Vertices[i+1])
	}
	if p.Closed {
		total += p.Vertices[len(p.Vertices)-1].Distance(p.Vertices[0])
	}
	return total
}

// Text is a positioned text annotation. Rotation is in degrees.
type Text struct {
	ElementInfo
	Position Point2D `json:"position"`
	Content  string  `json:"content"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

func (t *Text) Kind() ElementKind  { return KindText }
func (t *Text) Info() *ElementInfo { return &t.ElementInfo }

// Bounds estimates the text extent from the glyph count. Exact metrics would
// need font information the source does not carry.
func (t *Text) Bounds() BBox {
	width := float64(len([]rune(t.Content))) * t.Height * 0.6
	return NewBBox(t.Position.X, t.Position.Y,
		t.Position.X+width, t.Position.Y+t.Height)
}

// BlockRef is an unexpanded reference to a named block. The normalizer
// expands references it can resolve; this variant survives only when a
// source chooses to retain references.
type BlockRef struct {
	ElementInfo
	Position Point2D `json:"position"`
	Name     string  `json:"name"`
	ScaleX   float64 `json:"scale_x"`
	ScaleY   float64 `json:"scale_y"`
	Rotation float64 `json:"rotation"`
}

func (b *BlockRef) Kind() ElementKind  { return KindBlockRef }
func (b *BlockRef) Info() *ElementInfo { return &b.ElementInfo }

// Bounds returns a degenerate box at the insertion point; the referenced
// geometry's extent is unknown without expansion.
func (b *BlockRef) Bounds() BBox {
	return BBox{MinX: b.Position.X, MinY: b.Position.Y,
		MaxX: b.Position.X, MaxY: b.Position.Y, Valid: true}
}
