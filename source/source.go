package source

import "plandiff/model"

// RecordKind discriminates the entity kinds a Source can expose.
type RecordKind int

const (
	KindUnknown RecordKind = iota
	KindLine
	KindCircle
	KindArc
	KindPolyline
	KindText
	KindInsert
	KindViewport
)

func (k RecordKind) String() string {
	switch k {
	case KindLine:
		return "LINE"
	case KindCircle:
		return "CIRCLE"
	case KindArc:
		return "ARC"
	case KindPolyline:
		return "POLYLINE"
	case KindText:
		return "TEXT"
	case KindInsert:
		return "INSERT"
	case KindViewport:
		return "VIEWPORT"
	default:
		return "UNKNOWN"
	}
}

// Record is one raw entity as a CAD reader exposes it: a kind discriminator,
// shared attributes, and the geometry fields that kind defines. Coordinates
// are raw drawing units; the normalizer applies the unit factor.
type Record struct {
	Kind     RecordKind
	Layer    string
	Color    *int
	LineType string

	// Line
	Start model.Point2D
	End   model.Point2D

	// Circle / Arc
	Center     model.Point2D
	Radius     float64
	StartAngle float64 // degrees
	EndAngle   float64 // degrees

	// Polyline
	Vertices []model.Point2D
	Closed   bool

	// Text / Insert
	Position model.Point2D
	Text     string
	Height   float64
	Rotation float64 // degrees

	// Insert
	BlockName string
	ScaleX    float64
	ScaleY    float64
}

// Layout is one paper-space layout.
type Layout interface {
	Name() string
	Records() []Record
}

// Source is the consumed entity-access boundary: everything the pipeline
// needs from a CAD file, already materialized in memory. Implementations
// must be safe for concurrent readers; the core never mutates a Source.
type Source interface {
	// Name identifies the source, typically a file path.
	Name() string
	// InsertionUnits returns the raw drawing-level units code; 0 means
	// unitless.
	InsertionUnits() int
	// Layers returns the layer table.
	Layers() []model.Layer
	// ModelSpace returns model-space entities in file order.
	ModelSpace() []Record
	// Block returns the entity list of a named block definition.
	Block(name string) ([]Record, bool)
	// Layouts returns the paper-space layouts.
	Layouts() []Layout
}

// Line builds a line record.
func Line(layer string, start, end model.Point2D) Record {
	return Record{Kind: KindLine, Layer: layer, Start: start, End: end}
}

// Circle builds a circle record.
func Circle(layer string, center model.Point2D, radius float64) Record {
	return Record{Kind: KindCircle, Layer: layer, Center: center, Radius: radius}
}

// Arc builds an arc record; angles are in degrees, counter-clockwise.
func Arc(layer string, center model.Point2D, radius, startAngle, endAngle float64) Record {
	return Record{
		Kind: KindArc, Layer: layer, Center: center, Radius: radius,
		StartAngle: startAngle, EndAngle: endAngle,
	}
}

// Polyline builds a polyline record.
func Polyline(layer string, closed bool, vertices ...model.Point2D) Record {
	return Record{Kind: KindPolyline, Layer: layer, Closed: closed, Vertices: vertices}
}

// Text builds a text record.
func Text(layer string, position model.Point2D, content string, height float64) Record {
	return Record{Kind: KindText, Layer: layer, Position: position, Text: content, Height: height}
}

// Insert builds a block-reference record.
func Insert(layer, blockName string, position model.Point2D, scaleX, scaleY, rotation float64) Record {
	return Record{
		Kind: KindInsert, Layer: layer, BlockName: blockName, Position: position,
		ScaleX: scaleX, ScaleY: scaleY, Rotation: rotation,
	}
}

// Viewport builds a paper-space viewport record; the normalizer skips these.
func Viewport(layer string) Record {
	return Record{Kind: KindViewport, Layer: layer}
}
