package model

import "math"

// Point2D represents a 2D point in drawing coordinates. After normalization
// all coordinates are in millimeters.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sub returns the component-wise difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point with both components multiplied by f.
func (p Point2D) Scale(f float64) Point2D {
	return Point2D{X: p.X * f, Y: p.Y * f}
}

// BBox represents an axis-aligned bounding box. The zero value is the
// distinguished empty box: Valid is false and no ±Inf sentinel ever appears
// in a box handed to callers.
type BBox struct {
	MinX  float64 `json:"min_x"`
	MinY  float64 `json:"min_y"`
	MaxX  float64 `json:"max_x"`
	MaxY  float64 `json:"max_y"`
	Valid bool    `json:"valid"`
}

// NewBBox creates a bounding box from two corner coordinates, normalizing
// min/max ordering.
func NewBBox(x1, y1, x2, y2 float64) BBox {
	return BBox{
		MinX:  math.Min(x1, x2),
		MinY:  math.Min(y1, y2),
		MaxX:  math.Max(x1, x2),
		MaxY:  math.Max(y1, y2),
		Valid: true,
	}
}

// Width returns the horizontal extent, or 0 for the empty box.
func (b BBox) Width() float64 {
	if !b.Valid {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent, or 0 for the empty box.
func (b BBox) Height() float64 {
	if !b.Valid {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the center point of the box.
func (b BBox) Center() Point2D {
	return Point2D{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
	}
}

// Area returns the area of the box, or 0 for the empty box.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// Intersects checks whether two boxes overlap. The empty box intersects
// nothing.
func (b BBox) Intersects(other BBox) bool {
	if !b.Valid || !other.Valid {
		return false
	}
	return !(b.MaxX < other.MinX || b.MinX > other.MaxX ||
		b.MaxY < other.MinY || b.MinY > other.MaxY)
}

// Union returns the smallest box covering both boxes. Unioning with the
// empty box returns the other box unchanged.
func (b BBox) Union(other BBox) BBox {
	if !b.Valid {
		return other
	}
	if !other.Valid {
		return b
	}
	return BBox{
		MinX:  math.Min(b.MinX, other.MinX),
		MinY:  math.Min(b.MinY, other.MinY),
		MaxX:  math.Max(b.MaxX, other.MaxX),
		MaxY:  math.Max(b.MaxY, other.MaxY),
		Valid: true,
	}
}

// Extend grows the box to cover a point. Extending the empty box produces a
// degenerate point box.
func (b BBox) Extend(p Point2D) BBox {
	if !b.Valid {
		return BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y, Valid: true}
	}
	return BBox{
		MinX:  math.Min(b.MinX, p.X),
		MinY:  math.Min(b.MinY, p.Y),
		MaxX:  math.Max(b.MaxX, p.X),
		MaxY:  math.Max(b.MaxY, p.Y),
		Valid: true,
	}
}

// Matrix represents a 2D affine transform as [a b c d tx ty]. Points
// transform as row vectors: x' = a*x + c*y + tx, y' = b*x + d*y + ty.
type Matrix [6]float64

// Scaling returns a transform scaling by (sx, sy) about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// RotationDeg returns a counter-clockwise rotation about the origin. The
// angle is in degrees, the convention CAD block references use.
func RotationDeg(deg float64) Matrix {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Translation returns a transform moving points by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Mul composes two transforms: applying the result is equivalent to applying
// m first, then other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Point2D) Point2D {
	return Point2D{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
