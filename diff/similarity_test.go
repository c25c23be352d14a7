package diff

import (
	"math"
	"testing"

	"plandiff/model"
)

func pt(x, y float64) model.Point2D { return model.Point2D{X: x, Y: y} }

func line(x1, y1, x2, y2 float64) *model.Line {
	return &model.Line{Start: pt(x1, y1), End: pt(x2, y2)}
}

func TestSimilaritySelfIsOne(t *testing.T) {
	elements := []model.Element{
		line(0, 0, 1000, 0),
		&model.Circle{Center: pt(500, 500), Radius: 100},
		&model.Arc{Center: pt(0, 0), Radius: 50, StartAngle: 0, EndAngle: 90},
		&model.Polyline{Vertices: []model.Point2D{pt(0, 0), pt(100, 0), pt(100, 100)}},
		// Degenerate zero-area geometry must still be fully self-similar.
		&model.Polyline{Vertices: []model.Point2D{pt(0, 0), pt(100, 0)}},
		&model.Text{Position: pt(10, 10), Content: "LDK", Height: 3},
		&model.BlockRef{Position: pt(7, 7), Name: "DOOR_A", ScaleX: 1, ScaleY: 1},
	}
	for _, e := range elements {
		if got := Similarity(e, e); math.Abs(got-1) > 1e-9 {
			t.Errorf("Similarity(%s, itself) = %v, want 1", e.Kind(), got)
		}
	}
}

func TestSimilarityCrossKindIsZero(t *testing.T) {
	l := line(0, 0, 100, 0)
	c := &model.Circle{Center: pt(50, 0), Radius: 50}
	if got := Similarity(l, c); got != 0 {
		t.Errorf("Similarity(line, circle) = %v, want 0", got)
	}
}

func TestSimilarityLineDirectionInsensitive(t *testing.T) {
	a := line(0, 0, 2000, 0)
	b := line(2000, 0, 0, 0)
	// Reversed endpoints describe the same drawn segment; the spatial term
	// must be perfect even though the angles differ by pi.
	got := Similarity(a, b)
	spatialOnly := 0.7 * lineSpatial(a, b)
	if lineSpatial(a, b) != 1 {
		t.Errorf("lineSpatial(reversed) = %v, want 1", lineSpatial(a, b))
	}
	if got < spatialOnly {
		t.Errorf("Similarity = %v, below spatial floor %v", got, spatialOnly)
	}
}

func TestSimilarityLineDecaysWithDistance(t *testing.T) {
	base := line(0, 0, 1000, 0)
	near := Similarity(base, line(0, 50, 1000, 50))
	far := Similarity(base, line(0, 5000, 1000, 5000))
	if near <= far {
		t.Errorf("near %v should beat far %v", near, far)
	}
	if far > 0.3 {
		t.Errorf("distant parallel line scored %v, want near 0.3 or below", far)
	}
}

func TestSimilarityDegenerateLines(t *testing.T) {
	a := line(5, 5, 5, 5)
	if got := Similarity(a, line(5, 5, 5, 5)); math.Abs(got-1) > 1e-9 {
		t.Errorf("coincident zero-length lines = %v, want 1", got)
	}
	// Separated points zero out the spatial term but share length and angle,
	// so the shape term still contributes its full 0.3 weight. That keeps
	// them below the default matching threshold.
	got := Similarity(a, line(9, 9, 9, 9))
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("separated zero-length lines = %v, want 0.3", got)
	}
	if got >= DefaultConfig().Threshold {
		t.Errorf("separated zero-length lines score %v, must stay below the default threshold", got)
	}
}

func TestSimilarityTextContent(t *testing.T) {
	at := func(content string) *model.Text {
		return &model.Text{Position: pt(0, 0), Content: content, Height: 3}
	}
	tests := []struct {
		a, b string
		want float64
	}{
		{"浴室", "浴室", 1},
		{"浴室", "浴室 2F", 0.5},
		{"BATH", "bath room", 0.5},
		{"浴室", "玄関", 0},
		{"", "", 1},
	}
	for _, tt := range tests {
		if got := textVariant(at(tt.a), at(tt.b)); got != tt.want {
			t.Errorf("textVariant(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if got := Similarity(at("浴室"), at("浴室")); math.Abs(got-1) > 1e-9 {
		t.Errorf("identical text at identical position = %v, want 1", got)
	}
}

func TestSimilarityCircleOverlap(t *testing.T) {
	a := &model.Circle{Center: pt(0, 0), Radius: 100}
	disjoint := &model.Circle{Center: pt(1000, 1000), Radius: 100}
	if got := Similarity(a, disjoint); got != 0 {
		t.Errorf("disjoint circles = %v, want 0", got)
	}
	shifted := &model.Circle{Center: pt(20, 0), Radius: 100}
	if got := Similarity(a, shifted); got <= 0.5 {
		t.Errorf("mostly-overlapping circles = %v, want > 0.5", got)
	}
}
