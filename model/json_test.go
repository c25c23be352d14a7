package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleDrawing() *Drawing {
	color := 3
	return &Drawing{
		Source: "site.dxf",
		Layers: []Layer{{Name: "WALLS", Color: 7, LineType: "CONTINUOUS", Visible: true}},
		Elements: []Element{
			&Line{
				ElementInfo: ElementInfo{ID: "line_0", Style: Style{Layer: "WALLS", Color: &color, LineWidth: 1}, Confidence: 1},
				Start:       Point2D{X: 0, Y: 0},
				End:         Point2D{X: 1000, Y: 0},
			},
			&Circle{
				ElementInfo: ElementInfo{ID: "circle_0", Style: DefaultStyle(), Confidence: 1},
				Center:      Point2D{X: 50, Y: 50},
				Radius:      25,
			},
			&Arc{
				ElementInfo: ElementInfo{ID: "arc_0", Style: DefaultStyle(), Confidence: 1},
				Center:      Point2D{X: 10, Y: 10},
				Radius:      5, StartAngle: 0, EndAngle: 90,
			},
			&Polyline{
				ElementInfo: ElementInfo{ID: "polyline_0", Style: DefaultStyle(), Confidence: 1},
				Vertices:    []Point2D{{0, 0}, {10, 0}, {10, 10}},
				Closed:      true,
			},
			&Text{
				ElementInfo: ElementInfo{ID: "text_0", Style: DefaultStyle(), Confidence: 1},
				Position:    Point2D{X: 5, Y: 5},
				Content:     "玄関", Height: 250,
			},
			&BlockRef{
				ElementInfo: ElementInfo{ID: "block_ref_0", Style: DefaultStyle(), Confidence: 1},
				Position:    Point2D{X: 100, Y: 100},
				Name:        "DOOR_A", ScaleX: 1, ScaleY: 1,
			},
		},
		Metadata: Metadata{
			UnitFactor:       1000,
			UnitConfidence:   0.9,
			DetectionMethod:  "header",
			InsertionUnits:   6,
			CorrectiveFactor: 1,
			RawBounds:        NewBBox(0, 0, 12000, 9000),
			Warnings:         []Warning{{Stage: "normalize", Entity: "SPLINE", Message: "unsupported entity kind"}},
		},
	}
}

func TestDrawingJSONRoundTrip(t *testing.T) {
	original := sampleDrawing()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var restored Drawing
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if restored.Source != original.Source {
		t.Errorf("Source = %q, want %q", restored.Source, original.Source)
	}
	if len(restored.Elements) != len(original.Elements) {
		t.Fatalf("restored %d elements, want %d", len(restored.Elements), len(original.Elements))
	}
	for i, e := range restored.Elements {
		if e.Kind() != original.Elements[i].Kind() {
			t.Errorf("element %d kind = %v, want %v", i, e.Kind(), original.Elements[i].Kind())
		}
		if e.Info().ID != original.Elements[i].Info().ID {
			t.Errorf("element %d id = %q, want %q", i, e.Info().ID, original.Elements[i].Info().ID)
		}
	}

	line, ok := restored.Elements[0].(*Line)
	if !ok {
		t.Fatalf("element 0 restored as %T, want *Line", restored.Elements[0])
	}
	if line.End.X != 1000 {
		t.Errorf("line end X = %v, want 1000", line.End.X)
	}
	if line.Style.Color == nil || *line.Style.Color != 3 {
		t.Error("line color not preserved")
	}

	if restored.Metadata.UnitFactor != 1000 || restored.Metadata.DetectionMethod != "header" {
		t.Errorf("metadata not preserved: %+v", restored.Metadata)
	}
	if len(restored.Metadata.Warnings) != 1 {
		t.Errorf("warnings not preserved: %v", restored.Metadata.Warnings)
	}
}

func TestDrawingJSONCarriesKindDiscriminator(t *testing.T) {
	data, err := json.Marshal(sampleDrawing())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	for _, kind := range []string{"line", "circle", "arc", "polyline", "text", "block_ref"} {
		if !strings.Contains(string(data), `"kind":"`+kind+`"`) {
			t.Errorf("serialized drawing missing kind discriminator %q", kind)
		}
	}
}

func TestDifferenceResultJSONRoundTrip(t *testing.T) {
	wall := &Line{
		ElementInfo: ElementInfo{ID: "line_1", Style: Style{Layer: "A-WALLS"}, Class: ClassWall, Confidence: 0.7},
		Start:       Point2D{X: 0, Y: 1000},
		End:         Point2D{X: 3000, Y: 1000},
	}
	original := &DifferenceResult{
		New:        []Element{wall},
		Removed:    []Element{},
		Walls:      []Element{wall},
		MatchCount: 4,
		Confidence: CategoryConfidence{Walls: 0.7},
		Metadata:   map[string]string{"similarity_threshold": "0.5"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var restored DifferenceResult
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if len(restored.New) != 1 || len(restored.Walls) != 1 {
		t.Fatalf("restored New=%d Walls=%d, want 1 and 1", len(restored.New), len(restored.Walls))
	}
	if restored.MatchCount != 4 {
		t.Errorf("MatchCount = %d, want 4", restored.MatchCount)
	}
	if restored.Confidence.Walls != 0.7 {
		t.Errorf("Confidence.Walls = %v, want 0.7", restored.Confidence.Walls)
	}
	got, ok := restored.Walls[0].(*Line)
	if !ok {
		t.Fatalf("wall restored as %T, want *Line", restored.Walls[0])
	}
	if got.Info().Class != ClassWall {
		t.Errorf("wall class = %v, want ClassWall", got.Info().Class)
	}
	// Identity between subsets is carried by ID, not pointer aliasing.
	if restored.New[0].Info().ID != restored.Walls[0].Info().ID {
		t.Error("subset element lost ID identity with new_elements entry")
	}
}

func TestUnmarshalRejectsEmptyUnion(t *testing.T) {
	var d Drawing
	err := json.Unmarshal([]byte(`{"source":"x","elements":[{"kind":"line"}]}`), &d)
	if err == nil {
		t.Fatal("expected error for discriminator without geometry")
	}
}
