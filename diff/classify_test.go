package diff

import (
	"testing"

	"plandiff/model"
)

func TestClassifyWalls(t *testing.T) {
	keyword := siteLine("W-OUTER", 0, 0, 0, 300) // short, but the layer decides
	long := siteLine("MISC", 0, 0, 2000, 0)      // long enough on its own
	short := siteLine("MISC", 0, 0, 700, 0)      // too short without a keyword
	path := &model.Polyline{
		ElementInfo: model.ElementInfo{Style: model.Style{Layer: "MISC"}, Confidence: 1},
		Vertices:    []model.Point2D{pt(0, 0), pt(400, 0), pt(400, 400)},
	}
	shortPath := &model.Polyline{
		ElementInfo: model.ElementInfo{Style: model.Style{Layer: "MISC"}, Confidence: 1},
		Vertices:    []model.Point2D{pt(0, 0), pt(200, 0)},
	}

	c := classifier{cfg: DefaultConfig()}
	walls := c.walls([]model.Element{keyword, long, short, path, shortPath})
	if len(walls) != 3 {
		t.Fatalf("got %d walls, want 3", len(walls))
	}
	if keyword.Class != model.ClassWall || keyword.Confidence != 1 {
		t.Errorf("keyword wall: class=%v conf=%v", keyword.Class, keyword.Confidence)
	}
	if long.Class != model.ClassWall || long.Confidence != 0.7 {
		t.Errorf("long wall: class=%v conf=%v", long.Class, long.Confidence)
	}
	if short.Class != model.ClassUnknown {
		t.Errorf("700mm keywordless line classified as %v", short.Class)
	}
	if path.Class != model.ClassWall {
		t.Errorf("800mm polyline path: class=%v, want wall", path.Class)
	}
	if shortPath.Class != model.ClassUnknown {
		t.Errorf("200mm polyline classified as %v", shortPath.Class)
	}
}

func TestClassifyOpeningsByLayer(t *testing.T) {
	door := siteLine("DOOR-1F", 0, 0, 800, 0)
	window := siteLine("窓-南", 0, 0, 1600, 0)
	c := classifier{cfg: DefaultConfig()}

	openings := c.openings([]model.Element{door, window}, nil)
	if len(openings) != 2 {
		t.Fatalf("got %d openings, want 2", len(openings))
	}
	if door.Class != model.ClassDoor {
		t.Errorf("door class = %v", door.Class)
	}
	if window.Class != model.ClassWindow {
		t.Errorf("window class = %v", window.Class)
	}
}

func TestClassifyKeywordWidthFolding(t *testing.T) {
	// Half-width katakana layer names must match the full-width keywords.
	halfWidth := siteLine("ｻｯｼ-W1", 0, 0, 900, 0)
	c := classifier{cfg: DefaultConfig()}

	openings := c.openings([]model.Element{halfWidth}, nil)
	if len(openings) != 1 || halfWidth.Class != model.ClassWindow {
		t.Errorf("half-width サッシ layer not recognized: %v", halfWidth.Class)
	}
}

func TestClassifyOpeningNearWall(t *testing.T) {
	wall := siteLine("WALL", 0, 0, 5000, 0)
	near := siteLine("MISC", 1000, 50, 1800, 50)  // 800mm, 50mm from the wall
	far := siteLine("MISC", 1000, 900, 1800, 900) // same size, 900mm away

	c := classifier{cfg: DefaultConfig()}
	walls := c.walls([]model.Element{wall})
	openings := c.openings([]model.Element{near, far}, walls)

	if len(openings) != 1 {
		t.Fatalf("got %d openings, want 1", len(openings))
	}
	if near.Class != model.ClassOpening || near.Confidence != 0.6 {
		t.Errorf("near line: class=%v conf=%v, want opening/0.6", near.Class, near.Confidence)
	}
	if far.Class != model.ClassUnknown {
		t.Errorf("far line classified as %v", far.Class)
	}
}

func TestClassifyFixtures(t *testing.T) {
	circle := &model.Circle{
		ElementInfo: model.ElementInfo{Style: model.Style{Layer: "MISC"}, Confidence: 1},
		Center:      pt(100, 100), Radius: 50,
	}
	block := &model.BlockRef{
		ElementInfo: model.ElementInfo{Style: model.Style{Layer: "MISC"}, Confidence: 1},
		Position:    pt(0, 0), Name: "SINK", ScaleX: 1, ScaleY: 1,
	}
	byLayer := siteLine("設備-給水", 0, 0, 200, 0)

	c := classifier{cfg: DefaultConfig()}
	fixtures := c.fixtures([]model.Element{circle, block, byLayer})
	if len(fixtures) != 3 {
		t.Fatalf("got %d fixtures, want 3", len(fixtures))
	}
	if circle.Confidence != 0.7 {
		t.Errorf("circle confidence = %v, want 0.7", circle.Confidence)
	}
	if block.Confidence != 0.8 {
		t.Errorf("block confidence = %v, want 0.8", block.Confidence)
	}
	if byLayer.Confidence != 1 {
		t.Errorf("layer-keyword fixture confidence = %v, want 1", byLayer.Confidence)
	}
}

func TestClassifyPrecedenceIsExclusive(t *testing.T) {
	// A long line on a fixture layer is a wall by geometry; the fixture pass
	// must not relabel it.
	ambiguous := siteLine("FIX-PIPE", 0, 0, 4000, 0)

	c := classifier{cfg: DefaultConfig()}
	elements := []model.Element{ambiguous}
	walls := c.walls(elements)
	openings := c.openings(elements, walls)
	fixtures := c.fixtures(elements)

	if len(walls) != 1 || len(openings) != 0 || len(fixtures) != 0 {
		t.Errorf("walls=%d openings=%d fixtures=%d, want 1/0/0",
			len(walls), len(openings), len(fixtures))
	}
	if ambiguous.Class != model.ClassWall {
		t.Errorf("class = %v, want wall", ambiguous.Class)
	}
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b *model.Line
		want float64
	}{
		{"crossing", line(0, 0, 100, 100), line(0, 100, 100, 0), 0},
		{"parallel", line(0, 0, 100, 0), line(0, 40, 100, 40), 40},
		{"collinear gap", line(0, 0, 100, 0), line(130, 0, 200, 0), 30},
		{"endpoint touch", line(0, 0, 100, 0), line(100, 0, 100, 50), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("segmentDistance = %v, want %v", got, tt.want)
			}
		})
	}
}
