package diff

import (
	"strconv"

	"github.com/google/uuid"

	"plandiff/model"
)

// Engine extracts the differences between a baseline drawing and a candidate
// drawing. It holds only its configuration and is safe for concurrent
// Extract calls.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine. Returns ErrThreshold when the configured
// similarity threshold is out of range.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Extract compares the baseline against the candidate. Candidate elements
// with no match in the baseline are new; baseline elements with no match in
// the candidate were removed. New elements are then classified into walls,
// openings, and fixtures. Inputs are not mutated; classified elements in the
// result are copies.
func (e *Engine) Extract(baseline, candidate *model.Drawing) (*model.DifferenceResult, error) {
	baseElems := cloneElements(baseline.Elements)
	candElems := cloneElements(candidate.Elements)

	matches := matchElements(baseElems, candElems, e.cfg.Threshold)

	matchedCand := make(map[int]bool, len(matches))
	matchedBase := make(map[int]bool, len(matches))
	for bi, ci := range matches {
		matchedBase[bi] = true
		matchedCand[ci] = true
	}

	var newElems, removed []model.Element
	for i, el := range candElems {
		if !matchedCand[i] {
			newElems = append(newElems, el)
		}
	}
	for i, el := range baseElems {
		if !matchedBase[i] {
			removed = append(removed, el)
		}
	}

	c := classifier{cfg: e.cfg}
	walls := c.walls(newElems)
	openings := c.openings(newElems, walls)
	fixtures := c.fixtures(newElems)

	result := &model.DifferenceResult{
		New:        newElems,
		Removed:    removed,
		Walls:      walls,
		Openings:   openings,
		Fixtures:   fixtures,
		MatchCount: len(matches),
		Confidence: model.CategoryConfidence{
			Walls:    meanConfidence(walls),
			Openings: meanConfidence(openings),
			Fixtures: meanConfidence(fixtures),
		},
		Metadata: map[string]string{
			"analysis_id":          uuid.NewString(),
			"similarity_threshold": strconv.FormatFloat(e.cfg.Threshold, 'g', -1, 64),
			"baseline_source":      baseline.Source,
			"candidate_source":     candidate.Source,
			"baseline_elements":    strconv.Itoa(len(baseElems)),
			"candidate_elements":   strconv.Itoa(len(candElems)),
		},
	}
	return result, nil
}

// matchElements greedily pairs baseline elements with candidate elements.
// Each baseline element takes the highest-scoring unused candidate at or
// above the threshold; ties keep the earlier candidate, so identical inputs
// always produce identical pairings.
func matchElements(baseline, candidate []model.Element, threshold float64) map[int]int {
	matches := make(map[int]int)
	used := make(map[int]bool)

	for bi, be := range baseline {
		best := -1
		bestScore := -1.0
		for ci, ce := range candidate {
			if used[ci] || ce.Kind() != be.Kind() {
				continue
			}
			score := Similarity(be, ce)
			if score >= threshold && score > bestScore {
				best = ci
				bestScore = score
			}
		}
		if best >= 0 {
			matches[bi] = best
			used[best] = true
		}
	}
	return matches
}

// cloneElements deep-copies elements so classification never mutates the
// caller's drawings.
func cloneElements(elements []model.Element) []model.Element {
	out := make([]model.Element, len(elements))
	for i, el := range elements {
		out[i] = cloneElement(el)
	}
	return out
}

func cloneElement(el model.Element) model.Element {
	switch e := el.(type) {
	case *model.Line:
		c := *e
		return &c
	case *model.Circle:
		c := *e
		return &c
	case *model.Arc:
		c := *e
		return &c
	case *model.Polyline:
		c := *e
		c.Vertices = append([]model.Point2D(nil), e.Vertices...)
		return &c
	case *model.Text:
		c := *e
		return &c
	case *model.BlockRef:
		c := *e
		return &c
	default:
		return el
	}
}

func meanConfidence(elements []model.Element) float64 {
	if len(elements) == 0 {
		return 0
	}
	var sum float64
	for _, el := range elements {
		sum += el.Info().Confidence
	}
	return sum / float64(len(elements))
}
