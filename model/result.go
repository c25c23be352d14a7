package model

// CategoryConfidence holds the mean classification confidence per
// architectural category. A category with no members reports 0.
type CategoryConfidence struct {
	Walls    float64 `json:"walls"`
	Openings float64 `json:"openings"`
	Fixtures float64 `json:"fixtures"`
}

// DifferenceResult is the outcome of comparing a baseline drawing against a
// candidate drawing. Walls, Openings, and Fixtures are subsets of New; an
// element appears in at most one of them. The result is read-only once
// produced.
type DifferenceResult struct {
	New     []Element
	Removed []Element

	Walls    []Element
	Openings []Element
	Fixtures []Element

	MatchCount int
	Confidence CategoryConfidence

	Metadata map[string]string
}

// Stats returns the headline counts of the result.
func (r *DifferenceResult) Stats() map[string]int {
	return map[string]int{
		"new_elements":     len(r.New),
		"removed_elements": len(r.Removed),
		"walls":            len(r.Walls),
		"openings":         len(r.Openings),
		"fixtures":         len(r.Fixtures),
		"matches":          r.MatchCount,
	}
}
