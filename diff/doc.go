// Package diff finds what changed between two drawings of the same site.
//
// The [Engine] matches elements greedily by a similarity score in [0, 1]:
// same-kind elements compare spatially (endpoint proximity for lines,
// bounding-box overlap otherwise), lines and texts additionally by length,
// angle, or content. Candidate elements without a baseline match are new,
// unmatched baseline elements were removed.
//
// New elements are then classified into walls, openings, and fixtures using
// layer-name keywords and geometric heuristics. Keywords match after
// half-width folding, so both ドア and ﾄﾞｱ hit the door keyword. Matching and
// classification are deterministic for identical inputs.
package diff
