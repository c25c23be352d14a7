// Package units detects the real-world scale of a drawing.
//
// CAD files are inconsistent about units: the header may declare them, lie
// about them, or say nothing, and the coordinates may be drawn in meters on
// a file claiming millimeters. The [Detector] combines three weak signals
// into one [Decision]:
//
//  1. Header - the drawing's insertion-units code, mapped through a fixed
//     factor table (confidence 0.9 when present and non-unitless)
//  2. Learned patterns - confidence-weighted votes from block references
//     whose typical drawn size is known from a corpus analysis
//  3. Size heuristic - whether the drawing extent is architecturally
//     plausible when read as millimeters or as meters
//
// The highest-confidence candidate wins, ties broken in the order above.
// When nothing applies the decision is factor 1.0 at confidence 0.3, never
// an error: the low confidence travels with the drawing so consumers can
// flag it for review.
//
// Detection is a pure function of its inputs and deterministic: identical
// inputs always produce the identical Decision.
package units
