// Package normalize turns raw source entities into a flat, unit-consistent
// Drawing.
//
// Normalization happens in three passes:
//
//  1. Conversion - every primitive is copied into the model with all
//     length-bearing fields multiplied by the detected unit factor, so the
//     resulting coordinates are millimeters
//  2. Expansion - block references are resolved recursively through their
//     scale, rotation, and insertion transforms; definition cycles and
//     missing blocks are cut with a warning
//  3. Correction - if the expanded extent is implausible for an
//     architectural sheet in a way a thousand-fold rescale explains, the
//     whole drawing is rescaled once and the metadata records it
//
// Malformed entities are dropped individually with a warning; a bad entity
// never fails the drawing.
package normalize
