// Package model provides the intermediate representation (IR) for normalized
// drawing geometry.
//
// This package defines the data structures every pipeline stage produces or
// consumes: the normalizer emits a [Drawing], the difference engine compares
// two of them and emits a [DifferenceResult]. All coordinates in a Drawing
// are in millimeters.
//
// # Elements
//
// Drawing content implements the [Element] interface. The set of variants is
// closed and decided once at ingestion:
//
//   - [Line] - straight segments
//   - [Circle] - full circles
//   - [Arc] - circular arcs (angles in degrees, counter-clockwise)
//   - [Polyline] - open or closed vertex sequences
//   - [Text] - positioned annotations
//   - [BlockRef] - unexpanded block references
//
// Each variant embeds [ElementInfo]: a stable identifier, a [Style], an
// architectural classification ([ArchClass]) and a confidence score in [0,1].
//
// # Geometry
//
// Geometric primitives support position and transform calculations:
//
//   - [BBox] - bounding box with a distinguished empty state; helpers never
//     leak ±Inf sentinels
//   - [Point2D] - 2D point with distance calculation
//   - [Matrix] - 2D affine transform used during block expansion
//
// # Serialization
//
// [Drawing] and [DifferenceResult] round-trip through encoding/json. The
// element union is written with a "kind" discriminator next to exactly one
// populated variant field.
//
// # Warnings
//
// Non-fatal issues (skipped entities, missing blocks, low-confidence unit
// decisions) are recorded as [Warning] values and embedded in
// [Metadata.Warnings] rather than logged.
package model
