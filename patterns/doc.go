// Package patterns holds learned block-size statistics used by unit
// detection.
//
// An offline analysis pass over a drawing corpus estimates, per block name,
// which real-world unit the block's instances are drawn in. The resulting
// [Table] is consumed read-only by the unit detector: each block reference
// found in a drawing contributes a confidence-weighted vote for the
// drawing's unit factor.
//
// Tables can be loaded from the analysis tool's JSON output ([LoadFile]) or
// from a shared SQLite store ([OpenSQLite]). Load a table once per process
// and treat it as immutable afterward.
package patterns
