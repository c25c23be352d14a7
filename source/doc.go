// Package source defines the entity-access boundary between the analysis
// pipeline and whatever reads CAD files.
//
// The pipeline never parses files itself. It consumes a [Source]: drawing
// metadata (the insertion-units code), the model-space entity stream, named
// block definitions, and paper-space layouts, all as flat [Record] values in
// raw drawing units. An adapter over any CAD reader only needs to populate
// these records.
//
// [Memory] is the in-module implementation, used by tests and by callers
// that build entity streams programmatically:
//
//	src := source.NewMemory("site.dxf").
//	    SetInsertionUnits(6).
//	    Add(source.Line("WALLS", model.Point2D{}, model.Point2D{X: 12, Y: 0})).
//	    DefineBlock("DOOR_A", source.Arc("DOORS", model.Point2D{}, 0.9, 0, 90))
//
// Sources are read-only once handed to the pipeline.
package source
