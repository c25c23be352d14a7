// Package plandiff provides a fluent API for comparing architectural CAD
// drawings: unit-aware normalization of raw entities and difference
// extraction between a site survey and the same site with a floor plan.
//
// Basic usage:
//
//	result, warnings, err := plandiff.Compare(siteSrc, planSrc).Run()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", model.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := plandiff.Compare(siteSrc, planSrc).
//	    Patterns(learned).
//	    Threshold(0.6).
//	    ModelSpaceOnly().
//	    Run()
//
// A single drawing can be normalized without comparison:
//
//	drawing, warnings, err := plandiff.From(src).Role("site").Drawing()
//
// For advanced use cases, the lower-level units, normalize, and diff
// packages are also available.
package plandiff

import (
	"plandiff/model"
	"plandiff/source"
)

// From starts a single-drawing pipeline: unit detection followed by
// normalization.
//
// Example:
//
//	drawing, warnings, err := plandiff.From(src).Drawing()
func From(src source.Source) *Analyzer {
	return &Analyzer{
		src:     src,
		role:    "",
		options: defaultAnalyzeOptions(),
	}
}

// Compare starts a two-drawing comparison pipeline. The baseline is the
// reference drawing (typically the bare site survey), the candidate is the
// drawing to diff against it (typically the site with the proposed plan).
//
// Example:
//
//	result, warnings, err := plandiff.Compare(siteSrc, planSrc).Run()
func Compare(baseline, candidate source.Source) *Comparison {
	return &Comparison{
		baseline:  baseline,
		candidate: candidate,
		options:   defaultAnalyzeOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRun wraps a terminal operation returning (T, []model.Warning, error),
// panicking on error and discarding warnings.
//
// Example:
//
//	result := plandiff.MustRun(plandiff.Compare(site, plan).Run())
func MustRun[T any](val T, _ []model.Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
