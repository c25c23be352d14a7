package plandiff

import (
	"fmt"

	"plandiff/diff"
	"plandiff/model"
	"plandiff/normalize"
	"plandiff/patterns"
	"plandiff/source"
	"plandiff/units"
)

// Analyzer is the single-drawing pipeline. Each configuration method returns
// a new Analyzer instance, making it safe for concurrent use and allowing
// method chaining.
type Analyzer struct {
	src     source.Source
	role    string
	options analyzeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Analyzer with a deep copy of options.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		src:     a.src,
		role:    a.role,
		options: a.options.clone(),
		err:     a.err,
	}
}

// Role names the drawing's function ("site", "plan", ...). Learned block
// patterns can carry per-role unit overrides keyed by this name.
func (a *Analyzer) Role(role string) *Analyzer {
	newA := a.clone()
	newA.role = role
	return newA
}

// Patterns supplies a learned block-pattern table for unit detection.
func (a *Analyzer) Patterns(table patterns.Table) *Analyzer {
	newA := a.clone()
	newA.options.patterns = table
	return newA
}

// PatternsFile loads a learned block-pattern table from a JSON file. A load
// failure is reported by the terminal operation.
func (a *Analyzer) PatternsFile(path string) *Analyzer {
	newA := a.clone()
	table, err := patterns.LoadFile(path)
	if err != nil {
		newA.err = fmt.Errorf("load patterns: %w", err)
		return newA
	}
	newA.options.patterns = table
	return newA
}

// ModelSpaceOnly restricts normalization to model space, ignoring
// paper-space layouts.
func (a *Analyzer) ModelSpaceOnly() *Analyzer {
	newA := a.clone()
	newA.options.norm.IncludePaperSpace = false
	return newA
}

// IncludePaperSpace converts paper-space layouts as well as model space.
// This is the default; it undoes an earlier ModelSpaceOnly.
func (a *Analyzer) IncludePaperSpace() *Analyzer {
	newA := a.clone()
	newA.options.norm.IncludePaperSpace = true
	return newA
}

// KeepBorder includes sheet borders and dimension layers in the extent used
// by the secondary size correction.
func (a *Analyzer) KeepBorder() *Analyzer {
	newA := a.clone()
	newA.options.norm.ExcludeBorder = false
	return newA
}

// NoCorrection disables the secondary size correction entirely.
func (a *Analyzer) NoCorrection() *Analyzer {
	newA := a.clone()
	newA.options.norm.Correction = false
	return newA
}

// Drawing runs unit detection and normalization, returning the normalized
// drawing beside the warnings produced along the way.
func (a *Analyzer) Drawing() (*model.Drawing, []model.Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	return buildDrawing(a.src, a.role, a.options)
}

// Decision runs unit detection alone, without normalizing.
func (a *Analyzer) Decision() (units.Decision, error) {
	if a.err != nil {
		return units.Decision{}, a.err
	}
	if a.src == nil {
		return units.Decision{}, normalize.ErrNilSource
	}
	return units.NewDetector(a.options.patterns).Decide(a.src, a.role), nil
}

// Comparison is the two-drawing pipeline. Like Analyzer, every
// configuration method returns a new instance.
type Comparison struct {
	baseline  source.Source
	candidate source.Source
	options   analyzeOptions

	err error
}

func (c *Comparison) clone() *Comparison {
	return &Comparison{
		baseline:  c.baseline,
		candidate: c.candidate,
		options:   c.options.clone(),
		err:       c.err,
	}
}

// Roles names the two drawings' functions for per-role unit overrides in the
// pattern table. The defaults are "site" and "plan".
func (c *Comparison) Roles(baseline, candidate string) *Comparison {
	newC := c.clone()
	newC.options.baselineRole = baseline
	newC.options.candidateRole = candidate
	return newC
}

// Patterns supplies a learned block-pattern table for unit detection.
func (c *Comparison) Patterns(table patterns.Table) *Comparison {
	newC := c.clone()
	newC.options.patterns = table
	return newC
}

// PatternsFile loads a learned block-pattern table from a JSON file. A load
// failure is reported by Run.
func (c *Comparison) PatternsFile(path string) *Comparison {
	newC := c.clone()
	table, err := patterns.LoadFile(path)
	if err != nil {
		newC.err = fmt.Errorf("load patterns: %w", err)
		return newC
	}
	newC.options.patterns = table
	return newC
}

// Threshold sets the similarity threshold for element matching. Values
// outside [0, 1] are reported by Run.
func (c *Comparison) Threshold(threshold float64) *Comparison {
	newC := c.clone()
	newC.options.diff.Threshold = threshold
	return newC
}

// ModelSpaceOnly restricts both drawings to model space.
func (c *Comparison) ModelSpaceOnly() *Comparison {
	newC := c.clone()
	newC.options.norm.IncludePaperSpace = false
	return newC
}

// IncludePaperSpace converts paper-space layouts in both drawings. This is
// the default; it undoes an earlier ModelSpaceOnly.
func (c *Comparison) IncludePaperSpace() *Comparison {
	newC := c.clone()
	newC.options.norm.IncludePaperSpace = true
	return newC
}

// KeepBorder includes sheet borders in the size-correction extent.
func (c *Comparison) KeepBorder() *Comparison {
	newC := c.clone()
	newC.options.norm.ExcludeBorder = false
	return newC
}

// NoCorrection disables the secondary size correction for both drawings.
func (c *Comparison) NoCorrection() *Comparison {
	newC := c.clone()
	newC.options.norm.Correction = false
	return newC
}

// Run normalizes both drawings and extracts their differences. Warnings
// from both normalizations are returned together; per-drawing warnings stay
// available on each drawing's metadata via Drawings.
func (c *Comparison) Run() (*model.DifferenceResult, []model.Warning, error) {
	result, _, _, warnings, err := c.run()
	return result, warnings, err
}

// Drawings runs the comparison and returns the normalized inputs beside the
// result, for callers that want to inspect or render them.
func (c *Comparison) Drawings() (*model.DifferenceResult, *model.Drawing, *model.Drawing, []model.Warning, error) {
	return c.run()
}

func (c *Comparison) run() (*model.DifferenceResult, *model.Drawing, *model.Drawing, []model.Warning, error) {
	if c.err != nil {
		return nil, nil, nil, nil, c.err
	}
	engine, err := diff.NewEngine(c.options.diff)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	baseline, warnings, err := buildDrawing(c.baseline, c.options.baselineRole, c.options)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("baseline: %w", err)
	}
	candidate, candWarnings, err := buildDrawing(c.candidate, c.options.candidateRole, c.options)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("candidate: %w", err)
	}
	warnings = append(warnings, candWarnings...)

	result, err := engine.Extract(baseline, candidate)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return result, baseline, candidate, warnings, nil
}

// buildDrawing is the shared detection-then-normalization step.
func buildDrawing(src source.Source, role string, opts analyzeOptions) (*model.Drawing, []model.Warning, error) {
	if src == nil {
		return nil, nil, normalize.ErrNilSource
	}
	dec := units.NewDetector(opts.patterns).Decide(src, role)
	d, err := normalize.New(opts.norm).Normalize(src, dec)
	if err != nil {
		return nil, nil, err
	}
	return d, d.Metadata.Warnings, nil
}
