package plandiff

import (
	"plandiff/diff"
	"plandiff/normalize"
	"plandiff/patterns"
)

// analyzeOptions holds the full pipeline configuration.
type analyzeOptions struct {
	patterns patterns.Table
	norm     normalize.Options
	diff     diff.Config

	baselineRole  string
	candidateRole string
}

// defaultAnalyzeOptions returns the defaults used by From and Compare.
func defaultAnalyzeOptions() analyzeOptions {
	return analyzeOptions{
		norm:          normalize.DefaultOptions(),
		diff:          diff.DefaultConfig(),
		baselineRole:  "site",
		candidateRole: "plan",
	}
}

// clone creates a deep copy of analyzeOptions.
func (o analyzeOptions) clone() analyzeOptions {
	newOpts := o
	if o.patterns != nil {
		newOpts.patterns = make(patterns.Table, len(o.patterns))
		for name, p := range o.patterns {
			newOpts.patterns[name] = p
		}
	}
	newOpts.diff.WallKeywords = append([]string(nil), o.diff.WallKeywords...)
	newOpts.diff.DoorKeywords = append([]string(nil), o.diff.DoorKeywords...)
	newOpts.diff.WindowKeywords = append([]string(nil), o.diff.WindowKeywords...)
	newOpts.diff.FixtureKeywords = append([]string(nil), o.diff.FixtureKeywords...)
	return newOpts
}
