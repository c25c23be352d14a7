package patterns

// BlockPattern is the learned size statistic for one block name: the unit
// its instances were estimated to be drawn in, optional per-file-role
// overrides, and how trustworthy the estimate is.
type BlockPattern struct {
	EstimatedUnit string            `json:"estimated_unit"`
	RoleUnits     map[string]string `json:"context_units,omitempty"`
	Confidence    float64           `json:"confidence"`
}

// Table maps block names to learned patterns. A Table is loaded once per
// process and treated as immutable afterward; concurrent readers are safe
// as long as no caller mutates it after load.
type Table map[string]BlockPattern

// Vote returns the millimeter factor and confidence a block instance
// contributes to unit detection. The role-specific unit wins over the
// estimated unit when present. ok is false when the block name is unknown.
func (t Table) Vote(blockName, role string) (factor, confidence float64, ok bool) {
	pattern, found := t[blockName]
	if !found {
		return 0, 0, false
	}
	unit := pattern.EstimatedUnit
	if role != "" {
		if override, has := pattern.RoleUnits[role]; has {
			unit = override
		}
	}
	factor = 1.0
	if unit == "m" {
		factor = 1000.0
	}
	return factor, pattern.Confidence, true
}
