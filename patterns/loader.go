package patterns

import (
	"encoding/json"
	"fmt"
	"os"
)

// envelopeKey is the wrapper the offline block-size analysis tool writes
// around its results.
const envelopeKey = "analysis_results"

// LoadFile reads a learned-pattern table from a JSON file. Both the
// enveloped form ({"analysis_results": {...}}) and a bare name-to-pattern
// map are accepted. The envelope is honored even when empty, so its key
// never leaks into the table as a block name.
func LoadFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal pattern file: %w", err)
	}

	if inner, ok := raw[envelopeKey]; ok {
		var table Table
		if err := json.Unmarshal(inner, &table); err != nil {
			return nil, fmt.Errorf("unmarshal pattern envelope: %w", err)
		}
		if table == nil {
			table = make(Table)
		}
		return table, nil
	}

	var bare Table
	if err := json.Unmarshal(b, &bare); err != nil {
		return nil, fmt.Errorf("unmarshal pattern file: %w", err)
	}
	return bare, nil
}
