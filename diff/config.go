package diff

import (
	"errors"
	"fmt"
)

// Config tunes matching and classification.
type Config struct {
	// Threshold is the minimum similarity score, inclusive, for two elements
	// to count as the same element. Must be in [0, 1].
	Threshold float64

	// Layer-name keywords per architectural category, matched as lowercase
	// substrings after half-width/full-width folding.
	WallKeywords    []string
	DoorKeywords    []string
	WindowKeywords  []string
	FixtureKeywords []string
}

// DefaultConfig returns the tuning used for Japanese architectural drawings.
func DefaultConfig() Config {
	return Config{
		Threshold:       0.5,
		WallKeywords:    []string{"wall", "壁", "w-", "w_"},
		DoorKeywords:    []string{"door", "扉", "ドア"},
		WindowKeywords:  []string{"window", "窓", "サッシ"},
		FixtureKeywords: []string{"fixture", "設備", "fix", "equipment"},
	}
}

// ErrThreshold reports a similarity threshold outside [0, 1].
var ErrThreshold = errors.New("diff: similarity threshold out of range")

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrThreshold, c.Threshold)
	}
	return nil
}
