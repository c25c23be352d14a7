package units

// Method identifies which estimator produced a Decision.
type Method int

const (
	// MethodDefault is the fallback when no estimator produced a result.
	MethodDefault Method = iota
	// MethodHeader means the drawing's insertion-units code decided.
	MethodHeader
	// MethodLearnedPattern means learned block-size statistics decided.
	MethodLearnedPattern
	// MethodSizeHeuristic means the drawing extent decided.
	MethodSizeHeuristic
)

func (m Method) String() string {
	switch m {
	case MethodHeader:
		return "header"
	case MethodLearnedPattern:
		return "learned_pattern"
	case MethodSizeHeuristic:
		return "size_heuristic"
	default:
		return "default"
	}
}

// Decision is the outcome of unit detection for one drawing: the factor that
// converts raw drawing units to millimeters, how confident the detector is,
// which estimator won, and free-form diagnostics. A Decision is computed
// once at normalization time and never mutated afterward.
type Decision struct {
	Factor     float64
	Confidence float64
	Method     Method
	Details    map[string]string
}
