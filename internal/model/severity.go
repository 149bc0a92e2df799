package model

// Severity is one latency severity tier. Tiers are disjoint half-open
// intervals over max await, ordered by ascending lower bound; a boundary
// value belongs to the higher tier (exactly 1000ms is Critical, not Extreme).
type Severity int

const (
	// SeverityNone means the value fell below the run's threshold and has
	// no tier at all.
	SeverityNone Severity = iota

	SeveritySlow         // [threshold, 100)
	SeverityMediumHigh   // [100, 200)
	SeveritySevere       // [200, 250)
	SeverityVeryHigh     // [250, 500)
	SeverityExtreme      // [500, 1000)
	SeverityCritical     // [1000, 5000)
	SeverityCatastrophic // [5000, ∞)
)

// Tier lower bounds in milliseconds.
const (
	MediumHighMin   = 100.0
	SevereMin       = 200.0
	VeryHighMin     = 250.0
	ExtremeMin      = 500.0
	CriticalMin     = 1000.0
	CatastrophicMin = 5000.0
)

// Tiers lists every real tier from worst to mildest, for stable report shape.
var Tiers = []Severity{
	SeverityCatastrophic,
	SeverityCritical,
	SeverityExtreme,
	SeverityVeryHigh,
	SeveritySevere,
	SeverityMediumHigh,
	SeveritySlow,
}

// Classify maps a max-await value to its severity tier. Values below the
// caller's threshold get SeverityNone and are excluded from all reporting.
func Classify(maxAwait, threshold float64) Severity {
	switch {
	case maxAwait < threshold:
		return SeverityNone
	case maxAwait >= CatastrophicMin:
		return SeverityCatastrophic
	case maxAwait >= CriticalMin:
		return SeverityCritical
	case maxAwait >= ExtremeMin:
		return SeverityExtreme
	case maxAwait >= VeryHighMin:
		return SeverityVeryHigh
	case maxAwait >= SevereMin:
		return SeveritySevere
	case maxAwait >= MediumHighMin:
		return SeverityMediumHigh
	default:
		return SeveritySlow
	}
}

// String returns the report label for the tier.
func (s Severity) String() string {
	switch s {
	case SeverityCatastrophic:
		return "CATASTROPHIC"
	case SeverityCritical:
		return "CRITICAL"
	case SeverityExtreme:
		return "EXTREME"
	case SeverityVeryHigh:
		return "VERY HIGH"
	case SeveritySevere:
		return "SEVERE"
	case SeverityMediumHigh:
		return "MEDIUM HIGH"
	case SeveritySlow:
		return "SLOW"
	default:
		return "NONE"
	}
}

// Emoji returns the marker used next to the tier in terminal output.
func (s Severity) Emoji() string {
	switch s {
	case SeverityCatastrophic:
		return "💀"
	case SeverityCritical:
		return "🔥"
	case SeverityExtreme:
		return "⚠️"
	case SeverityVeryHigh:
		return "🔴"
	case SeveritySevere:
		return "🟠"
	case SeverityMediumHigh:
		return "🟡"
	default:
		return "🟤"
	}
}

// Range describes the tier's interval for breakdown listings,
// e.g. "1000-4999ms" or ">=5000ms".
func (s Severity) Range() string {
	switch s {
	case SeverityCatastrophic:
		return ">=5000ms"
	case SeverityCritical:
		return "1000-4999ms"
	case SeverityExtreme:
		return "500-999ms"
	case SeverityVeryHigh:
		return "250-499ms"
	case SeveritySevere:
		return "200-249ms"
	case SeverityMediumHigh:
		return "100-199ms"
	default:
		return "<100ms"
	}
}
