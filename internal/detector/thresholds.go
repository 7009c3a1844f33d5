// internal/detector/thresholds.go
package detector

import "strings"

// Collision-distance limits, calibrated empirically against the default
// ball shape.
const (
	DefaultAcceptanceDistance = 500.0
	DefaultStrictDistance     = 250.0
)

// Thresholds carries the collision-distance limits used by the resolver.
// They are per-call configuration, not process-wide constants, so call
// sites can tune them (e.g. for alternate ball shapes).
type Thresholds struct {
	// AcceptanceDistance is the high limit: a frame's minimum collision
	// distance must be strictly below it for a hit to be accepted.
	AcceptanceDistance float64

	// StrictDistance is a smaller limit kept available for stricter
	// filtering. The default decision does not apply it.
	StrictDistance float64

	// PerBallShape overrides AcceptanceDistance for known non-default ball
	// shapes, keyed by lower-cased shape name (the config layer lower-cases
	// map keys). Shapes without an entry fall back to AcceptanceDistance.
	PerBallShape map[string]float64
}

// DefaultThresholds returns the empirically calibrated defaults for the
// default ball shape.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AcceptanceDistance: DefaultAcceptanceDistance,
		StrictDistance:     DefaultStrictDistance,
	}
}

// AcceptanceFor returns the acceptance distance for a ball shape. Shape
// names match case-insensitively. ok is false when the shape is non-default
// and has no configured override, in which case the default-shape limit is
// returned.
func (t Thresholds) AcceptanceFor(ballShape string) (limit float64, ok bool) {
	if ballShape == "" {
		return t.AcceptanceDistance, true
	}
	if v, found := t.PerBallShape[strings.ToLower(ballShape)]; found {
		return v, true
	}
	return t.AcceptanceDistance, false
}
