// internal/detector/metrics.go
package detector

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds the detector's OTel instruments. The global meter is used,
// so instruments are no-ops unless a meter provider is installed.
type metrics struct {
	candidateFrames metric.Int64Counter
	hitsDetected    metric.Int64Counter
	framesSkipped   metric.Int64Counter
	playersSkipped  metric.Int64Counter
	phaseDuration   metric.Float64Histogram
}

func newMetrics() (*metrics, error) {
	meter := otel.Meter("carball/detector")
	m := &metrics{}

	var err error
	m.candidateFrames, err = meter.Int64Counter("detector.candidate_frames",
		metric.WithDescription("Frames flagged by ball angular-velocity discontinuity"))
	if err != nil {
		return nil, err
	}
	m.hitsDetected, err = meter.Int64Counter("detector.hits",
		metric.WithDescription("Accepted hit events"))
	if err != nil {
		return nil, err
	}
	m.framesSkipped, err = meter.Int64Counter("detector.frames_skipped",
		metric.WithDescription("Candidate frames skipped for missing or unknown data"))
	if err != nil {
		return nil, err
	}
	m.playersSkipped, err = meter.Int64Counter("detector.players_skipped",
		metric.WithDescription("Per-frame player evaluations skipped for missing data"))
	if err != nil {
		return nil, err
	}
	m.phaseDuration, err = meter.Float64Histogram("detector.phase_duration_ms",
		metric.WithDescription("Detection pass phase durations"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *metrics) recordPhase(ctx context.Context, phase string, ms float64) {
	m.phaseDuration.Record(ctx, ms, metric.WithAttributes(attribute.String("phase", phase)))
}
