// pkg/suggest/metrics.go

package suggest

import (
	"context"
	"time"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	candidatesMetric = "passforge_candidates_generated_total"
	durationMetric   = "passforge_suggest_duration_seconds"
)

// suggestMetrics counts what was generated. Only the mode is recorded,
// never the seed or a candidate.
type suggestMetrics struct {
	candidates metric.Int64Counter
	duration   metric.Float64Histogram
}

func newSuggestMetrics(mp metric.MeterProvider) (*suggestMetrics, error) {
	meter := mp.Meter(shared.AppID)

	candidates, err := meter.Int64Counter(candidatesMetric,
		metric.WithDescription("Total number of password candidates generated"))
	if err != nil {
		return nil, cerr.Wrap(err, "failed to create candidates counter")
	}

	duration, err := meter.Float64Histogram(durationMetric,
		metric.WithDescription("Time spent generating and explaining a batch"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, cerr.Wrap(err, "failed to create duration histogram")
	}

	return &suggestMetrics{candidates: candidates, duration: duration}, nil
}

func (m *suggestMetrics) record(ctx context.Context, mode string, count int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("mode", mode))
	m.candidates.Add(ctx, int64(count), attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
