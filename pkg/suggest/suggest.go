// pkg/suggest/suggest.go

// Package suggest is the single entry point the CLI uses: generate a batch of
// candidates and explain the first one.
package suggest

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/password"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/rationale"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Suggestion is what a caller receives: four candidates and the reasons the
// first of them is stronger than the seed.
type Suggestion struct {
	Candidates []string `json:"candidates" yaml:"candidates"`
	Rationale  []string `json:"rationale" yaml:"rationale"`
}

// Suggester wires a BatchGenerator and a rationale Generator to one random source.
type Suggester struct {
	batch     *password.BatchGenerator
	explainer *rationale.Generator
	log       *zap.Logger
	metrics   *suggestMetrics
	parallel  bool
}

// Option configures a Suggester.
type Option func(*suggesterOptions)

type suggesterOptions struct {
	parallel bool
	log      *zap.Logger
	meters   metric.MeterProvider
}

// WithParallel synthesizes the batch concurrently.
func WithParallel(parallel bool) Option {
	return func(o *suggesterOptions) { o.parallel = parallel }
}

// WithLogger sets the logger; defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *suggesterOptions) { o.log = log }
}

// WithMeterProvider records generation metrics on mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *suggesterOptions) { o.meters = mp }
}

func New(src crypto.RandomSource, opts ...Option) *Suggester {
	o := suggesterOptions{log: zap.NewNop(), meters: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := newSuggestMetrics(o.meters)
	if err != nil {
		o.log.Warn("Generation metrics disabled", zap.Error(err))
	}

	return &Suggester{
		batch:     password.NewBatchGenerator(src, password.WithParallel(o.parallel)),
		explainer: rationale.NewGenerator(src),
		log:       o.log,
		metrics:   m,
		parallel:  o.parallel,
	}
}

// Suggest never fails: every input, including the empty seed, yields a Suggestion.
func (s *Suggester) Suggest(ctx context.Context, seed string) Suggestion {
	mode := "obfuscation"
	if seed == "" {
		mode = "random"
	}

	start := time.Now()
	ctx, span := telemetry.Start(ctx, "suggest",
		attribute.String("mode", mode),
		attribute.Bool("parallel", s.parallel),
		attribute.Int("seed_length", utf8.RuneCountInString(seed)),
	)
	defer span.End()

	s.log.Debug("Generating candidates",
		zap.String("mode", mode),
		zap.String("seed", crypto.Redact(seed)),
		zap.Bool("parallel", s.parallel))

	candidates := s.batch.Generate(seed)
	reasons := s.explainer.Explain(candidates[0], seed)

	span.SetAttributes(attribute.Int("rationale_count", len(reasons)))
	s.metrics.record(ctx, mode, len(candidates), time.Since(start))
	s.log.Debug("Candidates generated",
		zap.Int("count", len(candidates)),
		zap.Int("rationale_count", len(reasons)))

	return Suggestion{Candidates: candidates, Rationale: reasons}
}
