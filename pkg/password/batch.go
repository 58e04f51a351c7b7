// pkg/password/batch.go

package password

import (
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"golang.org/x/sync/errgroup"
)

// BatchSize is the number of candidates produced per generation.
const BatchSize = 4

// SynthesizerFactory binds a Synthesizer to a random source.
type SynthesizerFactory func(src crypto.RandomSource) Synthesizer

// BatchGenerator produces a CandidateSet. It never caches: every call draws fresh candidates.
type BatchGenerator struct {
	src      crypto.RandomSource
	factory  SynthesizerFactory
	parallel bool
}

// BatchOption configures a BatchGenerator.
type BatchOption func(*BatchGenerator)

// WithParallel runs the synthesis calls concurrently, one child source each.
func WithParallel(parallel bool) BatchOption {
	return func(b *BatchGenerator) { b.parallel = parallel }
}

// WithSynthesizerFactory replaces the default SeedSynthesizer.
func WithSynthesizerFactory(f SynthesizerFactory) BatchOption {
	return func(b *BatchGenerator) { b.factory = f }
}

func NewBatchGenerator(src crypto.RandomSource, opts ...BatchOption) *BatchGenerator {
	b := &BatchGenerator{
		src: src,
		factory: func(src crypto.RandomSource) Synthesizer {
			return NewSynthesizer(src)
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Generate returns exactly BatchSize candidates, index i holding the result of call i.
func (b *BatchGenerator) Generate(seed string) []string {
	out := make([]string, BatchSize)

	if !b.parallel {
		synth := b.factory(b.src)
		for i := range out {
			out[i] = synth.Synthesize(seed)
		}
		return out
	}

	// Children are split before any worker starts so a seeded parent stays reproducible.
	children := make([]crypto.RandomSource, BatchSize)
	for i := range children {
		children[i] = crypto.Split(b.src)
	}

	var g errgroup.Group
	for i := range out {
		synth := b.factory(children[i])
		g.Go(func() error {
			out[i] = synth.Synthesize(seed)
			return nil
		})
	}
	_ = g.Wait() // workers cannot fail
	return out
}
