// pkg/password/batch_test.go

package password

import (
	"sync/atomic"
	"testing"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBatchGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seed     string
		parallel bool
	}{
		{"seeded sequential", "password123", false},
		{"seeded parallel", "password123", true},
		{"random sequential", "", false},
		{"random parallel", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBatchGenerator(crypto.NewSource(), WithParallel(tt.parallel))
			for i := 0; i < 20; i++ {
				got := b.Generate(tt.seed)
				require.Len(t, got, BatchSize)
				for _, c := range got {
					assertCandidate(t, c)
				}
			}
		})
	}
}

func TestBatchDeterministicWithSeededSource(t *testing.T) {
	t.Parallel()

	for _, parallel := range []bool{false, true} {
		a := NewBatchGenerator(crypto.NewSeededSource(2024), WithParallel(parallel)).Generate("letmein")
		b := NewBatchGenerator(crypto.NewSeededSource(2024), WithParallel(parallel)).Generate("letmein")
		assert.Equal(t, a, b, "parallel=%v", parallel)
	}
}

func TestBatchDoesNotCache(t *testing.T) {
	t.Parallel()

	b := NewBatchGenerator(crypto.NewSource())
	first := b.Generate("")
	second := b.Generate("")
	assert.NotEqual(t, first, second)
}

type countingSynth struct {
	calls *atomic.Int32
}

func (c countingSynth) Synthesize(seed string) string {
	c.calls.Add(1)
	return seed
}

func TestBatchSynthesizerFactory(t *testing.T) {
	t.Parallel()

	for _, parallel := range []bool{false, true} {
		var calls atomic.Int32
		factories := 0
		b := NewBatchGenerator(crypto.NewSource(),
			WithParallel(parallel),
			WithSynthesizerFactory(func(src crypto.RandomSource) Synthesizer {
				factories++
				return countingSynth{calls: &calls}
			}),
		)

		got := b.Generate("seed")
		assert.Equal(t, []string{"seed", "seed", "seed", "seed"}, got)
		assert.EqualValues(t, BatchSize, calls.Load())
		if parallel {
			assert.Equal(t, BatchSize, factories, "one synthesizer per child source")
		} else {
			assert.Equal(t, 1, factories)
		}
	}
}
