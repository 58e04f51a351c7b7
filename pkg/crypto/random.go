// pkg/crypto/random.go

package crypto

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	cerr "github.com/cockroachdb/errors"
)

// RandomSource supplies every random draw made during password synthesis.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Uniform returns an integer in [0, n). n must be positive.
	Uniform(n int) int
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// ChaChaSource is a mutex-guarded ChaCha8 stream.
type ChaChaSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a source keyed from the operating system CSPRNG.
func NewSource() *ChaChaSource {
	var key [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(key[:])
	return newChaChaSource(key)
}

// NewSeededSource returns a reproducible source. Tests only.
func NewSeededSource(seed uint64) *ChaChaSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return newChaChaSource(key)
}

func newChaChaSource(key [32]byte) *ChaChaSource {
	return &ChaChaSource{rng: rand.New(rand.NewChaCha8(key))}
}

func (s *ChaChaSource) Uniform(n int) int {
	if n <= 0 {
		panic(cerr.AssertionFailedf("crypto: Uniform called with non-positive bound %d", n))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *ChaChaSource) Chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

// Split derives an independent child stream from src.
// Children drawn in the same order from a seeded parent are identical across runs.
func Split(src RandomSource) *ChaChaSource {
	var key [32]byte
	for i := range key {
		key[i] = byte(src.Uniform(256))
	}
	return newChaChaSource(key)
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src RandomSource, items []T) T {
	return items[src.Uniform(len(items))]
}

// PickByte returns a uniformly chosen byte of an ASCII charset.
func PickByte(src RandomSource, charset string) byte {
	return charset[src.Uniform(len(charset))]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](src RandomSource, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Uniform(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample draws k distinct elements of items, without replacement and in random order.
// items is left untouched. k is clamped to len(items).
func Sample[T any](src RandomSource, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + src.Uniform(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
