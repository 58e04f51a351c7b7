// pkg/password/synthesizer.go

// Package password turns an optional seed into candidate replacement passwords.
package password

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
)

const (
	// MinLength is the shortest candidate ever returned.
	MinLength = 16
	// MaxRandomLength bounds candidates synthesized without a seed.
	MaxRandomLength = 21

	substituteChance = 0.7
	flipCaseChance   = 0.5
	maxInjections    = 3
)

// Synthesizer produces one candidate password from a seed.
type Synthesizer interface {
	Synthesize(seed string) string
}

// RandomStrategy ignores the seed and builds a fully random password.
type RandomStrategy struct {
	src crypto.RandomSource
}

func NewRandomStrategy(src crypto.RandomSource) *RandomStrategy {
	return &RandomStrategy{src: src}
}

// Synthesize returns 16 to 21 characters. Positions 0-3 hold one upper, lower,
// digit and symbol in that order; the rest is drawn from the combined charset.
func (s *RandomStrategy) Synthesize(string) string {
	length := MinLength + s.src.Uniform(MaxRandomLength-MinLength+1)

	buf := make([]byte, 0, length)
	for _, class := range []string{charset.Upper, charset.Lower, charset.Digits, charset.Symbols} {
		buf = append(buf, crypto.PickByte(s.src, class))
	}
	for len(buf) < length {
		buf = append(buf, crypto.PickByte(s.src, charset.All))
	}
	return string(buf)
}

// ObfuscationStrategy derives a candidate from the seed.
type ObfuscationStrategy struct {
	src crypto.RandomSource
}

func NewObfuscationStrategy(src crypto.RandomSource) *ObfuscationStrategy {
	return &ObfuscationStrategy{src: src}
}

// Synthesize substitutes, injects symbols, repairs class coverage, pads to
// MinLength and finally shuffles. The shuffle must stay last.
func (s *ObfuscationStrategy) Synthesize(seed string) string {
	tokens := s.substitute(seed)
	tokens = s.injectSymbols(tokens, utf8.RuneCountInString(seed))

	out := []rune(repairCoverage(strings.Join(tokens, "")))
	for len(out) < MinLength {
		out = append(out, rune(crypto.PickByte(s.src, charset.All)))
	}

	crypto.Shuffle(s.src, out)
	return string(out)
}

// substitute makes one independent decision per seed character.
func (s *ObfuscationStrategy) substitute(seed string) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(seed)+maxInjections)
	for _, r := range seed {
		if subs, ok := Lookup(r); ok && s.src.Chance(substituteChance) {
			tokens = append(tokens, crypto.Pick(s.src, subs))
			continue
		}
		if charset.IsASCIILetter(r) && s.src.Chance(flipCaseChance) {
			tokens = append(tokens, string(charset.FlipCase(r)))
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}

// injectSymbols inserts min(3, ceil(seedLen/3)) symbols one after another,
// each at a position in the already grown sequence.
func (s *ObfuscationStrategy) injectSymbols(tokens []string, seedLen int) []string {
	k := min(maxInjections, (seedLen+2)/3)
	for i := 0; i < k; i++ {
		pos := 0
		if len(tokens) > 0 {
			pos = s.src.Uniform(len(tokens))
		}
		sym := string(crypto.PickByte(s.src, charset.Symbols))
		tokens = slices.Insert(tokens, pos, sym)
	}
	return tokens
}

// repairCoverage appends one fixed representative per missing class.
func repairCoverage(s string) string {
	cov := charset.Classify(s)
	if !cov.Upper {
		s += "A"
	}
	if !cov.Lower {
		s += "a"
	}
	if !cov.Digit {
		s += "7"
	}
	if !cov.Symbol {
		s += "!"
	}
	return s
}

// SeedSynthesizer selects a strategy with a single emptiness check.
type SeedSynthesizer struct {
	random    Synthesizer
	obfuscate Synthesizer
}

// NewSynthesizer wires both strategies to the same source.
func NewSynthesizer(src crypto.RandomSource) *SeedSynthesizer {
	return &SeedSynthesizer{
		random:    NewRandomStrategy(src),
		obfuscate: NewObfuscationStrategy(src),
	}
}

func (s *SeedSynthesizer) Synthesize(seed string) string {
	if seed == "" {
		return s.random.Synthesize(seed)
	}
	return s.obfuscate.Synthesize(seed)
}
