// pkg/rationale/generator.go

// Package rationale explains, heuristically, why a candidate beats its seed.
// The figures it quotes are illustrative and are not measured.
package rationale

import (
	"fmt"
	"math/big"
	"regexp"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
)

const (
	entropyMinPercent = 40
	entropySpread     = 50 // percentage lands in [40, 90)

	longLengthThreshold   = 15
	mediumLengthThreshold = 12
)

var predictableRun = regexp.MustCompile(`[a-zA-Z]{3,}|[0-9]{3,}`)

// Generator builds rationale lists. Safe for concurrent use if its source is.
type Generator struct {
	src crypto.RandomSource
}

func NewGenerator(src crypto.RandomSource) *Generator {
	return &Generator{src: src}
}

// Explain returns general claims first and one or two advanced claims last.
func (g *Generator) Explain(candidate, seed string) []string {
	reasons := make([]string, 0, 7)

	reasons = append(reasons, fmt.Sprintf(entropyClaimFormat, entropyMinPercent+g.src.Uniform(entropySpread)))

	if charset.Classify(candidate).Complete() {
		reasons = append(reasons, allClassesClaim)
	}

	if claim, ok := lengthClaim(utf8.RuneCountInString(candidate)); ok {
		reasons = append(reasons, claim)
	}

	if seed != "" {
		if HasPredictableRun(seed) {
			reasons = append(reasons, SequencesEliminatedClaim)
		} else {
			reasons = append(reasons, FamiliarElementsClaim)
		}
	}

	reasons = append(reasons, DictionaryClaim)

	n := 1 + g.src.Uniform(2)
	reasons = append(reasons, crypto.Sample(g.src, AdvancedClaims, n)...)

	return reasons
}

// HasPredictableRun reports a run of at least three ASCII letters or three digits.
func HasPredictableRun(s string) bool {
	return predictableRun.MatchString(s)
}

func lengthClaim(length int) (string, bool) {
	switch {
	case length > longLengthThreshold:
		return fmt.Sprintf(longLengthClaimFormat, length, CrackYears(length)), true
	case length > mediumLengthThreshold:
		return fmt.Sprintf(mediumLengthClaimFormat, length), true
	default:
		return "", false
	}
}

// CrackYears renders 10^floor(length/3) exactly.
func CrackYears(length int) string {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length/3)), nil).String()
}
