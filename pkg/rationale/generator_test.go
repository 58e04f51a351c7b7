// pkg/rationale/generator_test.go

package rationale

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entropyPercent(t *testing.T, claim string) int {
	t.Helper()
	var pct int
	_, err := fmt.Sscanf(claim, "Entropy increased by ~%d%%", &pct)
	require.NoError(t, err, claim)
	return pct
}

func assertDistinct(t *testing.T, reasons []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, r := range reasons {
		assert.NotEmpty(t, r)
		assert.False(t, seen[r], "duplicate reason %q", r)
		seen[r] = true
	}
}

func TestExplainExample(t *testing.T) {
	t.Parallel()

	g := NewGenerator(crypto.NewSource())
	for i := 0; i < 100; i++ {
		reasons := g.Explain("Ab3!defghijklmno", "abc")

		require.GreaterOrEqual(t, len(reasons), 6)
		require.LessOrEqual(t, len(reasons), 7)
		assertDistinct(t, reasons)

		pct := entropyPercent(t, reasons[0])
		assert.GreaterOrEqual(t, pct, 40)
		assert.Less(t, pct, 90)

		assert.Equal(t, allClassesClaim, reasons[1])
		assert.Equal(t, fmt.Sprintf(longLengthClaimFormat, 16, "100000"), reasons[2])
		assert.Equal(t, SequencesEliminatedClaim, reasons[3])
		assert.Equal(t, DictionaryClaim, reasons[4])
		for _, r := range reasons[5:] {
			assert.Contains(t, AdvancedClaims, r)
		}
	}
}

func TestExplainOrderingAndBranches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidate  string
		seed       string
		allClasses bool
		length     string
		seedClaim  string
	}{
		{
			name:       "random path has no seed claim",
			candidate:  "Xk9#mQ2!vL7@pR4$",
			allClasses: true,
			length:     fmt.Sprintf(longLengthClaimFormat, 16, "100000"),
		},
		{
			name:       "seed without runs",
			candidate:  "Xk9#mQ2!vL7@pR4$",
			seed:       "a1b2",
			allClasses: true,
			length:     fmt.Sprintf(longLengthClaimFormat, 16, "100000"),
			seedClaim:  FamiliarElementsClaim,
		},
		{
			name:      "medium length",
			candidate: "abcdefghijklm",
			seed:      "123",
			length:    fmt.Sprintf(mediumLengthClaimFormat, 13),
			seedClaim: SequencesEliminatedClaim,
		},
		{
			name:      "short candidate",
			candidate: "abc",
			seed:      "x!",
			seedClaim: FamiliarElementsClaim,
		},
	}

	g := NewGenerator(crypto.NewSource())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reasons := g.Explain(tt.candidate, tt.seed)
			assertDistinct(t, reasons)
			entropyPercent(t, reasons[0])

			want := []string{}
			if tt.allClasses {
				want = append(want, allClassesClaim)
			}
			if tt.length != "" {
				want = append(want, tt.length)
			}
			if tt.seedClaim != "" {
				want = append(want, tt.seedClaim)
			}
			want = append(want, DictionaryClaim)

			require.Greater(t, len(reasons), len(want))
			assert.Equal(t, want, reasons[1:1+len(want)])

			advanced := reasons[1+len(want):]
			assert.GreaterOrEqual(t, len(advanced), 1)
			assert.LessOrEqual(t, len(advanced), 2)
			for _, r := range advanced {
				assert.Contains(t, AdvancedClaims, r)
			}
		})
	}
}

func TestExplainShortInputMayReturnThree(t *testing.T) {
	t.Parallel()

	// Entropy, dictionary and one or two advanced claims only.
	g := NewGenerator(crypto.NewSource())
	for i := 0; i < 50; i++ {
		n := len(g.Explain("abc", ""))
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 4)
	}
}

func TestExplainSeededIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewGenerator(crypto.NewSeededSource(11)).Explain("Ab3!defghijklmno", "abc")
	b := NewGenerator(crypto.NewSeededSource(11)).Explain("Ab3!defghijklmno", "abc")
	assert.Equal(t, a, b)
}

func TestHasPredictableRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"password123", true},
		{"123", true},
		{"a1b2c3", false},
		{"ab12", false},
		{"x!", false},
		{"", false},
		{"ééé", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasPredictableRun(tt.in), tt.in)
	}
}

func TestCrackYears(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100000", CrackYears(16))
	assert.Equal(t, "10000000", CrackYears(21))
	assert.Equal(t, "1"+strings.Repeat("0", 100), CrackYears(300))
}

func TestAdvancedClaimsPool(t *testing.T) {
	t.Parallel()

	assert.Len(t, AdvancedClaims, 7)
	assertDistinct(t, AdvancedClaims)
}

func TestExplainCountsOnlySymbolSetMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		candidate string
		want      bool
	}{
		{"Abc1!defghijklmn", true},
		{"Abc1~defghijklmn", false},
		{"Abc1 defghijklmn", false},
		{"Abc1€defghijklmn", false},
	}
	for _, tt := range tests {
		got := NewGenerator(crypto.NewSeededSource(3)).Explain(tt.candidate, "")
		assert.Equal(t, tt.want, slices.Contains(got, allClassesClaim), tt.candidate)
	}
}
