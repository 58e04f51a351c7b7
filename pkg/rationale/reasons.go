// pkg/rationale/reasons.go

package rationale

const (
	entropyClaimFormat = "Entropy increased by ~%d%%, making it exponentially harder to crack"

	allClassesClaim = "Uses all character types: uppercase, lowercase, numbers, and special characters"

	longLengthClaimFormat   = "Length of %d characters provides excellent protection against brute force attempts (estimated %s+ years to crack with standard computing resources)"
	mediumLengthClaimFormat = "Length of %d characters offers strong protection against brute force attacks"

	// SequencesEliminatedClaim is emitted when the seed had a run of 3+ letters or digits.
	SequencesEliminatedClaim = "Eliminated predictable letter or number sequences while preserving some familiar elements"
	// FamiliarElementsClaim is emitted for seeds without such a run.
	FamiliarElementsClaim = "Enhanced the entropy while maintaining some familiar elements for memorability"

	// DictionaryClaim is always present.
	DictionaryClaim = "Resistant to dictionary attacks and common password lists"
)

// AdvancedClaims is the pool the final one or two entries are sampled from.
var AdvancedClaims = []string{
	"Incorporates unpredictable character substitutions that defeat pattern-based cracking algorithms",
	"Strategic placement of special characters disrupts common password patterns",
	"Non-sequential character distribution optimized to maximize cryptographic strength",
	"Uses uncommon character substitutions that evade rule-based cracking methods",
	"Intentionally avoids common leet-speak substitutions that are vulnerable to modern cracking tools",
	"Maintains enough structural complexity to resist rainbow table attacks",
	"Combines multiple entropy sources for enhanced security against specialized cracking methods",
}
