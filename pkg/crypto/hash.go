// pkg/crypto/hash.go

package crypto

import (
	"github.com/alexedwards/argon2id"
	cerr "github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// HashAlgorithm names a digest that can be emitted next to a candidate.
type HashAlgorithm string

const (
	HashNone     HashAlgorithm = "none"
	HashBcrypt   HashAlgorithm = "bcrypt"
	HashArgon2id HashAlgorithm = "argon2id"
)

// MinRecommendedBcryptCost is the cost below which a digest is reported as weak.
const MinRecommendedBcryptCost = bcrypt.DefaultCost

// DefaultArgon2idParams matches the OWASP minimum for argon2id.
var DefaultArgon2idParams = argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// HashedCandidate pairs a candidate with its digest.
type HashedCandidate struct {
	Password  string        `json:"password" yaml:"password"`
	Algorithm HashAlgorithm `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Digest    string        `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// Hasher produces storage-ready digests for candidates.
type Hasher struct {
	algo       HashAlgorithm
	bcryptCost int
	argon      argon2id.Params
}

// NewHasher validates the algorithm and cost up front so Hash only fails on input.
func NewHasher(algo HashAlgorithm, bcryptCost int) (*Hasher, error) {
	switch algo {
	case HashNone, HashArgon2id:
	case HashBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, cerr.Newf("bcrypt: invalid cost parameter %d", bcryptCost)
		}
	default:
		return nil, cerr.Newf("unsupported hash algorithm %q", algo)
	}
	return &Hasher{algo: algo, bcryptCost: bcryptCost, argon: DefaultArgon2idParams}, nil
}

func (h *Hasher) Algorithm() HashAlgorithm { return h.algo }

// Hash returns the digest of password, or "" when hashing is disabled.
func (h *Hasher) Hash(password string) (string, error) {
	switch h.algo {
	case HashBcrypt:
		digest, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
		if err != nil {
			return "", cerr.WithHint(cerr.Wrap(err, "bcrypt hash failed"),
				"bcrypt accepts at most 72 bytes; use --hash argon2id for long candidates")
		}
		return string(digest), nil
	case HashArgon2id:
		digest, err := argon2id.CreateHash(password, &h.argon)
		if err != nil {
			return "", cerr.Wrap(err, "argon2id hash failed")
		}
		return digest, nil
	default:
		return "", nil
	}
}

// Verify reports whether digest was produced from password.
func (h *Hasher) Verify(password, digest string) (bool, error) {
	switch h.algo {
	case HashBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
		if cerr.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	case HashArgon2id:
		return argon2id.ComparePasswordAndHash(password, digest)
	default:
		return false, cerr.Newf("verify is not available for hash algorithm %q", h.algo)
	}
}

// IsTooLongForHash reports whether err came from hashing a candidate longer
// than the algorithm accepts.
func IsTooLongForHash(err error) bool {
	return err != nil && cerr.Is(err, bcrypt.ErrPasswordTooLong)
}

// IsHashCostWeak reports whether a bcrypt digest was made with fewer than
// minCost rounds. Unparseable digests count as weak.
func IsHashCostWeak(digest string, minCost int) bool {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return true
	}
	return cost < minCost
}

// HashAll hashes every candidate in order.
func (h *Hasher) HashAll(candidates []string) ([]HashedCandidate, error) {
	out := make([]HashedCandidate, 0, len(candidates))
	for i, pw := range candidates {
		digest, err := h.Hash(pw)
		if err != nil {
			return nil, cerr.Wrapf(err, "hash candidate %d", i+1)
		}
		hc := HashedCandidate{Password: pw}
		if h.algo != HashNone {
			hc.Algorithm = h.algo
			hc.Digest = digest
		}
		out = append(out, hc)
	}
	return out, nil
}
