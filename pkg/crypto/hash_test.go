// pkg/crypto/hash_test.go

package crypto

import (
	"strings"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		algo        HashAlgorithm
		cost        int
		expectError bool
	}{
		{name: "none", algo: HashNone, cost: 0},
		{name: "argon2id ignores cost", algo: HashArgon2id, cost: 0},
		{name: "bcrypt min cost", algo: HashBcrypt, cost: 4},
		{name: "bcrypt cost too low", algo: HashBcrypt, cost: 3, expectError: true},
		{name: "bcrypt cost too high", algo: HashBcrypt, cost: 32, expectError: true},
		{name: "unknown algorithm", algo: HashAlgorithm("md5"), cost: 10, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewHasher(tt.algo, tt.cost)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.algo, h.Algorithm())
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		algo     HashAlgorithm
		password string
		prefix   string
	}{
		{name: "bcrypt", algo: HashBcrypt, password: "P@55w0rd!23xyzAB", prefix: "$2a$04$"},
		{name: "bcrypt unicode", algo: HashBcrypt, password: "测试密码🔒Ab3!", prefix: "$2a$04$"},
		{name: "argon2id", algo: HashArgon2id, password: "P@55w0rd!23xyzAB", prefix: "$argon2id$v=19$m=65536,t=3,p=2$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewHasher(tt.algo, 4)
			require.NoError(t, err)

			digest, err := h.Hash(tt.password)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(digest, tt.prefix), "digest %q should start with %q", digest, tt.prefix)

			ok, err := h.Verify(tt.password, digest)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify(tt.password+"x", digest)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestHashBcryptTooLong(t *testing.T) {
	t.Parallel()

	h, err := NewHasher(HashBcrypt, 4)
	require.NoError(t, err)

	digest, err := h.Hash(strings.Repeat("a", 100))
	require.Error(t, err)
	assert.Empty(t, digest)
	assert.NotEmpty(t, cerr.GetAllHints(err))
	assert.True(t, IsTooLongForHash(err))

	_, err = h.HashAll([]string{"short", strings.Repeat("b", 73)})
	require.Error(t, err)
	assert.True(t, IsTooLongForHash(err))
	assert.False(t, IsTooLongForHash(nil))
	assert.False(t, IsTooLongForHash(cerr.New("argon2id hash failed")))
}

func TestHashNone(t *testing.T) {
	t.Parallel()

	h, err := NewHasher(HashNone, 0)
	require.NoError(t, err)

	digest, err := h.Hash("anything")
	require.NoError(t, err)
	assert.Empty(t, digest)

	_, err = h.Verify("anything", "")
	assert.Error(t, err)
}

func TestHashAll(t *testing.T) {
	t.Parallel()

	candidates := []string{"Ab3!defghijklmno", "Zy9@qwertyuiopas"}

	none, err := NewHasher(HashNone, 0)
	require.NoError(t, err)
	plain, err := none.HashAll(candidates)
	require.NoError(t, err)
	assert.Equal(t, []HashedCandidate{{Password: candidates[0]}, {Password: candidates[1]}}, plain)

	bc, err := NewHasher(HashBcrypt, 4)
	require.NoError(t, err)
	hashed, err := bc.HashAll(candidates)
	require.NoError(t, err)
	require.Len(t, hashed, 2)
	for i, hc := range hashed {
		assert.Equal(t, candidates[i], hc.Password)
		assert.Equal(t, HashBcrypt, hc.Algorithm)
		ok, err := bc.Verify(hc.Password, hc.Digest)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestIsHashCostWeak(t *testing.T) {
	t.Parallel()

	h, err := NewHasher(HashBcrypt, 4)
	require.NoError(t, err)
	digest, err := h.Hash("Ab3!defghijklmno")
	require.NoError(t, err)

	assert.True(t, IsHashCostWeak(digest, 10))
	assert.False(t, IsHashCostWeak(digest, 4))
	assert.True(t, IsHashCostWeak("not-a-hash", 4))
}
