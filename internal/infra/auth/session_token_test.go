package auth

import (
	"testing"

	"lounas/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenSource(secret string) *opaqueTokenSource {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return NewSessionTokenSource(cfg).(*opaqueTokenSource)
}

func TestOpaqueTokenSource_GenerateIsUnique(t *testing.T) {
	src := newTokenSource("test-secret")

	seen := make(map[string]struct{})
	for range 100 {
		token, tokenHash, err := src.Generate()
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, src.Hash(token), tokenHash)

		_, dup := seen[token]
		assert.False(t, dup, "token generated twice")
		seen[token] = struct{}{}
	}
}

func TestOpaqueTokenSource_HashIsDeterministic(t *testing.T) {
	src := newTokenSource("test-secret")

	assert.Equal(t, src.Hash("some-token"), src.Hash("some-token"))
	assert.NotEqual(t, src.Hash("some-token"), src.Hash("other-token"))
}

func TestOpaqueTokenSource_HashDependsOnSecret(t *testing.T) {
	a := newTokenSource("secret-a")
	b := newTokenSource("secret-b")

	// Stolen stored hashes are useless without the server's key.
	assert.NotEqual(t, a.Hash("some-token"), b.Hash("some-token"))
}

func TestOpaqueTokenSource_TokenNeverStoredVerbatim(t *testing.T) {
	src := newTokenSource("test-secret")

	token, tokenHash, err := src.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, token, tokenHash)
	assert.NotContains(t, tokenHash, token)
}
