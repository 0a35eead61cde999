package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/21musie/Caxora/pkg/helpers"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := helpers.HashPasswordCost("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, helpers.CompareHashAndPassword(hash, "secret1"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "secret2"))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	h1, err := helpers.HashPasswordCost("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := helpers.HashPasswordCost("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	// Same password, different salts, different hashes.
	assert.NotEqual(t, h1, h2)
	assert.True(t, helpers.CompareHashAndPassword(h1, "secret1"))
	assert.True(t, helpers.CompareHashAndPassword(h2, "secret1"))
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := helpers.BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("secret1", hash))
	assert.False(t, hasher.Verify("wrong", hash))
}
