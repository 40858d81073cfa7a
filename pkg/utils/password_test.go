package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, CheckPassword("pw1", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("same-plaintext")
	require.NoError(t, err)
	h2, err := HashPassword("same-plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each call must salt freshly")
	assert.True(t, CheckPassword("same-plaintext", h1))
	assert.True(t, CheckPassword("same-plaintext", h2))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("pw1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("pw1", ""))
}
