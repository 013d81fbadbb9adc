package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))

	ok, err := VerifyPassword("motdepasse123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("mauvais", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("x")
	require.NoError(t, err)
	h2, err := HashPassword("x")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "pas-un-hash")
	assert.Error(t, err)
}

func TestIsArgon2Hash(t *testing.T) {
	assert.True(t, IsArgon2Hash("$argon2id$v=19$m=32768,t=1,p=4$abc$def"))
	assert.False(t, IsArgon2Hash("$2a$10$bcrypt"))
	assert.False(t, IsArgon2Hash(""))
}
