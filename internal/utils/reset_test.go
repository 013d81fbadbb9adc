package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundtrip(t *testing.T) {
	userID := uuid.NewString()
	token := EncodeResetToken(userID)

	decoded, err := DecodeResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}

func TestDecodeResetTokenInvalid(t *testing.T) {
	// pas du base64
	_, err := DecodeResetToken("%%%")
	assert.Error(t, err)

	// base64 valide mais contenu qui n'est pas un uuid
	_, err = DecodeResetToken(EncodeResetToken("admin"))
	assert.Error(t, err)
}
