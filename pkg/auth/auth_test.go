package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "alice", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(7, "alice", "user")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}
