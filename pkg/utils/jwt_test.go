package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	secret := []byte("secret")
	token, err := CreateToken(secret, "user-1", "john@example.com", "admin", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsWrongSecretAndExpired(t *testing.T) {
	token, err := CreateToken([]byte("a"), "u", "e", "user", time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken([]byte("b"), token)
	assert.Error(t, err)

	expired, err := CreateToken([]byte("a"), "u", "e", "user", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken([]byte("a"), expired)
	assert.Error(t, err)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("kivu-sunset")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "kivu-sunset"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}
