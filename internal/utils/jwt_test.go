package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("harry", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "harry", claims.Username)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("harry", testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTMissingUsername(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"})
	token, err := raw.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestTokensDoNotExpire(t *testing.T) {
	token, err := GenerateJWT("harry", testSecret)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
