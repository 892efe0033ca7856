package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateAccessToken("grace", testSecret)
	require.NoError(t, err)

	username, err := ParseAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "grace", username)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("grace", testSecret)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, []byte("another-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "grace",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSubject(t *testing.T) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseAccessToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
