package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Access tokens are stateless: validity is re-derived from signature and
// expiry on every request, never looked up.
const AccessTokenTTL = 30 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired token")

type AccessClaims struct {
	jwt.RegisteredClaims
}

// GenerateAccessToken mints an HS256 token with the username as subject,
// valid for AccessTokenTTL from issuance.
func GenerateAccessToken(username string, secret []byte) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken validates signature and expiry and returns the subject
// username. A token with no subject claim is rejected.
func ParseAccessToken(tokenStr string, secret []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
