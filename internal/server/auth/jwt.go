// Package auth signs and checks the sandbox session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dayadevraha/devraha/internal/common"
)

// Claims carries the standard claims plus the account id and its kind, so a
// user token is never accepted on an admin route.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"aid"`
	Kind      string `json:"kind"`
}

func GenerateToken(accountID, kind string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AccountID: accountID,
		Kind:      kind,
	})

	return token.SignedString(secretKey)
}

// ParseToken returns the account id of a valid token minted for kind.
// Expired tokens yield common.ErrTokenExpired; anything else that fails
// yields common.ErrInvalidToken.
func ParseToken(tokenString, kind string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Kind != kind || claims.AccountID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
