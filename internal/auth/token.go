package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"person_registry/internal/models"
)

// ErrInvalidToken covers malformed, tampered, and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenIssuer mints HS256-signed bearer tokens. The signing key and TTL are
// deployment configuration, fixed at construction; rotating the key
// invalidates every previously issued token.
type TokenIssuer struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenIssuer(signingKey string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{signingKey: []byte(signingKey), ttl: ttl}
}

// Issue mints a token asserting the user's identity: user_id and sub
// (username) claims plus iat/exp.
func (i *TokenIssuer) Issue(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID,
	})
	return token.SignedString(i.signingKey)
}

// Parse validates a token's signature and expiry and returns the user id it
// asserts.
func (i *TokenIssuer) Parse(accessToken string) (int64, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.signingKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
