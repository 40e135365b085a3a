package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/j7amo/e-commerce-api/internal/models"
)

// ErrInvalidToken is returned for every decode failure: bad signature,
// malformed token or expired token. Callers must not be able to tell which.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenPayload is the identity claim embedded in the session token. It is
// immutable once issued; a new one is only minted on register, login or
// profile update.
type TokenPayload struct {
	UserID string      `json:"userId"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
}

func NewTokenPayload(user *models.User) TokenPayload {
	return TokenPayload{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Role:   user.Role,
	}
}

type tokenClaims struct {
	TokenPayload
	jwt.RegisteredClaims
}

func CreateToken(payload TokenPayload, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		TokenPayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func DecodeToken(tokenString string, secret []byte) (TokenPayload, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return TokenPayload{}, ErrInvalidToken
	}
	return claims.TokenPayload, nil
}
