package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/notes/api/internal/core/domain"
	"github.com/notes/api/internal/core/ports"
)

// DefaultTTL is how long an issued token stays valid. There is no server-side
// revocation; rotating the secret invalidates everything outstanding.
const DefaultTTL = 7 * 24 * time.Hour

type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer fails on an empty secret so a misconfigured process cannot
// start issuing tokens at all.
func NewJWTIssuer(secret []byte, ttl time.Duration) (ports.TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt signing secret is required")
	}
	return &JWTIssuer{secret: secret, ttl: ttl}, nil
}

func (i *JWTIssuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *JWTIssuer) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	// Malformed, bad signature and expired all collapse into one condition.
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userID, nil
}
