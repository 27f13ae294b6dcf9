package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const DefaultTokenTTL = 24 * time.Hour

type claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens carrying the principal.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock clockwork.Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (i *TokenIssuer) Issue(p Principal) (string, error) {
	now := i.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return token.SignedString(i.secret)
}

// Parse verifies the signature and expiry. Every failure wraps ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now), jwt.WithExpirationRequired())
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || c.Subject == "" {
		return Principal{}, ErrInvalidToken
	}
	return Principal{ID: c.Subject, Name: c.Name}, nil
}
