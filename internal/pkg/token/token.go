// Package token issues and verifies the signed bearer tokens used for
// authentication. Tokens are HS256-signed JWTs carrying identity claims;
// they are readable but tamper-evident, and expire after a fixed TTL.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Claims is the identity payload embedded in every token.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies tokens against a single signing secret.
// The clock is injected so expiry behaviour is testable without sleeps.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer builds an Issuer. A non-positive ttl falls back to DefaultTTL and
// a nil clock falls back to time.Now.
func NewIssuer(secret string, ttl time.Duration, now func() time.Time) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue signs a token carrying the given identity, valid for the issuer's TTL.
func (i *Issuer) Issue(userID, email string, role domain.Role) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It fails with
// domain.ErrInvalidToken (wrapping the cause) when the signature does not
// match, the structure is malformed, the algorithm is unexpected, or the
// expiry has elapsed. Verification depends only on the token, the secret and
// the injected clock.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
