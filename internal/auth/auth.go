// Package auth verifies wallet session tokens and carries the caller's
// wallet identity through request contexts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing session token")
	ErrInvalidToken = errors.New("invalid session token")
	ErrNoSecret     = errors.New("token verification is not configured")
)

// Identity is the authenticated caller. Address is the wallet the session
// token was issued to.
type Identity struct {
	Address common.Address
}

// Claims is the session token payload. The subject holds the wallet address.
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier validates HS256 session tokens.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}
}

// Verify parses token and returns the identity in its subject.
func (v *Verifier) Verify(token string) (Identity, error) {
	if len(v.secret) == 0 {
		return Identity{}, ErrNoSecret
	}
	if token == "" {
		return Identity{}, ErrMissingToken
	}

	var claims Claims
	parsed, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	if !common.IsHexAddress(claims.Subject) {
		return Identity{}, fmt.Errorf("%w: subject is not a wallet address", ErrInvalidToken)
	}
	return Identity{Address: common.HexToAddress(claims.Subject)}, nil
}

// Issue signs a token for addr. Production tokens come from the wallet
// authentication provider; Issue serves local tooling and tests.
func (v *Verifier) Issue(addr common.Address, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   addr.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by WithIdentity.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
