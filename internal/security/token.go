package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/electroleed/project-office/internal/core/domain"
)

// Fixed identity claims scoping tokens to this application. A token signed
// with the right key but carrying different values is rejected.
const (
	tokenIssuer  = "Electroleed"
	tokenSubject = "User Details"
)

// TokenInfo is the claim pair extracted from a verified token.
type TokenInfo struct {
	Login string
	Role  string
}

// Codec issues and verifies signed session tokens. It is stateless and safe
// for concurrent use; every operation is a pure function of (token, secret).
type Codec struct {
	secret []byte
}

// NewCodec builds a Codec around the server-held signing secret. An empty
// secret is a configuration error, not a recoverable condition.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token codec: empty signing secret")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue produces an HS256-signed token asserting the given login and role.
// Tokens carry an issued-at timestamp but no expiry; validity rests on the
// signature alone.
func (c *Codec) Issue(login, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   tokenSubject,
		"iss":   tokenIssuer,
		"login": login,
		"role":  role,
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify recomputes the signature, checks the issuer and subject claims, and
// extracts the login/role pair. Any failure (bad signature, tampered
// payload, wrong issuer or subject, malformed encoding) collapses to
// domain.ErrTokenInvalid.
func (c *Codec) Verify(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(tokenSubject),
	)
	if err != nil || !parsed.Valid {
		return TokenInfo{}, domain.ErrTokenInvalid
	}

	login, _ := claims["login"].(string)
	role, _ := claims["role"].(string)
	if login == "" || role == "" {
		return TokenInfo{}, domain.ErrTokenInvalid
	}
	return TokenInfo{Login: login, Role: role}, nil
}
