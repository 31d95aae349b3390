package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrEmptySecret       = errors.New("ticket secret is empty")
	ErrInvalidTicket     = errors.New("invalid ticket")
	ErrUnexpectedSigning = errors.New("unexpected signing method")
	ErrUnexpectedIssuer  = errors.New("unexpected ticket issuer")
)

// JwtTicketer signs and verifies maze tickets as HS256 JWTs.
type JwtTicketer struct {
	secretKey string
	issuer    string
}

var _ i.Ticketer = &JwtTicketer{}

// NewJwtTicketer creates a JwtTicketer signing with secretKey on behalf of issuer.
func NewJwtTicketer(secretKey, issuer string) (*JwtTicketer, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &JwtTicketer{
		secretKey: secretKey,
		issuer:    issuer,
	}, nil
}

// Issue creates a ticket carrying claims that expires after ttl.
func (s *JwtTicketer) Issue(claims map[string]interface{}, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["iat"] = now.Unix()
	jwtClaims["exp"] = now.Add(ttl).Unix()
	if s.issuer != "" {
		jwtClaims["iss"] = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Parse validates a ticket and returns its claims.
func (s *JwtTicketer) Parse(ticket string) (map[string]interface{}, error) {
	token, err := jwt.Parse(ticket, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidTicket
	}

	if s.issuer != "" && !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrUnexpectedIssuer
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtTicketer) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedSigning
	}
	return []byte(s.secretKey), nil
}
