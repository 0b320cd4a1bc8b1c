// ABOUTME: JWT issuance and verification for authenticating API requests
// ABOUTME: Uses HS256 signing with a process-wide configurable secret

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// TokenVerifier checks a presented token and yields the principal it was
// issued to.
type TokenVerifier interface {
	Verify(tokenString string) (principalID string, err error)
}

// TokenIssuer mints tokens for authenticated principals. The credential
// service is the only issuer; the guard only verifies.
type TokenIssuer interface {
	Generate(principalID string, expiresIn time.Duration) (string, error)
}

// JWTVerifier signs and verifies HS256 JWTs whose subject is a principal ID.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier bound to the given signing secret.
func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

// Verify parses and validates tokenString and returns the "sub" claim.
// Expired tokens map to ErrExpiredToken; every other failure wraps
// ErrInvalidToken.
func (v *JWTVerifier) Verify(tokenString string) (principalID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC signatures are accepted; an asymmetric alg header on a
		// token signed with the shared secret would be a forgery attempt.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	return sub, nil
}

// Generate mints a token for principalID that expires after expiresIn.
func (v *JWTVerifier) Generate(principalID string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": principalID,
		"iat": now.Unix(),
		"exp": now.Add(expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
