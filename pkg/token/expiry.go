package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryBuffer is subtracted from the exp claim so renewal starts before the
// token actually lapses. Matches the backend's clock-skew tolerance.
const ExpiryBuffer = 30 * time.Second

// parser decodes claims without signature verification; see the package doc
// for why verification is deliberately absent.
var parser = jwt.NewParser()

// IsExpired reports whether the access token is within ExpiryBuffer of its
// exp claim or already past it. Tokens that cannot be decoded are treated as
// expired.
func IsExpired(tokenString string) bool {
	expiresAt, err := ExpiresAt(tokenString)
	if err != nil {
		return true
	}
	return !time.Now().Before(expiresAt.Add(-ExpiryBuffer))
}

// ExpiresAt extracts the exp claim from the token without verifying its
// signature.
func ExpiresAt(tokenString string) (time.Time, error) {
	if tokenString == "" {
		return time.Time{}, ErrMalformedToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, errors.Join(ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return exp.Time, nil
}
