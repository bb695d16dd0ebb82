package token

import "errors"

var (
	// ErrMalformedToken indicates the token could not be decoded as a JWT
	ErrMalformedToken = errors.New("token.malformed")

	// ErrNoExpiryClaim indicates the token carries no usable exp claim
	ErrNoExpiryClaim = errors.New("token.no_expiry_claim")
)
