package tokenstore

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt peeks at the exp claim of a JWT bearer token without verifying
// its signature. The second return is false when the token is not a
// well-formed JWT or carries no exp claim.
//
// This is advisory only: the backend remains the authority on token
// validity, and an expired-looking token is still presented until the
// backend rejects it.
func ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
