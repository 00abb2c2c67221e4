package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// now is a test seam.
var now = time.Now

// TokenExpiry returns the exp claim of a JWT-shaped token without verifying
// its signature. ok is false for opaque tokens or tokens without exp.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	d, err := claims.GetExpirationTime()
	if err != nil || d == nil {
		return time.Time{}, false
	}
	return d.Time, true
}

// TokenExpired reports whether token carries an exp claim in the past.
func TokenExpired(token string) bool {
	exp, ok := TokenExpiry(token)
	return ok && exp.Before(now())
}
