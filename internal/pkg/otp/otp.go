// Package otp implements the one-time-passcode policy: code shape and
// validity window. It holds no state; callers attach the generated code
// to a user record and check expiry lazily at verification time.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// TTL is the fixed validity window for an issued code.
const TTL = 10 * time.Minute

// codeRange spans the 6-digit space 100000-999999 inclusive.
const (
	codeMin   = 100000
	codeRange = 900000
)

// Generate produces a uniformly random 6-digit numeric code.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", codeMin+n.Int64()), nil
}

// ExpiryFromNow returns the expiry timestamp for a code issued now.
func ExpiryFromNow() time.Time {
	return time.Now().Add(TTL)
}

// IsExpired reports whether an expiry timestamp has passed. The
// comparison is strict: a code is still valid at the exact expiry instant.
func IsExpired(expiresAt, now time.Time) bool {
	return now.After(expiresAt)
}
