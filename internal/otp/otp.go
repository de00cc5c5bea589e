package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Windows for the two OTP flows.
const (
	ConfirmTTL = 10 * time.Minute
	ResetTTL   = 15 * time.Minute
)

// Generate returns a random 6-digit numeric passcode and its expiry.
func Generate(ttl time.Duration) (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), time.Now().Add(ttl), nil
}

// Matches reports whether a submitted code equals the stored one and
// the stored code has not expired.
func Matches(stored string, expiry *time.Time, submitted string) bool {
	if stored == "" || expiry == nil || submitted == "" {
		return false
	}
	return stored == submitted && time.Now().Before(*expiry)
}
