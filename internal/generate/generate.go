package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
	"time"
)

const (
	CharsetAlphaNumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	CharsetNumbers      = "0123456789"
)

func init() {
	mathrand.Seed(time.Now().UnixNano())
}

// CryptoRandom generates a cryptographically-safe random string from charset.
// Use this for anything that acts as a credential, like reset tokens and
// access key secrets.
func CryptoRandom(n int, charset string) (string, error) {
	if n <= 0 {
		return "", nil
	}

	bytes := make([]byte, n)
	for i := range bytes {
		bigint, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("couldn't generate random string of len %d: %w", n, err)
		}

		bytes[i] = charset[bigint.Int64()]
	}

	return string(bytes), nil
}

// MathRandom generates a random string that does not need to be
// cryptographically secure. Preferred over CryptoRandom for identifiers that
// are not secrets, as it does not drain the entropy pool.
func MathRandom(n int, charset string) string {
	if n <= 0 {
		return ""
	}

	bytes := make([]byte, n)
	for i := range bytes {
		//nolint:gosec // non-secret identifiers only
		j := mathrand.Int31n(int32(len(charset)))
		bytes[i] = charset[j]
	}

	return string(bytes)
}
