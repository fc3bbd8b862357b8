package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet deliberately excludes glyphs that are easy to confuse
// when an admin reads a password out to a user (I, O, 0, 1, l).
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const generatedPasswordLength = 8

// generatePassword draws uniformly random characters from passwordAlphabet
// using the platform CSPRNG.
func generatePassword() (string, error) {
	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, generatedPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
