package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// AccessKeyLength is the number of characters of a dashboard access key.
const AccessKeyLength = 6

const accessKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccessKey returns a random upper-case alphanumeric key of
// AccessKeyLength characters.
func GenerateAccessKey() (string, error) {
	var sb strings.Builder
	sb.Grow(AccessKeyLength)

	limit := big.NewInt(int64(len(accessKeyAlphabet)))
	for range AccessKeyLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error generating access key: %w", err)
		}
		sb.WriteByte(accessKeyAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// NormalizeAccessKey trims and upper-cases user input so that keys compare
// case-insensitively.
func NormalizeAccessKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// IsValidAccessKey reports whether key (already normalized) has the
// expected length and alphabet.
func IsValidAccessKey(key string) bool {
	if len(key) != AccessKeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !strings.ContainsRune(accessKeyAlphabet, rune(key[i])) {
			return false
		}
	}
	return true
}
