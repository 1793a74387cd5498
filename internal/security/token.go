package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// urlSafeAlphabet has 64 symbols, so each character carries 6 bits of
// entropy without modulo bias.
const urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// PublicTokenLength yields 192 bits, comfortably past the 128-bit
// floor required for invoice payment links.
const PublicTokenLength = 32

var errNegativeLength = errors.New("length must be non-negative")

// Token returns a cryptographically secure URL-safe string of the
// requested length.
func Token(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(urlSafeAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = urlSafeAlphabet[position.Int64()]
	}
	return string(value), nil
}
