// Package voucher produces voucher codes and their scannable QR encoding.
package voucher

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet leaves out glyphs that are easy to confuse when typed: 0/O, 1/I/L and U/V.
const Alphabet = "ABCDEFGHJKMNPQRSTWXYZ23456789"

const (
	blocks    = 4
	blockSize = 4
)

// GenerateCode returns a random code such as "7KQ2-MXA9-C4TD-W8RH".
func GenerateCode() (string, error) {
	var sb strings.Builder

	size := big.NewInt(int64(len(Alphabet)))

	for i := range blocks * blockSize {
		if i > 0 && i%blockSize == 0 {
			sb.WriteByte('-')
		}

		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}

		sb.WriteByte(Alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// ValidCode reports whether code has the shape GenerateCode produces.
func ValidCode(code string) bool {
	parts := strings.Split(code, "-")
	if len(parts) != blocks {
		return false
	}

	for _, p := range parts {
		if len(p) != blockSize {
			return false
		}

		for _, r := range p {
			if !strings.ContainsRune(Alphabet, r) {
				return false
			}
		}
	}

	return true
}
