// utils/random.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const randomAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString returns n characters from an unambiguous upper-case
// alphabet, suitable for invoice numbers.
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomAlphabet))))
		if err != nil {
			panic("failed to read random bytes")
		}
		out[i] = randomAlphabet[idx.Int64()]
	}
	return string(out)
}
