package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CodeGenerator produces invitation codes. Codes are the only credential
// needed to join a board, so they must be unpredictable.
type CodeGenerator func() (string, error)

// NewCodeGenerator returns a generator of length-character codes drawn
// uniformly from [A-Za-z0-9] with crypto/rand
func NewCodeGenerator(length int) CodeGenerator {
	max := big.NewInt(int64(len(codeAlphabet)))
	return func() (string, error) {
		b := make([]byte, length)
		for i := range b {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("failed to generate invitation code: %w", err)
			}
			b[i] = codeAlphabet[n.Int64()]
		}
		return string(b), nil
	}
}
