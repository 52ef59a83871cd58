package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericCode returns a decimal code of exactly digits length drawn
// uniformly from [10^(digits-1), 10^digits - 1], so the code never has a
// leading zero. Six digits yields a value in [100000, 999999].
func GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 || digits > 18 {
		return "", fmt.Errorf("code length must be between 1 and 18, got %d", digits)
	}

	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits-1)), nil)
	span := new(big.Int).Sub(new(big.Int).Mul(low, big.NewInt(10)), low)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return n.Add(n, low).String(), nil
}
