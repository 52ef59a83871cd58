package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 500 {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
		seen[code] = struct{}{}
	}
	require.Greater(t, len(seen), 400, "codes should not repeat often")
}

func TestGenerateNumericCode_InvalidLength(t *testing.T) {
	for _, digits := range []int{0, -1, 19} {
		_, err := GenerateNumericCode(digits)
		require.Error(t, err)
	}
}
