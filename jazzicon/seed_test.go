package jazzicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		address string
		seed    uint32
	}{
		{"wallet address", "0x742d35Cc6634C0532925a3b8D4C9db96590e4CAF", 1949119948},
		{"wallet address 2", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", 3638193138},
		{"malformed tail", "0x8ba1f109551bD432803012645Hac136c", 2342646025},
		{"upper prefix", "0X742D35CC", 1949119948},
		{"too short", "0x12", 326413466},
		{"non hex", "0xZZZZZZZZ00", 3251776829},
		{"plain string", "a", 3826002220},
		{"email", "alice@example.com", 2493822278},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := SeedFromAddress(tt.address)
			require.NoError(t, err)
			assert.Equal(t, tt.seed, s)
		})
	}
}

func TestSeedFromAddress_Stable(t *testing.T) {
	t.Parallel()

	a, err := SeedFromAddress("Alice@Example.com")
	require.NoError(t, err)
	b, err := SeedFromAddress("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := SeedFromAddress("bob@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSeedFromAddress_Empty(t *testing.T) {
	t.Parallel()

	_, err := SeedFromAddress("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
