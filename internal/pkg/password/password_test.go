package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("azerty69")
	require.NoError(t, err)
	assert.NotEqual(t, "azerty69", hash)

	assert.True(t, Verify("azerty69", hash))
	assert.False(t, Verify("wrong", hash))
	assert.False(t, Verify("azerty69", "not a bcrypt hash"))
}

func TestGenerateComposition(t *testing.T) {
	for i := 0; i < 20; i++ {
		pw := Generate()
		require.Len(t, pw, 8)

		var nSpecials, nLetters, nDigits int
		for _, c := range pw {
			switch {
			case strings.ContainsRune(specials, c):
				nSpecials++
			case strings.ContainsRune(digits, c):
				nDigits++
			case strings.ContainsRune(letters, c):
				nLetters++
			default:
				t.Fatalf("unexpected character %q in %q", c, pw)
			}
		}
		assert.Equal(t, 2, nSpecials, pw)
		assert.Equal(t, 4, nLetters, pw)
		assert.Equal(t, 2, nDigits, pw)
	}
}

func TestGenerateIsNotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seen[Generate()] = true
	}
	assert.Greater(t, len(seen), 1)
}
