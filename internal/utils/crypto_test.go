package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]+$`)

	t.Run("length and alphabet", func(t *testing.T) {
		token := GenerateToken(TokenBytes)
		assert.Len(t, token, 2*TokenBytes)
		assert.Regexp(t, hexRe, token)
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token := GenerateToken(TokenBytes)
			require.False(t, seen[token], "duplicate token generated")
			seen[token] = true
		}
	})

	t.Run("custom size", func(t *testing.T) {
		assert.Len(t, GenerateToken(16), 32)
	})
}
