package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and splits on punctuation", func(t *testing.T) {
		assert.Equal(t, []string{"mont", "kiara", "condo"}, Tokenize("Mont-Kiara, CONDO!", 2))
	})

	t.Run("drops stop words and short tokens", func(t *testing.T) {
		assert.Equal(t, []string{"house", "kepong"}, Tokenize("house near the kepong", 3))
	})

	t.Run("digits survive", func(t *testing.T) {
		assert.Equal(t, []string{"jalan", "101"}, Tokenize("Jalan 101", 2))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize("", 2))
		assert.Empty(t, Tokenize("a of in", 2))
	})
}

func TestMatchesAllTokens(t *testing.T) {
	haystack := "Sunny Condo 1 Jalan Ampang Kuala Lumpur"

	assert.True(t, MatchesAllTokens(haystack, []string{"sunny", "ampang"}))
	assert.True(t, MatchesAllTokens(haystack, nil))
	assert.False(t, MatchesAllTokens(haystack, []string{"sunny", "penang"}))
}
