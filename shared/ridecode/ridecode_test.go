package ridecode_test

import (
	"bytes"
	"cyclebook/shared/ridecode"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := ridecode.New()

	for range 200 {
		code, err := gen.Generate()

		require.NoError(t, err)
		assert.Len(t, code, ridecode.Length)

		for _, c := range code {
			assert.True(t, strings.ContainsRune(ridecode.Alphabet, c), "unexpected character %q", c)
		}
	}
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, ridecode.Alphabet, 33)
	assert.NotContains(t, ridecode.Alphabet, "I")
	assert.NotContains(t, ridecode.Alphabet, "O")
	assert.NotContains(t, ridecode.Alphabet, "0")
}

func TestGenerateCoversAlphabet(t *testing.T) {
	gen := ridecode.New()
	seen := map[rune]bool{}

	for range 2000 {
		code, err := gen.Generate()
		require.NoError(t, err)

		for _, c := range code {
			seen[c] = true
		}
	}

	assert.Len(t, seen, len(ridecode.Alphabet))
}

func TestGenerateSourceFailure(t *testing.T) {
	gen := ridecode.NewWithSource(bytes.NewReader(nil))

	_, err := gen.Generate()

	assert.Error(t, err)
}
