// Package ridecode generates the short codes a rider shows the host to unlock a cycle.
package ridecode

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// Alphabet omits I, O and 0 so codes can be read aloud.
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ123456789"
	Length   = 6
)

// Generator draws codes from an entropy source.
type Generator struct {
	source io.Reader
}

func New() *Generator {
	return &Generator{source: rand.Reader}
}

// NewWithSource is used by tests that need deterministic codes.
func NewWithSource(source io.Reader) *Generator {
	return &Generator{source: source}
}

// Generate returns Length characters drawn independently and uniformly from Alphabet.
// Codes are not checked for uniqueness.
func (g *Generator) Generate() (string, error) {
	limit := big.NewInt(int64(len(Alphabet)))
	code := make([]byte, Length)

	for i := range code {
		n, err := rand.Int(g.source, limit)
		if err != nil {
			return "", fmt.Errorf("failed to draw code character: %w", err)
		}

		code[i] = Alphabet[n.Int64()]
	}

	return string(code), nil
}
