package password_test

import (
	"cyclebook/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Run("hashes and verifies", func(t *testing.T) {
		hash, err := password.Hash("ride-secret")

		require.NoError(t, err)
		assert.NotEqual(t, "ride-secret", hash)
		assert.NoError(t, password.Verify("ride-secret", hash))
	})

	t.Run("salts each hash", func(t *testing.T) {
		first, err := password.Hash("ride-secret")
		require.NoError(t, err)

		second, err := password.Hash("ride-secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := password.Hash("")

		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		expected error
	}{
		{name: "match", password: "correct", hash: hash, expected: nil},
		{name: "mismatch", password: "wrong", hash: hash, expected: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expected: password.ErrInvalidPassword},
		{name: "empty hash", password: "correct", hash: "", expected: password.ErrInvalidPassword},
		{name: "malformed hash", password: "correct", hash: "not-a-bcrypt-hash", expected: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expected == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
