package jwt_test

import (
	"cyclebook/config"
	"cyclebook/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "cyclebook"
	cfg.JWT.Secret = secret
	cfg.JWT.ExpireMin = expireMin

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.New(newConfig("test-secret", 60))

	token, err := svc.GenerateToken("account-1", "host")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.NotEmpty(t, token.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.UserID)
	assert.Equal(t, "host", claims.Role)
	assert.Equal(t, token.ID, claims.TokenID())
	assert.WithinDuration(t, token.ExpiresAt, claims.ExpiresAtTime(), time.Second)
}

func TestValidateToken(t *testing.T) {
	svc := jwt.New(newConfig("test-secret", 60))
	other := jwt.New(newConfig("other-secret", 60))

	foreign, err := other.GenerateToken("account-1", "rider")
	require.NoError(t, err)

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		UserID: "account-1",
		Role:   "rider",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "cyclebook",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredValue, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: "account-1", Role: "host"})
	unsignedValue, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "garbage", token: "not-a-token", expected: jwt.ErrInvalidToken},
		{name: "wrong secret", token: foreign.Value, expected: jwt.ErrInvalidToken},
		{name: "expired", token: expiredValue, expected: jwt.ErrExpiredToken},
		{name: "alg none", token: unsignedValue, expected: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDefaultExpiry(t *testing.T) {
	svc := jwt.New(newConfig("test-secret", 0))

	token, err := svc.GenerateToken("account-1", "rider")

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		token    string
		expected error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", token: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", token: "abc"},
		{name: "empty", header: "", expected: jwt.ErrMissingToken},
		{name: "scheme only", header: "Bearer", expected: jwt.ErrMissingToken},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", expected: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}
