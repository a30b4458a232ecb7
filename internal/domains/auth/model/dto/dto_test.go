package dto_test

import (
	"cyclebook/internal/domains/auth/model/dto"
	"cyclebook/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterOrLoginRequest_Normalize(t *testing.T) {
	req := dto.RegisterOrLoginRequest{Email: "  123456789@SASTRA.ac.IN ", Password: "pw", Role: " rider "}

	req.Normalize()

	assert.Equal(t, "123456789@sastra.ac.in", req.Email)
	assert.Equal(t, "rider", req.Role)
	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestRegisterOrLoginRequest_ToAccountModel(t *testing.T) {
	req := dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "pw", Role: "host"}

	account := req.ToAccountModel("hashed")

	require.NotEmpty(t, account.ID)
	assert.Equal(t, "123456789@sastra.ac.in", account.Email)
	assert.Equal(t, "hashed", account.Password)
	assert.Equal(t, "host", account.Role)
	assert.False(t, account.CreatedAt.IsZero())
	assert.Equal(t, account.CreatedAt, account.ModifiedAt)
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterOrLoginRequest
		wantErr bool
	}{
		{name: "valid rider", req: dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "pw", Role: "rider"}},
		{name: "missing password", req: dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Role: "rider"}, wantErr: true},
		{name: "letters in email", req: dto.RegisterOrLoginRequest{Email: "abc@sastra.ac.in", Password: "pw", Role: "rider"}, wantErr: true},
		{name: "short email", req: dto.RegisterOrLoginRequest{Email: "12345@sastra.ac.in", Password: "pw", Role: "rider"}, wantErr: true},
		{name: "foreign domain", req: dto.RegisterOrLoginRequest{Email: "123456789@other.com", Password: "pw", Role: "rider"}, wantErr: true},
		{name: "unknown role", req: dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "pw", Role: "admin"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
