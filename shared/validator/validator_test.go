package validator_test

import (
	"cyclebook/shared/failure"
	"cyclebook/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required,institution_email"`
	Password string `json:"password" validate:"required,notblank"`
	Role     string `json:"role"     validate:"required,oneof=rider host"`
}

func TestIsInstitutionEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{email: "123456789@sastra.ac.in", expected: true},
		{email: "123456789@SASTRA.AC.IN", expected: true},
		{email: "abc@sastra.ac.in", expected: false},
		{email: "12345@sastra.ac.in", expected: false},
		{email: "1234567890@sastra.ac.in", expected: false},
		{email: "123456789@other.com", expected: false},
		{email: "123456789@sastraXacXin", expected: false},
		{email: " 123456789@sastra.ac.in", expected: false},
		{email: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsInstitutionEmail(tt.email))
		})
	}
}

func TestSetInstitutionDomain(t *testing.T) {
	validator.SetInstitutionDomain("example.edu")
	t.Cleanup(func() { validator.SetInstitutionDomain("") })

	assert.True(t, validator.IsInstitutionEmail("123456789@example.edu"))
	assert.False(t, validator.IsInstitutionEmail("123456789@sastra.ac.in"))

	validator.SetInstitutionDomain("")
	assert.True(t, validator.IsInstitutionEmail("123456789@sastra.ac.in"))
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        loginRequest
		expectedMsg string
	}{
		{
			name: "valid",
			data: loginRequest{Email: "123456789@sastra.ac.in", Password: "secret", Role: "rider"},
		},
		{
			name:        "missing email",
			data:        loginRequest{Password: "secret", Role: "rider"},
			expectedMsg: "email is required",
		},
		{
			name:        "bad email",
			data:        loginRequest{Email: "abc@sastra.ac.in", Password: "secret", Role: "host"},
			expectedMsg: "email must be a valid institutional email",
		},
		{
			name:        "blank password",
			data:        loginRequest{Email: "123456789@sastra.ac.in", Password: "   ", Role: "host"},
			expectedMsg: "password is required",
		},
		{
			name:        "unknown role",
			data:        loginRequest{Email: "123456789@sastra.ac.in", Password: "secret", Role: "admin"},
			expectedMsg: "role must be one of rider host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectedMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.expectedMsg, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		var req loginRequest

		err := validator.Validate(strings.NewReader(`{"email":"123456789@sastra.ac.in","password":"x","role":"host"}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "host", req.Role)
	})

	t.Run("malformed body", func(t *testing.T) {
		var req loginRequest

		err := validator.Validate(strings.NewReader(`{"email":`), &req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "failed to decode request body")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("Library", "required"))

	err := validator.ValidateVar("", "required")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
