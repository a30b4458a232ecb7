package dto

import (
	accountModel "cyclebook/internal/domains/account/model"
	gModel "cyclebook/shared/model"
	"cyclebook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterOrLoginRequest struct {
	Email    string `json:"email"    validate:"required,institution_email"`
	Password string `json:"password" validate:"required,notblank,max=72"`
	Role     string `json:"role"     validate:"required,oneof=rider host"`
}

// Normalize lowercases the email so lookups are case insensitive.
func (r *RegisterOrLoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *RegisterOrLoginRequest) ToAccountModel(hashedPassword string) accountModel.Account {
	now := timezone.Now()

	return accountModel.Account{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     r.Role,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type VerifyTokenResponse struct {
	Role string `json:"role"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"        validate:"required,institution_email"`
	NewPassword string `json:"new_password" validate:"required,notblank,max=72"`
	Role        string `json:"role"         validate:"required,oneof=rider host"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

// Session is the authenticated caller as resolved by the auth middleware.
type Session struct {
	AccountID string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
