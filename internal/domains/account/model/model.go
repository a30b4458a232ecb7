package model

import "cyclebook/shared/model"

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRole       = "role"
	FieldModifiedAt = "modified_at"
)

// Account is a rider or host identified by institutional email. Accounts are never deleted.
type Account struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Role     string `db:"role"`
	model.Metadata
}

func (a Account) Exists() bool {
	return a.ID != ""
}
