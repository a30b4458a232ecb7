package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cyclebook/infras/otel"
	"cyclebook/infras/postgres"
	"cyclebook/internal/domains/account/model"
	gDto "cyclebook/shared/dto"
	gRepo "cyclebook/shared/repository"
)

type Account interface {
	Insert(ctx context.Context, model model.Account) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Account, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Account]
}

func New(db *postgres.Connection, otel otel.Otel) Account {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ByEmailAndRole matches the lookup used at login and password reset.
func ByEmailAndRole(email, role string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldEmail, email),
		gDto.Eq(model.TableName, model.FieldRole, role),
	)
}

func ByID(id string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldID, id))
}
