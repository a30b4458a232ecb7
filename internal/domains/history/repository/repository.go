package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cyclebook/infras/otel"
	"cyclebook/infras/postgres"
	"cyclebook/internal/domains/history/model"
	gDto "cyclebook/shared/dto"
	gRepo "cyclebook/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RideHistory interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.RideHistory) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RideHistory, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RideHistory]
}

func New(db *postgres.Connection, otel otel.Otel) RideHistory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RideHistory](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func ByAccount(accountID string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldAccountID, accountID))
}
