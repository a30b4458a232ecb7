package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cyclebook/infras/otel"
	"cyclebook/infras/postgres"
	"cyclebook/internal/domains/booking/model"
	gDto "cyclebook/shared/dto"
	gRepo "cyclebook/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetWithOwner(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingWithOwner, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	withOwner gRepo.Repository[model.BookingWithOwner]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		withOwner:  gRepo.NewRepository[model.BookingWithOwner](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetWithOwner(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingWithOwner, error) {
	return r.withOwner.GetAll(ctx, params, filter)
}

func ByID(id string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldID, id))
}

// ActiveOn matches the booking currently riding (place, cycle), if any.
func ActiveOn(place, cycle string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldPlace, place),
		gDto.Eq(model.TableName, model.FieldCycle, cycle),
		gDto.Eq(model.TableName, model.FieldStarted, true),
		gDto.Eq(model.TableName, model.FieldStopped, false),
	)
}

func ActiveAt(place string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldPlace, place),
		gDto.Eq(model.TableName, model.FieldStarted, true),
		gDto.Eq(model.TableName, model.FieldStopped, false),
	)
}

// NotStopped matches every pending or riding booking.
func NotStopped() gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldStopped, false))
}

// Pending guards the start transition.
func Pending(id string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldStarted, false),
	)
}

// Riding guards the stop transition.
func Riding(id string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldStarted, true),
		gDto.Eq(model.TableName, model.FieldStopped, false),
	)
}
