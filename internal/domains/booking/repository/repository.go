package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/internal/domains/booking/model"
	gDto "grandhotel/shared/dto"
	gRepo "grandhotel/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

// repositoryImpl gets every method from the generic table access.
type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otl otel.Otel) Booking {
	return &repositoryImpl{gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otl)}
}
