package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/internal/domains/inquiry/model"
	gDto "grandhotel/shared/dto"
	gRepo "grandhotel/shared/repository"
)

type Inquiry interface {
	Insert(ctx context.Context, model model.Inquiry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Inquiry]
}

func New(db *postgres.Connection, otl otel.Otel) Inquiry {
	return &repositoryImpl{gRepo.NewRepository[model.Inquiry](model.EntityName, model.TableName, model.FieldID, db, otl)}
}
