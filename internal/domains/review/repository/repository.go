package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/internal/domains/review/model"
	gDto "grandhotel/shared/dto"
	gRepo "grandhotel/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
}

func New(db *postgres.Connection, otl otel.Otel) Review {
	return &repositoryImpl{gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otl)}
}
