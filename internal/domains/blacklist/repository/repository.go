package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/internal/domains/blacklist/model"
	gDto "grandhotel/shared/dto"
	gRepo "grandhotel/shared/repository"
)

type Blacklist interface {
	Insert(ctx context.Context, model model.Entry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
}

func New(db *postgres.Connection, otl otel.Otel) Blacklist {
	return &repositoryImpl{gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldPhone, db, otl)}
}
