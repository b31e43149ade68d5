package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/internal/domains/coupon/model"
	gDto "grandhotel/shared/dto"
	gRepo "grandhotel/shared/repository"
)

type Coupon interface {
	Insert(ctx context.Context, model model.Coupon) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Coupon, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Coupon, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Coupon]
}

func New(db *postgres.Connection, otl otel.Otel) Coupon {
	return &repositoryImpl{gRepo.NewRepository[model.Coupon](model.EntityName, model.TableName, model.FieldCode, db, otl)}
}
