package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/addon/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Addon interface {
	Insert(ctx context.Context, model model.Addon) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Addon, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Addon, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Addon]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Addon {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Addon](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
