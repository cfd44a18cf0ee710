package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertStatusHistoryTx(ctx context.Context, sqltx *sqlx.Tx, history model.RoomStatusHistory) error
	Candidates(ctx context.Context, checkIn, checkOut time.Time, minAdult, minChild int) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	historyRepo gRepo.Repository[model.RoomStatusHistory]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		historyRepo: gRepo.NewRepository[model.RoomStatusHistory](model.HistoryEntityName, model.HistoryTableName, model.HistoryFieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

func (repo *repositoryImpl) InsertStatusHistoryTx(ctx context.Context, sqltx *sqlx.Tx, history model.RoomStatusHistory) error {
	return repo.historyRepo.InsertTx(ctx, sqltx, history) //nolint:wrapcheck
}

// Candidates returns rooms whose room type satisfies both capacity minimums
// and that have no confirmed booking overlapping the half-open window
// [checkIn, checkOut).
func (repo *repositoryImpl) Candidates(ctx context.Context, checkIn, checkOut time.Time, minAdult, minChild int) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Candidates")
	defer scope.End()

	query := `
		SELECT r.id, r.room_no, r.floor_id, r.room_type_id, r.status,
		       r.created_at, r.modified_at, r.created_by, r.modified_by
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE rt.no_of_adult >= :min_adult
		  AND rt.no_of_child >= :min_child
		  AND r.id NOT IN (
			SELECT b.room_id
			FROM bookings b
			WHERE b.booking_status = 'confirmed'
			  AND b.check_in < :check_out
			  AND b.check_out > :check_in
		  )
		ORDER BY r.id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"min_adult": minAdult,
		"min_child": minChild,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (room candidates): %w", err)
	}
	defer prepare.Close()

	var rooms []model.Room
	if err := prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get candidate rooms: %w", err)
	}

	return rooms, nil
}
