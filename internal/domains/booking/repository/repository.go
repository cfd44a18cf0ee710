package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (int64, error)

	LockRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID int64) error
	ExistsOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	ExistsOverlapTx(ctx context.Context, sqltx *sqlx.Tx, roomID int64, checkIn, checkOut time.Time) (bool, error)
	FutureConfirmedForRoom(ctx context.Context, roomID int64, from time.Time) ([]model.Booking, error)

	InsertAddonTx(ctx context.Context, sqltx *sqlx.Tx, addon model.BookingAddon) error
	InsertPaymentTx(ctx context.Context, sqltx *sqlx.Tx, payment model.Payment) error
	GetPaymentTx(ctx context.Context, sqltx *sqlx.Tx, bookingID int64) (model.Payment, error)
	UpdatePaymentTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	InsertRefundTx(ctx context.Context, sqltx *sqlx.Tx, refund model.Refund) error
	InsertRescheduleTx(ctx context.Context, sqltx *sqlx.Tx, reschedule model.Reschedule) error
	ExistReschedule(ctx context.Context, bookingID int64) (bool, error)
	InsertStatusHistoryTx(ctx context.Context, sqltx *sqlx.Tx, history model.BookingStatusHistory) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	addonRepo      gRepo.Repository[model.BookingAddon]
	paymentRepo    gRepo.Repository[model.Payment]
	refundRepo     gRepo.Repository[model.Refund]
	rescheduleRepo gRepo.Repository[model.Reschedule]
	historyRepo    gRepo.Repository[model.BookingStatusHistory]
	db             *postgres.Connection
	otel           otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:     gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		addonRepo:      gRepo.NewRepository[model.BookingAddon](model.AddonEntityName, model.AddonTableName, model.AddonFieldID, db, otel),
		paymentRepo:    gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.PaymentFieldID, db, otel),
		refundRepo:     gRepo.NewRepository[model.Refund](model.RefundEntityName, model.RefundTableName, model.RefundFieldID, db, otel),
		rescheduleRepo: gRepo.NewRepository[model.Reschedule](model.RescheduleEntityName, model.RescheduleTableName, model.RescheduleFieldID, db, otel),
		historyRepo:    gRepo.NewRepository[model.BookingStatusHistory](model.HistoryEntityName, model.HistoryTableName, model.HistoryFieldID, db, otel),
		db:             db,
		otel:           otel,
	}
}

// LockRoomTx serializes booking writers per room for the remainder of the
// transaction.
func (repo *repositoryImpl) LockRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID int64) error {
	return postgres.AdvisoryLock(ctx, sqltx, postgres.LockClassRoomBooking, roomID) //nolint:wrapcheck
}

const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = :room_id
		  AND booking_status = 'confirmed'
		  AND check_in < :check_out
		  AND check_out > :check_in
	)`

// ExistsOverlap reports whether a confirmed booking for the room overlaps
// the half-open window [checkIn, checkOut).
func (repo *repositoryImpl) ExistsOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistsOverlap")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, overlapQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (booking overlap): %w", err)
	}
	defer prepare.Close()

	return repo.queryOverlap(ctx, scope, prepare, roomID, checkIn, checkOut)
}

// ExistsOverlapTx is ExistsOverlap inside the write transaction. Combined
// with the per-room advisory lock it closes the check-then-insert race.
func (repo *repositoryImpl) ExistsOverlapTx(ctx context.Context, sqltx *sqlx.Tx, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistsOverlapTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	prepare, err := sqltx.PrepareNamedContext(ctx, overlapQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (booking overlap): %w", err)
	}
	defer prepare.Close()

	return repo.queryOverlap(ctx, scope, prepare, roomID, checkIn, checkOut)
}

func (repo *repositoryImpl) queryOverlap(ctx context.Context, scope otel.Scope, prepare *sqlx.NamedStmt, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	args := map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var exists bool
	if err := prepare.GetContext(ctx, &exists, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return exists, nil
}

// FutureConfirmedForRoom returns the confirmed bookings for a room that
// still cover days from the given date onward, ordered by check-in.
func (repo *repositoryImpl) FutureConfirmedForRoom(ctx context.Context, roomID int64, from time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FutureConfirmedForRoom")
	defer scope.End()

	query := `
		SELECT id, user_id, room_id, check_in, check_out, total_amount,
		       booking_status, payment_status,
		       created_at, modified_at, created_by, modified_by
		FROM bookings
		WHERE room_id = :room_id
		  AND booking_status = 'confirmed'
		  AND check_out >= :from
		ORDER BY check_in`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (future confirmed bookings): %w", err)
	}
	defer prepare.Close()

	var bookings []model.Booking

	args := map[string]any{"room_id": roomID, "from": from}
	if err := prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get future confirmed bookings: %w", err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) InsertAddonTx(ctx context.Context, sqltx *sqlx.Tx, addon model.BookingAddon) error {
	return repo.addonRepo.InsertTx(ctx, sqltx, addon) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertPaymentTx(ctx context.Context, sqltx *sqlx.Tx, payment model.Payment) error {
	return repo.paymentRepo.InsertTx(ctx, sqltx, payment) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetPaymentTx(ctx context.Context, sqltx *sqlx.Tx, bookingID int64) (model.Payment, error) {
	filter := shared.FilterByID(bookingID, model.PaymentFieldBookingID, model.PaymentTableName)

	return repo.paymentRepo.GetTx(ctx, sqltx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdatePaymentTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	return repo.paymentRepo.UpdateTx(ctx, sqltx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertRefundTx(ctx context.Context, sqltx *sqlx.Tx, refund model.Refund) error {
	return repo.refundRepo.InsertTx(ctx, sqltx, refund) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertRescheduleTx(ctx context.Context, sqltx *sqlx.Tx, reschedule model.Reschedule) error {
	return repo.rescheduleRepo.InsertTx(ctx, sqltx, reschedule) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistReschedule(ctx context.Context, bookingID int64) (bool, error) {
	filter := shared.FilterByID(bookingID, model.RescheduleFieldBookingID, model.RescheduleTableName)

	return repo.rescheduleRepo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertStatusHistoryTx(ctx context.Context, sqltx *sqlx.Tx, history model.BookingStatusHistory) error {
	return repo.historyRepo.InsertTx(ctx, sqltx, history) //nolint:wrapcheck
}
